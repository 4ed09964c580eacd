package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"askaprilai-be/internal/dto"
	"askaprilai-be/internal/entity"
	"askaprilai-be/internal/pkg/apperror"
	"askaprilai-be/internal/repository/contract"
	"askaprilai-be/internal/repository/specification"
	"askaprilai-be/internal/repository/unitofwork"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAssessmentRepo struct {
	assessments []*entity.Assessment
}

func (r *fakeAssessmentRepo) Create(ctx context.Context, assessment *entity.Assessment) error {
	stored := *assessment
	r.assessments = append(r.assessments, &stored)
	return nil
}

func (r *fakeAssessmentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Assessment, error) {
	return r.assessments, nil
}

func (r *fakeAssessmentRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.assessments)), nil
}

type fakeAnalyticsRepo struct {
	analytics *entity.CompanyAnalytics
}

func (r *fakeAnalyticsRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CompanyAnalytics, error) {
	return r.analytics, nil
}

func (r *fakeAnalyticsRepo) Upsert(ctx context.Context, analytics *entity.CompanyAnalytics) error {
	stored := *analytics
	r.analytics = &stored
	return nil
}

type fakeUnitOfWork struct {
	assessments *fakeAssessmentRepo
	analytics   *fakeAnalyticsRepo
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }
func (u *fakeUnitOfWork) AssessmentRepository() contract.AssessmentRepository {
	return u.assessments
}
func (u *fakeUnitOfWork) CompanyAnalyticsRepository() contract.CompanyAnalyticsRepository {
	return u.analytics
}

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type fakeEmailService struct {
	sent []string
}

func (s *fakeEmailService) SendAssessmentResults(toEmail, firstName, scoreDescription, priorityStep string, percentageScore float64) error {
	s.sent = append(s.sent, toEmail)
	return nil
}

func newTestAssessmentService() (IAssessmentService, *fakeUnitOfWork, *fakeEmailService) {
	uow := &fakeUnitOfWork{
		assessments: &fakeAssessmentRepo{},
		analytics:   &fakeAnalyticsRepo{},
	}
	email := &fakeEmailService{}
	svc := NewAssessmentService(&fakeUowFactory{uow: uow}, email, nil, testLogger{})
	return svc, uow, email
}

func floatPtr(v float64) *float64 { return &v }

func TestAssessmentSubmit(t *testing.T) {
	svc, uow, email := newTestAssessmentService()

	res, err := svc.Submit(context.Background(), &dto.SubmitAssessmentRequest{
		FirstName: "  Jordan ",
		Email:     " Jordan@Example.COM ",
		AssessmentAnswers: map[string]float64{
			"q1": 10, "q2": 9, "q3": 3, "q4": 8, "q5": 7,
			"q6": 9, "q7": 8, "q8": 10, "q9": 6,
		},
		TotalScore:      floatPtr(70),
		PercentageScore: 77.8,
	})
	require.NoError(t, err)

	assert.Equal(t, "Jordan", res.FirstName)
	assert.Equal(t, "jordan@example.com", res.Email)
	assert.Nil(t, res.CompanyCode)
	assert.Equal(t, 70.0, res.TotalScore)
	assert.Equal(t, "Agreed Consequences for Missed Expectations", res.PriorityStep.Name)
	assert.Equal(t, 3.0, res.PriorityStep.Score)
	assert.Contains(t, res.ScoreDescription, "Strong Leadership")
	assert.Nil(t, res.CompanyAnalytics)
	assert.False(t, res.CompletedAt.IsZero())

	require.Len(t, uow.assessments.assessments, 1)
	saved := uow.assessments.assessments[0]
	assert.Equal(t, "web_assessment", saved.Source)
	assert.Equal(t, [9]float64{10, 9, 3, 8, 7, 9, 8, 10, 6}, saved.StepScores)

	assert.Equal(t, []string{"jordan@example.com"}, email.sent)
}

func TestAssessmentSubmitInvalidEmail(t *testing.T) {
	svc, _, _ := newTestAssessmentService()

	tests := []struct {
		name  string
		email string
	}{
		{"missing at", "jordan.example.com"},
		{"missing domain dot", "jordan@example"},
		{"embedded space", "jordan smith@example.com"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), &dto.SubmitAssessmentRequest{
				FirstName:         "Jordan",
				Email:             tt.email,
				AssessmentAnswers: map[string]float64{"q1": 5},
				TotalScore:        floatPtr(5),
			})
			var appErr *apperror.Error
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, apperror.KindValidation, appErr.Kind)
		})
	}
}

func TestAssessmentSubmitRecomputesCompanyAnalytics(t *testing.T) {
	svc, uow, _ := newTestAssessmentService()

	answers := func(base float64) map[string]float64 {
		m := make(map[string]float64, 9)
		for _, q := range []string{"q1", "q2", "q3", "q4", "q5", "q6", "q7", "q8", "q9"} {
			m[q] = base
		}
		m["q3"] = base - 2
		return m
	}

	first, err := svc.Submit(context.Background(), &dto.SubmitAssessmentRequest{
		FirstName:         "Jordan",
		Email:             "jordan@example.com",
		CompanyCode:       " ACME ",
		AssessmentAnswers: answers(8),
		TotalScore:        floatPtr(70),
		PercentageScore:   80,
	})
	require.NoError(t, err)
	require.NotNil(t, first.CompanyAnalytics)
	assert.Equal(t, 1, first.CompanyAnalytics.TotalAssessments)
	assert.Equal(t, 80.0, first.CompanyAnalytics.AveragePercentage)

	second, err := svc.Submit(context.Background(), &dto.SubmitAssessmentRequest{
		FirstName:         "Riley",
		Email:             "riley@example.com",
		CompanyCode:       "ACME",
		AssessmentAnswers: answers(6),
		TotalScore:        floatPtr(52),
		PercentageScore:   60,
	})
	require.NoError(t, err)
	require.NotNil(t, second.CompanyAnalytics)
	assert.Equal(t, 2, second.CompanyAnalytics.TotalAssessments)
	assert.Equal(t, 70.0, second.CompanyAnalytics.AveragePercentage)
	assert.Equal(t, "Agreed Consequences for Missed Expectations", second.CompanyAnalytics.TopPriorityStep)

	require.NotNil(t, uow.analytics.analytics)
	assert.Equal(t, "ACME", uow.analytics.analytics.CompanyCode)
	require.NotNil(t, uow.analytics.analytics.LastAssessmentAt)
	assert.WithinDuration(t, time.Now(), *uow.analytics.analytics.LastAssessmentAt, 5*time.Second)
}

func TestGetCompanyAnalytics(t *testing.T) {
	svc, uow, _ := newTestAssessmentService()

	_, err := svc.GetCompanyAnalytics(context.Background(), "ACME")
	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindNotFound, appErr.Kind)

	_, err = svc.GetCompanyAnalytics(context.Background(), "   ")
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindValidation, appErr.Kind)

	now := time.Now()
	uow.analytics.analytics = &entity.CompanyAnalytics{
		CompanyCode:       "ACME",
		TotalAssessments:  2,
		AveragePercentage: 70,
		TopPriorityStep:   "Course-Correct Quickly",
		LastAssessmentAt:  &now,
	}
	uow.assessments.assessments = []*entity.Assessment{
		{FirstName: "Jordan", PercentageScore: 80, PriorityStepName: "Course-Correct Quickly", CompletedAt: now},
	}

	report, err := svc.GetCompanyAnalytics(context.Background(), "ACME")
	require.NoError(t, err)
	assert.Equal(t, "ACME", report.CompanyCode)
	assert.Equal(t, 2, report.Analytics.TotalAssessments)
	require.Len(t, report.RecentAssessments, 1)
	assert.Equal(t, "Jordan", report.RecentAssessments[0].FirstName)
}
