package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"askaprilai-be/internal/dto"
	"askaprilai-be/internal/entity"
	"askaprilai-be/internal/pkg/apperror"
	"askaprilai-be/internal/pkg/logger"
	"askaprilai-be/internal/pkg/mailer"
	"askaprilai-be/internal/repository/specification"
	"askaprilai-be/internal/repository/unitofwork"
	"askaprilai-be/pkg/events"
	pktNats "askaprilai-be/pkg/nats"
	"askaprilai-be/pkg/scoring"

	"github.com/google/uuid"
)

const defaultAssessmentSource = "web_assessment"

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type IAssessmentService interface {
	Submit(ctx context.Context, req *dto.SubmitAssessmentRequest) (*dto.SubmitAssessmentResponse, error)
	GetCompanyAnalytics(ctx context.Context, companyCode string) (*dto.CompanyAnalyticsReport, error)
}

type assessmentService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewAssessmentService(
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IAssessmentService {
	return &assessmentService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *assessmentService) Submit(ctx context.Context, req *dto.SubmitAssessmentRequest) (*dto.SubmitAssessmentResponse, error) {
	firstName := strings.TrimSpace(req.FirstName)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !emailRegex.MatchString(email) {
		return nil, apperror.Validation("Invalid email format")
	}

	var companyCode *string
	if code := strings.TrimSpace(req.CompanyCode); code != "" {
		companyCode = &code
	}

	result := scoring.Score(req.AssessmentAnswers)

	source := req.Source
	if source == "" {
		source = defaultAssessmentSource
	}

	completedAt := time.Now()
	if req.CompletedAt != nil {
		completedAt = *req.CompletedAt
	}

	assessment := entity.Assessment{
		Id:                uuid.New(),
		FirstName:         firstName,
		Email:             email,
		CompanyCode:       companyCode,
		TotalScore:        *req.TotalScore,
		PercentageScore:   req.PercentageScore,
		Answers:           req.AssessmentAnswers,
		PriorityStepName:  result.Priority.Name,
		PriorityStepScore: result.Priority.Score,
		ScoreDescription:  scoring.BandFor(req.PercentageScore),
		Source:            source,
		CompletedAt:       completedAt,
		CreatedAt:         time.Now(),
	}
	for i, step := range result.Steps {
		assessment.StepScores[i] = step.Score
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Persistence("Failed to save assessment", err)
	}
	defer uow.Rollback()

	if err := uow.AssessmentRepository().Create(ctx, &assessment); err != nil {
		return nil, apperror.Persistence("Failed to save assessment", err)
	}

	var analytics *entity.CompanyAnalytics
	if companyCode != nil {
		recomputed, err := s.recomputeCompanyAnalytics(ctx, uow, *companyCode)
		if err != nil {
			return nil, apperror.Persistence("Failed to update company analytics", err)
		}
		analytics = recomputed
	}

	if err := uow.Commit(); err != nil {
		return nil, apperror.Persistence("Failed to save assessment", err)
	}

	s.logger.Info("ASSESSMENT", "Assessment saved", map[string]interface{}{
		"id":            assessment.Id,
		"email":         assessment.Email,
		"priority_step": assessment.PriorityStepName,
	})

	// Results email and domain event are auxiliary; failures must not fail
	// the submission.
	if err := s.emailService.SendAssessmentResults(email, firstName, assessment.ScoreDescription, assessment.PriorityStepName, assessment.PercentageScore); err != nil {
		s.logger.Warn("ASSESSMENT", "Failed to send results email", map[string]interface{}{
			"email": email,
			"error": err.Error(),
		})
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: "ASSESSMENT_COMPLETED",
			Data: map[string]interface{}{
				"assessment_id":    assessment.Id,
				"email":            assessment.Email,
				"percentage_score": assessment.PercentageScore,
				"priority_step":    assessment.PriorityStepName,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("ASSESSMENT", "Failed to publish ASSESSMENT_COMPLETED event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	resp := &dto.SubmitAssessmentResponse{
		Id:              assessment.Id,
		FirstName:       assessment.FirstName,
		Email:           assessment.Email,
		CompanyCode:     assessment.CompanyCode,
		TotalScore:      assessment.TotalScore,
		PercentageScore: assessment.PercentageScore,
		PriorityStep: dto.PriorityStepResponse{
			Name:  assessment.PriorityStepName,
			Score: assessment.PriorityStepScore,
		},
		ScoreDescription: assessment.ScoreDescription,
		CompletedAt:      assessment.CompletedAt,
	}
	if analytics != nil {
		resp.CompanyAnalytics = toAnalyticsResponse(analytics)
	}

	return resp, nil
}

// recomputeCompanyAnalytics rebuilds the aggregate row for a company from
// its assessments. Runs inside the submission transaction so the aggregate
// never lags behind the assessment that triggered it.
func (s *assessmentService) recomputeCompanyAnalytics(ctx context.Context, uow unitofwork.UnitOfWork, companyCode string) (*entity.CompanyAnalytics, error) {
	assessments, err := uow.AssessmentRepository().FindAll(ctx, specification.ByCompanyCode{CompanyCode: companyCode})
	if err != nil {
		return nil, err
	}
	if len(assessments) == 0 {
		return nil, nil
	}

	var sum float64
	var lastAt time.Time
	priorityCounts := make(map[string]int)
	for _, a := range assessments {
		sum += a.PercentageScore
		priorityCounts[a.PriorityStepName]++
		if a.CompletedAt.After(lastAt) {
			lastAt = a.CompletedAt
		}
	}

	// Most frequent priority step; ties resolve to the earliest step in
	// the framework order.
	topStep := ""
	topCount := 0
	for _, name := range scoring.StepNames() {
		if priorityCounts[name] > topCount {
			topStep = name
			topCount = priorityCounts[name]
		}
	}

	analytics := &entity.CompanyAnalytics{
		Id:                uuid.New(),
		CompanyCode:       companyCode,
		TotalAssessments:  len(assessments),
		AveragePercentage: sum / float64(len(assessments)),
		TopPriorityStep:   topStep,
		LastAssessmentAt:  &lastAt,
		UpdatedAt:         time.Now(),
	}

	if err := uow.CompanyAnalyticsRepository().Upsert(ctx, analytics); err != nil {
		return nil, err
	}
	return analytics, nil
}

func (s *assessmentService) GetCompanyAnalytics(ctx context.Context, companyCode string) (*dto.CompanyAnalyticsReport, error) {
	code := strings.TrimSpace(companyCode)
	if code == "" {
		return nil, apperror.Validation("Company code required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	analytics, err := uow.CompanyAnalyticsRepository().FindOne(ctx, specification.ByCompanyCode{CompanyCode: code})
	if err != nil {
		return nil, apperror.Persistence("Failed to load company analytics", err)
	}
	if analytics == nil {
		return nil, apperror.NotFound("Company analytics not found")
	}

	recent, err := uow.AssessmentRepository().FindAll(ctx,
		specification.ByCompanyCode{CompanyCode: code},
		specification.OrderBy{Field: "completed_at", Desc: true},
		specification.Pagination{Limit: 10},
	)
	if err != nil {
		return nil, apperror.Persistence("Failed to load recent assessments", err)
	}

	report := &dto.CompanyAnalyticsReport{
		CompanyCode:       code,
		Analytics:         *toAnalyticsResponse(analytics),
		RecentAssessments: make([]dto.RecentAssessmentResponse, 0, len(recent)),
	}
	for _, a := range recent {
		report.RecentAssessments = append(report.RecentAssessments, dto.RecentAssessmentResponse{
			Id:               a.Id,
			FirstName:        a.FirstName,
			PercentageScore:  a.PercentageScore,
			PriorityStepName: a.PriorityStepName,
			CompletedAt:      a.CompletedAt,
		})
	}

	return report, nil
}

func toAnalyticsResponse(a *entity.CompanyAnalytics) *dto.CompanyAnalyticsResponse {
	if a == nil {
		return nil
	}
	return &dto.CompanyAnalyticsResponse{
		CompanyCode:       a.CompanyCode,
		TotalAssessments:  a.TotalAssessments,
		AveragePercentage: a.AveragePercentage,
		TopPriorityStep:   a.TopPriorityStep,
		LastAssessmentAt:  a.LastAssessmentAt,
	}
}
