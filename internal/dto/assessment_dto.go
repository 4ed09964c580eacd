package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitAssessmentRequest struct {
	FirstName         string             `json:"firstName" validate:"required"`
	Email             string             `json:"email" validate:"required"`
	CompanyCode       string             `json:"companyCode"`
	AssessmentAnswers map[string]float64 `json:"assessmentAnswers" validate:"required"`
	TotalScore        *float64           `json:"totalScore" validate:"required"`
	PercentageScore   float64            `json:"percentageScore"`
	CompletedAt       *time.Time         `json:"completedAt"`
	Source            string             `json:"source"`
}

type PriorityStepResponse struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

type CompanyAnalyticsResponse struct {
	CompanyCode       string     `json:"companyCode"`
	TotalAssessments  int        `json:"totalAssessments"`
	AveragePercentage float64    `json:"averagePercentage"`
	TopPriorityStep   string     `json:"topPriorityStep"`
	LastAssessmentAt  *time.Time `json:"lastAssessmentAt"`
}

type SubmitAssessmentResponse struct {
	Id               uuid.UUID                 `json:"id"`
	FirstName        string                    `json:"firstName"`
	Email            string                    `json:"email"`
	CompanyCode      *string                   `json:"companyCode"`
	TotalScore       float64                   `json:"totalScore"`
	PercentageScore  float64                   `json:"percentageScore"`
	PriorityStep     PriorityStepResponse      `json:"priorityStep"`
	ScoreDescription string                    `json:"scoreDescription"`
	CompletedAt      time.Time                 `json:"completedAt"`
	CompanyAnalytics *CompanyAnalyticsResponse `json:"companyAnalytics"`
}

type RecentAssessmentResponse struct {
	Id               uuid.UUID `json:"id"`
	FirstName        string    `json:"firstName"`
	PercentageScore  float64   `json:"percentageScore"`
	PriorityStepName string    `json:"priorityStepName"`
	CompletedAt      time.Time `json:"completedAt"`
}

type CompanyAnalyticsReport struct {
	CompanyCode       string                     `json:"companyCode"`
	Analytics         CompanyAnalyticsResponse   `json:"analytics"`
	RecentAssessments []RecentAssessmentResponse `json:"recentAssessments"`
}
