package entity

import (
	"time"

	"github.com/google/uuid"
)

// CompanyAnalytics is a precomputed per-company aggregate maintained
// outside this service; we only ever read it.
type CompanyAnalytics struct {
	Id                uuid.UUID
	CompanyCode       string
	TotalAssessments  int
	AveragePercentage float64
	TopPriorityStep   string
	LastAssessmentAt  *time.Time
	UpdatedAt         time.Time
}
