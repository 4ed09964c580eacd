package model

import (
	"time"

	"github.com/google/uuid"
)

type CompanyAnalytics struct {
	Id                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyCode       string     `gorm:"type:text;not null;uniqueIndex"`
	TotalAssessments  int        `gorm:"not null;default:0"`
	AveragePercentage float64    `gorm:"not null;default:0"`
	TopPriorityStep   string     `gorm:"type:text"`
	LastAssessmentAt  *time.Time `gorm:""`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime"`
}

func (CompanyAnalytics) TableName() string {
	return "company_analytics"
}
