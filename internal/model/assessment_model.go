package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Assessment struct {
	Id                uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FirstName         string         `gorm:"type:text;not null"`
	Email             string         `gorm:"type:text;not null;index"`
	CompanyCode       *string        `gorm:"type:text;index"`
	TotalScore        float64        `gorm:"not null"`
	PercentageScore   float64        `gorm:"not null"`
	Step1Score        float64        `gorm:"not null;default:0"`
	Step2Score        float64        `gorm:"not null;default:0"`
	Step3Score        float64        `gorm:"not null;default:0"`
	Step4Score        float64        `gorm:"not null;default:0"`
	Step5Score        float64        `gorm:"not null;default:0"`
	Step6Score        float64        `gorm:"not null;default:0"`
	Step7Score        float64        `gorm:"not null;default:0"`
	Step8Score        float64        `gorm:"not null;default:0"`
	Step9Score        float64        `gorm:"not null;default:0"`
	AssessmentAnswers datatypes.JSON `gorm:"type:jsonb"`
	PriorityStepName  string         `gorm:"type:text;not null"`
	PriorityStepScore float64        `gorm:"not null"`
	ScoreDescription  string         `gorm:"type:text;not null"`
	Source            string         `gorm:"type:text;not null;default:web_assessment"`
	CompletedAt       time.Time      `gorm:"not null;index"`
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
}

func (Assessment) TableName() string {
	return "accountability_assessments"
}
