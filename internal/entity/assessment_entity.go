package entity

import (
	"time"

	"github.com/google/uuid"
)

type Assessment struct {
	Id                uuid.UUID
	FirstName         string
	Email             string
	CompanyCode       *string
	TotalScore        float64
	PercentageScore   float64
	StepScores        [9]float64
	Answers           map[string]float64
	PriorityStepName  string
	PriorityStepScore float64
	ScoreDescription  string
	Source            string
	CompletedAt       time.Time
	CreatedAt         time.Time
}
