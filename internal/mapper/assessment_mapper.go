package mapper

import (
	"encoding/json"

	"askaprilai-be/internal/entity"
	"askaprilai-be/internal/model"

	"gorm.io/datatypes"
)

type AssessmentMapper struct{}

func NewAssessmentMapper() *AssessmentMapper {
	return &AssessmentMapper{}
}

func (m *AssessmentMapper) ToModel(e *entity.Assessment) *model.Assessment {
	if e == nil {
		return nil
	}

	// The raw answer payload is stored verbatim; marshal failure cannot
	// happen for a map of floats.
	rawAnswers, _ := json.Marshal(e.Answers)

	return &model.Assessment{
		Id:                e.Id,
		FirstName:         e.FirstName,
		Email:             e.Email,
		CompanyCode:       e.CompanyCode,
		TotalScore:        e.TotalScore,
		PercentageScore:   e.PercentageScore,
		Step1Score:        e.StepScores[0],
		Step2Score:        e.StepScores[1],
		Step3Score:        e.StepScores[2],
		Step4Score:        e.StepScores[3],
		Step5Score:        e.StepScores[4],
		Step6Score:        e.StepScores[5],
		Step7Score:        e.StepScores[6],
		Step8Score:        e.StepScores[7],
		Step9Score:        e.StepScores[8],
		AssessmentAnswers: datatypes.JSON(rawAnswers),
		PriorityStepName:  e.PriorityStepName,
		PriorityStepScore: e.PriorityStepScore,
		ScoreDescription:  e.ScoreDescription,
		Source:            e.Source,
		CompletedAt:       e.CompletedAt,
		CreatedAt:         e.CreatedAt,
	}
}

func (m *AssessmentMapper) ToEntity(s *model.Assessment) *entity.Assessment {
	if s == nil {
		return nil
	}

	var answers map[string]float64
	_ = json.Unmarshal(s.AssessmentAnswers, &answers)

	return &entity.Assessment{
		Id:              s.Id,
		FirstName:       s.FirstName,
		Email:           s.Email,
		CompanyCode:     s.CompanyCode,
		TotalScore:      s.TotalScore,
		PercentageScore: s.PercentageScore,
		StepScores: [9]float64{
			s.Step1Score, s.Step2Score, s.Step3Score,
			s.Step4Score, s.Step5Score, s.Step6Score,
			s.Step7Score, s.Step8Score, s.Step9Score,
		},
		Answers:           answers,
		PriorityStepName:  s.PriorityStepName,
		PriorityStepScore: s.PriorityStepScore,
		ScoreDescription:  s.ScoreDescription,
		Source:            s.Source,
		CompletedAt:       s.CompletedAt,
		CreatedAt:         s.CreatedAt,
	}
}

func (m *AssessmentMapper) ToEntities(models []*model.Assessment) []*entity.Assessment {
	entities := make([]*entity.Assessment, 0, len(models))
	for _, s := range models {
		entities = append(entities, m.ToEntity(s))
	}
	return entities
}
