package mapper

import (
	"askaprilai-be/internal/entity"
	"askaprilai-be/internal/model"
)

type CompanyAnalyticsMapper struct{}

func NewCompanyAnalyticsMapper() *CompanyAnalyticsMapper {
	return &CompanyAnalyticsMapper{}
}

func (m *CompanyAnalyticsMapper) ToModel(e *entity.CompanyAnalytics) *model.CompanyAnalytics {
	if e == nil {
		return nil
	}
	return &model.CompanyAnalytics{
		Id:                e.Id,
		CompanyCode:       e.CompanyCode,
		TotalAssessments:  e.TotalAssessments,
		AveragePercentage: e.AveragePercentage,
		TopPriorityStep:   e.TopPriorityStep,
		LastAssessmentAt:  e.LastAssessmentAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func (m *CompanyAnalyticsMapper) ToEntity(s *model.CompanyAnalytics) *entity.CompanyAnalytics {
	if s == nil {
		return nil
	}
	return &entity.CompanyAnalytics{
		Id:                s.Id,
		CompanyCode:       s.CompanyCode,
		TotalAssessments:  s.TotalAssessments,
		AveragePercentage: s.AveragePercentage,
		TopPriorityStep:   s.TopPriorityStep,
		LastAssessmentAt:  s.LastAssessmentAt,
		UpdatedAt:         s.UpdatedAt,
	}
}
