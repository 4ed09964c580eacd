package implementation

import (
	"context"
	"errors"

	"askaprilai-be/internal/entity"
	"askaprilai-be/internal/mapper"
	"askaprilai-be/internal/model"
	"askaprilai-be/internal/repository/contract"
	"askaprilai-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompanyAnalyticsRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CompanyAnalyticsMapper
}

func NewCompanyAnalyticsRepository(db *gorm.DB) contract.CompanyAnalyticsRepository {
	return &CompanyAnalyticsRepositoryImpl{
		db:     db,
		mapper: mapper.NewCompanyAnalyticsMapper(),
	}
}

func (r *CompanyAnalyticsRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CompanyAnalyticsRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CompanyAnalytics, error) {
	var m model.CompanyAnalytics
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CompanyAnalyticsRepositoryImpl) Upsert(ctx context.Context, analytics *entity.CompanyAnalytics) error {
	m := r.mapper.ToModel(analytics)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "company_code"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_assessments",
			"average_percentage",
			"top_priority_step",
			"last_assessment_at",
			"updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*analytics = *r.mapper.ToEntity(m)
	return nil
}
