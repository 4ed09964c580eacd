package contract

import (
	"context"

	"askaprilai-be/internal/entity"
	"askaprilai-be/internal/repository/specification"
)

type CompanyAnalyticsRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CompanyAnalytics, error)
	Upsert(ctx context.Context, analytics *entity.CompanyAnalytics) error
}
