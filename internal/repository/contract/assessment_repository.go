package contract

import (
	"context"

	"askaprilai-be/internal/entity"
	"askaprilai-be/internal/repository/specification"
)

type AssessmentRepository interface {
	Create(ctx context.Context, assessment *entity.Assessment) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Assessment, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
