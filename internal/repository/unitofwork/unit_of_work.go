package unitofwork

import (
	"context"

	"askaprilai-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	AssessmentRepository() contract.AssessmentRepository
	CompanyAnalyticsRepository() contract.CompanyAnalyticsRepository
}
