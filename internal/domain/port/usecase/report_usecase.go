package usecase

import (
	"context"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/entity"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/usecase/report"
)

// ReportUseCase answers read-only queries over the whole store
type ReportUseCase interface {
	AllRecords(ctx context.Context, cardholder string) ([]entity.TransactionRecord, error)
	MonthlySpend(ctx context.Context, cardholder string) ([]report.MonthlySpend, error)
	TopDescriptions(ctx context.Context, cardholder string, limit int) ([]report.DescriptionSpend, error)
}
