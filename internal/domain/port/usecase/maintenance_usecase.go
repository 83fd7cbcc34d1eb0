package usecase

import (
	"context"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/usecase/maintenance"
)

// MaintenanceUseCase runs destructive admin operations. Both require confirm.
type MaintenanceUseCase interface {
	// Purge deletes every record and processed document marker
	Purge(ctx context.Context, confirm bool) (maintenance.PurgeResult, error)

	// NormalizeDates rewrites stored dates once per configured layout pair
	NormalizeDates(ctx context.Context, confirm bool) (maintenance.NormalizationResult, error)
}
