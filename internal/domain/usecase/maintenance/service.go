package maintenance

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/statement-processor/internal/domain/error"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/port/persistence"
)

// NormalizationConfig controls the one-shot stored date rewrite
type NormalizationConfig struct {
	Enabled    bool
	FromLayout string
	ToLayout   string
}

// FlagName is the marker persisted once the rewrite has run
func (c NormalizationConfig) FlagName() string {
	return fmt.Sprintf("date_normalization:%s->%s", c.FromLayout, c.ToLayout)
}

// PurgeResult reports how many rows a purge removed
type PurgeResult struct {
	Records   int64 `json:"records"`
	Documents int64 `json:"documents"`
}

// NormalizationResult reports the outcome of a date rewrite
type NormalizationResult struct {
	Flag        string `json:"flag"`
	Converted   int    `json:"converted"`
	Unchanged   int    `json:"unchanged"`
	Unparseable int    `json:"unparseable"`
}

// Service runs destructive store maintenance
type Service struct {
	uow          persistence.UnitOfWork
	normalize    NormalizationConfig
	timeProvider core.TimeProvider
	logger       core.Logger
}

// NewService creates a maintenance service
func NewService(
	uow persistence.UnitOfWork,
	normalize NormalizationConfig,
	timeProvider core.TimeProvider,
	logger core.Logger,
) *Service {
	if normalize.FromLayout == "" {
		normalize.FromLayout = entity.SourceDateLayout
	}
	if normalize.ToLayout == "" {
		normalize.ToLayout = entity.CanonicalDateLayout
	}
	return &Service{
		uow:          uow,
		normalize:    normalize,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Purge deletes every transaction record and every processed document
// marker. Nothing happens unless confirm is true.
func (s *Service) Purge(ctx context.Context, confirm bool) (PurgeResult, error) {
	if !confirm {
		return PurgeResult{}, errs.ErrConfirmationRequired
	}

	var result PurgeResult
	err := s.withinTransaction(ctx, "purge store", func(txCtx context.Context) error {
		var err error
		if result.Records, err = s.uow.GetTransactionRecordRepository(txCtx).PurgeAll(txCtx); err != nil {
			return err
		}
		result.Documents, err = s.uow.GetProcessedDocumentRepository(txCtx).PurgeAll(txCtx)
		return err
	})
	if err != nil {
		s.logger.Error("Store purge failed", map[string]any{"error": err.Error()})
		return PurgeResult{}, err
	}

	s.logger.Warn("Store purged", map[string]any{
		"records":   result.Records,
		"documents": result.Documents,
	})
	return result, nil
}

// NormalizeDates rewrites stored operation dates from the configured source
// layout to the target layout. It runs at most once per layout pair.
func (s *Service) NormalizeDates(ctx context.Context, confirm bool) (NormalizationResult, error) {
	if !s.normalize.Enabled {
		return NormalizationResult{}, errs.ErrNormalizationDisabled
	}
	if !confirm {
		return NormalizationResult{}, errs.ErrConfirmationRequired
	}

	flag := s.normalize.FlagName()
	result := NormalizationResult{Flag: flag}

	err := s.withinTransaction(ctx, "normalize dates", func(txCtx context.Context) error {
		flags := s.uow.GetMaintenanceFlagRepository(txCtx)
		applied, err := flags.IsSet(txCtx, flag)
		if err != nil {
			return err
		}
		if applied {
			return errs.ErrNormalizationAlreadyApplied
		}

		repo := s.uow.GetTransactionRecordRepository(txCtx)
		records, err := repo.LoadAll(txCtx)
		if err != nil {
			return err
		}

		for _, r := range records {
			converted, ok := entity.ConvertDateLayout(r.OperationDate, s.normalize.FromLayout, s.normalize.ToLayout)
			if !ok {
				if _, already := entity.ConvertDateLayout(r.OperationDate, s.normalize.ToLayout, s.normalize.ToLayout); already {
					result.Unchanged++
				} else {
					result.Unparseable++
				}
				continue
			}
			if converted == r.OperationDate {
				result.Unchanged++
				continue
			}
			if err := repo.UpdateOperationDate(txCtx, r.ID, converted); err != nil {
				return fmt.Errorf("row %d: %w", r.ID, err)
			}
			result.Converted++
		}

		return flags.Set(txCtx, flag, s.timeProvider.Now())
	})
	if err != nil {
		s.logger.Error("Date normalization failed", map[string]any{
			"flag":  flag,
			"error": err.Error(),
		})
		return NormalizationResult{}, err
	}

	s.logger.Info("Dates normalized", map[string]any{
		"flag":        flag,
		"converted":   result.Converted,
		"unchanged":   result.Unchanged,
		"unparseable": result.Unparseable,
	})
	return result, nil
}

func (s *Service) withinTransaction(ctx context.Context, operation string, fn func(txCtx context.Context) error) (err error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return errs.NewPersistenceError(operation, err)
	}

	defer func() {
		if err != nil {
			if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
				s.logger.Error("Failed to roll back transaction", map[string]any{
					"operation": operation,
					"error":     rbErr.Error(),
				})
			}
		}
	}()

	if err = fn(txCtx); err != nil {
		if errs.IsClientError(err) {
			return err
		}
		return errs.NewPersistenceError(operation, err)
	}

	if err = s.uow.Commit(txCtx); err != nil {
		return errs.NewPersistenceError(operation, err)
	}
	return nil
}
