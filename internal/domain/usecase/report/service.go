package report

import (
	"context"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/statement-processor/internal/domain/error"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/usecase/reconciliation"
)

// Service answers read-only queries over the whole store
type Service struct {
	records persistence.TransactionRecordRepository
}

// NewService creates a report service
func NewService(uow persistence.UnitOfWork) *Service {
	return &Service{records: uow.GetTransactionRecordRepository(context.Background())}
}

// AllRecords returns every stored record in display order
func (s *Service) AllRecords(ctx context.Context, cardholder string) ([]entity.TransactionRecord, error) {
	records, err := s.records.LoadAll(ctx)
	if err != nil {
		return nil, errs.NewPersistenceError("load all records", err)
	}
	records = FilterByCardholder(records, cardholder)
	reconciliation.SortRecords(records)
	return records, nil
}

// MonthlySpend aggregates stored operation amounts per month
func (s *Service) MonthlySpend(ctx context.Context, cardholder string) ([]MonthlySpend, error) {
	records, err := s.AllRecords(ctx, cardholder)
	if err != nil {
		return nil, err
	}
	return MonthlyTotals(records), nil
}

// TopDescriptions ranks stored descriptions by summed operation amount
func (s *Service) TopDescriptions(ctx context.Context, cardholder string, limit int) ([]DescriptionSpend, error) {
	records, err := s.AllRecords(ctx, cardholder)
	if err != nil {
		return nil, err
	}
	return TopDescriptions(records, limit), nil
}
