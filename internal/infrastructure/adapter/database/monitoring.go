package database

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/statement-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/port/persistence"
)

// slowQueryThreshold marks a measured operation as slow
const slowQueryThreshold = 100 * time.Millisecond

// QueryMetrics holds metrics about a database operation
type QueryMetrics struct {
	Operation    string
	Duration     time.Duration
	RowsAffected int64
	Failed       bool
	ErrorMessage string
}

// MetricsCollector collects database operation metrics
type MetricsCollector struct {
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger coreport.Logger, timeProvider coreport.TimeProvider) *MetricsCollector {
	return &MetricsCollector{
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// MeasureQuery measures the execution time of a database operation
func (c *MetricsCollector) MeasureQuery(ctx context.Context, operation string, fn func() (int64, error)) (*QueryMetrics, error) {
	start := c.timeProvider.Now()

	rowsAffected, err := fn()

	metrics := &QueryMetrics{
		Operation:    operation,
		Duration:     c.timeProvider.Now().Sub(start),
		RowsAffected: rowsAffected,
		Failed:       err != nil,
	}
	if err != nil {
		metrics.ErrorMessage = err.Error()
	}

	if metrics.Duration > slowQueryThreshold {
		c.logger.Warn("Slow database operation detected", map[string]any{
			"operation":     operation,
			"duration_ms":   metrics.Duration.Milliseconds(),
			"rows_affected": rowsAffected,
			"failed":        metrics.Failed,
			"error_message": metrics.ErrorMessage,
		})
	}

	return metrics, err
}

// measuredRecordRepository times the bulk writes of a record repository
type measuredRecordRepository struct {
	persistence.TransactionRecordRepository
	metrics *MetricsCollector
}

func (r *measuredRecordRepository) Insert(ctx context.Context, records []*entity.TransactionRecord) error {
	_, err := r.metrics.MeasureQuery(ctx, "insert_records", func() (int64, error) {
		if err := r.TransactionRecordRepository.Insert(ctx, records); err != nil {
			return 0, err
		}
		return int64(len(records)), nil
	})
	return err
}

func (r *measuredRecordRepository) Book(ctx context.Context, ids []uint64) (int64, error) {
	var booked int64
	_, err := r.metrics.MeasureQuery(ctx, "book_records", func() (int64, error) {
		var err error
		booked, err = r.TransactionRecordRepository.Book(ctx, ids)
		return booked, err
	})
	return booked, err
}

func (r *measuredRecordRepository) PurgeAll(ctx context.Context) (int64, error) {
	var purged int64
	_, err := r.metrics.MeasureQuery(ctx, "purge_records", func() (int64, error) {
		var err error
		purged, err = r.TransactionRecordRepository.PurgeAll(ctx)
		return purged, err
	})
	return purged, err
}
