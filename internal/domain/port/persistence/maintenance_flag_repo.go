package persistence

import (
	"context"
	"time"
)

// MaintenanceFlagRepository persists one-shot markers for maintenance operations
// that must never run twice on the same data
type MaintenanceFlagRepository interface {
	// IsSet reports whether the named flag was already written
	IsSet(ctx context.Context, name string) (bool, error)

	// Set writes the named flag
	//
	// Possible errors:
	// - ErrNormalizationAlreadyApplied: If the flag already exists
	// - ErrPersistence: If the write fails
	Set(ctx context.Context, name string, at time.Time) error
}
