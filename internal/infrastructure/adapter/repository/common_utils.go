package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	TransientError    ErrorType = "transient"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
)

// classRule matches driver messages for one error type. Rules are tried in
// order, so a unique violation wins over the generic constraint rule.
type classRule struct {
	errType ErrorType
	markers []string
}

var classRules = []classRule{
	{DuplicateKeyError, []string{"duplicate key", "UNIQUE constraint failed", "SQLSTATE 23505"}},
	{LockError, []string{"deadlock", "database is locked", "database table is locked", "SQLITE_BUSY", "could not serialize access", "serialization failure"}},
	{TransientError, []string{"connection reset", "timeout", "EOF", "server closed", "broken pipe"}},
	{ConnectionError, []string{"connection", "dial", "network", "unable to open database"}},
	{ConstraintError, []string{"constraint", "violates", "foreign key", "not null", "NOT NULL"}},
}

// ErrorClassifier sorts sqlite and postgres errors into coarse types for
// logging and duplicate detection
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error, empty when nothing matches
func (c *ErrorClassifier) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return DuplicateKeyError
	}

	msg := err.Error()
	for _, rule := range classRules {
		for _, marker := range rule.markers {
			if strings.Contains(msg, marker) {
				return rule.errType
			}
		}
	}
	return ""
}

// IsDuplicateKeyError reports a unique constraint violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	return c.Classify(err) == DuplicateKeyError
}
