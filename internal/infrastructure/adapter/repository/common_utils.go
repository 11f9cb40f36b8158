package repository

import (
	"errors"
	"fmt"
	"strings"

	errs "github.com/announcement7/balance-system-backend/internal/domain/error"
	"gorm.io/gorm"
)

// mapStoreError converts driver-level failures to the domain taxonomy.
// Record-not-found is mapped per entity by the callers.
func mapStoreError(err error, operation string) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())

	switch {
	case isDuplicateKeyError(err):
		return errs.ErrInvalidReference
	case strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "serialization") ||
		strings.Contains(msg, "lock timeout"):
		return fmt.Errorf("%w: lock contention during %s", errs.ErrStoreUnavailable, operation)
	case strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "deadline exceeded"):
		return fmt.Errorf("%w: %s timed out", errs.ErrStoreUnavailable, operation)
	default:
		return fmt.Errorf("%w: %s: %s", errs.ErrStoreUnavailable, operation, err.Error())
	}
}

// isDuplicateKeyError checks if the error is a unique constraint violation
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "unique constraint") ||
		strings.Contains(err.Error(), "UNIQUE constraint")
}
