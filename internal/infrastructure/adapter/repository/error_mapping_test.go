package repository

import (
	"errors"
	"testing"

	errs "github.com/announcement7/balance-system-backend/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapCreditError(t *testing.T) {
	t.Run("concurrent first credit insert collision is retryable", func(t *testing.T) {
		driverErr := errors.New(`duplicate key value violates unique constraint "user_balances_pkey"`)

		err := mapCreditError(driverErr, "user-1")

		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
		assert.True(t, errs.IsRetryable(err))
		assert.False(t, errs.IsValidationError(err))
		assert.Contains(t, err.Error(), "user-1")
	})

	t.Run("gorm duplicated key sentinel is retryable", func(t *testing.T) {
		err := mapCreditError(gorm.ErrDuplicatedKey, "user-2")

		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
		assert.True(t, errs.IsRetryable(err))
	})

	t.Run("other write failures keep the store classification", func(t *testing.T) {
		err := mapCreditError(errors.New("connection refused"), "user-3")

		assert.ErrorIs(t, err, errs.ErrStoreUnavailable)
		assert.True(t, errs.IsRetryable(err))
	})
}

func TestMapStoreError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		want      error
		retryable bool
	}{
		{
			name:      "duplicate reference on create",
			err:       errors.New(`duplicate key value violates unique constraint "idx_payment_attempts_reference"`),
			want:      errs.ErrInvalidReference,
			retryable: false,
		},
		{
			name:      "deadlock",
			err:       errors.New("deadlock detected"),
			want:      errs.ErrStoreUnavailable,
			retryable: true,
		},
		{
			name:      "statement timeout",
			err:       errors.New("canceling statement due to statement timeout"),
			want:      errs.ErrStoreUnavailable,
			retryable: true,
		},
		{
			name:      "connection failure",
			err:       errors.New("dial tcp 127.0.0.1:5432: connection refused"),
			want:      errs.ErrStoreUnavailable,
			retryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapStoreError(tt.err, "test operation")

			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.retryable, errs.IsRetryable(err))
		})
	}

	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, mapStoreError(nil, "noop"))
	})
}
