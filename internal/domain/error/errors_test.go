package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{ErrInvalidPhone, CodeInvalidPhone},
		{ErrInvalidAmount, CodeInvalidAmount},
		{ErrInvalidUserID, CodeInvalidUserID},
		{ErrInvalidPaymentKind, CodeInvalidPaymentKind},
		{ErrInvalidReference, CodeInvalidReference},
		{ErrGatewayRejected, CodeGatewayRejected},
		{ErrReferenceNotFound, CodeReferenceNotFound},
		{ErrUserNotFound, CodeUserNotFound},
		{ErrGatewayUnavailable, CodeGatewayUnavailable},
		{ErrStoreUnavailable, CodeStoreUnavailable},
		{ErrInternalServer, CodeInternalServer},
		{errors.New("anything else"), CodeInternalServer},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.code, ErrorCode(tc.err), "error %v", tc.err)
	}
}

func TestErrorCodeOnWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("query users: %w", ErrStoreUnavailable)
	assert.Equal(t, CodeStoreUnavailable, ErrorCode(wrapped))
}

func TestGatewayError(t *testing.T) {
	t.Run("unavailable wraps retryable sentinel", func(t *testing.T) {
		cause := errors.New("dial tcp: i/o timeout")
		err := NewGatewayUnavailableError("push request failed", cause)

		assert.ErrorIs(t, err, ErrGatewayUnavailable)
		assert.True(t, IsRetryable(err))
		assert.True(t, IsGatewayError(err))
		assert.Contains(t, err.Error(), "push request failed")
	})

	t.Run("rejected wraps terminal sentinel", func(t *testing.T) {
		err := NewGatewayRejectedError(400, "invalid channel", `{"success":false}`)

		assert.ErrorIs(t, err, ErrGatewayRejected)
		assert.False(t, IsRetryable(err))
		assert.True(t, IsGatewayError(err))

		var gwErr *GatewayError
		require.ErrorAs(t, err, &gwErr)
		assert.Equal(t, 400, gwErr.StatusCode)
		assert.Equal(t, `{"success":false}`, gwErr.Body)
	})

	t.Run("log fields carry the response detail", func(t *testing.T) {
		err := NewGatewayRejectedError(403, "forbidden", "body")

		var gwErr *GatewayError
		require.ErrorAs(t, err, &gwErr)

		fields := gwErr.LogFields()
		assert.Equal(t, "gateway_error", fields["error_type"])
		assert.Equal(t, 403, fields["status_code"])
		assert.Equal(t, CodeGatewayRejected, fields["error_code"])
	})
}

func TestReconcileError(t *testing.T) {
	err := NewReconcileError("DEPOSIT-1-ABC", "success", ErrStoreUnavailable)

	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.True(t, IsRetryable(err))
	assert.Contains(t, err.Error(), "DEPOSIT-1-ABC")

	var rcErr *ReconcileError
	require.ErrorAs(t, err, &rcErr)
	assert.Equal(t, "success", rcErr.Status)
	assert.Equal(t, CodeStoreUnavailable, rcErr.LogFields()["error_code"])
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsReferenceNotFoundError(fmt.Errorf("lookup: %w", ErrReferenceNotFound)))
	assert.False(t, IsReferenceNotFoundError(ErrUserNotFound))

	for _, err := range []error{
		ErrInvalidPhone, ErrInvalidAmount, ErrInvalidUserID,
		ErrInvalidPaymentKind, ErrInvalidReference,
	} {
		assert.True(t, IsValidationError(err), "error %v", err)
	}
	assert.False(t, IsValidationError(ErrStoreUnavailable))

	// Unknown references never resolve by redelivery.
	assert.False(t, IsRetryable(ErrReferenceNotFound))
}
