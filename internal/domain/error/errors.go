package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidPhone       = 4001
	CodeInvalidAmount      = 4002
	CodeInvalidUserID      = 4003
	CodeInvalidPaymentKind = 4004
	CodeInvalidReference   = 4005
	CodeGatewayRejected    = 4006
	CodeReferenceNotFound  = 4040
	CodeUserNotFound       = 4041

	// 5xxx - Server / upstream errors
	CodeInternalServer     = 5000
	CodeGatewayUnavailable = 5020
	CodeStoreUnavailable   = 5030
)

// Base error types
var (
	// ErrInvalidPhone is returned when a phone number does not normalize
	// to a valid subscriber number
	ErrInvalidPhone = errors.New("invalid phone number")

	// ErrInvalidAmount is returned when the payment amount is below the minimum
	ErrInvalidAmount = errors.New("amount must be at least 1")

	// ErrInvalidUserID is returned when a deposit request carries no user ID
	ErrInvalidUserID = errors.New("user ID is required")

	// ErrInvalidPaymentKind is returned when the payment kind is not one
	// of the allowed values
	ErrInvalidPaymentKind = errors.New("invalid payment kind")

	// ErrInvalidReference is returned when a payment reference is empty or malformed
	ErrInvalidReference = errors.New("payment reference cannot be empty")

	// ErrGatewayUnavailable is returned when the gateway could not be
	// reached or timed out. Retryable with the same input.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// ErrGatewayRejected is returned when the gateway answered but
	// declined the push request. Not retryable without new input.
	ErrGatewayRejected = errors.New("payment gateway rejected the request")

	// ErrReferenceNotFound is returned when a callback names a reference
	// with no stored attempt. Terminal from the gateway's perspective.
	ErrReferenceNotFound = errors.New("payment reference not found")

	// ErrStoreUnavailable is returned when the record store cannot be
	// reached. Retryable at the boundary.
	ErrStoreUnavailable = errors.New("record store unavailable")

	// ErrUserNotFound is returned when the requested user has no balance record
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidPhone):
		return CodeInvalidPhone
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidPaymentKind):
		return CodeInvalidPaymentKind
	case errors.Is(err, ErrInvalidReference):
		return CodeInvalidReference
	case errors.Is(err, ErrGatewayRejected):
		return CodeGatewayRejected
	case errors.Is(err, ErrReferenceNotFound):
		return CodeReferenceNotFound
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrGatewayUnavailable):
		return CodeGatewayUnavailable
	case errors.Is(err, ErrStoreUnavailable):
		return CodeStoreUnavailable
	default:
		return CodeInternalServer
	}
}

// GatewayError carries the upstream response details of a failed
// gateway call for local persistence and logging
type GatewayError struct {
	StatusCode int
	Message    string
	Body       string
	Err        error
}

// Error implements the error interface for GatewayError
func (e *GatewayError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("gateway error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("gateway error: %s", e.Message)
}

// Unwrap returns the underlying error
func (e *GatewayError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *GatewayError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "gateway_error",
		"status_code": e.StatusCode,
		"message":     e.Message,
		"body":        e.Body,
		"error_code":  ErrorCode(e.Err),
	}
}

// NewGatewayUnavailableError wraps a transport-level gateway failure
func NewGatewayUnavailableError(message string, err error) error {
	return &GatewayError{Message: message, Err: fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)}
}

// NewGatewayRejectedError wraps a gateway decline with the response it sent
func NewGatewayRejectedError(statusCode int, message, body string) error {
	return &GatewayError{StatusCode: statusCode, Message: message, Body: body, Err: ErrGatewayRejected}
}

// ReconcileError carries the context of a failed callback reconciliation
type ReconcileError struct {
	Reference string
	Status    string
	Err       error
}

// Error implements the error interface for ReconcileError
func (e *ReconcileError) Error() string {
	return fmt.Sprintf("reconcile failed for reference %s (intended status: %s): %v",
		e.Reference, e.Status, e.Err)
}

// Unwrap returns the underlying error
func (e *ReconcileError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ReconcileError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "reconcile_error",
		"reference":  e.Reference,
		"status":     e.Status,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewReconcileError creates a detailed reconciliation error
func NewReconcileError(reference, status string, err error) error {
	return &ReconcileError{Reference: reference, Status: status, Err: err}
}

// IsRetryable reports whether the caller should redeliver after this
// error. ReferenceNotFound and validation failures never resolve on
// retry; store and gateway availability errors do.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable) || errors.Is(err, ErrGatewayUnavailable)
}

// IsReferenceNotFoundError checks if the error is a missing reference error
func IsReferenceNotFoundError(err error) bool {
	return errors.Is(err, ErrReferenceNotFound)
}

// IsGatewayError checks if the error came from the payment gateway
func IsGatewayError(err error) bool {
	return errors.Is(err, ErrGatewayUnavailable) || errors.Is(err, ErrGatewayRejected)
}

// IsValidationError checks if the error is a client input validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidPhone) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidPaymentKind) ||
		errors.Is(err, ErrInvalidReference)
}
