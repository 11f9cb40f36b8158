package persistence

import (
	"context"

	"github.com/announcement7/balance-system-backend/internal/domain/entity"
)

// TerminalUpdate describes the one-shot terminal transition applied to
// a pending payment attempt
type TerminalUpdate struct {
	Status             entity.PaymentStatus
	Note               string
	GatewayReceiptCode string
	ResultCode         *int
	RawCallback        []byte // verbatim webhook payload, kept for audit
}

// PaymentRepository defines the keyed store for payment attempts
type PaymentRepository interface {
	// Create saves a new payment attempt
	//
	// Possible errors:
	// - ErrInvalidReference: if the reference collides with an existing attempt
	// - ErrStoreUnavailable: if the store cannot be reached
	Create(ctx context.Context, attempt *entity.PaymentAttempt) error

	// GetByReference retrieves an attempt by its reference
	//
	// Possible errors:
	// - ErrReferenceNotFound: if no attempt exists for the reference
	// - ErrStoreUnavailable: if the store cannot be reached
	GetByReference(ctx context.Context, reference string) (*entity.PaymentAttempt, error)

	// ApplyTerminal conditionally applies a terminal transition to the
	// attempt, guarded by the stored status still being pending. It
	// returns false with a nil error when the guard fails, meaning a
	// concurrent reconcile won the race and this call is a duplicate.
	//
	// Possible errors:
	// - ErrStoreUnavailable: if the store cannot be reached
	ApplyTerminal(ctx context.Context, reference string, update TerminalUpdate) (bool, error)

	// ListByUser returns the user's attempts, newest first, capped at limit
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.PaymentAttempt, error)

	// SumSuccessByUser returns, per user, the sum of amounts over
	// successful attempts. Used by the balance sweep.
	SumSuccessByUser(ctx context.Context) (map[string]int64, error)
}
