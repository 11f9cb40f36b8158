package persistence

import (
	"context"

	"github.com/announcement7/balance-system-backend/internal/domain/entity"
)

// ReceiptRepository defines the append-only receipt log
type ReceiptRepository interface {
	// Append stores one receipt entry. Entries are never updated.
	//
	// Possible errors:
	// - ErrStoreUnavailable: if the store cannot be reached
	Append(ctx context.Context, receipt *entity.ReceiptEntry) error

	// ListByUser returns the user's receipts, newest first, capped at limit
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.ReceiptEntry, error)

	// GetByReference returns the receipts recorded for a reference
	GetByReference(ctx context.Context, reference string) ([]*entity.ReceiptEntry, error)
}
