package persistence

import (
	"context"

	"github.com/announcement7/balance-system-backend/internal/domain/entity"
)

// BalanceRepository defines the per-user balance ledger. Credit is the
// only mutation exposed to the reconciler; there is deliberately no
// raw "set balance" operation outside the sweep repair path.
type BalanceRepository interface {
	// Credit atomically increments the user's balance by amount,
	// creating the balance row on first credit. reference records the
	// attempt that earned the credit. Safe under concurrent credits for
	// the same user.
	//
	// Possible errors:
	// - ErrStoreUnavailable: if the store cannot be reached
	Credit(ctx context.Context, userID string, amount int64, reference string) (*entity.UserBalance, error)

	// GetByUserID retrieves a user's balance record
	//
	// Possible errors:
	// - ErrUserNotFound: if the user has never been credited
	// - ErrStoreUnavailable: if the store cannot be reached
	GetByUserID(ctx context.Context, userID string) (*entity.UserBalance, error)

	// Repair overwrites a drifted balance with the recomputed value.
	// Only the reconciliation sweep calls this.
	Repair(ctx context.Context, userID string, balance int64) error
}
