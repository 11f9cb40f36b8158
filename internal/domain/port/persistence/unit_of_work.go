package persistence

import (
	"context"
)

// UnitOfWork coordinates the terminal transition, the balance credit
// and the receipt append inside one storage transaction, so a crash
// can never land between the attempt update and its side effects
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetPaymentRepository returns a payment repository bound to the current transaction
	GetPaymentRepository(ctx context.Context) PaymentRepository

	// GetBalanceRepository returns a balance repository bound to the current transaction
	GetBalanceRepository(ctx context.Context) BalanceRepository

	// GetReceiptRepository returns a receipt repository bound to the current transaction
	GetReceiptRepository(ctx context.Context) ReceiptRepository
}
