package wallet

import (
	"context"
	"errors"

	"github.com/announcement7/balance-system-backend/internal/domain/entity"
	errs "github.com/announcement7/balance-system-backend/internal/domain/error"
	coreport "github.com/announcement7/balance-system-backend/internal/domain/port/core"
	"github.com/announcement7/balance-system-backend/internal/domain/port/persistence"
)

// DefaultStatementLimit caps the number of statement rows returned in
// one page
const DefaultStatementLimit = 200

// Statement is a user's balance plus a bounded, newest-first page of
// their payment history and receipts
type Statement struct {
	UserID       string
	Balance      int64
	Transactions []*entity.PaymentAttempt
	Receipts     []*entity.ReceiptEntry
}

// UseCase provides the read-only wallet queries
type UseCase struct {
	balanceRepo persistence.BalanceRepository
	paymentRepo persistence.PaymentRepository
	receiptRepo persistence.ReceiptRepository
	logger      coreport.Logger
}

// NewUseCase creates a new wallet use case
func NewUseCase(
	balanceRepo persistence.BalanceRepository,
	paymentRepo persistence.PaymentRepository,
	receiptRepo persistence.ReceiptRepository,
	logger coreport.Logger,
) *UseCase {
	return &UseCase{
		balanceRepo: balanceRepo,
		paymentRepo: paymentRepo,
		receiptRepo: receiptRepo,
		logger:      logger,
	}
}

// GetBalance returns the user's current balance. Users with no credit
// history have a zero balance rather than an error, matching the
// behavior callers already rely on.
func (u *UseCase) GetBalance(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, errs.ErrInvalidUserID
	}

	balance, err := u.balanceRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return balance.Balance, nil
}

// GetStatement returns the balance together with a bounded page of the
// user's payment attempts and receipts, newest first
func (u *UseCase) GetStatement(ctx context.Context, userID string, limit int) (*Statement, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if limit <= 0 || limit > DefaultStatementLimit {
		limit = DefaultStatementLimit
	}

	balance, err := u.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	transactions, err := u.paymentRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	receipts, err := u.receiptRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	return &Statement{
		UserID:       userID,
		Balance:      balance,
		Transactions: transactions,
		Receipts:     receipts,
	}, nil
}
