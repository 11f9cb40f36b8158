package reconcile

import (
	"context"
	"errors"

	errs "github.com/announcement7/balance-system-backend/internal/domain/error"
	coreport "github.com/announcement7/balance-system-backend/internal/domain/port/core"
	"github.com/announcement7/balance-system-backend/internal/domain/port/persistence"
)

// SweepReport summarizes one balance reconciliation sweep
type SweepReport struct {
	UsersChecked int
	Repaired     int
}

// Sweeper recomputes user balances from the sum of successful payment
// attempts and repairs drift. The credit normally rides in the same
// transaction as the terminal transition, so drift only appears after
// operator intervention or historical bugs; the sweep is the recovery
// mechanism, not part of the hot path.
type Sweeper struct {
	paymentRepo persistence.PaymentRepository
	balanceRepo persistence.BalanceRepository
	logger      coreport.Logger
}

// NewSweeper creates a new Sweeper
func NewSweeper(
	paymentRepo persistence.PaymentRepository,
	balanceRepo persistence.BalanceRepository,
	logger coreport.Logger,
) *Sweeper {
	return &Sweeper{
		paymentRepo: paymentRepo,
		balanceRepo: balanceRepo,
		logger:      logger,
	}
}

// SweepBalances recomputes every credited user's balance and rewrites
// any record that does not equal the sum of their successful attempts
func (s *Sweeper) SweepBalances(ctx context.Context) (*SweepReport, error) {
	sums, err := s.paymentRepo.SumSuccessByUser(ctx)
	if err != nil {
		return nil, err
	}

	report := &SweepReport{}
	for userID, expected := range sums {
		if userID == "" {
			// Loan fee attempts carry no wallet user.
			continue
		}
		report.UsersChecked++

		stored := int64(0)
		balance, err := s.balanceRepo.GetByUserID(ctx, userID)
		switch {
		case err == nil:
			stored = balance.Balance
		case errors.Is(err, errs.ErrUserNotFound):
			// Successful attempts exist but the credit never landed.
		default:
			return nil, err
		}

		if stored == expected {
			continue
		}

		s.logger.Warn("Balance drift detected, repairing", map[string]any{
			"user_id":  userID,
			"stored":   stored,
			"expected": expected,
		})

		if err := s.balanceRepo.Repair(ctx, userID, expected); err != nil {
			return nil, err
		}
		report.Repaired++
	}

	s.logger.Info("Balance sweep complete", map[string]any{
		"users_checked": report.UsersChecked,
		"repaired":      report.Repaired,
	})

	return report, nil
}
