package reconcile

import (
	"context"
	"errors"
	"time"

	"github.com/announcement7/balance-system-backend/internal/domain/entity"
	errs "github.com/announcement7/balance-system-backend/internal/domain/error"
	coreport "github.com/announcement7/balance-system-backend/internal/domain/port/core"
	"github.com/announcement7/balance-system-backend/internal/domain/port/persistence"
)

// Callback is the reconciler's view of one gateway webhook delivery
type Callback struct {
	ExternalReference string
	Result            entity.CallbackResult
	RawPayload        []byte
}

// Result describes what a reconcile call did. Duplicate deliveries are
// acknowledged without any write; Applied is false for them.
type Result struct {
	Reference string
	Status    entity.PaymentStatus
	Applied   bool
	Credited  bool
	Balance   *entity.UserBalance
}

// Reconciler is the callback state machine. It is the only writer of
// terminal payment statuses and of balance credits.
type Reconciler struct {
	uow          persistence.UnitOfWork
	paymentRepo  persistence.PaymentRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger

	lookupAttempts int
	lookupDelay    time.Duration
}

// NewReconciler creates a new Reconciler
func NewReconciler(
	uow persistence.UnitOfWork,
	paymentRepo persistence.PaymentRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Reconciler {
	return &Reconciler{
		uow:            uow,
		paymentRepo:    paymentRepo,
		timeProvider:   timeProvider,
		logger:         logger,
		lookupAttempts: 3,
		lookupDelay:    150 * time.Millisecond,
	}
}

// WithLookupRetry overrides the bounded retry used when a callback
// arrives before the initiation write is durable
func (r *Reconciler) WithLookupRetry(attempts int, delay time.Duration) *Reconciler {
	if attempts > 0 {
		r.lookupAttempts = attempts
	}
	r.lookupDelay = delay
	return r
}

// Reconcile applies one gateway callback to the payment record store.
//
// The stored attempt's status is the synchronization point: the
// terminal update is conditioned on it still being pending, and the
// balance credit plus receipt ride in the same storage transaction.
// Whichever concurrent delivery loses the condition becomes a no-op
// duplicate and is still acknowledged, so gateway retries converge
// instead of storming.
func (r *Reconciler) Reconcile(ctx context.Context, cb Callback) (*Result, error) {
	if cb.ExternalReference == "" {
		return nil, errs.ErrInvalidReference
	}

	attempt, err := r.lookupWithRetry(ctx, cb.ExternalReference)
	if err != nil {
		return nil, err
	}

	outcome := entity.ResolveOutcome(cb.Result)

	// Idempotency gate: a terminal attempt is already reconciled.
	if attempt.IsTerminal() {
		r.logger.Info("Duplicate callback ignored", map[string]any{
			"reference":       attempt.Reference,
			"stored_status":   string(attempt.Status),
			"callback_status": string(outcome.Status),
		})
		return &Result{
			Reference: attempt.Reference,
			Status:    attempt.Status,
			Applied:   false,
		}, nil
	}

	result, err := r.applyTerminal(ctx, attempt, outcome, cb)
	if err != nil {
		return nil, errs.NewReconcileError(attempt.Reference, string(outcome.Status), err)
	}
	return result, nil
}

// lookupWithRetry absorbs the callback-before-durable-pending race
// with a short bounded retry before giving up with ReferenceNotFound
func (r *Reconciler) lookupWithRetry(ctx context.Context, reference string) (*entity.PaymentAttempt, error) {
	var lastErr error
	for attempt := 0; attempt < r.lookupAttempts; attempt++ {
		if attempt > 0 {
			r.timeProvider.Sleep(r.lookupDelay)
		}

		record, err := r.paymentRepo.GetByReference(ctx, reference)
		if err == nil {
			return record, nil
		}
		lastErr = err
		if !errors.Is(err, errs.ErrReferenceNotFound) {
			return nil, err
		}

		r.logger.Warn("Callback for unknown reference, retrying lookup", map[string]any{
			"reference": reference,
			"attempt":   attempt + 1,
			"of":        r.lookupAttempts,
		})
	}

	r.logger.Warn("Callback reference not found", map[string]any{
		"reference": reference,
	})
	return nil, lastErr
}

// applyTerminal performs the conditional terminal transition and, on
// success, the balance credit and receipt append, all in one unit of work
func (r *Reconciler) applyTerminal(ctx context.Context, attempt *entity.PaymentAttempt, outcome entity.Outcome, cb Callback) (*Result, error) {
	txCtx, err := r.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			if rbErr := r.uow.Rollback(txCtx); rbErr != nil {
				r.logger.Error("Rollback failed after reconcile error", map[string]any{
					"reference": attempt.Reference,
					"error":     rbErr.Error(),
				})
			}
		}
	}()

	payments := r.uow.GetPaymentRepository(txCtx)

	applied, err := payments.ApplyTerminal(txCtx, attempt.Reference, persistence.TerminalUpdate{
		Status:             outcome.Status,
		Note:               outcome.Note,
		GatewayReceiptCode: cb.Result.ReceiptCode,
		ResultCode:         cb.Result.ResultCode,
		RawCallback:        cb.RawPayload,
	})
	if err != nil {
		return nil, err
	}

	if !applied {
		// A concurrent reconcile won the compare-and-swap. Treat this
		// delivery as the duplicate it now is.
		if err := r.uow.Rollback(txCtx); err != nil {
			r.logger.Error("Rollback failed on duplicate path", map[string]any{
				"reference": attempt.Reference,
				"error":     err.Error(),
			})
		}
		committed = true // nothing left to roll back in the deferred handler

		stored, err := r.paymentRepo.GetByReference(ctx, attempt.Reference)
		if err != nil {
			return nil, err
		}
		r.logger.Info("Lost terminal-update race, treating callback as duplicate", map[string]any{
			"reference":     attempt.Reference,
			"stored_status": string(stored.Status),
		})
		return &Result{Reference: attempt.Reference, Status: stored.Status, Applied: false}, nil
	}

	result := &Result{
		Reference: attempt.Reference,
		Status:    outcome.Status,
		Applied:   true,
	}

	if outcome.Status == entity.StatusSuccess && attempt.CreditsBalance() {
		// The credited amount is the locally stored one. The callback's
		// own amount field is audit data, not an instruction.
		balances := r.uow.GetBalanceRepository(txCtx)
		balance, err := balances.Credit(txCtx, attempt.UserID, attempt.Amount, attempt.Reference)
		if err != nil {
			return nil, err
		}
		result.Credited = true
		result.Balance = balance
	}

	receipts := r.uow.GetReceiptRepository(txCtx)
	receipt := entity.NewReceiptEntry(attempt, outcome, cb.Result.ReceiptCode, r.timeProvider.Now())
	if err := receipts.Append(txCtx, receipt); err != nil {
		return nil, err
	}

	if err := r.uow.Commit(txCtx); err != nil {
		return nil, err
	}
	committed = true

	r.logger.Info("Payment reconciled", map[string]any{
		"reference": attempt.Reference,
		"status":    string(outcome.Status),
		"credited":  result.Credited,
		"user_id":   attempt.UserID,
		"amount":    attempt.Amount,
	})

	return result, nil
}
