package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/announcement7/balance-system-backend/internal/domain/entity"
	errs "github.com/announcement7/balance-system-backend/internal/domain/error"
	coreport "github.com/announcement7/balance-system-backend/internal/domain/port/core"
	"github.com/announcement7/balance-system-backend/internal/domain/port/gateway"
	"github.com/announcement7/balance-system-backend/internal/domain/port/persistence"
)

// InitiationRequest represents the input for initiating a payment
type InitiationRequest struct {
	UserID     string
	Phone      string
	Amount     int64
	Kind       entity.PaymentKind
	LoanAmount int64
}

// InitiationResult is returned to the caller once the push was sent
type InitiationResult struct {
	Reference      string
	Note           string
	GatewayMessage string
	Attempt        *entity.PaymentAttempt
}

// Initiator orchestrates payment initiation: validate, generate the
// reference, call the gateway, and durably record the attempt. The
// attempt is recorded even when the gateway call fails, so a late
// callback for the reference always has a row to reconcile against.
type Initiator struct {
	validator   *InitiationValidator
	refs        *ReferenceGenerator
	gateway     gateway.Client
	paymentRepo persistence.PaymentRepository
	timeProvide coreport.TimeProvider
	logger      coreport.Logger
	publicURL   string
}

// NewInitiator creates a new Initiator. publicURL is the externally
// reachable base URL the gateway posts callbacks to.
func NewInitiator(
	gatewayClient gateway.Client,
	paymentRepo persistence.PaymentRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	publicURL string,
) *Initiator {
	return &Initiator{
		validator:   NewInitiationValidator(),
		refs:        NewReferenceGenerator(timeProvider),
		gateway:     gatewayClient,
		paymentRepo: paymentRepo,
		timeProvide: timeProvider,
		logger:      logger,
		publicURL:   strings.TrimRight(publicURL, "/"),
	}
}

// callbackURLFor returns the webhook URL the gateway should deliver
// the result of this kind of push to
func (i *Initiator) callbackURLFor(kind entity.PaymentKind) string {
	if kind == entity.KindDeposit {
		return i.publicURL + "/deposit-callback"
	}
	return i.publicURL + "/callback"
}

// Initiate validates the request, asks the gateway to push the payment
// prompt, and records the attempt. On gateway acceptance the stored
// status is pending; on decline it is failed; on network failure it is
// error. Only validation failures leave no stored trace.
func (i *Initiator) Initiate(ctx context.Context, req InitiationRequest) (*InitiationResult, error) {
	phone, err := i.validator.Validate(req.UserID, req.Phone, req.Amount, req.Kind)
	if err != nil {
		i.logger.Warn("Payment initiation rejected", map[string]any{
			"user_id": req.UserID,
			"kind":    string(req.Kind),
			"error":   err.Error(),
		})
		return nil, err
	}

	reference := i.refs.Generate(req.Kind)

	attempt, err := entity.NewPaymentAttempt(reference, req.UserID, phone, req.Amount, req.Kind, i.timeProvide)
	if err != nil {
		return nil, err
	}
	attempt.LoanAmount = req.LoanAmount

	i.logger.Info("Initiating push payment", map[string]any{
		"reference": reference,
		"user_id":   req.UserID,
		"phone":     phone,
		"amount":    req.Amount,
		"kind":      string(req.Kind),
	})

	resp, gwErr := i.gateway.InitiatePush(ctx, gateway.PushRequest{
		Kind:        req.Kind,
		Amount:      req.Amount,
		PhoneNumber: phone,
		Reference:   reference,
		CallbackURL: i.callbackURLFor(req.Kind),
	})

	if gwErr != nil {
		return nil, i.recordGatewayFailure(ctx, attempt, gwErr)
	}

	attempt.GatewayTransactionID = resp.TransactionID
	attempt.Note = fmt.Sprintf("STK push sent to %s. Check your phone.", phone)

	if err := i.paymentRepo.Create(ctx, attempt); err != nil {
		i.logger.Error("Failed to persist pending payment attempt", map[string]any{
			"reference": reference,
			"error":     err.Error(),
		})
		return nil, err
	}

	return &InitiationResult{
		Reference:      reference,
		Note:           attempt.Note,
		GatewayMessage: resp.Message,
		Attempt:        attempt,
	}, nil
}

// recordGatewayFailure persists a terminal attempt for a failed
// initiation and passes the gateway error through. The stored row is
// what a later, unexpected callback reconciles against.
func (i *Initiator) recordGatewayFailure(ctx context.Context, attempt *entity.PaymentAttempt, gwErr error) error {
	if errors.Is(gwErr, errs.ErrGatewayRejected) {
		attempt.Status = entity.StatusFailed
		attempt.Note = "Gateway declined the push request."
	} else {
		attempt.Status = entity.StatusError
		attempt.Note = "Failed to initiate STK push: " + gwErr.Error()
	}

	var gatewayErr *errs.GatewayError
	if errors.As(gwErr, &gatewayErr) {
		if raw, marshalErr := json.Marshal(gatewayErr.LogFields()); marshalErr == nil {
			attempt.RawError = raw
		}
	}

	i.logger.Error("Gateway push failed", map[string]any{
		"reference": attempt.Reference,
		"status":    string(attempt.Status),
		"error":     gwErr.Error(),
	})

	if err := i.paymentRepo.Create(ctx, attempt); err != nil {
		// The gateway failure still wins: the caller retries initiation
		// either way, and the missing row only matters if a callback
		// arrives for a push that was never accepted.
		i.logger.Error("Failed to persist failed payment attempt", map[string]any{
			"reference": attempt.Reference,
			"error":     err.Error(),
		})
	}

	return gwErr
}
