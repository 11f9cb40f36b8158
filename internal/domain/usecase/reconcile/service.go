package reconcile

import (
	"context"
	"net/http"
	"time"

	errs "github.com/announcement7/balance-system-backend/internal/domain/error"
	coreport "github.com/announcement7/balance-system-backend/internal/domain/port/core"
	"github.com/announcement7/balance-system-backend/internal/domain/port/persistence"
)

// Ack is the acknowledgment object returned to the gateway. The
// gateway retries delivery on anything but an acknowledged response,
// so duplicates must still be acknowledged.
type Ack struct {
	ResultCode int
	ResultDesc string
}

// Response carries the acknowledgment (or error) plus the HTTP status
// the webhook endpoint should answer with
type Response struct {
	Ack          *Ack
	ErrorMessage string
	StatusCode   int
}

// Service wraps the reconciler for the webhook surface and maps
// outcomes to transport semantics: success and duplicate both ack,
// unknown reference is a terminal 404, store trouble withholds the ack
// so the gateway redelivers.
type Service struct {
	reconciler *Reconciler
	logger     coreport.Logger
}

// NewService creates a new reconcile service
func NewService(
	uow persistence.UnitOfWork,
	paymentRepo persistence.PaymentRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	lookupAttempts int,
	lookupDelay time.Duration,
) *Service {
	reconciler := NewReconciler(uow, paymentRepo, timeProvider, logger).
		WithLookupRetry(lookupAttempts, lookupDelay)
	return &Service{reconciler: reconciler, logger: logger}
}

// HandleCallback reconciles one webhook delivery
func (s *Service) HandleCallback(ctx context.Context, cb Callback) (*Response, error) {
	result, err := s.reconciler.Reconcile(ctx, cb)
	if err != nil {
		statusCode := http.StatusInternalServerError
		message := "Callback handling failed"

		switch {
		case errs.IsReferenceNotFoundError(err):
			statusCode = http.StatusNotFound
			message = "Reference not found"
		case errs.IsValidationError(err):
			statusCode = http.StatusBadRequest
			message = "Invalid callback payload"
		case errs.IsRetryable(err):
			// Withhold the ack; the gateway's retry policy takes over.
			statusCode = http.StatusServiceUnavailable
			message = "Temporarily unable to record callback"
		}

		s.logger.Error("Callback reconciliation failed", map[string]any{
			"reference":   cb.ExternalReference,
			"status_code": statusCode,
			"error":       err.Error(),
		})

		return &Response{ErrorMessage: message, StatusCode: statusCode}, err
	}

	if !result.Applied {
		s.logger.Debug("Acknowledging duplicate callback", map[string]any{
			"reference": result.Reference,
			"status":    string(result.Status),
		})
	}

	return &Response{
		Ack:        &Ack{ResultCode: 0, ResultDesc: "Success"},
		StatusCode: http.StatusOK,
	}, nil
}
