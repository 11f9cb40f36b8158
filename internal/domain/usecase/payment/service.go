package payment

import (
	"context"
	"net/http"

	"github.com/announcement7/balance-system-backend/internal/domain/entity"
	errs "github.com/announcement7/balance-system-backend/internal/domain/error"
	coreport "github.com/announcement7/balance-system-backend/internal/domain/port/core"
	"github.com/announcement7/balance-system-backend/internal/domain/port/gateway"
	"github.com/announcement7/balance-system-backend/internal/domain/port/persistence"
)

// InitiationResponse represents the response after an initiation
// attempt, with the HTTP status the API layer should answer with
type InitiationResponse struct {
	Success        bool
	Reference      string
	Note           string
	GatewayMessage string
	ErrorMessage   string
	StatusCode     int
}

// Service ties initiation together and maps domain errors to transport
// status codes, keeping the handlers thin
type Service struct {
	initiator   *Initiator
	paymentRepo persistence.PaymentRepository
	logger      coreport.Logger
}

// NewService creates a new payment service
func NewService(
	gatewayClient gateway.Client,
	paymentRepo persistence.PaymentRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	publicURL string,
) *Service {
	return &Service{
		initiator:   NewInitiator(gatewayClient, paymentRepo, timeProvider, logger, publicURL),
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// Initiate processes an initiation request and returns an appropriate response
func (s *Service) Initiate(ctx context.Context, req InitiationRequest) (*InitiationResponse, error) {
	result, err := s.initiator.Initiate(ctx, req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		errorMessage := err.Error()

		switch {
		case errs.IsValidationError(err):
			statusCode = http.StatusBadRequest

		case errs.IsGatewayError(err):
			// The caller gets a generic retry signal; the detail is in
			// the stored attempt and the logs.
			if errs.IsRetryable(err) {
				statusCode = http.StatusBadGateway
				errorMessage = "Payment initiation failed. Please try again."
			} else {
				statusCode = http.StatusBadRequest
				errorMessage = "Payment request was declined."
			}

		case errs.IsRetryable(err):
			statusCode = http.StatusServiceUnavailable
			errorMessage = "Service temporarily unavailable. Please try again."
		}

		return &InitiationResponse{
			Success:      false,
			ErrorMessage: errorMessage,
			StatusCode:   statusCode,
		}, err
	}

	return &InitiationResponse{
		Success:        true,
		Reference:      result.Reference,
		Note:           result.Note,
		GatewayMessage: result.GatewayMessage,
		StatusCode:     http.StatusOK,
	}, nil
}

// GetAttempt fetches a single payment attempt by reference
func (s *Service) GetAttempt(ctx context.Context, reference string) (*entity.PaymentAttempt, error) {
	if reference == "" {
		return nil, errs.ErrInvalidReference
	}
	return s.paymentRepo.GetByReference(ctx, reference)
}
