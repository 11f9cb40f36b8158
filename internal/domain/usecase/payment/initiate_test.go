package payment

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/announcement7/balance-system-backend/internal/domain/entity"
	errs "github.com/announcement7/balance-system-backend/internal/domain/error"
	gatewayport "github.com/announcement7/balance-system-backend/internal/domain/port/gateway"
	coremocks "github.com/announcement7/balance-system-backend/mocks/port/core"
	gatewaymocks "github.com/announcement7/balance-system-backend/mocks/port/gateway"
	persistencemocks "github.com/announcement7/balance-system-backend/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func newFixedTimeProvider(t *testing.T) *coremocks.MockTimeProvider {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	return mockTime
}

func newQuietLogger(t *testing.T) *coremocks.MockLogger {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

func TestInitiate(t *testing.T) {
	ctx := context.Background()
	const publicURL = "https://backend.example.com"

	t.Run("accepted deposit is stored pending", func(t *testing.T) {
		mockGateway := gatewaymocks.NewMockClient(t)
		mockRepo := persistencemocks.NewMockPaymentRepository(t)

		mockGateway.EXPECT().InitiatePush(mock.Anything, mock.MatchedBy(func(req gatewayport.PushRequest) bool {
			return req.Kind == entity.KindDeposit &&
				req.PhoneNumber == "254712345678" &&
				req.Amount == 500 &&
				strings.HasPrefix(req.Reference, "DEPOSIT-") &&
				req.CallbackURL == publicURL+"/deposit-callback"
		})).Return(&gatewayport.PushResponse{
			Success:       true,
			TransactionID: "TX-1",
			Message:       "STK initiated",
		}, nil).Once()

		var stored *entity.PaymentAttempt
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, attempt *entity.PaymentAttempt) {
			stored = attempt
		}).Return(nil).Once()

		initiator := NewInitiator(mockGateway, mockRepo, newFixedTimeProvider(t), newQuietLogger(t), publicURL)

		result, err := initiator.Initiate(ctx, InitiationRequest{
			UserID: "user-1",
			Phone:  "0712345678",
			Amount: 500,
			Kind:   entity.KindDeposit,
		})

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, entity.StatusPending, stored.Status)
		assert.Equal(t, "TX-1", stored.GatewayTransactionID)
		assert.Equal(t, result.Reference, stored.Reference)
		assert.Contains(t, result.Note, "STK push sent")
		assert.Equal(t, "STK initiated", result.GatewayMessage)
	})

	t.Run("loan fee callback goes to the loan webhook", func(t *testing.T) {
		mockGateway := gatewaymocks.NewMockClient(t)
		mockRepo := persistencemocks.NewMockPaymentRepository(t)

		mockGateway.EXPECT().InitiatePush(mock.Anything, mock.MatchedBy(func(req gatewayport.PushRequest) bool {
			return strings.HasPrefix(req.Reference, "ORDER-") &&
				req.CallbackURL == publicURL+"/callback"
		})).Return(&gatewayport.PushResponse{Success: true}, nil).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		initiator := NewInitiator(mockGateway, mockRepo, newFixedTimeProvider(t), newQuietLogger(t), publicURL)

		_, err := initiator.Initiate(ctx, InitiationRequest{
			Phone:      "0712345678",
			Amount:     300,
			Kind:       entity.KindLoanFee,
			LoanAmount: 50000,
		})
		require.NoError(t, err)
	})

	t.Run("gateway decline is stored as failed", func(t *testing.T) {
		mockGateway := gatewaymocks.NewMockClient(t)
		mockRepo := persistencemocks.NewMockPaymentRepository(t)

		gwErr := errs.NewGatewayRejectedError(400, "invalid account", `{"success":false}`)
		mockGateway.EXPECT().InitiatePush(mock.Anything, mock.Anything).Return(nil, gwErr).Once()

		var stored *entity.PaymentAttempt
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, attempt *entity.PaymentAttempt) {
			stored = attempt
		}).Return(nil).Once()

		initiator := NewInitiator(mockGateway, mockRepo, newFixedTimeProvider(t), newQuietLogger(t), publicURL)

		_, err := initiator.Initiate(ctx, InitiationRequest{
			UserID: "user-1",
			Phone:  "0712345678",
			Amount: 500,
			Kind:   entity.KindDeposit,
		})

		assert.ErrorIs(t, err, errs.ErrGatewayRejected)
		require.NotNil(t, stored)
		assert.Equal(t, entity.StatusFailed, stored.Status)
		assert.Equal(t, "Gateway declined the push request.", stored.Note)
	})

	t.Run("gateway outage is stored as error with raw detail", func(t *testing.T) {
		mockGateway := gatewaymocks.NewMockClient(t)
		mockRepo := persistencemocks.NewMockPaymentRepository(t)

		gwErr := errs.NewGatewayUnavailableError("push request failed", errors.New("dial tcp: timeout"))
		mockGateway.EXPECT().InitiatePush(mock.Anything, mock.Anything).Return(nil, gwErr).Once()

		var stored *entity.PaymentAttempt
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(_ context.Context, attempt *entity.PaymentAttempt) {
			stored = attempt
		}).Return(nil).Once()

		initiator := NewInitiator(mockGateway, mockRepo, newFixedTimeProvider(t), newQuietLogger(t), publicURL)

		_, err := initiator.Initiate(ctx, InitiationRequest{
			UserID: "user-1",
			Phone:  "0712345678",
			Amount: 500,
			Kind:   entity.KindDeposit,
		})

		assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
		require.NotNil(t, stored)
		assert.Equal(t, entity.StatusError, stored.Status)
		assert.Contains(t, stored.Note, "Failed to initiate STK push")
		assert.NotEmpty(t, stored.RawError)
	})

	t.Run("persisting the attempt still fails the call on gateway error", func(t *testing.T) {
		mockGateway := gatewaymocks.NewMockClient(t)
		mockRepo := persistencemocks.NewMockPaymentRepository(t)

		gwErr := errs.NewGatewayUnavailableError("push request failed", errors.New("timeout"))
		mockGateway.EXPECT().InitiatePush(mock.Anything, mock.Anything).Return(nil, gwErr).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrStoreUnavailable).Once()

		initiator := NewInitiator(mockGateway, mockRepo, newFixedTimeProvider(t), newQuietLogger(t), publicURL)

		_, err := initiator.Initiate(ctx, InitiationRequest{
			UserID: "user-1",
			Phone:  "0712345678",
			Amount: 500,
			Kind:   entity.KindDeposit,
		})

		// The gateway failure is what the caller needs to know about.
		assert.ErrorIs(t, err, errs.ErrGatewayUnavailable)
	})

	t.Run("validation failure leaves no trace", func(t *testing.T) {
		mockGateway := gatewaymocks.NewMockClient(t)
		mockRepo := persistencemocks.NewMockPaymentRepository(t)

		initiator := NewInitiator(mockGateway, mockRepo, newFixedTimeProvider(t), newQuietLogger(t), publicURL)

		_, err := initiator.Initiate(ctx, InitiationRequest{
			UserID: "user-1",
			Phone:  "bad",
			Amount: 500,
			Kind:   entity.KindDeposit,
		})

		assert.ErrorIs(t, err, errs.ErrInvalidPhone)
		mockGateway.AssertNotCalled(t, "InitiatePush")
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestServiceInitiate(t *testing.T) {
	ctx := context.Background()

	newService := func(t *testing.T, gw *gatewaymocks.MockClient, repo *persistencemocks.MockPaymentRepository) *Service {
		return NewService(gw, repo, newFixedTimeProvider(t), newQuietLogger(t), "https://backend.example.com")
	}

	t.Run("success maps to 200", func(t *testing.T) {
		mockGateway := gatewaymocks.NewMockClient(t)
		mockRepo := persistencemocks.NewMockPaymentRepository(t)

		mockGateway.EXPECT().InitiatePush(mock.Anything, mock.Anything).
			Return(&gatewayport.PushResponse{Success: true, Message: "ok"}, nil).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		resp, err := newService(t, mockGateway, mockRepo).Initiate(ctx, InitiationRequest{
			UserID: "user-1", Phone: "0712345678", Amount: 100, Kind: entity.KindDeposit,
		})

		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Reference)
	})

	t.Run("validation maps to 400", func(t *testing.T) {
		mockGateway := gatewaymocks.NewMockClient(t)
		mockRepo := persistencemocks.NewMockPaymentRepository(t)

		resp, err := newService(t, mockGateway, mockRepo).Initiate(ctx, InitiationRequest{
			UserID: "user-1", Phone: "0712345678", Amount: 0, Kind: entity.KindDeposit,
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("gateway outage maps to 502 with a generic message", func(t *testing.T) {
		mockGateway := gatewaymocks.NewMockClient(t)
		mockRepo := persistencemocks.NewMockPaymentRepository(t)

		gwErr := errs.NewGatewayUnavailableError("push request failed", errors.New("timeout"))
		mockGateway.EXPECT().InitiatePush(mock.Anything, mock.Anything).Return(nil, gwErr).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		resp, err := newService(t, mockGateway, mockRepo).Initiate(ctx, InitiationRequest{
			UserID: "user-1", Phone: "0712345678", Amount: 100, Kind: entity.KindDeposit,
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		assert.Equal(t, "Payment initiation failed. Please try again.", resp.ErrorMessage)
	})

	t.Run("gateway decline maps to 400", func(t *testing.T) {
		mockGateway := gatewaymocks.NewMockClient(t)
		mockRepo := persistencemocks.NewMockPaymentRepository(t)

		gwErr := errs.NewGatewayRejectedError(400, "declined", "")
		mockGateway.EXPECT().InitiatePush(mock.Anything, mock.Anything).Return(nil, gwErr).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		resp, err := newService(t, mockGateway, mockRepo).Initiate(ctx, InitiationRequest{
			UserID: "user-1", Phone: "0712345678", Amount: 100, Kind: entity.KindDeposit,
		})

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Payment request was declined.", resp.ErrorMessage)
	})
}

func TestServiceGetAttempt(t *testing.T) {
	ctx := context.Background()

	t.Run("empty reference", func(t *testing.T) {
		mockGateway := gatewaymocks.NewMockClient(t)
		mockRepo := persistencemocks.NewMockPaymentRepository(t)
		service := NewService(mockGateway, mockRepo, newFixedTimeProvider(t), newQuietLogger(t), "https://backend.example.com")

		_, err := service.GetAttempt(ctx, "")
		assert.ErrorIs(t, err, errs.ErrInvalidReference)
	})

	t.Run("found", func(t *testing.T) {
		mockGateway := gatewaymocks.NewMockClient(t)
		mockRepo := persistencemocks.NewMockPaymentRepository(t)
		mockRepo.EXPECT().GetByReference(mock.Anything, "DEPOSIT-1-A").
			Return(&entity.PaymentAttempt{Reference: "DEPOSIT-1-A", Status: entity.StatusSuccess}, nil).Once()

		service := NewService(mockGateway, mockRepo, newFixedTimeProvider(t), newQuietLogger(t), "https://backend.example.com")

		attempt, err := service.GetAttempt(ctx, "DEPOSIT-1-A")
		require.NoError(t, err)
		assert.Equal(t, entity.StatusSuccess, attempt.Status)
	})
}
