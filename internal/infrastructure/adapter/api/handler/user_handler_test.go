package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	paymentUseCase "github.com/announcement7/balance-system-backend/internal/domain/usecase/payment"
	walletUseCase "github.com/announcement7/balance-system-backend/internal/domain/usecase/wallet"
	gatewaymocks "github.com/announcement7/balance-system-backend/mocks/port/gateway"
	persistencemocks "github.com/announcement7/balance-system-backend/mocks/port/persistence"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	mockTime := newFixedTimeProvider(t)
	mockLogger := newQuietLogger(t)

	paymentRepo := persistencemocks.NewMockPaymentRepository(t)
	balanceRepo := persistencemocks.NewMockBalanceRepository(t)
	receiptRepo := persistencemocks.NewMockReceiptRepository(t)
	gatewayClient := gatewaymocks.NewMockClient(t)

	walletService := walletUseCase.NewUseCase(balanceRepo, paymentRepo, receiptRepo, mockLogger)
	paymentService := paymentUseCase.NewService(gatewayClient, paymentRepo, mockTime, mockLogger, "https://backend.example.com")

	handler := NewUserHandler(walletService, paymentService, mockTime, mockLogger)

	router := gin.New()
	router.GET("/", handler.Health)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "2024-06-01T10:00:00Z", body["ts"])
}
