package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/announcement7/balance-system-backend/internal/domain/entity"
	domainerr "github.com/announcement7/balance-system-backend/internal/domain/error"
	coreport "github.com/announcement7/balance-system-backend/internal/domain/port/core"
	paymentUseCase "github.com/announcement7/balance-system-backend/internal/domain/usecase/payment"
	walletUseCase "github.com/announcement7/balance-system-backend/internal/domain/usecase/wallet"
	"github.com/announcement7/balance-system-backend/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles wallet and payment query requests
type UserHandler struct {
	walletService  *walletUseCase.UseCase
	paymentService *paymentUseCase.Service
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	walletService *walletUseCase.UseCase,
	paymentService *paymentUseCase.Service,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		walletService:  walletService,
		paymentService: paymentService,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// GetStatement handles the GET /user/:userId endpoint
func (h *UserHandler) GetStatement(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Message: "userId required",
		})
		return
	}

	limit := 0
	if rawLimit := c.Query("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "Invalid limit",
			})
			return
		}
		limit = parsed
	}

	statement, err := h.walletService.GetStatement(c.Request.Context(), userID, limit)
	if err != nil {
		h.logger.Error("Failed to fetch user statement", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: "Failed to fetch user data",
		})
		return
	}

	transactions := make([]dto.AttemptResponse, 0, len(statement.Transactions))
	for _, attempt := range statement.Transactions {
		transactions = append(transactions, toAttemptResponse(attempt))
	}

	receipts := make([]dto.ReceiptResponse, 0, len(statement.Receipts))
	for _, receipt := range statement.Receipts {
		receipts = append(receipts, dto.ReceiptResponse{
			Reference:          receipt.Reference,
			UserID:             receipt.UserID,
			Status:             string(receipt.Status),
			Amount:             receipt.Amount,
			Phone:              receipt.Phone,
			GatewayReceiptCode: receipt.GatewayReceiptCode,
			Note:               receipt.Note,
			CreatedAt:          receipt.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, dto.StatementResponse{
		Balance:      statement.Balance,
		Transactions: transactions,
		Receipts:     receipts,
	})
}

// GetAttempt handles the GET /payments/:reference endpoint
func (h *UserHandler) GetAttempt(c *gin.Context) {
	reference := c.Param("reference")

	attempt, err := h.paymentService.GetAttempt(c.Request.Context(), reference)
	if err != nil {
		statusCode := http.StatusInternalServerError
		message := "Failed to fetch payment"
		if domainerr.IsReferenceNotFoundError(err) {
			statusCode = http.StatusNotFound
			message = "Reference not found"
		} else if domainerr.IsValidationError(err) {
			statusCode = http.StatusBadRequest
			message = "Invalid reference"
		}
		c.JSON(statusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: message,
		})
		return
	}

	c.JSON(http.StatusOK, toAttemptResponse(attempt))
}

// Health handles the GET / health check endpoint
func (h *UserHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		OK: true,
		TS: h.timeProvider.Now().UTC().Format(time.RFC3339),
	})
}

func toAttemptResponse(attempt *entity.PaymentAttempt) dto.AttemptResponse {
	return dto.AttemptResponse{
		Reference:          attempt.Reference,
		UserID:             attempt.UserID,
		Phone:              attempt.Phone,
		Amount:             attempt.Amount,
		Kind:               string(attempt.Kind),
		Status:             string(attempt.Status),
		Note:               attempt.Note,
		GatewayReceiptCode: attempt.GatewayReceiptCode,
		CreatedAt:          attempt.CreatedAt,
		UpdatedAt:          attempt.UpdatedAt,
	}
}
