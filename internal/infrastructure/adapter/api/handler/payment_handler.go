package handler

import (
	"math"
	"net/http"

	"github.com/announcement7/balance-system-backend/internal/domain/entity"
	domainerr "github.com/announcement7/balance-system-backend/internal/domain/error"
	coreport "github.com/announcement7/balance-system-backend/internal/domain/port/core"
	paymentUseCase "github.com/announcement7/balance-system-backend/internal/domain/usecase/payment"
	"github.com/announcement7/balance-system-backend/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// PaymentHandler handles push-to-pay initiation requests
type PaymentHandler struct {
	paymentService *paymentUseCase.Service
	logger         coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(paymentService *paymentUseCase.Service, logger coreport.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// Pay handles the POST /pay endpoint for loan fee payments
func (h *PaymentHandler) Pay(c *gin.Context) {
	var req dto.PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	h.initiate(c, paymentUseCase.InitiationRequest{
		Phone:      req.Phone,
		Amount:     int64(math.Round(req.Amount)),
		Kind:       entity.KindLoanFee,
		LoanAmount: int64(math.Round(req.LoanAmount)),
	})
}

// Deposit handles the POST /deposit endpoint for wallet deposits
func (h *PaymentHandler) Deposit(c *gin.Context) {
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	h.initiate(c, paymentUseCase.InitiationRequest{
		UserID: req.UserID,
		Phone:  req.Phone,
		Amount: int64(math.Round(req.Amount)),
		Kind:   entity.KindDeposit,
	})
}

func (h *PaymentHandler) initiate(c *gin.Context, req paymentUseCase.InitiationRequest) {
	result, err := h.paymentService.Initiate(c.Request.Context(), req)
	if err != nil {
		c.JSON(result.StatusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: result.ErrorMessage,
		})
		return
	}

	c.JSON(result.StatusCode, dto.InitiateResponse{
		Success:   true,
		Reference: result.Reference,
		Message:   result.Note,
	})
}
