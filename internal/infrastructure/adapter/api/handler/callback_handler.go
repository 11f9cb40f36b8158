package handler

import (
	"encoding/json"
	"net/http"

	domainerr "github.com/announcement7/balance-system-backend/internal/domain/error"
	coreport "github.com/announcement7/balance-system-backend/internal/domain/port/core"
	"github.com/announcement7/balance-system-backend/internal/domain/usecase/reconcile"
	"github.com/announcement7/balance-system-backend/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// CallbackHandler handles the gateway's webhook deliveries. Both
// webhook routes share one handler because the payload shape and the
// reconciliation semantics are identical; only the reference prefix
// differs.
type CallbackHandler struct {
	reconcileService *reconcile.Service
	logger           coreport.Logger
}

// NewCallbackHandler creates a new callback handler instance
func NewCallbackHandler(reconcileService *reconcile.Service, logger coreport.Logger) *CallbackHandler {
	return &CallbackHandler{
		reconcileService: reconcileService,
		logger:           logger,
	}
}

// HandleCallback handles POST /callback and POST /deposit-callback
func (h *CallbackHandler) HandleCallback(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Failed to read callback body",
		})
		return
	}

	var req dto.CallbackRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		h.logger.Warn("Unparseable callback payload", map[string]any{
			"error": err.Error(),
			"size":  len(raw),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid callback payload",
		})
		return
	}

	if req.ExternalReference == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidReference),
			Message: "external_reference missing",
		})
		return
	}

	response, err := h.reconcileService.HandleCallback(c.Request.Context(), reconcile.Callback{
		ExternalReference: req.ExternalReference,
		Result:            req.ToCallbackResult(),
		RawPayload:        raw,
	})
	if err != nil {
		c.JSON(response.StatusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: response.ErrorMessage,
		})
		return
	}

	c.JSON(response.StatusCode, dto.AckResponse{
		ResultCode: response.Ack.ResultCode,
		ResultDesc: response.Ack.ResultDesc,
	})
}
