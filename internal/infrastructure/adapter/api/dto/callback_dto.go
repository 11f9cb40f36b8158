package dto

import (
	"encoding/json"
	"math"

	"github.com/announcement7/balance-system-backend/internal/domain/entity"
)

// CallbackRequest represents the webhook payload delivered by the
// gateway. Field presence varies across delivery paths, so everything
// beyond the reference is optional.
type CallbackRequest struct {
	ExternalReference string          `json:"external_reference"`
	Status            string          `json:"status"`
	Success           bool            `json:"success"`
	TransactionID     string          `json:"transaction_id"`
	Result            *CallbackDetail `json:"result"`
}

// CallbackDetail is the nested result object of the webhook. Amount
// and Phone arrive as numbers from some delivery paths and as strings
// from others.
type CallbackDetail struct {
	ResultCode         *int        `json:"ResultCode"`
	ResultDesc         string      `json:"ResultDesc"`
	MpesaReceiptNumber string      `json:"MpesaReceiptNumber"`
	Amount             float64     `json:"Amount"`
	Phone              json.Number `json:"Phone"`
}

// ToCallbackResult maps the webhook payload to the domain callback result
func (r *CallbackRequest) ToCallbackResult() entity.CallbackResult {
	result := entity.CallbackResult{
		Status:        r.Status,
		Success:       r.Success,
		TransactionID: r.TransactionID,
	}

	if r.Result != nil {
		result.ResultCode = r.Result.ResultCode
		result.ResultDesc = r.Result.ResultDesc
		result.ReceiptCode = r.Result.MpesaReceiptNumber
		result.Amount = int64(math.Round(r.Result.Amount))
		result.Phone = r.Result.Phone.String()
	}

	return result
}

// AckResponse is the acknowledgment the gateway expects back
type AckResponse struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}
