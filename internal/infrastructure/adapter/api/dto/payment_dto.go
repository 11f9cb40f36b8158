package dto

import "time"

// PayRequest represents the API request for a loan fee payment
type PayRequest struct {
	Phone      string  `json:"phone" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
	LoanAmount float64 `json:"loan_amount"`
}

// DepositRequest represents the API request for a wallet deposit
type DepositRequest struct {
	UserID string  `json:"userId" binding:"required"`
	Phone  string  `json:"phone" binding:"required"`
	Amount float64 `json:"amount" binding:"required"`
}

// InitiateResponse represents the API response for an accepted push
type InitiateResponse struct {
	Success   bool   `json:"success"`
	Reference string `json:"reference"`
	Message   string `json:"message"`
}

// AttemptResponse represents one payment attempt in API responses
type AttemptResponse struct {
	Reference          string    `json:"reference"`
	UserID             string    `json:"userId,omitempty"`
	Phone              string    `json:"phone"`
	Amount             int64     `json:"amount"`
	Kind               string    `json:"kind"`
	Status             string    `json:"status"`
	Note               string    `json:"note,omitempty"`
	GatewayReceiptCode string    `json:"receiptCode,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// ReceiptResponse represents one receipt entry in API responses
type ReceiptResponse struct {
	Reference          string    `json:"reference"`
	UserID             string    `json:"userId,omitempty"`
	Status             string    `json:"status"`
	Amount             int64     `json:"amount"`
	Phone              string    `json:"phone,omitempty"`
	GatewayReceiptCode string    `json:"receiptCode,omitempty"`
	Note               string    `json:"note,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// StatementResponse represents the API response for a user's wallet view
type StatementResponse struct {
	Balance      int64             `json:"balance"`
	Transactions []AttemptResponse `json:"transactions"`
	Receipts     []ReceiptResponse `json:"receipts"`
}
