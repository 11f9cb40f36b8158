package entity

import "time"

// ReceiptEntry is one append-only audit record per terminal payment
// attempt. Receipts are never updated or deleted, so they survive any
// later mutation of the attempt row.
type ReceiptEntry struct {
	ID                 uint64
	Reference          string
	UserID             string
	Status             PaymentStatus
	Amount             int64
	Phone              string
	GatewayReceiptCode string
	Note               string
	CreatedAt          time.Time
}

// NewReceiptEntry builds the receipt for a terminal transition
func NewReceiptEntry(attempt *PaymentAttempt, outcome Outcome, receiptCode string, at time.Time) *ReceiptEntry {
	return &ReceiptEntry{
		Reference:          attempt.Reference,
		UserID:             attempt.UserID,
		Status:             outcome.Status,
		Amount:             attempt.Amount,
		Phone:              attempt.Phone,
		GatewayReceiptCode: receiptCode,
		Note:               outcome.Note,
		CreatedAt:          at,
	}
}
