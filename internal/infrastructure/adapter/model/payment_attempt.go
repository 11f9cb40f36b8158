package model

import (
	"time"

	"gorm.io/datatypes"
)

// PaymentAttempt represents the database model for payment attempts.
// The unique index on Reference is what the reconciler's conditional
// update keys on.
type PaymentAttempt struct {
	ID                   uint64 `gorm:"primaryKey;autoIncrement"`
	Reference            string `gorm:"uniqueIndex;not null;size:64"`
	UserID               string `gorm:"index;size:128"`
	Phone                string `gorm:"not null;size:15"`
	Amount               int64  `gorm:"not null"`
	Kind                 string `gorm:"not null;size:20"`
	Status               string `gorm:"not null;index;size:32"`
	Note                 string `gorm:"type:text"`
	LoanAmount           int64
	GatewayTransactionID string `gorm:"size:128"`
	GatewayReceiptCode   string `gorm:"size:64"`
	ResultCode           *int
	RawCallback          datatypes.JSON
	RawError             datatypes.JSON
	CreatedAt            time.Time `gorm:"not null;index"`
	UpdatedAt            time.Time `gorm:"not null"`
}

// TableName specifies the table name for PaymentAttempt
func (PaymentAttempt) TableName() string {
	return "payment_attempts"
}
