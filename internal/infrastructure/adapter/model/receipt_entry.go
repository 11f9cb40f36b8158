package model

import (
	"time"
)

// ReceiptEntry represents the database model for the append-only
// receipt log. Rows are inserted once and never updated.
type ReceiptEntry struct {
	ID                 uint64 `gorm:"primaryKey;autoIncrement"`
	Reference          string `gorm:"index;not null;size:64"`
	UserID             string `gorm:"index;size:128"`
	Status             string `gorm:"not null;size:32"`
	Amount             int64  `gorm:"not null"`
	Phone              string `gorm:"size:15"`
	GatewayReceiptCode string `gorm:"size:64"`
	Note               string `gorm:"type:text"`
	CreatedAt          time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for ReceiptEntry
func (ReceiptEntry) TableName() string {
	return "receipt_entries"
}
