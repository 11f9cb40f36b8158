package model

import (
	"time"
)

// UserBalance represents the database model for user balances
type UserBalance struct {
	UserID              string `gorm:"primaryKey;size:128"`
	Balance             int64  `gorm:"not null;default:0;check:balance >= 0"`
	LastCreditAmount    int64
	LastCreditReference string `gorm:"size:64"`
	LastCreditAt        *time.Time
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time `gorm:"not null"`
}

// TableName specifies the table name for UserBalance
func (UserBalance) TableName() string {
	return "user_balances"
}
