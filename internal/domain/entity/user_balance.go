package entity

import "time"

// UserBalance is the per-user wallet balance. This subsystem only ever
// increases it: each credit corresponds to exactly one successful
// deposit attempt, identified by LastCreditReference.
type UserBalance struct {
	UserID              string
	Balance             int64 // minor currency units, never negative
	LastCreditAmount    int64
	LastCreditReference string
	LastCreditAt        *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
