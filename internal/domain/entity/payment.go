package entity

import (
	"time"

	errs "github.com/announcement7/balance-system-backend/internal/domain/error"
	coreport "github.com/announcement7/balance-system-backend/internal/domain/port/core"
)

// PaymentKind distinguishes wallet deposits from loan fee payments
type PaymentKind string

// Payment kinds
const (
	KindDeposit PaymentKind = "deposit"
	KindLoanFee PaymentKind = "loan_fee"
)

// PaymentStatus represents the lifecycle state of a payment attempt
type PaymentStatus string

// Payment statuses. Pending is the only non-terminal state; every
// other status is final and no transition may leave it.
const (
	StatusPending             PaymentStatus = "pending"
	StatusSuccess             PaymentStatus = "success"
	StatusFailed              PaymentStatus = "failed"
	StatusCancelled           PaymentStatus = "cancelled"
	StatusTimeout             PaymentStatus = "timeout"
	StatusInsufficientBalance PaymentStatus = "insufficient_balance"
	StatusError               PaymentStatus = "error"
)

// IsTerminal reports whether the status is final
func (s PaymentStatus) IsTerminal() bool {
	return s != StatusPending && s != ""
}

// IsValidPaymentKind validates if the kind is allowed
func IsValidPaymentKind(kind string) bool {
	return kind == string(KindDeposit) || kind == string(KindLoanFee)
}

// ReferencePrefix returns the reference prefix used for this kind.
// The prefixes are part of the gateway contract and visible to callers.
func (k PaymentKind) ReferencePrefix() string {
	if k == KindLoanFee {
		return "ORDER-"
	}
	return "DEPOSIT-"
}

// PaymentAttempt represents one push-to-pay request and its lifecycle.
// The reference is the correlation key shared with the gateway and is
// immutable once the attempt is created.
type PaymentAttempt struct {
	Reference            string
	UserID               string // empty for loan fee payments
	Phone                string // normalized 254... form
	Amount               int64  // minor currency units, always >= 1
	Kind                 PaymentKind
	Status               PaymentStatus
	Note                 string
	LoanAmount           int64 // loan fee variant only
	GatewayTransactionID string
	GatewayReceiptCode   string
	ResultCode           *int
	RawError             []byte // gateway error payload when initiation failed
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewPaymentAttempt creates a pending payment attempt
func NewPaymentAttempt(
	reference string,
	userID string,
	phone string,
	amount int64,
	kind PaymentKind,
	timeProvider coreport.TimeProvider,
) (*PaymentAttempt, error) {
	if reference == "" {
		return nil, errs.ErrInvalidReference
	}
	if amount < 1 {
		return nil, errs.ErrInvalidAmount
	}
	if !IsValidPaymentKind(string(kind)) {
		return nil, errs.ErrInvalidPaymentKind
	}
	if kind == KindDeposit && userID == "" {
		return nil, errs.ErrInvalidUserID
	}

	normalized, err := NormalizePhone(phone)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &PaymentAttempt{
		Reference: reference,
		UserID:    userID,
		Phone:     normalized,
		Amount:    amount,
		Kind:      kind,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsTerminal reports whether the attempt has reached a final state
func (p *PaymentAttempt) IsTerminal() bool {
	return p.Status.IsTerminal()
}

// CreditsBalance reports whether this attempt, once successful, must
// credit a wallet balance. Loan fee payments never touch a balance.
func (p *PaymentAttempt) CreditsBalance() bool {
	return p.Kind == KindDeposit && p.UserID != ""
}
