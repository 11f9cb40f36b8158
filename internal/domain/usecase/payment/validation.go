package payment

import (
	"fmt"

	"github.com/announcement7/balance-system-backend/internal/domain/entity"
	errs "github.com/announcement7/balance-system-backend/internal/domain/error"
)

// InitiationValidator validates initiation input before any state is
// created or any gateway call is made
type InitiationValidator struct{}

// NewInitiationValidator creates a new InitiationValidator
func NewInitiationValidator() *InitiationValidator {
	return &InitiationValidator{}
}

// Validate checks all initiation fields and returns the normalized
// phone number on success
func (v *InitiationValidator) Validate(userID, phone string, amount int64, kind entity.PaymentKind) (string, error) {
	if !entity.IsValidPaymentKind(string(kind)) {
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidPaymentKind, kind)
	}

	// Deposits credit a wallet, so the wallet owner is required.
	// Loan fee payments have no wallet and carry no user.
	if kind == entity.KindDeposit && userID == "" {
		return "", errs.ErrInvalidUserID
	}

	normalized, err := entity.NormalizePhone(phone)
	if err != nil {
		return "", err
	}

	if amount < 1 {
		return "", errs.ErrInvalidAmount
	}

	return normalized, nil
}
