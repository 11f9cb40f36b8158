package entity

import "strings"

// Gateway result codes with a dedicated terminal status. Any other
// non-success code resolves to StatusFailed.
const (
	ResultCodeSuccess             = 0
	ResultCodeCancelled           = 1032
	ResultCodeTimeout             = 1037
	ResultCodeInsufficientBalance = 2001
)

// CallbackResult holds the fields of the gateway webhook that drive
// the state machine. The raw payload is persisted separately for audit.
type CallbackResult struct {
	Status        string
	Success       bool
	TransactionID string
	ResultCode    *int
	ResultDesc    string
	ReceiptCode   string
	Amount        int64
	Phone         string
}

// Outcome is the terminal status a callback resolves to, together with
// the human-readable note stored on the attempt and its receipt.
type Outcome struct {
	Status PaymentStatus
	Note   string
}

// ResolveOutcome maps a gateway callback to its intended terminal
// state. Evaluated once per callback; precedence is first match wins:
//
//	completed+success, or ResultCode 0 -> success
//	ResultCode 1032                    -> cancelled
//	ResultCode 1037                    -> timeout
//	ResultCode 2001                    -> insufficient_balance
//	otherwise                          -> failed
func ResolveOutcome(cb CallbackResult) Outcome {
	code := -1
	if cb.ResultCode != nil {
		code = *cb.ResultCode
	}

	completed := strings.EqualFold(cb.Status, "completed") && cb.Success

	switch {
	case completed || code == ResultCodeSuccess:
		return Outcome{Status: StatusSuccess, Note: "Deposit successful."}
	case code == ResultCodeCancelled:
		return Outcome{Status: StatusCancelled, Note: "You cancelled the payment request."}
	case code == ResultCodeTimeout:
		return Outcome{Status: StatusTimeout, Note: "Request timed out. No PIN entered."}
	case code == ResultCodeInsufficientBalance:
		return Outcome{Status: StatusInsufficientBalance, Note: "Insufficient M-Pesa balance."}
	case cb.ResultDesc != "":
		return Outcome{Status: StatusFailed, Note: cb.ResultDesc}
	default:
		return Outcome{Status: StatusFailed, Note: "Deposit failed or cancelled."}
	}
}
