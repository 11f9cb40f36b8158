package gateway

import (
	"context"

	"github.com/announcement7/balance-system-backend/internal/domain/entity"
)

// PushRequest is the outbound push-to-pay request sent to the gateway
type PushRequest struct {
	Kind        entity.PaymentKind
	Amount      int64
	PhoneNumber string
	Reference   string
	CallbackURL string
}

// PushResponse is the gateway's synchronous answer to a push request.
// The final result arrives later on the webhook.
type PushResponse struct {
	Success       bool
	TransactionID string
	Message       string
}

// Client is the outbound payment gateway port
type Client interface {
	// InitiatePush asks the gateway to push a payment prompt to the
	// subscriber's phone. Calls are bounded by the client's configured
	// timeout.
	//
	// Possible errors:
	// - ErrGatewayUnavailable: network failure or timeout
	// - ErrGatewayRejected: the gateway answered but declined
	InitiatePush(ctx context.Context, req PushRequest) (*PushResponse, error)
}
