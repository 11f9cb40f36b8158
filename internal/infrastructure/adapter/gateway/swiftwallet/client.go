package swiftwallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/announcement7/balance-system-backend/internal/domain/entity"
	errs "github.com/announcement7/balance-system-backend/internal/domain/error"
	coreport "github.com/announcement7/balance-system-backend/internal/domain/port/core"
	gatewayport "github.com/announcement7/balance-system-backend/internal/domain/port/gateway"
)

const defaultChannelID = "000205"

// Config holds the SwiftWallet client configuration
type Config struct {
	PaymentURL string
	WalletURL  string
	APIKey     string
	ChannelID  string
	Timeout    time.Duration
}

// Client talks to the SwiftWallet push-to-pay API. Loan fee payments
// and wallet deposits go to different endpoints with different payload
// shapes, but both answer with the same success envelope.
type Client struct {
	config     Config
	httpClient *http.Client
	logger     coreport.Logger
}

// NewClient creates a SwiftWallet gateway client
func NewClient(config Config, logger coreport.Logger) *Client {
	if config.ChannelID == "" {
		config.ChannelID = defaultChannelID
	}
	if config.Timeout <= 0 {
		config.Timeout = 20 * time.Second
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		logger: logger,
	}
}

// paymentPayload is the push request for loan fee payments
type paymentPayload struct {
	Amount            int64  `json:"amount"`
	PhoneNumber       string `json:"phone_number"`
	ExternalReference string `json:"external_reference"`
	CustomerName      string `json:"customer_name"`
	CallbackURL       string `json:"callback_url"`
	ChannelID         string `json:"channel_id"`
}

// depositPayload is the push request for wallet deposits
type depositPayload struct {
	Action          string `json:"action"`
	WalletType      string `json:"wallet_type"`
	PhoneNumber     string `json:"phone_number"`
	Amount          int64  `json:"amount"`
	UserCallbackURL string `json:"user_callback_url"`
}

// pushEnvelope is the synchronous gateway answer for both endpoints
type pushEnvelope struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
	Message       string `json:"message"`
}

// InitiatePush sends the push-to-pay request for the attempt's kind
func (c *Client) InitiatePush(ctx context.Context, req gatewayport.PushRequest) (*gatewayport.PushResponse, error) {
	var (
		url     string
		payload any
	)

	if req.Kind == entity.KindLoanFee {
		url = c.config.PaymentURL
		payload = paymentPayload{
			Amount:            req.Amount,
			PhoneNumber:       req.PhoneNumber,
			ExternalReference: req.Reference,
			CustomerName:      "Customer",
			CallbackURL:       req.CallbackURL,
			ChannelID:         c.config.ChannelID,
		}
	} else {
		url = c.config.WalletURL
		payload = depositPayload{
			Action:          "deposit",
			WalletType:      "payments",
			PhoneNumber:     req.PhoneNumber,
			Amount:          req.Amount,
			UserCallbackURL: req.CallbackURL,
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal push payload: %w", err)
	}

	c.logger.Info("Sending push request to gateway", map[string]any{
		"reference": req.Reference,
		"kind":      string(req.Kind),
		"amount":    req.Amount,
		"url":       url,
	})

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build push request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Gateway request failed", map[string]any{
			"reference": req.Reference,
			"error":     err.Error(),
		})
		return nil, errs.NewGatewayUnavailableError("push request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errs.NewGatewayUnavailableError("failed to read gateway response", err)
	}

	var envelope pushEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil && resp.StatusCode < 300 {
		return nil, errs.NewGatewayRejectedError(resp.StatusCode, "unparseable gateway response", string(respBody))
	}

	if resp.StatusCode >= 500 {
		return nil, errs.NewGatewayUnavailableError(
			fmt.Sprintf("gateway answered %d", resp.StatusCode),
			fmt.Errorf("status %d: %s", resp.StatusCode, truncate(respBody, 512)),
		)
	}

	if resp.StatusCode >= 300 || !envelope.Success {
		c.logger.Warn("Gateway declined push request", map[string]any{
			"reference":   req.Reference,
			"status_code": resp.StatusCode,
			"message":     envelope.Message,
		})
		message := envelope.Message
		if message == "" {
			message = "push request declined"
		}
		return nil, errs.NewGatewayRejectedError(resp.StatusCode, message, truncate(respBody, 512))
	}

	c.logger.Info("Gateway accepted push request", map[string]any{
		"reference":      req.Reference,
		"transaction_id": envelope.TransactionID,
	})

	return &gatewayport.PushResponse{
		Success:       true,
		TransactionID: envelope.TransactionID,
		Message:       envelope.Message,
	}, nil
}

func truncate(b []byte, max int) string {
	if len(b) <= max {
		return string(b)
	}
	return string(b[:max])
}
