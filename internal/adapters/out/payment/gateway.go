// Package payment talks to the payment provider's refund API.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fulfillment/internal/core/ports"
)

const DefaultTimeout = 10 * time.Second

var ErrGatewayNotConfigured = errors.New("payment gateway is not configured")

// Config configures the HTTP gateway client.
type Config struct {
	BaseURL  string
	APIKey   string
	Currency string
	Timeout  time.Duration
}

// HTTPGateway implements ports.PaymentGateway over the provider's REST API:
//
//	POST {BaseURL}/payments/{paymentId}/refunds
//	Idempotency-Key: <key>
//	{"amount": "5.00", "currency": "EUR", "reason": "..."}
//
// A 2xx response carries {"id": "<refund id>", "status": "..."}.
type HTTPGateway struct {
	cfg    Config
	client *http.Client
}

func NewHTTPGateway(cfg Config, client *http.Client) *HTTPGateway {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &HTTPGateway{cfg: cfg, client: client}
}

type refundRequestBody struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

type refundResponseBody struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Refund sends one refund request. Retrying with the same IdempotencyKey is
// safe; the client itself never retries.
func (g *HTTPGateway) Refund(ctx context.Context, req ports.RefundRequest) (ports.RefundResult, error) {
	if g.cfg.BaseURL == "" {
		return ports.RefundResult{}, ErrGatewayNotConfigured
	}

	body, err := json.Marshal(refundRequestBody{
		Amount:   req.Amount.String(),
		Currency: g.cfg.Currency,
		Reason:   req.Reason,
	})
	if err != nil {
		return ports.RefundResult{}, fmt.Errorf("failed to marshal refund request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/payments/%s/refunds", g.cfg.BaseURL, url.PathEscape(req.PaymentID))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return ports.RefundResult{}, fmt.Errorf("failed to build refund request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Idempotency-Key", req.IdempotencyKey)
	if g.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)
	}

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return ports.RefundResult{}, fmt.Errorf("refund request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return ports.RefundResult{}, fmt.Errorf("failed to read refund response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ports.RefundResult{}, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(payload))}
	}

	var out refundResponseBody
	if err = json.Unmarshal(payload, &out); err != nil {
		return ports.RefundResult{}, fmt.Errorf("failed to decode refund response: %w", err)
	}
	return ports.RefundResult{RefundID: out.ID}, nil
}

// StatusError is a non-2xx answer from the provider.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("payment gateway responded %d", e.StatusCode)
	}
	return fmt.Sprintf("payment gateway responded %d: %s", e.StatusCode, e.Body)
}
