// Package payment talks to the external payment gateway. The gateway
// is an opaque collaborator: this client only creates orders; the
// popup flow and its callbacks stay on the frontend.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
)

var ErrGatewayFailure = errors.New("payment gateway request failed")

// GatewayOrder is the gateway's order-creation response
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Gateway creates payment orders. Amount is in minor currency units.
type Gateway interface {
	CreateOrder(ctx context.Context, amount int64, currency string) (*GatewayOrder, error)
}

// Client is an HTTP gateway client wrapped in a circuit breaker so a
// flapping gateway fails fast instead of tying up checkout attempts
type Client struct {
	baseURL   string
	keyID     string
	keySecret string
	http      *http.Client
	breaker   *gobreaker.CircuitBreaker[*GatewayOrder]
	log       *slog.Logger
}

// NewClient creates a gateway client
func NewClient(baseURL, keyID, keySecret string, log *slog.Logger) *Client {
	breaker := gobreaker.NewCircuitBreaker[*GatewayOrder](gobreaker.Settings{
		Name:    "payment-gateway",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})

	return &Client{
		baseURL:   baseURL,
		keyID:     keyID,
		keySecret: keySecret,
		http:      &http.Client{Timeout: 15 * time.Second},
		breaker:   breaker,
		log:       log,
	}
}

type orderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// CreateOrder POSTs {amount, currency} to the gateway's order endpoint.
// Any non-success response is a terminal failure for this attempt.
func (c *Client) CreateOrder(ctx context.Context, amount int64, currency string) (*GatewayOrder, error) {
	order, err := c.breaker.Execute(func() (*GatewayOrder, error) {
		return c.createOrder(ctx, amount, currency)
	})
	if err != nil {
		c.log.Error("gateway order creation failed", "amount", amount, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrGatewayFailure, err)
	}
	return order, nil
}

func (c *Client) createOrder(ctx context.Context, amount int64, currency string) (*GatewayOrder, error) {
	body, err := json.Marshal(orderRequest{Amount: amount, Currency: currency})
	if err != nil {
		return nil, fmt.Errorf("marshal order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var order GatewayOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("decode order response: %w", err)
	}
	if order.ID == "" {
		return nil, fmt.Errorf("gateway response missing order id")
	}

	return &order, nil
}
