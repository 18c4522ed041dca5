// Package checkout gathers the customer's draft order and hands the
// aggregated total off to the external payment collaborator.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/morph-studio/storefront-api/internal/cart"
	"github.com/morph-studio/storefront-api/internal/config"
	"github.com/morph-studio/storefront-api/internal/delivery"
	"github.com/morph-studio/storefront-api/internal/models"
	"github.com/morph-studio/storefront-api/internal/payment"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrPaymentInFlight = errors.New("a payment attempt is already in flight")
	ErrNoAttempt       = errors.New("no payment attempt in flight")
)

// Confirmation is returned once the gateway reports a successful payment
type Confirmation struct {
	OrderID          string `json:"orderId"`
	PaymentID        string `json:"paymentId"`
	Total            string `json:"total"`
	DeliveryEstimate string `json:"deliveryEstimate,omitempty"`
	CartCleared      bool   `json:"cartCleared"`
}

// sessionState tracks one cart session's draft and in-flight attempt
type sessionState struct {
	draft     models.CheckoutDraft
	inFlight  bool
	orderID   string
	lastTotal decimal.Decimal
}

// Orchestrator coordinates draft collection, total aggregation and the
// payment gateway handoff, one attempt per cart session at a time
type Orchestrator struct {
	mu       sync.Mutex
	sessions map[string]*sessionState

	carts   *cart.Sessions
	gateway payment.Gateway
	cfg     config.PaymentConfig
	log     *slog.Logger
}

// NewOrchestrator creates the checkout orchestrator
func NewOrchestrator(carts *cart.Sessions, gateway payment.Gateway, cfg config.PaymentConfig, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		sessions: make(map[string]*sessionState),
		carts:    carts,
		gateway:  gateway,
		cfg:      cfg,
		log:      log,
	}
}

func (o *Orchestrator) state(session string) *sessionState {
	st, ok := o.sessions[session]
	if !ok {
		st = &sessionState{}
		o.sessions[session] = st
	}
	return st
}

// UpdateDraft replaces the session's draft order fields. No format
// validation: any string is accepted for every field.
func (o *Orchestrator) UpdateDraft(session string, draft models.CheckoutDraft) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.state(session).draft = draft
}

// Draft returns the session's current draft
func (o *Orchestrator) Draft(session string) models.CheckoutDraft {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.state(session).draft
}

// Begin starts a payment attempt: it requires a non-empty cart and no
// attempt already in flight, creates a gateway order for the
// aggregated total, and returns the popup open-configuration.
func (o *Orchestrator) Begin(ctx context.Context, session string) (*models.CheckoutConfig, error) {
	c, ok := o.carts.Lookup(session)
	if !ok || c.Len() == 0 {
		return nil, ErrEmptyCart
	}

	total := c.Total()
	// Minor currency units (paise for INR)
	amount := total.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	o.mu.Lock()
	st := o.state(session)
	if st.inFlight {
		o.mu.Unlock()
		return nil, ErrPaymentInFlight
	}
	st.inFlight = true
	draft := st.draft
	o.mu.Unlock()

	order, err := o.gateway.CreateOrder(ctx, amount, o.cfg.Currency)
	if err != nil {
		// Terminal failure for this attempt; the user may retry
		o.mu.Lock()
		st.inFlight = false
		o.mu.Unlock()
		return nil, err
	}

	o.mu.Lock()
	st.orderID = order.ID
	st.lastTotal = total
	o.mu.Unlock()

	o.log.Info("payment attempt started",
		"session", session,
		"order_id", order.ID,
		"amount", amount,
	)

	return &models.CheckoutConfig{
		Key:         o.cfg.KeyID,
		Amount:      order.Amount,
		Currency:    order.Currency,
		Name:        o.cfg.DisplayName,
		Description: fmt.Sprintf("%d item(s) from the void", c.Len()),
		OrderID:     order.ID,
		Prefill: models.CheckoutPrefill{
			Name:    draft.Name,
			Email:   draft.Email,
			Contact: draft.Phone,
		},
		Theme: models.CheckoutTheme{Color: o.cfg.ThemeColor},
	}, nil
}

// Confirm handles the gateway's success callback. Whether the cart is
// cleared afterwards is configured policy, not inferred intent.
func (o *Orchestrator) Confirm(session, paymentID string) (*Confirmation, error) {
	o.mu.Lock()
	st := o.state(session)
	if !st.inFlight {
		o.mu.Unlock()
		return nil, ErrNoAttempt
	}
	st.inFlight = false
	orderID := st.orderID
	total := st.lastTotal
	estimate := delivery.Estimate(st.draft.Pincode)
	o.mu.Unlock()

	cleared := false
	if o.cfg.ClearCartOnSuccess {
		if c, ok := o.carts.Lookup(session); ok {
			c.Clear()
			cleared = true
		}
	}

	o.log.Info("payment confirmed",
		"session", session,
		"order_id", orderID,
		"payment_id", paymentID,
		"cart_cleared", cleared,
	)

	return &Confirmation{
		OrderID:          orderID,
		PaymentID:        paymentID,
		Total:            total.StringFixed(2),
		DeliveryEstimate: estimate,
		CartCleared:      cleared,
	}, nil
}

// Dismiss handles the popup's ondismiss callback: the user closed the
// popup without paying, so the in-flight flag resets for a retry
func (o *Orchestrator) Dismiss(session string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	st := o.state(session)
	if st.inFlight {
		o.log.Info("payment popup dismissed", "session", session, "order_id", st.orderID)
	}
	st.inFlight = false
}
