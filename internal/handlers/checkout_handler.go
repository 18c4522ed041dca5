package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/morph-studio/storefront-api/internal/cart"
	"github.com/morph-studio/storefront-api/internal/checkout"
	"github.com/morph-studio/storefront-api/internal/models"
	"github.com/morph-studio/storefront-api/internal/payment"
)

// CheckoutHandler handles the checkout flow: draft collection, payment
// begin, and the popup's success/dismiss callbacks
type CheckoutHandler struct {
	orchestrator *checkout.Orchestrator
	sessions     *cart.Sessions
	log          *slog.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(orchestrator *checkout.Orchestrator, sessions *cart.Sessions, log *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		orchestrator: orchestrator,
		sessions:     sessions,
		log:          log,
	}
}

// draftResponse echoes the session id a draft was stored under
type draftResponse struct {
	SessionID string               `json:"sessionId"`
	Draft     models.CheckoutDraft `json:"draft"`
}

// UpdateDraft handles PUT /api/checkout/draft
// Fields are stored as typed, with no format validation. Like the cart
// endpoints this mints a session for clients that do not have one yet,
// so anonymous drafts never collide under an empty id.
func (h *CheckoutHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	var draft models.CheckoutDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		h.log.Error("failed to decode draft", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	sessionID, _ := h.sessions.Get(r.Header.Get(SessionHeader))
	h.orchestrator.UpdateDraft(sessionID, draft)
	WriteJSON(w, http.StatusOK, draftResponse{
		SessionID: sessionID,
		Draft:     h.orchestrator.Draft(sessionID),
	}, h.log)
}

// Begin handles POST /api/checkout
// Returns the payment popup open-configuration on success
func (h *CheckoutHandler) Begin(w http.ResponseWriter, r *http.Request) {
	session := r.Header.Get(SessionHeader)

	cfg, err := h.orchestrator.Begin(r.Context(), session)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			WriteError(w, http.StatusConflict, "Cart is empty", h.log)
		case errors.Is(err, checkout.ErrPaymentInFlight):
			WriteError(w, http.StatusConflict, "A payment attempt is already in progress", h.log)
		case errors.Is(err, payment.ErrGatewayFailure):
			WriteError(w, http.StatusBadGateway, "Payment could not be started, please try again", h.log)
		default:
			h.log.Error("failed to begin checkout", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusOK, cfg, h.log)
}

// Confirm handles POST /api/checkout/confirm, the gateway handler
// callback carrying the payment identifier
func (h *CheckoutHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PaymentID string `json:"paymentId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode confirm request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	conf, err := h.orchestrator.Confirm(r.Header.Get(SessionHeader), req.PaymentID)
	if err != nil {
		WriteError(w, http.StatusConflict, "No payment attempt to confirm", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, conf, h.log)
}

// Dismiss handles POST /api/checkout/dismiss, fired when the user
// closes the payment popup without paying
func (h *CheckoutHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	h.orchestrator.Dismiss(r.Header.Get(SessionHeader))
	w.WriteHeader(http.StatusNoContent)
}
