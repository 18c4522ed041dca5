package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/morph-studio/storefront-api/internal/delivery"
)

// DeliveryHandler serves pincode delivery estimates
type DeliveryHandler struct {
	log *slog.Logger
}

// NewDeliveryHandler creates a new delivery handler
func NewDeliveryHandler(log *slog.Logger) *DeliveryHandler {
	return &DeliveryHandler{log: log}
}

// Estimate handles GET /api/delivery/{pincode}
// A pincode shorter than 6 characters yields an empty estimate, not an
// error: the caller simply has not typed enough yet
func (h *DeliveryHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	pincode := chi.URLParam(r, "pincode")

	WriteJSON(w, http.StatusOK, map[string]string{
		"pincode":  pincode,
		"estimate": delivery.Estimate(pincode),
	}, h.log)
}
