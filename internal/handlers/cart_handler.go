package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/morph-studio/storefront-api/internal/cart"
	"github.com/morph-studio/storefront-api/internal/catalog"
	"github.com/morph-studio/storefront-api/internal/models"
)

// SessionHeader carries the cart session id. Requests without one (or
// with an unknown id) are given a fresh session; the response always
// echoes the id to use next.
const SessionHeader = "X-Cart-Session"

// CartHandler handles cart mutation and read requests
type CartHandler struct {
	sessions *cart.Sessions
	store    *catalog.Store
	log      *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(sessions *cart.Sessions, store *catalog.Store, log *slog.Logger) *CartHandler {
	return &CartHandler{
		sessions: sessions,
		store:    store,
		log:      log,
	}
}

// cartResponse is the cart view returned by every cart endpoint
type cartResponse struct {
	SessionID string            `json:"sessionId"`
	Items     []models.CartItem `json:"items"`
	Count     int               `json:"count"`
	Total     string            `json:"total"`
}

func (h *CartHandler) respond(w http.ResponseWriter, sessionID string, c *cart.Cart) {
	items := c.Items()
	WriteJSON(w, http.StatusOK, cartResponse{
		SessionID: sessionID,
		Items:     items,
		Count:     len(items),
		Total:     c.Total().StringFixed(2),
	}, h.log)
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID, c := h.sessions.Get(r.Header.Get(SessionHeader))
	h.respond(w, sessionID, c)
}

// AddItem handles POST /api/cart/items
// The product is copied into the cart as it exists right now
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode add-item request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	product, err := h.store.ProductByID(req.ProductID)
	if err != nil {
		h.log.Info("product not found for cart add", "productId", req.ProductID)
		WriteError(w, http.StatusNotFound, "Product not found", h.log)
		return
	}

	sessionID, c := h.sessions.Get(r.Header.Get(SessionHeader))
	c.Add(*product)
	h.respond(w, sessionID, c)
}

// RemoveItem handles DELETE /api/cart/items/{position}
// Out-of-range positions leave the cart unchanged
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	position, err := strconv.Atoi(chi.URLParam(r, "position"))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid position", h.log)
		return
	}

	sessionID, c := h.sessions.Get(r.Header.Get(SessionHeader))
	c.RemoveAt(position)
	h.respond(w, sessionID, c)
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionID, c := h.sessions.Get(r.Header.Get(SessionHeader))
	c.Clear()
	h.respond(w, sessionID, c)
}
