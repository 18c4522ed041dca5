package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/morph-studio/storefront-api/internal/admin"
	"github.com/morph-studio/storefront-api/internal/catalog"
)

// AdminHandler handles the admin catalog-mutation endpoints
type AdminHandler struct {
	service *admin.Service
	log     *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service *admin.Service, log *slog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log,
	}
}

// Login handles POST /api/admin/login
// Success returns the API key the admin middleware expects
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Identity string `json:"identity"`
		Secret   string `json:"secret"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode login request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	apiKey, err := h.service.Login(req.Identity, req.Secret)
	if err != nil {
		h.log.Warn("admin login rejected", "identity", req.Identity)
		WriteError(w, http.StatusUnauthorized, "Invalid credentials", h.log)
		return
	}

	h.log.Info("admin login accepted", "identity", req.Identity)
	WriteJSON(w, http.StatusOK, map[string]string{"apiKey": apiKey}, h.log)
}

// CreateProduct handles POST /api/admin/product
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var input admin.CreateProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.log.Error("failed to decode create-product request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), input)
	if err != nil {
		switch err {
		case admin.ErrMissingField:
			WriteError(w, http.StatusBadRequest, "Name, description and price are required", h.log)
		default:
			h.log.Error("failed to create product", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, product, h.log)
}

// ToggleStock handles POST /api/admin/product/{productId}/stock
// Unknown ids are silent no-ops, so this always returns 200
func (h *AdminHandler) ToggleStock(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	h.service.ToggleStock(r.Context(), productID)
	WriteJSON(w, http.StatusOK, map[string]string{"id": productID}, h.log)
}

// DeleteProduct handles DELETE /api/admin/product/{productId}
// Unknown ids are silent no-ops
func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	h.service.DeleteProduct(r.Context(), productID)
	w.WriteHeader(http.StatusNoContent)
}

// CreateCategory handles POST /api/admin/category
func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   string `json:"name"`
		Banner string `json:"banner"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode create-category request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), req.Name, req.Banner)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Name and banner are required", h.log)
		return
	}

	WriteJSON(w, http.StatusCreated, category, h.log)
}

// DeleteCategory handles DELETE /api/admin/category/{name}
// Deleting a category cascades to its products; the last remaining
// category cannot be deleted
func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := h.service.DeleteCategory(r.Context(), name); err != nil {
		switch err {
		case catalog.ErrLastCategory:
			WriteError(w, http.StatusConflict, "Cannot delete the last remaining category", h.log)
		default:
			h.log.Error("failed to delete category", "name", name, "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
