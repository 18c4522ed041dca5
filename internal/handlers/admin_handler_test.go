package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/morph-studio/storefront-api/internal/admin"
	"github.com/morph-studio/storefront-api/internal/catalog"
	"github.com/morph-studio/storefront-api/internal/config"
	"github.com/morph-studio/storefront-api/internal/models"
	"github.com/morph-studio/storefront-api/pkg/logger"
)

func newAdminRouter(t *testing.T) (chi.Router, *catalog.Store) {
	t.Helper()

	store := newTestCatalog(t)
	log := logger.New("error")
	cfg := config.AdminConfig{
		Identity: "admin",
		Secret:   "morphvoid",
		APIKey:   "morph-admin-key",
	}
	handler := NewAdminHandler(admin.NewService(store, cfg, log), log)

	r := chi.NewRouter()
	r.Post("/api/admin/login", handler.Login)
	r.Post("/api/admin/product", handler.CreateProduct)
	r.Post("/api/admin/product/{productId}/stock", handler.ToggleStock)
	r.Delete("/api/admin/product/{productId}", handler.DeleteProduct)
	r.Post("/api/admin/category", handler.CreateCategory)
	r.Delete("/api/admin/category/{name}", handler.DeleteCategory)
	return r, store
}

func TestLoginHandler(t *testing.T) {
	r, _ := newAdminRouter(t)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			body:           `{"identity":"admin","secret":"morphvoid"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "wrong secret",
			body:           `{"identity":"admin","secret":"guess"}`,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed body",
			body:           `{not json`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}

			if tt.expectedStatus == http.StatusOK {
				var resp map[string]string
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp["apiKey"] != "morph-admin-key" {
					t.Errorf("apiKey = %q, want morph-admin-key", resp["apiKey"])
				}
			}
		})
	}
}

func TestCreateProductHandler(t *testing.T) {
	r, store := newAdminRouter(t)

	body := `{"name":"MIND FLAYER DIORAMA","description":"A towering shadow.","price":"150","category":"The Upside Down"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/product", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	var product models.Product
	if err := json.NewDecoder(w.Body).Decode(&product); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if product.Price != "INR 150.00" {
		t.Errorf("price = %q, want INR 150.00", product.Price)
	}
	if product.Tag != "NEW DROP" {
		t.Errorf("tag = %q, want NEW DROP", product.Tag)
	}

	if store.Products()[0].ID != product.ID {
		t.Error("new product should be first in the catalog")
	}
}

func TestCreateProductHandler_MissingName(t *testing.T) {
	r, store := newAdminRouter(t)
	before := len(store.Products())

	body := `{"description":"no name","price":"150"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/product", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
	if len(store.Products()) != before {
		t.Error("aborted creation must not add a record")
	}
}

func TestToggleStockHandler(t *testing.T) {
	r, store := newAdminRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/product/1/stock", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	p, err := store.ProductByID("1")
	if err != nil {
		t.Fatalf("product lookup failed: %v", err)
	}
	if p.Stock != models.StockOut {
		t.Errorf("stock = %s, want OUT_OF_STOCK", p.Stock)
	}

	// Unknown id is a silent no-op, still 200
	req = httptest.NewRequest(http.MethodPost, "/api/admin/product/999/stock", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200 for unknown id, got %d", w.Code)
	}
}

func TestDeleteCategoryHandler_LastCategory(t *testing.T) {
	r, store := newAdminRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/category/The%20Upside%20Down", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected status 409, got %d", w.Code)
	}
	if len(store.Categories()) != 1 {
		t.Error("last category must remain")
	}
}

func TestDeleteCategoryHandler_Cascade(t *testing.T) {
	r, store := newAdminRouter(t)

	// Create a second category and a product in it
	body := `{"name":"Hawkins Lab","banner":"/lab.png"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/category", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("category create failed with %d", w.Code)
	}

	body = `{"name":"LAB BADGE","description":"clip-on","price":"99","category":"Hawkins Lab"}`
	req = httptest.NewRequest(http.MethodPost, "/api/admin/product", bytes.NewBufferString(body))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("product create failed with %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/admin/category/Hawkins%20Lab", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", w.Code)
	}

	if store.CategoryExists("Hawkins Lab") {
		t.Error("category should be gone")
	}
	for _, p := range store.Products() {
		if p.Category == "Hawkins Lab" {
			t.Errorf("product %s should have been cascaded away", p.Name)
		}
	}
}
