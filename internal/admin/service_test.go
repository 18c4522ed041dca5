package admin

import (
	"context"
	"testing"

	"github.com/morph-studio/storefront-api/internal/catalog"
	"github.com/morph-studio/storefront-api/internal/catalog/snapshot"
	"github.com/morph-studio/storefront-api/internal/config"
	"github.com/morph-studio/storefront-api/internal/models"
	"github.com/morph-studio/storefront-api/internal/pricing"
	"github.com/morph-studio/storefront-api/pkg/logger"
	"github.com/shopspring/decimal"
)

func newTestService(t *testing.T) (*Service, *catalog.Store) {
	snap, err := snapshot.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create snapshot store: %v", err)
	}

	log := logger.New("error")
	store := catalog.NewStore(snap, log)
	store.Load(context.Background())

	cfg := config.AdminConfig{
		Identity: "admin",
		Secret:   "morphvoid",
		APIKey:   "morph-admin-key",
	}

	return NewService(store, cfg, log), store
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name     string
		identity string
		secret   string
		wantErr  error
	}{
		{
			name:     "valid credentials",
			identity: "admin",
			secret:   "morphvoid",
			wantErr:  nil,
		},
		{
			name:     "wrong secret",
			identity: "admin",
			secret:   "wrong",
			wantErr:  ErrBadCredentials,
		},
		{
			name:     "wrong identity",
			identity: "root",
			secret:   "morphvoid",
			wantErr:  ErrBadCredentials,
		},
		{
			name:     "empty pair",
			identity: "",
			secret:   "",
			wantErr:  ErrBadCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := svc.Login(tt.identity, tt.secret)
			if err != tt.wantErr {
				t.Fatalf("Login error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && key != "morph-admin-key" {
				t.Errorf("Login key = %q, want morph-admin-key", key)
			}
		})
	}
}

func TestCreateProduct(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, CreateProductInput{
		Name:        "MIND FLAYER DIORAMA",
		Description: "A towering shadow for your shelf.",
		Price:       "150",
		Category:    "The Upside Down",
	})
	if err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	// Price input "150" is normalized to two decimals
	if p.Price != "INR 150.00" {
		t.Errorf("price = %q, want INR 150.00", p.Price)
	}
	if !pricing.Amount(p.Price).Equal(decimal.NewFromInt(150)) {
		t.Errorf("normalized price does not evaluate to 150")
	}

	// Defaults applied
	if p.Stock != models.StockAvailable {
		t.Errorf("stock = %s, want AVAILABLE", p.Stock)
	}
	if p.Tag != "NEW DROP" {
		t.Errorf("tag = %q, want NEW DROP", p.Tag)
	}
	if len(p.Images) != 1 || p.Images[0] != "/placeholder.png" {
		t.Errorf("images = %v, want placeholder", p.Images)
	}
	if p.ID == "" {
		t.Error("expected a generated id")
	}

	// Newest first
	if store.Products()[0].ID != p.ID {
		t.Error("new product should be prepended")
	}
}

func TestCreateProduct_MissingFields(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()
	before := len(store.Products())

	tests := []struct {
		name  string
		input CreateProductInput
	}{
		{
			name:  "missing name",
			input: CreateProductInput{Description: "d", Price: "100"},
		},
		{
			name:  "missing description",
			input: CreateProductInput{Name: "n", Price: "100"},
		},
		{
			name:  "missing price",
			input: CreateProductInput{Name: "n", Description: "d"},
		},
		{
			name:  "price with nothing numeric",
			input: CreateProductInput{Name: "n", Description: "d", Price: "Free!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateProduct(ctx, tt.input); err != ErrMissingField {
				t.Errorf("error = %v, want ErrMissingField", err)
			}
			if len(store.Products()) != before {
				t.Error("aborted creation must not add a record")
			}
		})
	}
}

func TestCreateProduct_CapsImagesAtFour(t *testing.T) {
	svc, _ := newTestService(t)

	p, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name:        "DEMODOG PACK",
		Description: "Five heads are worse than one.",
		Price:       "750",
		Images:      []string{"/a.png", "/b.png", "/c.png", "/d.png", "/e.png"},
	})
	if err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	if len(p.Images) != 4 {
		t.Errorf("expected 4 images, got %d", len(p.Images))
	}
	if p.Images[3] != "/d.png" {
		t.Errorf("expected first four images kept, got %v", p.Images)
	}
}

func TestCreateProduct_UniqueIDs(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		p, err := svc.CreateProduct(ctx, CreateProductInput{
			Name:        "PRINT",
			Description: "test",
			Price:       "10",
		})
		if err != nil {
			t.Fatalf("CreateProduct failed: %v", err)
		}
		if seen[p.ID] {
			t.Fatalf("duplicate id generated: %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestCreateCategory_Validation(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateCategory(ctx, "", "/banner.png"); err != ErrMissingField {
		t.Errorf("missing name: error = %v, want ErrMissingField", err)
	}
	if _, err := svc.CreateCategory(ctx, "Hawkins Lab", ""); err != ErrMissingField {
		t.Errorf("missing banner: error = %v, want ErrMissingField", err)
	}

	c, err := svc.CreateCategory(ctx, "Hawkins Lab", "/lab.png")
	if err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}
	if c.Name != "Hawkins Lab" {
		t.Errorf("name = %q", c.Name)
	}
	if !store.CategoryExists("Hawkins Lab") {
		t.Error("category not stored")
	}
}

func TestDeleteCategory_Cascade(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	if _, err := svc.CreateCategory(ctx, "Hawkins Lab", "/lab.png"); err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}
	if _, err := svc.CreateProduct(ctx, CreateProductInput{
		Name: "LAB BADGE", Description: "clip-on", Price: "99", Category: "Hawkins Lab",
	}); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	if err := svc.DeleteCategory(ctx, "Hawkins Lab"); err != nil {
		t.Fatalf("DeleteCategory failed: %v", err)
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

func TestDeleteCategory_RefusesLast(t *testing.T) {
	svc, store := newTestService(t)

	err := svc.DeleteCategory(context.Background(), "The Upside Down")
	if err != catalog.ErrLastCategory {
		t.Fatalf("error = %v, want ErrLastCategory", err)
	}
	if len(store.Categories()) != 1 {
		t.Error("last category must remain")
	}
}
