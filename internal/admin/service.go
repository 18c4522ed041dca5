// Package admin implements the validated catalog-mutation workflow
// gated by the static credential check.
package admin

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/morph-studio/storefront-api/internal/catalog"
	"github.com/morph-studio/storefront-api/internal/config"
	"github.com/morph-studio/storefront-api/internal/models"
	"github.com/morph-studio/storefront-api/internal/pricing"
)

const (
	defaultTag       = "NEW DROP"
	placeholderImage = "/placeholder.png"
	// A product carries at most four images
	maxProductImages = 4
)

var (
	ErrBadCredentials = errors.New("invalid identity or secret")
	ErrMissingField   = errors.New("required field is missing")
)

// CreateProductInput carries the admin form fields for a new product
type CreateProductInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Dimensions  string   `json:"dimensions"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
}

// Service runs admin operations against the catalog store
type Service struct {
	store *catalog.Store
	cfg   config.AdminConfig
	log   *slog.Logger

	mu     sync.Mutex
	lastID int64
}

// NewService creates the admin service
func NewService(store *catalog.Store, cfg config.AdminConfig, log *slog.Logger) *Service {
	return &Service{
		store: store,
		cfg:   cfg,
		log:   log,
	}
}

// Login compares against the single configured identity/secret pair
// and returns the admin API key on success. This is a placeholder
// trust boundary: no hashing, no sessions, no rate limiting.
func (s *Service) Login(identity, secret string) (string, error) {
	idOK := subtle.ConstantTimeCompare([]byte(identity), []byte(s.cfg.Identity)) == 1
	secretOK := subtle.ConstantTimeCompare([]byte(secret), []byte(s.cfg.Secret)) == 1
	if !idOK || !secretOK {
		return "", ErrBadCredentials
	}
	return s.cfg.APIKey, nil
}

// CreateProduct validates the input, fills in defaults, and prepends
// the new product so the catalog stays newest-first
func (s *Service) CreateProduct(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	if input.Name == "" || input.Description == "" || input.Price == "" {
		return nil, ErrMissingField
	}

	normalized, ok := pricing.Normalize(input.Price)
	if !ok {
		return nil, ErrMissingField
	}

	images := input.Images
	if len(images) == 0 {
		images = []string{placeholderImage}
	} else if len(images) > maxProductImages {
		images = images[:maxProductImages]
	}

	p := models.Product{
		ID:          s.nextID(),
		Name:        input.Name,
		Price:       "INR " + normalized,
		Tag:         defaultTag,
		Description: input.Description,
		Dimensions:  input.Dimensions,
		Stock:       models.StockAvailable,
		Category:    input.Category,
		Images:      images,
	}

	s.store.PrependProduct(ctx, p)
	s.log.Info("product created", "id", p.ID, "name", p.Name, "price", p.Price)
	return &p, nil
}

// ToggleStock flips a product between AVAILABLE and OUT_OF_STOCK.
// Unknown ids are silent no-ops.
func (s *Service) ToggleStock(ctx context.Context, id string) {
	s.store.ToggleStock(ctx, id)
}

// DeleteProduct removes a product. Unknown ids are silent no-ops.
func (s *Service) DeleteProduct(ctx context.Context, id string) {
	s.store.DeleteProduct(ctx, id)
}

// CreateCategory requires both a name and a banner
func (s *Service) CreateCategory(ctx context.Context, name, banner string) (*models.Category, error) {
	if name == "" || banner == "" {
		return nil, ErrMissingField
	}

	c := models.Category{Name: name, Banner: banner}
	s.store.AppendCategory(ctx, c)
	s.log.Info("category created", "name", name)
	return &c, nil
}

// DeleteCategory removes a category and cascades to every product
// referencing it. The last remaining category cannot be deleted.
func (s *Service) DeleteCategory(ctx context.Context, name string) error {
	if err := s.store.DeleteCategoryCascade(ctx, name); err != nil {
		return err
	}
	s.log.Info("category deleted", "name", name)
	return nil
}

// nextID generates a unique, monotonically increasing time-based id.
// Two creations landing on the same millisecond get consecutive ids.
func (s *Service) nextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UnixMilli()
	if now <= s.lastID {
		now = s.lastID + 1
	}
	s.lastID = now
	return strconv.FormatInt(now, 10)
}
