// Package catalog owns the versioned product and category collections
// and their whole-snapshot persistence.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/morph-studio/storefront-api/internal/catalog/snapshot"
	"github.com/morph-studio/storefront-api/internal/models"
)

// Persistence keys, one per collection
const (
	ProductsKey   = "morph:products"
	CategoriesKey = "morph:categories"
)

var (
	ErrProductNotFound = errors.New("product not found")
	// ErrLastCategory is returned when a delete would leave zero categories
	ErrLastCategory = errors.New("cannot delete the last remaining category")
)

// Store holds the in-memory catalog and writes it through to the
// snapshot store after every mutation
type Store struct {
	mu         sync.RWMutex
	snap       snapshot.Store
	log        *slog.Logger
	products   []models.Product
	categories []models.Category
	loaded     bool
}

// NewStore creates a catalog store backed by the given snapshot store
func NewStore(snap snapshot.Store, log *slog.Logger) *Store {
	return &Store{
		snap: snap,
		log:  log,
	}
}

// Load reads both snapshots, falling back to the built-in seed catalog
// when a snapshot is absent or unparseable. Load never fails the
// caller: bad saved data is equivalent to no saved data.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = loadSnapshot(ctx, s.snap, s.log, ProductsKey, seedProducts)
	s.categories = loadSnapshot(ctx, s.snap, s.log, CategoriesKey, seedCategories)
	s.loaded = true

	s.log.Info("catalog loaded",
		"products", len(s.products),
		"categories", len(s.categories),
	)
}

func loadSnapshot[T any](ctx context.Context, snap snapshot.Store, log *slog.Logger, key string, seed func() []T) []T {
	data, err := snap.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, snapshot.ErrNotFound) {
			log.Warn("snapshot read failed, using seed data", "key", key, "error", err)
		}
		return seed()
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Warn("snapshot unparseable, using seed data", "key", key, "error", err)
		return seed()
	}
	return items
}

// save rewrites both snapshots wholesale. It must be called with the
// write lock held and only after Load has completed, so an early save
// can never clobber unloaded state with empty defaults. Write failures
// are logged, never surfaced.
func (s *Store) save(ctx context.Context) {
	if !s.loaded {
		return
	}

	if data, err := json.Marshal(s.products); err == nil {
		if err := s.snap.Set(ctx, ProductsKey, data); err != nil {
			s.log.Error("failed to persist products", "error", err)
		}
	}
	if data, err := json.Marshal(s.categories); err == nil {
		if err := s.snap.Set(ctx, CategoriesKey, data); err != nil {
			s.log.Error("failed to persist categories", "error", err)
		}
	}
}

// Products returns a copy of all products, newest first
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, len(s.products))
	copy(products, s.products)
	return products
}

// ProductByID returns a product by its ID
func (s *Store) ProductByID(id string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

// Categories returns a copy of all categories
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]models.Category, len(s.categories))
	copy(categories, s.categories)
	return categories
}

// CategoryExists reports whether a category with the given name exists
func (s *Store) CategoryExists(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

// PrependProduct inserts a product at the head of the collection
// (newest-first ordering) and persists
func (s *Store) PrependProduct(ctx context.Context, p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append([]models.Product{p}, s.products...)
	s.save(ctx)
}

// ToggleStock flips a product's stock status. Unknown ids are no-ops.
func (s *Store) ToggleStock(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Stock = s.products[i].Stock.Toggle()
			s.save(ctx)
			return
		}
	}
}

// DeleteProduct removes a product. Unknown ids are no-ops.
func (s *Store) DeleteProduct(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.save(ctx)
			return
		}
	}
}

// AppendCategory adds a category to the end of the collection and persists
func (s *Store) AppendCategory(ctx context.Context, c models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories = append(s.categories, c)
	s.save(ctx)
}

// DeleteCategoryCascade removes a category and every product that
// references it. Deleting the last remaining category is refused with
// ErrLastCategory. Unknown names are no-ops.
func (s *Store) DeleteCategoryCascade(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, c := range s.categories {
		if c.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	if len(s.categories) == 1 {
		return ErrLastCategory
	}

	s.categories = append(s.categories[:idx], s.categories[idx+1:]...)

	kept := s.products[:0]
	for _, p := range s.products {
		if p.Category != name {
			kept = append(kept, p)
		}
	}
	s.products = kept

	s.save(ctx)
	return nil
}
