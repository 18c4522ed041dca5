// Package cart holds the in-memory, session-scoped shopping carts.
// Carts are never persisted; a reload starts a fresh session.
package cart

import (
	"sync"
	"time"

	"github.com/morph-studio/storefront-api/internal/models"
	"github.com/morph-studio/storefront-api/internal/pricing"
	"github.com/shopspring/decimal"
)

// Cart is an ordered sequence of selected products. Duplicates are
// permitted and occupy separate positions.
type Cart struct {
	mu    sync.Mutex
	items []models.CartItem
}

// New creates an empty cart
func New() *Cart {
	return &Cart{}
}

// Add appends a product to the end of the cart. No deduplication and
// no stock check: callers gate on stock status before adding.
func (c *Cart) Add(p models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = append(c.items, models.CartItem{
		Product: p,
		AddedAt: time.Now().UTC(),
	})
}

// RemoveAt deletes the item at the given zero-based position,
// preserving the order of the rest. Out-of-range positions are no-ops.
func (c *Cart) RemoveAt(position int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if position < 0 || position >= len(c.items) {
		return
	}
	c.items = append(c.items[:position], c.items[position+1:]...)
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
}

// Items returns a copy of the cart's current contents
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]models.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// Len returns the number of items in the cart
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

// Total aggregates the cart's item prices
func (c *Cart) Total() decimal.Decimal {
	return pricing.Total(c.Items())
}
