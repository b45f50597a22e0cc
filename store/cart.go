package store

import (
	"log"
	"sync"

	"github.com/polockprog2/FreshMart-sub000/models"
	"github.com/polockprog2/FreshMart-sub000/pricing"
	"github.com/polockprog2/FreshMart-sub000/storage"
)

// Cart is the single source of truth for the shopping cart. Every mutation
// persists the full line list under the "cart" key; totals are derived on
// demand and never cached. Snapshot writes are last-wins: two concurrent
// sessions sharing one snapshot will clobber each other, which matches the
// storefront's accepted cross-tab behavior.
type Cart struct {
	mu      sync.Mutex
	lines   []models.CartLine
	storage storage.Store
	notifier
}

// NewCart rehydrates the cart from an existing snapshot when one parses;
// otherwise it starts empty.
func NewCart(st storage.Store) *Cart {
	c := &Cart{storage: st}
	var lines []models.CartLine
	if ok, err := st.Get(storage.KeyCart, &lines); err != nil {
		log.Printf("⚠️ Failed to load cart snapshot: %v", err)
	} else if ok {
		c.lines = lines
	}
	return c
}

// Add merges quantity into an existing line for the same product id, or
// appends a new line copying the product's display fields. Quantity is not
// validated here, matching the add contract.
func (c *Cart) Add(p models.Product, quantity int) {
	c.mu.Lock()
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity += quantity
			c.persistLocked()
			c.mu.Unlock()
			c.notify()
			return
		}
	}
	c.lines = append(c.lines, models.CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Category:  p.Category,
		Unit:      p.Unit,
		Quantity:  quantity,
	})
	c.persistLocked()
	c.mu.Unlock()
	c.notify()
}

// Remove drops the line for productID; no-op if absent.
func (c *Cart) Remove(productID int) {
	c.mu.Lock()
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			c.persistLocked()
			c.mu.Unlock()
			c.notify()
			return
		}
	}
	c.mu.Unlock()
}

// SetQuantity sets a line's quantity exactly. A quantity of zero or less
// removes the line instead.
func (c *Cart) SetQuantity(productID, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	c.mu.Lock()
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			c.persistLocked()
			c.mu.Unlock()
			c.notify()
			return
		}
	}
	c.mu.Unlock()
}

// Clear empties the cart; called after a successful checkout.
func (c *Cart) Clear() {
	c.mu.Lock()
	c.lines = nil
	c.persistLocked()
	c.mu.Unlock()
	c.notify()
}

// Lines returns a copy of the current line list.
func (c *Cart) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := make([]models.CartLine, len(c.lines))
	copy(cp, c.lines)
	return cp
}

// Totals derives the current pricing summary.
func (c *Cart) Totals() models.CartTotals {
	c.mu.Lock()
	defer c.mu.Unlock()
	return pricing.Totals(c.lines)
}

// Count is the total quantity across lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return pricing.ItemCount(c.lines)
}

// Subscribe registers a callback invoked after every mutation.
func (c *Cart) Subscribe(fn func()) func() {
	return c.subscribe(fn)
}

func (c *Cart) persistLocked() {
	lines := c.lines
	if lines == nil {
		lines = []models.CartLine{}
	}
	if err := c.storage.Put(storage.KeyCart, lines); err != nil {
		log.Printf("❌ Failed to persist cart snapshot: %v", err)
	}
}
