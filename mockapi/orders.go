package mockapi

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/polockprog2/FreshMart-sub000/models"
)

// OrderQuery carries the order listing parameters.
type OrderQuery struct {
	Page   int
	Limit  int
	Status string
	Search string // matches order id or customer email, case-insensitive
}

// OrderRepo serves the order collection. Create is the only call that writes
// back; UpdateStatus acknowledges without persisting, matching the mock
// contract. Orders do not survive a restart.
type OrderRepo struct {
	mu      sync.Mutex
	orders  []models.Order
	latency time.Duration
}

func NewOrderRepo(latency time.Duration) *OrderRepo {
	return NewOrderRepoWith(seedOrders(), latency)
}

func NewOrderRepoWith(orders []models.Order, latency time.Duration) *OrderRepo {
	return &OrderRepo{orders: orders, latency: latency}
}

// List filters by status and free text, newest first.
func (r *OrderRepo) List(q OrderQuery) ([]models.Order, Meta) {
	time.Sleep(r.latency)
	r.mu.Lock()
	defer r.mu.Unlock()

	var filtered []models.Order
	for i := len(r.orders) - 1; i >= 0; i-- {
		o := r.orders[i]
		if q.Status != "" && string(o.Status) != q.Status {
			continue
		}
		if !matchesOrderSearch(o, q.Search) {
			continue
		}
		filtered = append(filtered, o)
	}

	page, limit := normalizePage(q.Page, q.Limit)
	return paginate(filtered, page, limit), pageMeta(page, limit, len(filtered))
}

func matchesOrderSearch(o models.Order, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(o.ID), query) ||
		strings.Contains(strings.ToLower(o.CustomerEmail), query)
}

// Get scans for an order by id.
func (r *OrderRepo) Get(id string) (models.Order, error) {
	time.Sleep(r.latency)
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrNotFound
}

// ByUser returns a user's orders, newest first.
func (r *OrderRepo) ByUser(userID int) []models.Order {
	time.Sleep(r.latency)
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Order
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].UserID == userID {
			out = append(out, r.orders[i])
		}
	}
	return out
}

// UpdateStatus acknowledges the change without writing it back; a later Get
// still sees the old status.
func (r *OrderRepo) UpdateStatus(id string, status models.OrderStatus) (models.Order, error) {
	time.Sleep(r.latency)
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID == id {
			o.Status = status
			return o, nil
		}
	}
	return models.Order{}, ErrNotFound
}

// Create appends the order, assigning the next sequential id in the form
// ORD-YYYY-NNN.
func (r *OrderRepo) Create(order models.Order) models.Order {
	time.Sleep(r.latency)
	r.mu.Lock()
	defer r.mu.Unlock()
	order.ID = fmt.Sprintf("ORD-%d-%03d", time.Now().Year(), len(r.orders)+1)
	if order.Date.IsZero() {
		order.Date = time.Now()
	}
	r.orders = append(r.orders, order)
	return order
}

// Recent returns up to n most recent orders, for the dashboard.
func (r *OrderRepo) Recent(n int) []models.Order {
	time.Sleep(r.latency)
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Order
	for i := len(r.orders) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, r.orders[i])
	}
	return out
}

// Count reports the current collection size.
func (r *OrderRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
}
