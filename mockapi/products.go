package mockapi

import (
	"sync"
	"time"

	"github.com/polockprog2/FreshMart-sub000/models"
	"github.com/polockprog2/FreshMart-sub000/pricing"
)

// ProductQuery carries the catalog listing parameters.
type ProductQuery struct {
	Page     int
	Limit    int
	Search   string
	Category string
	Sort     string // price-low | price-high | name-az | newest (default)
}

// ProductRepo serves the seeded catalog.
type ProductRepo struct {
	mu       sync.Mutex
	products []models.Product
	latency  time.Duration
}

// NewProductRepo seeds the default grocery catalog.
func NewProductRepo(latency time.Duration) *ProductRepo {
	return NewProductRepoWith(seedProducts(), latency)
}

// NewProductRepoWith builds a repo over a caller-supplied catalog. Tests use
// it to control the fixture set.
func NewProductRepoWith(products []models.Product, latency time.Duration) *ProductRepo {
	return &ProductRepo{products: products, latency: latency}
}

// List filters, sorts, and paginates the catalog.
func (r *ProductRepo) List(q ProductQuery) ([]models.Product, Meta) {
	time.Sleep(r.latency)
	r.mu.Lock()
	defer r.mu.Unlock()

	var filtered []models.Product
	for _, p := range r.products {
		if pricing.MatchesSearch(p, q.Search) && pricing.MatchesCategory(p, q.Category) {
			filtered = append(filtered, p)
		}
	}
	pricing.SortProducts(filtered, q.Sort)

	page, limit := normalizePage(q.Page, q.Limit)
	return paginate(filtered, page, limit), pageMeta(page, limit, len(filtered))
}

// Get scans for a product by id.
func (r *ProductRepo) Get(id int) (models.Product, error) {
	time.Sleep(r.latency)
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

// Categories aggregates the catalog into named categories with counts.
func (r *ProductRepo) Categories() []models.Category {
	time.Sleep(r.latency)
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[string]int)
	images := make(map[string]string)
	var order []string
	for _, p := range r.products {
		if _, seen := counts[p.Category]; !seen {
			order = append(order, p.Category)
			images[p.Category] = p.Image
		}
		counts[p.Category]++
	}
	categories := make([]models.Category, 0, len(order))
	for _, name := range order {
		categories = append(categories, models.Category{
			Name:         name,
			Image:        images[name],
			ProductCount: counts[name],
		})
	}
	return categories
}

// All returns a copy of the full catalog, for exports and stats.
func (r *ProductRepo) All() []models.Product {
	time.Sleep(r.latency)
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]models.Product, len(r.products))
	copy(cp, r.products)
	return cp
}

// Create synthesizes a created product without touching the backing
// collection; the new "product" will not appear in later listings.
func (r *ProductRepo) Create(p models.Product) models.Product {
	time.Sleep(r.latency)
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = len(r.products) + 1
	return p
}

// Update echoes the merged product back without persisting it.
func (r *ProductRepo) Update(id int, fields models.Product) (models.Product, error) {
	time.Sleep(r.latency)
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.ID == id {
			fields.ID = id
			return fields, nil
		}
	}
	return models.Product{}, ErrNotFound
}

// Delete acknowledges without removing anything from the collection.
func (r *ProductRepo) Delete(id int) error {
	time.Sleep(r.latency)
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.ID == id {
			return nil
		}
	}
	return ErrNotFound
}
