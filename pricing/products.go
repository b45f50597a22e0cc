package pricing

import (
	"sort"
	"strconv"
	"strings"

	"github.com/polockprog2/FreshMart-sub000/models"
)

// Product sort keys accepted by the catalog listing.
const (
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortNameAZ    = "name-az"
	SortNewest    = "newest"
)

// MatchesSearch reports whether a product matches a free-text query:
// case-insensitive substring on the name, or an exact numeric id.
func MatchesSearch(p models.Product, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), strings.ToLower(query)) {
		return true
	}
	if id, err := strconv.Atoi(query); err == nil && id == p.ID {
		return true
	}
	return false
}

// MatchesCategory is an exact category filter; an empty filter matches all.
func MatchesCategory(p models.Product, category string) bool {
	return category == "" || p.Category == category
}

// SortProducts orders products in place by the given sort key. Unknown keys
// fall back to newest (descending id).
func SortProducts(products []models.Product, key string) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortNameAZ:
		sort.SliceStable(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID > products[j].ID
		})
	}
}
