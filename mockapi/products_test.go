package mockapi

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polockprog2/FreshMart-sub000/models"
)

func fixtureCatalog(n int) []models.Product {
	products := make([]models.Product, 0, n)
	for i := 1; i <= n; i++ {
		products = append(products, models.Product{
			ID:       i,
			Name:     fmt.Sprintf("Item %02d", i),
			Category: "Pantry",
			Price:    float64(i),
			InStock:  true,
		})
	}
	return products
}

func TestListPaginationMeta(t *testing.T) {
	repo := NewProductRepoWith(fixtureCatalog(23), 0)

	data, meta := repo.List(ProductQuery{Page: 2, Limit: 10})

	assert.Len(t, data, 10)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.Limit)
	assert.Equal(t, 23, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	// Last page holds the remainder.
	data, _ = repo.List(ProductQuery{Page: 3, Limit: 10})
	assert.Len(t, data, 3)

	// Past the end is empty, not an error.
	data, meta = repo.List(ProductQuery{Page: 4, Limit: 10})
	assert.Empty(t, data)
	assert.Equal(t, 3, meta.TotalPages)
}

func TestListDefaultsToNewestFirst(t *testing.T) {
	repo := NewProductRepoWith(fixtureCatalog(5), 0)

	data, _ := repo.List(ProductQuery{Page: 1, Limit: 5})
	require.Len(t, data, 5)
	assert.Equal(t, 5, data[0].ID)
	assert.Equal(t, 1, data[4].ID)
}

func TestListSearchByNameOrID(t *testing.T) {
	repo := NewProductRepo(0)

	data, meta := repo.List(ProductQuery{Page: 1, Limit: 50, Search: "milk"})
	require.Equal(t, 1, meta.Total)
	assert.Equal(t, "Whole Milk", data[0].Name)

	data, meta = repo.List(ProductQuery{Page: 1, Limit: 50, Search: "9"})
	require.Equal(t, 1, meta.Total)
	assert.Equal(t, 9, data[0].ID)
}

func TestListCategoryFilter(t *testing.T) {
	repo := NewProductRepo(0)

	data, _ := repo.List(ProductQuery{Page: 1, Limit: 50, Category: "Dairy"})
	require.NotEmpty(t, data)
	for _, p := range data {
		assert.Equal(t, "Dairy", p.Category)
	}
}

func TestGetNotFound(t *testing.T) {
	repo := NewProductRepo(0)

	_, err := repo.Get(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdminMutationsDoNotTouchCatalog(t *testing.T) {
	repo := NewProductRepoWith(fixtureCatalog(5), 0)

	created := repo.Create(models.Product{Name: "Phantom"})
	assert.Equal(t, 6, created.ID)

	updated, err := repo.Update(3, models.Product{Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)

	require.NoError(t, repo.Delete(2))

	// The listing is unchanged: the mock layer acknowledges mutations
	// without applying them.
	_, meta := repo.List(ProductQuery{Page: 1, Limit: 50})
	assert.Equal(t, 5, meta.Total)

	got, err := repo.Get(3)
	require.NoError(t, err)
	assert.Equal(t, "Item 03", got.Name)

	_, err = repo.Get(2)
	assert.NoError(t, err) // "deleted" product is still there
}

func TestCategoriesAggregation(t *testing.T) {
	repo := NewProductRepo(0)

	categories := repo.Categories()
	require.NotEmpty(t, categories)

	total := 0
	for _, c := range categories {
		assert.NotEmpty(t, c.Name)
		assert.Positive(t, c.ProductCount)
		total += c.ProductCount
	}
	assert.Equal(t, len(repo.All()), total)
}
