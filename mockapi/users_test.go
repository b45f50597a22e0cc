package mockapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polockprog2/FreshMart-sub000/models"
)

func TestAuthenticateDemoUser(t *testing.T) {
	repo := NewUserRepo(0)

	user, err := repo.Authenticate("demo@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.Empty(t, user.Password)
	assert.False(t, user.IsAdmin)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	repo := NewUserRepo(0)

	_, err := repo.Authenticate("demo@example.com", "wrong")
	require.Error(t, err)
	assert.NotEmpty(t, err.Error())
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateAssignsNextID(t *testing.T) {
	repo := NewUserRepo(0)

	created := repo.Create(models.User{Email: "new@example.com", Password: "pw123456"})
	assert.Equal(t, 3, created.ID)
	assert.Empty(t, created.Password)
	assert.NotNil(t, created.Addresses)

	// No uniqueness check: a duplicate email is accepted.
	dup := repo.Create(models.User{Email: "new@example.com", Password: "pw123456"})
	assert.Equal(t, 4, dup.ID)
}

func TestAllStripsPasswords(t *testing.T) {
	repo := NewUserRepo(0)

	for _, u := range repo.All() {
		assert.Empty(t, u.Password)
	}
	assert.Equal(t, 2, repo.Count())
}

func TestDashboardStats(t *testing.T) {
	products := NewProductRepo(0)
	orders := NewOrderRepo(0)
	users := NewUserRepo(0)
	dashboard := NewDashboard(products, orders, users, 0)

	stats := dashboard.Stats()

	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 24, stats.TotalProducts)
	assert.Equal(t, 2, stats.TotalUsers)
	assert.InDelta(t, 18.24+31.73+21.16, stats.TotalRevenue, 1e-9)
	assert.Len(t, stats.WeeklySales, 7)
	assert.Len(t, stats.RecentOrders, 3) // fewer than 5 orders seeded
	assert.Equal(t, "ORD-2026-003", stats.RecentOrders[0].ID)
}
