package mockapi

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polockprog2/FreshMart-sub000/models"
)

func TestCreateAssignsSequentialIDs(t *testing.T) {
	repo := NewOrderRepoWith(nil, 0)
	year := time.Now().Year()

	first := repo.Create(models.Order{CustomerEmail: "a@b.com"})
	second := repo.Create(models.Order{CustomerEmail: "a@b.com"})

	assert.Equal(t, fmt.Sprintf("ORD-%d-001", year), first.ID)
	assert.Equal(t, fmt.Sprintf("ORD-%d-002", year), second.ID)
	assert.False(t, first.Date.IsZero())

	// Creation genuinely appends: both orders are readable back.
	got, err := repo.Get(first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, 2, repo.Count())
}

func TestUpdateStatusDoesNotPersist(t *testing.T) {
	repo := NewOrderRepo(0)

	ack, err := repo.UpdateStatus("ORD-2026-001", models.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, ack.Status)

	// The acknowledgement lies: the stored order keeps its old status.
	got, err := repo.Get("ORD-2026-001")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, got.Status)
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo := NewOrderRepo(0)

	_, err := repo.UpdateStatus("ORD-1999-999", models.OrderStatusShipped)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListFiltersByStatusAndSearch(t *testing.T) {
	repo := NewOrderRepo(0)

	data, _ := repo.List(OrderQuery{Page: 1, Limit: 50, Status: "in-transit"})
	require.Len(t, data, 1)
	assert.Equal(t, "ORD-2026-002", data[0].ID)

	data, _ = repo.List(OrderQuery{Page: 1, Limit: 50, Search: "guest@"})
	require.Len(t, data, 1)
	assert.Equal(t, "guest@freshmart.com", data[0].CustomerEmail)

	data, _ = repo.List(OrderQuery{Page: 1, Limit: 50, Search: "ord-2026-001"})
	require.Len(t, data, 1)
	assert.Equal(t, "ORD-2026-001", data[0].ID)
}

func TestListNewestFirst(t *testing.T) {
	repo := NewOrderRepo(0)

	data, meta := repo.List(OrderQuery{Page: 1, Limit: 50})
	require.Equal(t, 3, meta.Total)
	assert.Equal(t, "ORD-2026-003", data[0].ID)
	assert.Equal(t, "ORD-2026-001", data[2].ID)
}

func TestByUser(t *testing.T) {
	repo := NewOrderRepo(0)

	orders := repo.ByUser(1)
	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, 1, o.UserID)
	}

	assert.Empty(t, repo.ByUser(42))
}

func TestRecent(t *testing.T) {
	repo := NewOrderRepo(0)

	recent := repo.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "ORD-2026-003", recent[0].ID)
	assert.Equal(t, "ORD-2026-002", recent[1].ID)
}
