package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polockprog2/FreshMart-sub000/mockapi"
	"github.com/polockprog2/FreshMart-sub000/storage"
	"github.com/polockprog2/FreshMart-sub000/store"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_API_KEY", "test-admin-key")
	gin.SetMode(gin.TestMode)

	st := storage.NewMemory()
	products := mockapi.NewProductRepo(0)
	orders := mockapi.NewOrderRepo(0)
	users := mockapi.NewUserRepo(0)

	r := gin.New()
	SetupRoutes(r, Deps{
		Products:  products,
		Orders:    orders,
		Users:     users,
		Dashboard: mockapi.NewDashboard(products, orders, users, 0),
		Cart:      store.NewCart(st),
		Auth:      store.NewAuth(users, st),
		Banners:   store.NewBanners(st),
		Language:  store.NewLanguage(st),
	})
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProductListingEndpoint(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/products?page=1&limit=10&category=Dairy", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []map[string]any `json:"data"`
		Meta mockapi.Meta     `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data)
	assert.Equal(t, 1, resp.Meta.Page)
	assert.Equal(t, len(resp.Data), resp.Meta.Total)
}

func TestLoginReturnsTokenWithoutPassword(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"email":    "demo@example.com",
		"password": "password123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string         `json:"token"`
		User  map[string]any `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.NotContains(t, resp.User, "password")
	assert.Equal(t, "demo@example.com", resp.User["email"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"email":    "demo@example.com",
		"password": "wrong",
	}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}

func TestCartCheckoutFlow(t *testing.T) {
	r := newTestServer(t)

	// Login to get a token.
	w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{
		"email":    "demo@example.com",
		"password": "password123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	authed := map[string]string{"Authorization": login.Token}

	// Cart starts empty; checkout must fail.
	w = doJSON(t, r, http.MethodPost, "/orders/place", gin.H{
		"deliveryAddress": gin.H{"street": "42 Garden Lane", "city": "Springfield", "state": "IL", "zip": "62701"},
		"paymentMethod":   "card",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Add two products.
	w = doJSON(t, r, http.MethodPost, "/user/cart/", gin.H{"product_id": 1, "quantity": 2}, authed)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, "/user/cart/", gin.H{"product_id": 9, "quantity": 1}, authed)
	require.Equal(t, http.StatusOK, w.Code)

	var cart struct {
		Items  []map[string]any `json:"items"`
		Totals struct {
			Subtotal    float64 `json:"subtotal"`
			Tax         float64 `json:"tax"`
			DeliveryFee float64 `json:"deliveryFee"`
			GrandTotal  float64 `json:"grandTotal"`
		} `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Len(t, cart.Items, 2)
	assert.InDelta(t, cart.Totals.Subtotal+cart.Totals.Tax+cart.Totals.DeliveryFee, cart.Totals.GrandTotal, 1e-9)

	// Unknown products are rejected before touching the cart.
	w = doJSON(t, r, http.MethodPost, "/user/cart/", gin.H{"product_id": 9999, "quantity": 1}, authed)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Place the order.
	w = doJSON(t, r, http.MethodPost, "/orders/place", gin.H{
		"deliveryAddress": gin.H{"street": "42 Garden Lane", "city": "Springfield", "state": "IL", "zip": "62701"},
		"paymentMethod":   "card",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var placed struct {
		Data struct {
			ID    string  `json:"id"`
			Total float64 `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &placed))
	assert.Regexp(t, `^ORD-\d{4}-\d{3}$`, placed.Data.ID)

	// Checkout cleared the cart.
	w = doJSON(t, r, http.MethodGet, "/user/cart/", nil, authed)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Empty(t, cart.Items)
}

func TestUserRoutesRequireToken(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/user/cart/", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesRequireAPIKey(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/admin/dashboard", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/admin/dashboard", nil, map[string]string{"X-API-KEY": "test-admin-key"})
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		TotalProducts int `json:"totalProducts"`
		WeeklySales   []struct {
			Day string `json:"day"`
		} `json:"weeklySales"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 24, stats.TotalProducts)
	assert.Len(t, stats.WeeklySales, 7)
}

func TestLanguageEndpoint(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPut, "/language", gin.H{"code": "DE"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/language", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "DE", resp.Code)

	w = doJSON(t, r, http.MethodPut, "/language", gin.H{"code": "XX"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
