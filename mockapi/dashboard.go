package mockapi

import (
	"time"

	"github.com/polockprog2/FreshMart-sub000/models"
)

// DailySales is one point in the dashboard's weekly sales series.
type DailySales struct {
	Day   string  `json:"day"`
	Sales float64 `json:"sales"`
}

// DashboardStats aggregates the admin KPIs.
type DashboardStats struct {
	TotalRevenue  float64        `json:"totalRevenue"`
	TotalOrders   int            `json:"totalOrders"`
	TotalProducts int            `json:"totalProducts"`
	TotalUsers    int            `json:"totalUsers"`
	WeeklySales   []DailySales   `json:"weeklySales"`
	RecentOrders  []models.Order `json:"recentOrders"`
}

// Dashboard computes KPIs over the other repositories. The weekly series is
// a fixed fixture, not derived from the order collection.
type Dashboard struct {
	products *ProductRepo
	orders   *OrderRepo
	users    *UserRepo
	latency  time.Duration
}

func NewDashboard(products *ProductRepo, orders *OrderRepo, users *UserRepo, latency time.Duration) *Dashboard {
	return &Dashboard{products: products, orders: orders, users: users, latency: latency}
}

// Stats gathers revenue across all orders, collection sizes, the fixed
// weekly sales series, and the 5 most recent orders.
func (d *Dashboard) Stats() DashboardStats {
	time.Sleep(d.latency)

	all, _ := d.orders.List(OrderQuery{Page: 1, Limit: d.orders.Count()})
	var revenue float64
	for _, o := range all {
		revenue += o.Total
	}

	return DashboardStats{
		TotalRevenue:  revenue,
		TotalOrders:   d.orders.Count(),
		TotalProducts: len(d.products.All()),
		TotalUsers:    d.users.Count(),
		WeeklySales:   weeklySales,
		RecentOrders:  d.orders.Recent(5),
	}
}
