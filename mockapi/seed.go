package mockapi

import (
	"time"

	"github.com/polockprog2/FreshMart-sub000/models"
)

// Seeded fixtures. Demo data only; see the users seed for the well-known
// demo credentials.

func seedProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Organic Bananas", Category: "Fruits", Price: 1.99, OriginalPrice: 2.49, Discount: 20, Rating: 4.5, Reviews: 128, Image: "https://images.freshmart.test/products/bananas.jpg", Description: "Sweet organic bananas, sold by the bunch.", InStock: true, Unit: "bunch"},
		{ID: 2, Name: "Red Apples", Category: "Fruits", Price: 3.49, OriginalPrice: 3.49, Rating: 4.7, Reviews: 203, Image: "https://images.freshmart.test/products/apples.jpg", Description: "Crisp red apples from local orchards.", InStock: true, Unit: "kg"},
		{ID: 3, Name: "Fresh Strawberries", Category: "Fruits", Price: 4.99, OriginalPrice: 6.49, Discount: 23, Rating: 4.8, Reviews: 167, Image: "https://images.freshmart.test/products/strawberries.jpg", Description: "Juicy strawberries, 500g punnet.", InStock: true, Unit: "punnet"},
		{ID: 4, Name: "Seedless Grapes", Category: "Fruits", Price: 5.29, OriginalPrice: 5.29, Rating: 4.4, Reviews: 89, Image: "https://images.freshmart.test/products/grapes.jpg", Description: "Green seedless grapes.", InStock: true, Unit: "kg"},
		{ID: 5, Name: "Baby Spinach", Category: "Vegetables", Price: 2.79, OriginalPrice: 3.29, Discount: 15, Rating: 4.6, Reviews: 94, Image: "https://images.freshmart.test/products/spinach.jpg", Description: "Washed baby spinach leaves, 200g bag.", InStock: true, Unit: "bag"},
		{ID: 6, Name: "Roma Tomatoes", Category: "Vegetables", Price: 2.49, OriginalPrice: 2.49, Rating: 4.3, Reviews: 156, Image: "https://images.freshmart.test/products/tomatoes.jpg", Description: "Vine-ripened roma tomatoes.", InStock: true, Unit: "kg"},
		{ID: 7, Name: "Organic Carrots", Category: "Vegetables", Price: 1.89, OriginalPrice: 1.89, Rating: 4.5, Reviews: 112, Image: "https://images.freshmart.test/products/carrots.jpg", Description: "Organic carrots, 1kg bag.", InStock: true, Unit: "bag"},
		{ID: 8, Name: "Broccoli Crown", Category: "Vegetables", Price: 2.29, OriginalPrice: 2.99, Discount: 23, Rating: 4.2, Reviews: 67, Image: "https://images.freshmart.test/products/broccoli.jpg", Description: "Fresh broccoli crowns.", InStock: false, Unit: "each"},
		{ID: 9, Name: "Whole Milk", Category: "Dairy", Price: 3.99, OriginalPrice: 3.99, Rating: 4.7, Reviews: 245, Image: "https://images.freshmart.test/products/milk.jpg", Description: "Fresh whole milk, 2L bottle.", InStock: true, Unit: "bottle"},
		{ID: 10, Name: "Greek Yogurt", Category: "Dairy", Price: 4.49, OriginalPrice: 5.49, Discount: 18, Rating: 4.8, Reviews: 189, Image: "https://images.freshmart.test/products/yogurt.jpg", Description: "Plain Greek yogurt, 500g tub.", InStock: true, Unit: "tub"},
		{ID: 11, Name: "Cheddar Cheese", Category: "Dairy", Price: 6.99, OriginalPrice: 6.99, Rating: 4.6, Reviews: 134, Image: "https://images.freshmart.test/products/cheddar.jpg", Description: "Mature cheddar block, 400g.", InStock: true, Unit: "block"},
		{ID: 12, Name: "Free-Range Eggs", Category: "Dairy", Price: 5.49, OriginalPrice: 5.49, Rating: 4.9, Reviews: 312, Image: "https://images.freshmart.test/products/eggs.jpg", Description: "A dozen free-range eggs.", InStock: true, Unit: "dozen"},
		{ID: 13, Name: "Sourdough Loaf", Category: "Bakery", Price: 4.29, OriginalPrice: 4.29, Rating: 4.8, Reviews: 178, Image: "https://images.freshmart.test/products/sourdough.jpg", Description: "Stone-baked sourdough loaf.", InStock: true, Unit: "loaf"},
		{ID: 14, Name: "Butter Croissants", Category: "Bakery", Price: 3.99, OriginalPrice: 4.99, Discount: 20, Rating: 4.7, Reviews: 142, Image: "https://images.freshmart.test/products/croissants.jpg", Description: "Pack of 4 all-butter croissants.", InStock: true, Unit: "pack"},
		{ID: 15, Name: "Whole Wheat Bread", Category: "Bakery", Price: 2.99, OriginalPrice: 2.99, Rating: 4.4, Reviews: 98, Image: "https://images.freshmart.test/products/wheat-bread.jpg", Description: "Sliced whole wheat sandwich loaf.", InStock: true, Unit: "loaf"},
		{ID: 16, Name: "Chicken Breast", Category: "Meat", Price: 8.99, OriginalPrice: 10.99, Discount: 18, Rating: 4.5, Reviews: 221, Image: "https://images.freshmart.test/products/chicken.jpg", Description: "Skinless chicken breast fillets, 1kg.", InStock: true, Unit: "kg"},
		{ID: 17, Name: "Ground Beef", Category: "Meat", Price: 7.49, OriginalPrice: 7.49, Rating: 4.3, Reviews: 156, Image: "https://images.freshmart.test/products/beef.jpg", Description: "Lean ground beef, 500g.", InStock: true, Unit: "pack"},
		{ID: 18, Name: "Atlantic Salmon", Category: "Meat", Price: 12.99, OriginalPrice: 14.99, Discount: 13, Rating: 4.7, Reviews: 187, Image: "https://images.freshmart.test/products/salmon.jpg", Description: "Fresh salmon fillets, 400g.", InStock: false, Unit: "pack"},
		{ID: 19, Name: "Orange Juice", Category: "Beverages", Price: 3.49, OriginalPrice: 3.49, Rating: 4.6, Reviews: 203, Image: "https://images.freshmart.test/products/oj.jpg", Description: "Freshly squeezed orange juice, 1L.", InStock: true, Unit: "carton"},
		{ID: 20, Name: "Sparkling Water", Category: "Beverages", Price: 4.99, OriginalPrice: 5.99, Discount: 17, Rating: 4.4, Reviews: 76, Image: "https://images.freshmart.test/products/sparkling.jpg", Description: "12-pack of sparkling mineral water.", InStock: true, Unit: "pack"},
		{ID: 21, Name: "Cold Brew Coffee", Category: "Beverages", Price: 5.99, OriginalPrice: 5.99, Rating: 4.8, Reviews: 167, Image: "https://images.freshmart.test/products/coldbrew.jpg", Description: "Ready-to-drink cold brew, 750ml.", InStock: true, Unit: "bottle"},
		{ID: 22, Name: "Sea Salt Chips", Category: "Snacks", Price: 2.49, OriginalPrice: 2.99, Discount: 17, Rating: 4.2, Reviews: 143, Image: "https://images.freshmart.test/products/chips.jpg", Description: "Kettle-cooked sea salt potato chips.", InStock: true, Unit: "bag"},
		{ID: 23, Name: "Mixed Nuts", Category: "Snacks", Price: 7.99, OriginalPrice: 7.99, Rating: 4.6, Reviews: 118, Image: "https://images.freshmart.test/products/nuts.jpg", Description: "Roasted unsalted mixed nuts, 500g.", InStock: true, Unit: "jar"},
		{ID: 24, Name: "Basmati Rice", Category: "Pantry", Price: 6.49, OriginalPrice: 7.99, Discount: 19, Rating: 4.7, Reviews: 234, Image: "https://images.freshmart.test/products/rice.jpg", Description: "Aged basmati rice, 2kg bag.", InStock: true, Unit: "bag"},
	}
}

func seedUsers() []models.User {
	return []models.User{
		{
			ID:        1,
			Email:     "demo@example.com",
			Password:  "password123",
			FirstName: "Demo",
			LastName:  "User",
			Phone:     "+1 555 0100",
			Addresses: []models.Address{
				{ID: 1, Type: "home", Street: "42 Garden Lane", City: "Springfield", State: "IL", Zip: "62701", IsDefault: true},
			},
			CreatedAt: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        2,
			Email:     "admin@freshmart.com",
			Password:  "admin123",
			FirstName: "Site",
			LastName:  "Admin",
			Phone:     "+1 555 0101",
			IsAdmin:   true,
			Addresses: []models.Address{},
			CreatedAt: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		},
	}
}

func seedOrders() []models.Order {
	return []models.Order{
		{
			ID:            "ORD-2026-001",
			UserID:        1,
			CustomerEmail: "demo@example.com",
			Date:          time.Date(2026, 8, 14, 10, 30, 0, 0, time.UTC),
			Status:        models.OrderStatusDelivered,
			Items: []models.OrderItem{
				{ProductID: 9, Name: "Whole Milk", Quantity: 2, Price: 3.99, Image: "https://images.freshmart.test/products/milk.jpg"},
				{ProductID: 13, Name: "Sourdough Loaf", Quantity: 1, Price: 4.29, Image: "https://images.freshmart.test/products/sourdough.jpg"},
			},
			Subtotal:          12.27,
			Tax:               0.98,
			DeliveryFee:       4.99,
			Total:             18.24,
			DeliveryAddress:   models.Address{Street: "42 Garden Lane", City: "Springfield", State: "IL", Zip: "62701"},
			PaymentMethod:     "card",
			EstimatedDelivery: time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "ORD-2026-002",
			UserID:        1,
			CustomerEmail: "demo@example.com",
			Date:          time.Date(2026, 8, 25, 16, 5, 0, 0, time.UTC),
			Status:        models.OrderStatusInTransit,
			Items: []models.OrderItem{
				{ProductID: 16, Name: "Chicken Breast", Quantity: 1, Price: 8.99, Image: "https://images.freshmart.test/products/chicken.jpg"},
				{ProductID: 24, Name: "Basmati Rice", Quantity: 2, Price: 6.49, Image: "https://images.freshmart.test/products/rice.jpg"},
				{ProductID: 5, Name: "Baby Spinach", Quantity: 1, Price: 2.79, Image: "https://images.freshmart.test/products/spinach.jpg"},
			},
			Subtotal:          24.76,
			Tax:               1.98,
			DeliveryFee:       4.99,
			Total:             31.73,
			DeliveryAddress:   models.Address{Street: "42 Garden Lane", City: "Springfield", State: "IL", Zip: "62701"},
			PaymentMethod:     "cod",
			EstimatedDelivery: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "ORD-2026-003",
			CustomerEmail: "guest@freshmart.com",
			Date:          time.Date(2026, 8, 29, 9, 45, 0, 0, time.UTC),
			Status:        models.OrderStatusProcessing,
			Items: []models.OrderItem{
				{ProductID: 3, Name: "Fresh Strawberries", Quantity: 3, Price: 4.99, Image: "https://images.freshmart.test/products/strawberries.jpg"},
			},
			Subtotal:          14.97,
			Tax:               1.2,
			DeliveryFee:       4.99,
			Total:             21.16,
			DeliveryAddress:   models.Address{Street: "7 Elm Street", City: "Springfield", State: "IL", Zip: "62704"},
			PaymentMethod:     "card",
			EstimatedDelivery: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

// weeklySales is the fixed series backing the dashboard chart.
var weeklySales = []DailySales{
	{Day: "Mon", Sales: 412.50},
	{Day: "Tue", Sales: 389.20},
	{Day: "Wed", Sales: 501.75},
	{Day: "Thu", Sales: 476.10},
	{Day: "Fri", Sales: 689.40},
	{Day: "Sat", Sales: 834.90},
	{Day: "Sun", Sales: 725.60},
}
