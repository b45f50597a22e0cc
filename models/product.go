package models

// Product is a catalog entry. The mock catalog is fixed at seed time; admin
// create/update/delete calls synthesize responses without touching it.
type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`
	Discount      int     `json:"discount"` // percent off, 0-100
	Rating        float64 `json:"rating"`
	Reviews       int     `json:"reviews"`
	Image         string  `json:"image"`
	Description   string  `json:"description"`
	InStock       bool    `json:"inStock"`
	Unit          string  `json:"unit"`
}

// Category groups products for storefront navigation.
type Category struct {
	Name         string `json:"name"`
	Image        string `json:"image"`
	ProductCount int    `json:"productCount"`
}
