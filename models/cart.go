package models

// CartLine is one product entry in the shopping cart. Product fields are
// copied at add time so later catalog edits never reprice an open cart.
type CartLine struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Category  string  `json:"category"`
	Unit      string  `json:"unit"`
	Quantity  int     `json:"quantity"`
}

// CartTotals is the derived pricing summary for the current cart state.
type CartTotals struct {
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	DeliveryFee float64 `json:"deliveryFee"`
	GrandTotal  float64 `json:"grandTotal"`
	Count       int     `json:"count"`
}
