package models

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	// Pointer so a real zero passes binding; zero quantity removes the line.
	Quantity *int `json:"quantity" binding:"required"`
}

type CheckoutRequest struct {
	CustomerName    string          `json:"customer_name" binding:"required"`
	CustomerEmail   string          `json:"customer_email" binding:"required,email"`
	CustomerPhone   string          `json:"customer_phone"`
	ShippingAddress ShippingAddress `json:"shipping_address" binding:"required"`
}
