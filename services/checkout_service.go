package services

import (
	"context"
	"errors"
	"log"

	"furniture-shop/cart"
	"furniture-shop/models"
)

var ErrEmptyCart = errors.New("cart is empty")

// OrderWriter is the slice of the order repository checkout needs.
type OrderWriter interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	CreateOrderItems(ctx context.Context, orderID string, items []models.OrderItem) error
}

// Mailer sends the post-checkout confirmation. Sending is best effort.
type Mailer interface {
	SendOrderConfirmation(order *models.Order) error
}

type CheckoutService struct {
	orders OrderWriter
	mailer Mailer
}

// NewCheckoutService accepts a nil mailer; checkout then skips the
// confirmation email.
func NewCheckoutService(orders OrderWriter, mailer Mailer) *CheckoutService {
	return &CheckoutService{orders: orders, mailer: mailer}
}

// PlaceOrder reads the cart once, snapshots it into an order with a
// tax-inclusive total (subtotal x 1.08), writes the order row and then its
// item rows, and clears the cart only after both writes succeed. If either
// write fails the cart is left intact so the customer can retry; an items
// failure after a successful order write can leave an orphaned order row.
func (s *CheckoutService) PlaceOrder(ctx context.Context, m *cart.Manager, req models.CheckoutRequest) (*models.Order, error) {
	items := m.GetCart()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Product.Price * float64(item.Quantity)
	}

	order := &models.Order{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		TotalAmount:     subtotal * 1.08,
		Status:          "confirmed",
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			OrderID:     order.ID,
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.Product.Price,
			TotalPrice:  item.Product.Price * float64(item.Quantity),
		})
	}

	if err := s.orders.CreateOrderItems(ctx, order.ID, orderItems); err != nil {
		return nil, err
	}
	order.Items = orderItems

	m.ClearCart()

	if s.mailer != nil {
		if err := s.mailer.SendOrderConfirmation(order); err != nil {
			log.Println("Failed to send order confirmation email:", err)
		}
	}

	return order, nil
}
