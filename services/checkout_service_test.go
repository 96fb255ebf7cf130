package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"furniture-shop/cart"
	"furniture-shop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	data []byte
	ok   bool
}

func (s *memStore) Load() ([]byte, bool) { return s.data, s.ok }

func (s *memStore) Save(data []byte) error {
	s.data = data
	s.ok = true
	return nil
}

func (s *memStore) Clear() error {
	s.data = nil
	s.ok = false
	return nil
}

type mockOrderWriter struct {
	orderErr error
	itemsErr error

	createdOrder *models.Order
	createdItems []models.OrderItem
}

func (m *mockOrderWriter) CreateOrder(_ context.Context, order *models.Order) error {
	if m.orderErr != nil {
		return m.orderErr
	}
	order.ID = "order-1"
	order.CreatedAt = time.Now()
	m.createdOrder = order
	return nil
}

func (m *mockOrderWriter) CreateOrderItems(_ context.Context, _ string, items []models.OrderItem) error {
	if m.itemsErr != nil {
		return m.itemsErr
	}
	m.createdItems = items
	return nil
}

type mockMailer struct {
	err  error
	sent int
}

func (m *mockMailer) SendOrderConfirmation(*models.Order) error {
	m.sent++
	return m.err
}

func checkoutRequest() models.CheckoutRequest {
	return models.CheckoutRequest{
		CustomerName:  "Alemu Kebede",
		CustomerEmail: "alemu@example.com",
		CustomerPhone: "+251911223344",
		ShippingAddress: models.ShippingAddress{
			Street:  "Bole Road 12",
			City:    "Addis Ababa",
			State:   "Addis Ababa",
			Zip:     "1000",
			Country: "Ethiopia",
		},
	}
}

func filledCart(t *testing.T) *cart.Manager {
	t.Helper()
	m := cart.NewManager(&memStore{}, cart.NewNotifier())
	m.AddToCart(models.Product{ID: "A", Name: "Toddler Bed", Price: 100}, 1)
	m.AddToCart(models.Product{ID: "B", Name: "Bookshelf", Price: 50}, 3)
	return m
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	svc := NewCheckoutService(&mockOrderWriter{}, nil)
	m := cart.NewManager(&memStore{}, cart.NewNotifier())

	_, err := svc.PlaceOrder(context.Background(), m, checkoutRequest())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderSuccess(t *testing.T) {
	writer := &mockOrderWriter{}
	svc := NewCheckoutService(writer, nil)
	m := filledCart(t)

	order, err := svc.PlaceOrder(context.Background(), m, checkoutRequest())
	require.NoError(t, err)

	// Subtotal 250, tax inclusive x1.08.
	assert.InDelta(t, 270.0, order.TotalAmount, 0.001)
	assert.Equal(t, "confirmed", order.Status)
	assert.Equal(t, "order-1", order.ID)

	require.Len(t, writer.createdItems, 2)
	for _, item := range writer.createdItems {
		assert.InDelta(t, item.UnitPrice*float64(item.Quantity), item.TotalPrice, 0.001)
	}
	assert.InDelta(t, 100.0, writer.createdItems[0].UnitPrice, 0.001)
	assert.Equal(t, 3, writer.createdItems[1].Quantity)

	assert.Empty(t, m.GetCart(), "cart is cleared after both writes succeed")
}

func TestPlaceOrderUsesSnapshotPrices(t *testing.T) {
	writer := &mockOrderWriter{}
	svc := NewCheckoutService(writer, nil)

	m := cart.NewManager(&memStore{}, cart.NewNotifier())
	m.AddToCart(models.Product{ID: "A", Name: "Desk", Price: 80}, 2)

	_, err := svc.PlaceOrder(context.Background(), m, checkoutRequest())
	require.NoError(t, err)

	// Unit price comes from the cart snapshot, not a catalog re-fetch.
	require.Len(t, writer.createdItems, 1)
	assert.InDelta(t, 80.0, writer.createdItems[0].UnitPrice, 0.001)
	assert.InDelta(t, 160.0, writer.createdItems[0].TotalPrice, 0.001)
}

func TestPlaceOrderItemsFailureKeepsCart(t *testing.T) {
	writer := &mockOrderWriter{itemsErr: errors.New("items insert failed")}
	svc := NewCheckoutService(writer, nil)
	m := filledCart(t)

	_, err := svc.PlaceOrder(context.Background(), m, checkoutRequest())
	require.Error(t, err)

	// The order row went through but the cart must not be cleared.
	assert.NotNil(t, writer.createdOrder)
	assert.NotEmpty(t, m.GetCart())
	assert.Equal(t, 4, m.ItemCount())
}

func TestPlaceOrderOrderFailureKeepsCart(t *testing.T) {
	writer := &mockOrderWriter{orderErr: errors.New("order insert failed")}
	svc := NewCheckoutService(writer, nil)
	m := filledCart(t)

	_, err := svc.PlaceOrder(context.Background(), m, checkoutRequest())
	require.Error(t, err)
	assert.NotEmpty(t, m.GetCart())
}

func TestPlaceOrderEmailFailureDoesNotFailCheckout(t *testing.T) {
	writer := &mockOrderWriter{}
	mailer := &mockMailer{err: errors.New("smtp down")}
	svc := NewCheckoutService(writer, mailer)
	m := filledCart(t)

	order, err := svc.PlaceOrder(context.Background(), m, checkoutRequest())
	require.NoError(t, err)
	assert.NotNil(t, order)
	assert.Equal(t, 1, mailer.sent)
	assert.Empty(t, m.GetCart())
}
