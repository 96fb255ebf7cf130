package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"furniture-shop/cart"
	"furniture-shop/models"
	"furniture-shop/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockOrderWriter struct {
	orderErr error
	itemsErr error
}

func (m *mockOrderWriter) CreateOrder(_ context.Context, order *models.Order) error {
	if m.orderErr != nil {
		return m.orderErr
	}
	order.ID = "order-1"
	order.CreatedAt = time.Now()
	return nil
}

func (m *mockOrderWriter) CreateOrderItems(_ context.Context, _ string, _ []models.OrderItem) error {
	return m.itemsErr
}

func newCheckoutRouter(t *testing.T, writer *mockOrderWriter) (*gin.Engine, *cart.Registry) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := cart.NewRegistry(t.TempDir())
	ctrl := NewCheckoutController(services.NewCheckoutService(writer, nil), registry)

	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set("cart_id", "test-cart") })
	router.POST("/checkout", ctrl.Submit)
	return router, registry
}

func validCheckoutBody() gin.H {
	return gin.H{
		"customer_name":  "Alemu Kebede",
		"customer_email": "alemu@example.com",
		"customer_phone": "+251911223344",
		"shipping_address": gin.H{
			"street":  "Bole Road 12",
			"city":    "Addis Ababa",
			"state":   "Addis Ababa",
			"zip":     "1000",
			"country": "Ethiopia",
		},
	}
}

func postCheckout(t *testing.T, router *gin.Engine, body gin.H) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, "/checkout", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCheckoutSuccessClearsCart(t *testing.T) {
	router, registry := newCheckoutRouter(t, &mockOrderWriter{})

	m := registry.Manager("test-cart")
	m.AddToCart(models.Product{ID: "A", Name: "Toddler Bed", Price: 100}, 2)

	w := postCheckout(t, router, validCheckoutBody())
	assert.Equal(t, http.StatusCreated, w.Code)

	var payload struct {
		Data models.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.InDelta(t, 216.0, payload.Data.TotalAmount, 0.001)
	assert.Equal(t, "confirmed", payload.Data.Status)

	assert.Empty(t, m.GetCart())
}

func TestCheckoutEmptyCartIs400(t *testing.T) {
	router, _ := newCheckoutRouter(t, &mockOrderWriter{})

	w := postCheckout(t, router, validCheckoutBody())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutMissingFieldsIs400(t *testing.T) {
	router, registry := newCheckoutRouter(t, &mockOrderWriter{})
	registry.Manager("test-cart").AddToCart(models.Product{ID: "A", Price: 100}, 1)

	w := postCheckout(t, router, gin.H{"customer_name": "Alemu Kebede"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutItemsFailureKeepsCartAndIsGeneric(t *testing.T) {
	router, registry := newCheckoutRouter(t, &mockOrderWriter{itemsErr: errors.New("items insert failed")})

	m := registry.Manager("test-cart")
	m.AddToCart(models.Product{ID: "A", Name: "Toddler Bed", Price: 100}, 2)

	w := postCheckout(t, router, validCheckoutBody())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Please try again")
	assert.NotContains(t, w.Body.String(), "items insert failed")

	assert.NotEmpty(t, m.GetCart(), "cart must survive a failed checkout")
}
