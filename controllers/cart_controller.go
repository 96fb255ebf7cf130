package controllers

import (
	"context"
	"io"

	"furniture-shop/cart"
	"furniture-shop/models"
	"furniture-shop/repositories"

	"github.com/gin-gonic/gin"
)

// ProductFinder resolves the product snapshot stored into a cart line.
type ProductFinder interface {
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
}

type CartController struct {
	Catalog ProductFinder
	Carts   *cart.Registry
}

func NewCartController(carts *cart.Registry) *CartController {
	return &CartController{
		Catalog: repositories.NewProductRepository(),
		Carts:   carts,
	}
}

func (ctrl *CartController) manager(c *gin.Context) *cart.Manager {
	return ctrl.Carts.Manager(c.GetString("cart_id"))
}

func cartSummary(m *cart.Manager) gin.H {
	return gin.H{
		"items":      m.GetCart(),
		"subtotal":   m.Total(),
		"item_count": m.ItemCount(),
	}
}

// @Summary Get cart
// @Description Get the current cart lines, subtotal and unit count
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	c.JSON(200, gin.H{"success": true, "message": "Cart retrieved", "data": cartSummary(ctrl.manager(c))})
}

// @Summary Add item to cart
// @Description Add a product to the cart; repeated adds accumulate quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body models.AddCartItemRequest true "Item to add"
// @Success 201 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "product_id is required"})
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	product, err := ctrl.Catalog.GetProductByID(c.Request.Context(), req.ProductID)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	m := ctrl.manager(c)
	m.AddToCart(*product, req.Quantity)

	c.JSON(201, gin.H{"success": true, "message": "Item added to cart", "data": cartSummary(m)})
}

// @Summary Update cart item quantity
// @Description Set the quantity of a cart line; zero or below removes it
// @Tags Cart
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param item body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.Response
// @Router /cart/items/{productId} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "quantity is required"})
		return
	}

	m := ctrl.manager(c)
	m.UpdateQuantity(c.Param("productId"), *req.Quantity)

	c.JSON(200, gin.H{"success": true, "message": "Cart updated", "data": cartSummary(m)})
}

// @Summary Remove cart item
// @Description Remove a product from the cart; removing an absent product is not an error
// @Tags Cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{productId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	m := ctrl.manager(c)
	m.RemoveFromCart(c.Param("productId"))

	c.JSON(200, gin.H{"success": true, "message": "Item removed from cart", "data": cartSummary(m)})
}

// @Summary Clear cart
// @Description Empty the cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	m := ctrl.manager(c)
	m.ClearCart()

	c.JSON(200, gin.H{"success": true, "message": "Cart cleared", "data": cartSummary(m)})
}

// @Summary Stream cart change events
// @Description Server-sent payload-less cart-updated signals; clients re-fetch the cart on each one
// @Tags Cart
// @Produce text/event-stream
// @Success 200
// @Router /cart/events [get]
func (ctrl *CartController) StreamEvents(c *gin.Context) {
	m := ctrl.manager(c)

	// Buffered by one: rapid mutations coalesce, which is safe because the
	// signal carries no payload and listeners re-read the cart anyway.
	signals := make(chan struct{}, 1)
	unsubscribe := m.Notifier().Subscribe(func() {
		select {
		case signals <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-signals:
			c.SSEvent("cart-updated", "")
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
