package controllers

import (
	"errors"
	"log"

	"furniture-shop/cart"
	"furniture-shop/models"
	"furniture-shop/services"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	Checkout *services.CheckoutService
	Carts    *cart.Registry
}

func NewCheckoutController(checkout *services.CheckoutService, carts *cart.Registry) *CheckoutController {
	return &CheckoutController{Checkout: checkout, Carts: carts}
}

// @Summary Submit checkout
// @Description Place an order from the current cart; the cart is cleared only after the order and its items are recorded
// @Tags Checkout
// @Accept json
// @Produce json
// @Param checkout body models.CheckoutRequest true "Customer and shipping details"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Submit(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Name, email and shipping address are required"})
		return
	}

	m := ctrl.Carts.Manager(c.GetString("cart_id"))

	order, err := ctrl.Checkout.PlaceOrder(c.Request.Context(), m, req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			c.JSON(400, gin.H{"success": false, "message": "Cart is empty"})
			return
		}
		log.Println("Checkout failed:", err)
		c.JSON(500, gin.H{"success": false, "message": "There was an error processing your order. Please try again."})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Order created successfully", "data": order})
}
