package controllers

import (
	"context"

	"furniture-shop/repositories"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	repo *repositories.OrderRepository
}

func NewOrderController() *OrderController {
	return &OrderController{repo: repositories.NewOrderRepository()}
}

// @Summary Get order by ID
// @Description Get an order with its items, for the order confirmation page
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	id := c.Param("id")

	order, err := ctrl.repo.GetOrderByID(context.Background(), id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Order not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Order retrieved", "data": order})
}
