package repositories

import (
	"context"

	"furniture-shop/config"
	"furniture-shop/models"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// CreateOrder inserts the order row and fills in its generated id and
// timestamp. Order items are written separately by CreateOrderItems; the
// two writes are not one database transaction, which mirrors the hosted
// backend this storefront was built against.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (customer_name, customer_email, customer_phone, shipping_address, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return config.DB.QueryRow(ctx, query,
		order.CustomerName, order.CustomerEmail, order.CustomerPhone,
		order.ShippingAddress, order.TotalAmount, order.Status,
	).Scan(&order.ID, &order.CreatedAt)
}

func (r *OrderRepository) CreateOrderItems(ctx context.Context, orderID string, items []models.OrderItem) error {
	query := `
		INSERT INTO order_items (order_id, product_id, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, item := range items {
		_, err := config.DB.Exec(ctx, query,
			orderID, item.ProductID, item.Quantity, item.UnitPrice, item.TotalPrice)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := config.DB.QueryRow(ctx,
		`SELECT id, customer_name, customer_email, COALESCE(customer_phone, ''), shipping_address, total_amount, status, created_at
		 FROM orders WHERE id = $1`, id).Scan(
		&order.ID, &order.CustomerName, &order.CustomerEmail, &order.CustomerPhone,
		&order.ShippingAddress, &order.TotalAmount, &order.Status, &order.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	rows, err := config.DB.Query(ctx,
		`SELECT oi.id, oi.order_id, oi.product_id, COALESCE(p.name, ''), oi.quantity, oi.unit_price, oi.total_price
		 FROM order_items oi
		 LEFT JOIN products p ON oi.product_id = p.id
		 WHERE oi.order_id = $1
		 ORDER BY oi.created_at`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	order.Items = []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.ProductName,
			&item.Quantity, &item.UnitPrice, &item.TotalPrice); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	return &order, rows.Err()
}
