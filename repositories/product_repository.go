package repositories

import (
	"context"
	"fmt"
	"strings"

	"furniture-shop/config"
	"furniture-shop/models"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// ProductFilter mirrors the storefront's listing controls: search text,
// category slug, age range, stock/featured toggles, price bounds and sort.
type ProductFilter struct {
	Search   string
	Category string
	AgeRange string
	Featured bool
	InStock  bool
	MinPrice float64
	MaxPrice float64
	Sort     string
	Page     int
	Limit    int
}

const productColumns = `
	p.id, p.code_name, p.name, p.description, p.price, p.category_id,
	COALESCE(p.images, '[]'::jsonb), COALESCE(p.dimensions, '{}'::jsonb),
	p.age_range, p.in_stock, p.featured, p.created_at,
	c.id, c.name, c.slug, COALESCE(c.description, ''), COALESCE(c.image_url, ''), c.created_at`

func scanProduct(scan func(dest ...any) error) (models.Product, error) {
	var p models.Product
	var c models.Category
	err := scan(
		&p.ID, &p.CodeName, &p.Name, &p.Description, &p.Price, &p.CategoryID,
		&p.Images, &p.Dimensions,
		&p.AgeRange, &p.InStock, &p.Featured, &p.CreatedAt,
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.ImageURL, &c.CreatedAt,
	)
	if err != nil {
		return p, err
	}
	p.Category = &c
	return p, nil
}

func (r *ProductRepository) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	query := `SELECT id, name, slug, COALESCE(description, ''), COALESCE(image_url, ''), created_at
	          FROM categories ORDER BY name`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Slug, &cat.Description, &cat.ImageURL, &cat.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (r *ProductRepository) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	query := `SELECT id, name, slug, COALESCE(description, ''), COALESCE(image_url, ''), created_at
	          FROM categories WHERE slug = $1`

	var cat models.Category
	err := config.DB.QueryRow(ctx, query, slug).Scan(
		&cat.ID, &cat.Name, &cat.Slug, &cat.Description, &cat.ImageURL, &cat.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *ProductRepository) GetProducts(ctx context.Context, filter ProductFilter) ([]models.Product, int, error) {
	where := []string{}
	args := []interface{}{}
	paramIndex := 1

	if filter.Search != "" {
		where = append(where, fmt.Sprintf("(p.name ILIKE $%d OR p.description ILIKE $%d)", paramIndex, paramIndex))
		args = append(args, "%"+filter.Search+"%")
		paramIndex++
	}

	if filter.Category != "" {
		where = append(where, fmt.Sprintf("c.slug = $%d", paramIndex))
		args = append(args, filter.Category)
		paramIndex++
	}

	if filter.AgeRange != "" {
		where = append(where, fmt.Sprintf("p.age_range ILIKE $%d", paramIndex))
		args = append(args, "%"+filter.AgeRange+"%")
		paramIndex++
	}

	if filter.Featured {
		where = append(where, "p.featured = true")
	}

	if filter.InStock {
		where = append(where, "p.in_stock = true")
	}

	if filter.MinPrice > 0 {
		where = append(where, fmt.Sprintf("p.price >= $%d", paramIndex))
		args = append(args, filter.MinPrice)
		paramIndex++
	}

	if filter.MaxPrice > 0 {
		where = append(where, fmt.Sprintf("p.price <= $%d", paramIndex))
		args = append(args, filter.MaxPrice)
		paramIndex++
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM products p JOIN categories c ON p.category_id = c.id" + whereClause
	if err := config.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	orderBy := " ORDER BY p.name ASC"
	switch filter.Sort {
	case "price_asc":
		orderBy = " ORDER BY p.price ASC"
	case "price_desc":
		orderBy = " ORDER BY p.price DESC"
	case "newest":
		orderBy = " ORDER BY p.created_at DESC"
	}

	offset := (filter.Page - 1) * filter.Limit
	query := "SELECT " + productColumns +
		" FROM products p JOIN categories c ON p.category_id = c.id" +
		whereClause + orderBy +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", paramIndex, paramIndex+1)
	args = append(args, filter.Limit, offset)

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

// GetFeaturedProducts backs the home page collection: featured, in stock,
// at most eight.
func (r *ProductRepository) GetFeaturedProducts(ctx context.Context) ([]models.Product, error) {
	query := "SELECT " + productColumns +
		" FROM products p JOIN categories c ON p.category_id = c.id" +
		" WHERE p.featured = true AND p.in_stock = true ORDER BY p.created_at DESC LIMIT 8"

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	query := "SELECT " + productColumns +
		" FROM products p JOIN categories c ON p.category_id = c.id WHERE p.id = $1"

	p, err := scanProduct(config.DB.QueryRow(ctx, query, id).Scan)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
