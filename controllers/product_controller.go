package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"furniture-shop/models"
	"furniture-shop/repositories"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	repo *repositories.ProductRepository
}

func NewProductController() *ProductController {
	return &ProductController{repo: repositories.NewProductRepository()}
}

func getProductCacheKey(page, limit int) string {
	return fmt.Sprintf("products_list_p%d_l%d", page, limit)
}

// @Summary Get all categories
// @Description Get list of all categories, ordered by name
// @Tags Categories
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *ProductController) GetCategories(c *gin.Context) {
	categories, err := ctrl.repo.GetAllCategories(context.Background())
	if err != nil {
		log.Println("Failed to fetch categories:", err)
		categories = []models.Category{}
	}

	c.JSON(200, gin.H{"success": true, "message": "Categories retrieved", "data": categories})
}

// @Summary Get category by slug
// @Description Get a single category by its URL slug
// @Tags Categories
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /categories/{slug} [get]
func (ctrl *ProductController) GetCategoryBySlug(c *gin.Context) {
	slug := c.Param("slug")

	category, err := ctrl.repo.GetCategoryBySlug(context.Background(), slug)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Category not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Category retrieved", "data": category})
}

// @Summary Get products
// @Description Get paginated products joined with their category; supports search, category, age range, stock/featured and price filters
// @Tags Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Param search query string false "Search in name and description"
// @Param category query string false "Category slug"
// @Param age_range query string false "Age range label"
// @Param featured query bool false "Featured only"
// @Param in_stock query bool false "In stock only"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param sort query string false "Sort order" Enums(name, price_asc, price_desc, newest)
// @Success 200 {object} models.PaginationResponse
// @Router /products [get]
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 12
	}
	if limit > 100 {
		limit = 100
	}

	featured, _ := strconv.ParseBool(c.DefaultQuery("featured", "false"))
	inStock, _ := strconv.ParseBool(c.DefaultQuery("in_stock", "false"))
	minPrice, _ := strconv.ParseFloat(c.Query("min_price"), 64)
	maxPrice, _ := strconv.ParseFloat(c.Query("max_price"), 64)

	filter := repositories.ProductFilter{
		Search:   strings.TrimSpace(c.Query("search")),
		Category: strings.TrimSpace(c.Query("category")),
		AgeRange: strings.TrimSpace(c.Query("age_range")),
		Featured: featured,
		InStock:  inStock,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Sort:     c.Query("sort"),
		Page:     page,
		Limit:    limit,
	}

	// Only the plain listing is cached; filtered results go to the database.
	plain := filter.Search == "" && filter.Category == "" && filter.AgeRange == "" &&
		!filter.Featured && !filter.InStock && filter.MinPrice == 0 && filter.MaxPrice == 0 &&
		filter.Sort == ""

	cacheKey := getProductCacheKey(page, limit)
	ctx := context.Background()

	if plain && models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			c.Data(200, "application/json", []byte(cached))
			return
		}
	}

	products, total, err := ctrl.repo.GetProducts(ctx, filter)
	if err != nil {
		log.Println("Failed to fetch products:", err)
		products = []models.Product{}
		total = 0
	}

	response := models.PaginationResponse{
		Success: true,
		Message: "Products retrieved",
		Data:    products,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}

	if plain && models.RedisClient != nil {
		jsonData, _ := json.Marshal(response)
		models.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
	}

	c.JSON(200, response)
}

// @Summary Get featured products
// @Description Get featured, in-stock products for the home page (limited to 8)
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /products/featured [get]
func (ctrl *ProductController) GetFeaturedProducts(c *gin.Context) {
	products, err := ctrl.repo.GetFeaturedProducts(context.Background())
	if err != nil {
		log.Println("Failed to fetch featured products:", err)
		products = []models.Product{}
	}

	c.JSON(200, gin.H{"success": true, "message": "Featured products retrieved", "data": products})
}

// @Summary Get product by ID
// @Description Get product details joined with its category
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id := c.Param("id")

	product, err := ctrl.repo.GetProductByID(context.Background(), id)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product retrieved", "data": product})
}
