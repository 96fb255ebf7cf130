package routes

import (
	"log"

	"furniture-shop/cart"
	"furniture-shop/config"
	"furniture-shop/controllers"
	"furniture-shop/middleware"
	"furniture-shop/models"
	"furniture-shop/repositories"
	"furniture-shop/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

func SetupRoutes(router *gin.Engine) {
	carts := cart.NewRegistry(config.AppConfig.CartDir)

	mailer, err := models.NewEmailService()
	if err != nil {
		log.Println("Email disabled:", err)
	}

	productCtrl := controllers.NewProductController()
	cartCtrl := controllers.NewCartController(carts)
	orderCtrl := controllers.NewOrderController()

	checkoutSvc := newCheckoutService(mailer)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc, carts)

	// The swagger UI is only mounted when a generated spec has been
	// registered; run `swag init` to produce the docs package.
	if _, err := swag.ReadDoc(); err == nil {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/categories", productCtrl.GetCategories)
	router.GET("/categories/:slug", productCtrl.GetCategoryBySlug)
	router.GET("/products", productCtrl.GetProducts)
	router.GET("/products/featured", productCtrl.GetFeaturedProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)
	router.GET("/orders/:id", orderCtrl.GetOrderByID)

	session := router.Group("/")
	session.Use(middleware.CartSessionMiddleware())
	{
		session.GET("/cart", cartCtrl.GetCart)
		session.GET("/cart/events", cartCtrl.StreamEvents)
		session.POST("/cart/items", cartCtrl.AddItem)
		session.PATCH("/cart/items/:productId", cartCtrl.UpdateItem)
		session.DELETE("/cart/items/:productId", cartCtrl.RemoveItem)
		session.DELETE("/cart", cartCtrl.ClearCart)
		session.POST("/checkout", checkoutCtrl.Submit)
	}
}

// mailer is nil when SMTP is not configured; pass an untyped nil so the
// service skips the confirmation email.
func newCheckoutService(mailer *models.EmailService) *services.CheckoutService {
	if mailer == nil {
		return services.NewCheckoutService(repositories.NewOrderRepository(), nil)
	}
	return services.NewCheckoutService(repositories.NewOrderRepository(), mailer)
}
