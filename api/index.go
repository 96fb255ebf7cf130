package api

import (
	"net/http"
	"os"
	"sync"

	"furniture-shop/config"
	"furniture-shop/middleware"
	"furniture-shop/models"
	"furniture-shop/routes"

	"github.com/gin-gonic/gin"
)

var (
	router *gin.Engine
	once   sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		config.LoadConfig()
		config.InitDB()
		models.InitRedis()
		os.MkdirAll(config.AppConfig.CartDir, os.ModePerm)

		router = gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())

		routes.SetupRoutes(router)
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	router.ServeHTTP(w, r)
}
