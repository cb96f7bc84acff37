// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront-gateway/internal/client"
	"github.com/your-org/storefront-gateway/internal/config"
	"github.com/your-org/storefront-gateway/internal/domain/cart"
	"github.com/your-org/storefront-gateway/internal/infrastructure/redis"
	"github.com/your-org/storefront-gateway/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-gateway/internal/interfaces/http/middleware"
)

// SetupRoutes wires every route group onto the API router
func SetupRoutes(rg *gin.RouterGroup, clients *client.Clients, store *cart.Store, cache *redis.Client, cfg *config.Config, logger *logrus.Logger) {
	setupAuthRoutes(rg, clients, store, cfg, logger)
	setupCatalogRoutes(rg, clients, cache, cfg, logger)
	setupCartRoutes(rg, clients, store, cfg, logger)
	setupOrderRoutes(rg, clients, cfg, logger)
	setupAdminRoutes(rg, clients, cfg, logger)
}

func setupAuthRoutes(rg *gin.RouterGroup, clients *client.Clients, store *cart.Store, cfg *config.Config, logger *logrus.Logger) {
	authHandler := handlers.NewAuthHandler(clients, store, cfg, logger)

	auth := rg.Group("/auth")
	{
		// Public auth endpoints
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)

		// Protected auth endpoints
		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.POST("/logout", authHandler.Logout)
			protected.GET("/profile", authHandler.GetProfile)
			protected.PUT("/profile", authHandler.UpdateProfile)
		}
	}

	users := rg.Group("/users")
	users.Use(middleware.AuthMiddleware(cfg))
	{
		users.GET("/addresses", authHandler.ListAddresses)
		users.POST("/addresses", authHandler.CreateAddress)
		users.PUT("/addresses/:id", authHandler.UpdateAddress)
		users.DELETE("/addresses/:id", authHandler.DeleteAddress)
	}
}

func setupCatalogRoutes(rg *gin.RouterGroup, clients *client.Clients, cache *redis.Client, cfg *config.Config, logger *logrus.Logger) {
	productHandler := handlers.NewProductHandler(clients, cfg, logger)
	catalogHandler := handlers.NewCatalogHandler(clients, cache, cfg, logger)

	products := rg.Group("/products")
	products.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.GET("/:id/variant", productHandler.GetProductVariant)
	}

	rg.GET("/categories", catalogHandler.GetCategories)
	rg.GET("/regions", catalogHandler.GetRegions)
}

func setupCartRoutes(rg *gin.RouterGroup, clients *client.Clients, store *cart.Store, cfg *config.Config, logger *logrus.Logger) {
	cartHandler := handlers.NewCartHandler(clients, store, cfg, logger)

	// Cart routes work with guest sessions or authenticated users
	cartGroup := rg.Group("/cart")
	cartGroup.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.GET("/count", cartHandler.GetCartCount)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PUT("/items/:id", cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
	}
}

func setupOrderRoutes(rg *gin.RouterGroup, clients *client.Clients, cfg *config.Config, logger *logrus.Logger) {
	orderHandler := handlers.NewOrderHandler(clients, cfg, logger)

	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(cfg))
	{
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/number/:number", orderHandler.GetOrderByNumber)
		orders.PUT("/:id/cancel", orderHandler.CancelOrder)
	}
}

func setupAdminRoutes(rg *gin.RouterGroup, clients *client.Clients, cfg *config.Config, logger *logrus.Logger) {
	orderHandler := handlers.NewOrderHandler(clients, cfg, logger)

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.Use(middleware.AdminMiddleware())
	{
		orders := admin.Group("/orders")
		{
			orders.PUT("/:id/status", orderHandler.AdminUpdateStatus)
			orders.PUT("/:id/payment/validate", orderHandler.AdminValidatePayment)
			orders.PUT("/:id/payment/refund", orderHandler.AdminRefundPayment)
		}
	}
}
