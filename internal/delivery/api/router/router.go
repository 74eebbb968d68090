// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// UploadsPath is mounted with the upload size limit instead of the global body limit.
const UploadsPath = "/api/admin/uploads"

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	CatalogHandler      *handler.CatalogHandler
	ReviewHandler       *handler.ReviewHandler
	CartHandler         *handler.CartHandler
	CheckoutHandler     *handler.CheckoutHandler
	ContactHandler      *handler.ContactHandler
	AdminCatalogHandler *handler.AdminCatalogHandler
	AdminStoreHandler   *handler.AdminStoreHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	catalogHandler      *handler.CatalogHandler
	reviewHandler       *handler.ReviewHandler
	cartHandler         *handler.CartHandler
	checkoutHandler     *handler.CheckoutHandler
	contactHandler      *handler.ContactHandler
	adminCatalogHandler *handler.AdminCatalogHandler
	adminStoreHandler   *handler.AdminStoreHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		catalogHandler:      params.CatalogHandler,
		reviewHandler:       params.ReviewHandler,
		cartHandler:         params.CartHandler,
		checkoutHandler:     params.CheckoutHandler,
		contactHandler:      params.ContactHandler,
		adminCatalogHandler: params.AdminCatalogHandler,
		adminStoreHandler:   params.AdminStoreHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
		authGroup.POST("/google", r.userHandler.GoogleLogin)
		authGroup.GET("/me", r.userHandler.Me, r.authMiddleware.Authenticate)
	}

	// Public catalog
	productsGroup := api.Group("/products")
	{
		productsGroup.GET("", r.catalogHandler.ListProducts)
		productsGroup.GET("/filters", r.catalogHandler.ProductFilters)
		productsGroup.GET("/:slug", r.catalogHandler.GetProduct)
		productsGroup.GET("/:slug/related", r.catalogHandler.RelatedProducts)
		productsGroup.GET("/:slug/qr", r.catalogHandler.ProductQRCode)
		productsGroup.GET("/:slug/reviews", r.reviewHandler.ListProductReviews)
		productsGroup.POST("/:slug/reviews", r.reviewHandler.CreateReview, r.authMiddleware.Authenticate)
	}
	api.DELETE("/reviews/:id", r.reviewHandler.DeleteOwnReview, r.authMiddleware.Authenticate)

	api.GET("/categories", r.catalogHandler.ListCategories)
	api.GET("/categories/:slug", r.catalogHandler.GetCategory)
	api.GET("/collections", r.catalogHandler.ListCollections)
	api.GET("/collections/:slug", r.catalogHandler.GetCollection)
	api.GET("/shipping-methods", r.catalogHandler.ListShippingMethods)
	api.GET("/settings/public", r.catalogHandler.PublicSettings)

	// Contact form, throttled per client IP
	api.POST("/contact", r.contactHandler.Submit, middleware.NewRateLimiter(r.config.HTTP.RateLimit))

	// Shopper routes that require authentication
	cartGroup := api.Group("/cart", r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:productId", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:productId", r.cartHandler.RemoveItem)
		cartGroup.POST("/items/:productId/decrement", r.cartHandler.DecrementItem)
	}

	wishlistGroup := api.Group("/wishlist", r.authMiddleware.Authenticate)
	{
		wishlistGroup.GET("", r.cartHandler.GetWishlist)
		wishlistGroup.DELETE("", r.cartHandler.ClearWishlist)
		wishlistGroup.POST("/:productId", r.cartHandler.AddToWishlist)
		wishlistGroup.DELETE("/:productId", r.cartHandler.RemoveFromWishlist)
		wishlistGroup.POST("/:productId/move-to-cart", r.cartHandler.MoveToCart)
	}

	checkoutGroup := api.Group("/checkout", r.authMiddleware.Authenticate)
	{
		checkoutGroup.POST("", r.checkoutHandler.Checkout)
		checkoutGroup.POST("/verify", r.checkoutHandler.VerifyPayment)
	}

	ordersGroup := api.Group("/orders", r.authMiddleware.Authenticate)
	{
		ordersGroup.GET("", r.checkoutHandler.ListMyOrders)
		ordersGroup.GET("/:id", r.checkoutHandler.GetMyOrder)
	}

	// Back-office routes that require the "admin" role
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)                  // First, check if logged in
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin)) // Then, check for the role
	{
		adminGroup.GET("/products", r.adminCatalogHandler.ListProducts)
		adminGroup.POST("/products", r.adminCatalogHandler.CreateProduct)
		adminGroup.GET("/products/:id", r.adminCatalogHandler.GetProduct)
		adminGroup.PUT("/products/:id", r.adminCatalogHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.adminCatalogHandler.DeleteProduct)

		adminGroup.GET("/categories", r.adminCatalogHandler.ListCategories)
		adminGroup.POST("/categories", r.adminCatalogHandler.CreateCategory)
		adminGroup.PUT("/categories/:id", r.adminCatalogHandler.UpdateCategory)
		adminGroup.DELETE("/categories/:id", r.adminCatalogHandler.DeleteCategory)

		adminGroup.GET("/collections", r.adminCatalogHandler.ListCollections)
		adminGroup.POST("/collections", r.adminCatalogHandler.CreateCollection)
		adminGroup.PUT("/collections/:id", r.adminCatalogHandler.UpdateCollection)
		adminGroup.DELETE("/collections/:id", r.adminCatalogHandler.DeleteCollection)

		adminGroup.GET("/reviews", r.reviewHandler.AdminListReviews)
		adminGroup.DELETE("/reviews/:id", r.reviewHandler.AdminDeleteReview)

		adminGroup.GET("/shipping", r.adminStoreHandler.ListShippingMethods)
		adminGroup.POST("/shipping", r.adminStoreHandler.CreateShippingMethod)
		adminGroup.PUT("/shipping/:id", r.adminStoreHandler.UpdateShippingMethod)
		adminGroup.DELETE("/shipping/:id", r.adminStoreHandler.DeleteShippingMethod)

		adminGroup.GET("/settings", r.adminStoreHandler.GetSettings)
		adminGroup.PUT("/settings", r.adminStoreHandler.UpdateSettings)

		adminGroup.GET("/orders", r.adminStoreHandler.ListOrders)
		adminGroup.GET("/orders/:id", r.adminStoreHandler.GetOrder)
		adminGroup.PATCH("/orders/:id/status", r.adminStoreHandler.UpdateOrderStatus)

		adminGroup.GET("/dashboard", r.adminStoreHandler.Dashboard)
		adminGroup.GET("/contact-messages", r.contactHandler.ListMessages)
	}

	uploadsGroup := e.Group(UploadsPath)
	uploadsGroup.Use(r.authMiddleware.Authenticate)
	uploadsGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	uploadsGroup.Use(echomiddleware.BodyLimit(r.config.Storage.MaxUploadSize))
	{
		uploadsGroup.POST("", r.adminStoreHandler.UploadImage)
		uploadsGroup.DELETE("/*", r.adminStoreHandler.DeleteImage)
	}
}
