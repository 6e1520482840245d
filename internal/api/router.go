package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/resourcespen/storefront/docs"
	"github.com/resourcespen/storefront/internal/api/handler"
	"github.com/resourcespen/storefront/internal/api/metrics"
	"github.com/resourcespen/storefront/internal/api/middleware"
	"github.com/resourcespen/storefront/internal/core/domain"
	"github.com/resourcespen/storefront/internal/core/ports"
	"github.com/resourcespen/storefront/internal/infrastructure/http/handlers"
)

// Deps groups everything the router wires into handlers.
type Deps struct {
	Log       zerolog.Logger
	Version   string
	JWTSecret string
	Device    middleware.DeviceConfig

	Sessions   ports.SessionService
	Navigation ports.NavigationService
	Cart       ports.CartService

	Users    ports.UserRepository
	Products ports.ProductRepository
	Orders   ports.OrderRepository
	Content  ports.ContentRepository
	Activity ports.ActivityRepository

	// DB and Redis back the readiness check. Redis is nil with the memory driver.
	DB    *mongo.Database
	Redis *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(middleware.Metrics())

	// --- Health checks, metrics and docs (no auth required) ---
	healthHandler := handlers.NewHealthHandler(d.Version)
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.DB, d.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	sessionHandler := handler.NewSessionHandler(d.Sessions)
	navigationHandler := handler.NewNavigationHandler(d.Navigation)
	cartHandler := handler.NewCartHandler(d.Cart)
	catalogHandler := handler.NewCatalogHandler(d.Products, d.Content)
	adminHandler := handler.NewAdminHandler(d.Users, d.Orders, d.Activity)

	v1 := e.Group("/v1")

	// --- Catalog and permission table (stateless) ---
	v1.GET("/products", catalogHandler.ListProducts)
	v1.GET("/products/:id", catalogHandler.GetProduct)
	v1.GET("/content", catalogHandler.GetContent)
	v1.GET("/permissions/check", navigationHandler.CheckPermission)
	v1.GET("/permissions/:role", navigationHandler.Permissions)

	// --- Device-scoped state ---
	device := v1.Group("", middleware.Device(d.Device))

	device.GET("/session", sessionHandler.Get)
	device.POST("/session/login", sessionHandler.Login)
	device.DELETE("/session", sessionHandler.Logout)

	device.GET("/navigation", navigationHandler.Get)
	device.POST("/navigation", navigationHandler.Navigate)
	device.GET("/render", navigationHandler.Render)

	device.GET("/cart", cartHandler.Get)
	device.POST("/cart/items", cartHandler.Add)
	device.PATCH("/cart/items/:id", cartHandler.UpdateQuantity)
	device.DELETE("/cart/items/:id", cartHandler.Remove)
	device.PUT("/cart/panel", cartHandler.SetPanel)
	device.POST("/cart/checkout", cartHandler.Checkout)

	// --- Bearer-authenticated ---
	authMiddleware := middleware.Auth(d.JWTSecret)

	me := v1.Group("/me", authMiddleware)
	me.GET("/orders", adminHandler.MyOrders, middleware.RequirePermission(domain.PermViewOwnOrders))

	admin := v1.Group("/admin", authMiddleware)
	admin.GET("/users", adminHandler.Users, middleware.RequirePermission(domain.PermManageUsers))
	admin.GET("/orders", adminHandler.Orders, middleware.RequirePermission(domain.PermManageOrders))
	admin.GET("/activity", adminHandler.Activity, middleware.RequirePermission(domain.PermAccessAdminDashboard))

	return e
}
