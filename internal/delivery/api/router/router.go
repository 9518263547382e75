// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"locator/config"
	"locator/internal/delivery/api/middleware"
	"locator/internal/delivery/api/router/handler"
	"locator/internal/domain/entity"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// ImportPath is the upload route; it gets its own body limit.
const ImportPath = "/api/admin/stores/import"

type RouterParams struct {
	fx.In

	HealthHandler       *handler.HealthHandler
	AuthHandler         *handler.AuthHandler
	SearchHandler       *handler.SearchHandler
	StoreHandler        *handler.StoreHandler
	ImportHandler       *handler.ImportHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler       *handler.HealthHandler
	authHandler         *handler.AuthHandler
	searchHandler       *handler.SearchHandler
	storeHandler        *handler.StoreHandler
	importHandler       *handler.ImportHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:       params.HealthHandler,
		authHandler:         params.AuthHandler,
		searchHandler:       params.SearchHandler,
		storeHandler:        params.StoreHandler,
		importHandler:       params.ImportHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Health)
	e.GET("/metrics", r.healthHandler.Metrics)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	storesGroup := api.Group("/stores")
	storesGroup.Use(r.authMiddleware.Authenticate)
	{
		storesGroup.POST("/search", r.searchHandler.Search,
			r.authMiddleware.RequirePermission(entity.PermissionStoresRead),
			r.rateLimitMiddleware.Limit,
		)
	}

	adminStores := api.Group("/admin/stores")
	adminStores.Use(r.authMiddleware.Authenticate)
	{
		adminStores.POST("", r.storeHandler.CreateStore, r.authMiddleware.RequirePermission(entity.PermissionStoresCreate))
		adminStores.GET("", r.storeHandler.ListStores, r.authMiddleware.RequirePermission(entity.PermissionStoresRead))
		adminStores.GET("/:id", r.storeHandler.GetStore, r.authMiddleware.RequirePermission(entity.PermissionStoresRead))
		adminStores.PATCH("/:id", r.storeHandler.UpdateStore, r.authMiddleware.RequirePermission(entity.PermissionStoresUpdate))
		adminStores.DELETE("/:id", r.storeHandler.DeactivateStore, r.authMiddleware.RequirePermission(entity.PermissionStoresDelete))
	}

	e.POST(ImportPath, r.importHandler.Import,
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequirePermission(entity.PermissionStoresImport),
		echomiddleware.BodyLimit(r.config.Import.MaxUploadSize),
	)
}
