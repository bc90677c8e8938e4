// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"log/slog"

	"dealhub/config"
	"dealhub/internal/delivery/http/middleware"
	"dealhub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config               *config.Config
	Logger               *slog.Logger
	UserHandler          *handler.UserHandler
	SessionHandler       *handler.SessionHandler
	DealHandler          *handler.DealHandler
	StoreHandler         *handler.StoreHandler
	CategoryHandler      *handler.CategoryHandler
	SearchHandler        *handler.SearchHandler
	AdvertisementHandler *handler.AdvertisementHandler
	FavoriteHandler      *handler.FavoriteHandler
	DeviceHandler        *handler.DeviceHandler
	AdminHandler         *handler.AdminHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	if params.Config.Postgres == nil {
		params.Logger.Warn("no database configured, auth and back-office operations run in demo mode")
	}

	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	e.GET("/health", handler.HealthCheck)

	// Public catalog surface
	e.GET("/deals", p.DealHandler.ListDeals)
	e.GET("/deals/:id", p.DealHandler.GetDeal)
	e.POST("/deals/:id/use", p.DealHandler.UseDeal)
	e.GET("/deals/:id/qr", p.DealHandler.GetRedemptionQR)
	e.GET("/stores", p.StoreHandler.ListStores)
	e.GET("/stores/:id", p.StoreHandler.GetStore)
	e.GET("/categories", p.CategoryHandler.ListCategories)
	e.GET("/advertisements", p.AdvertisementHandler.ListActiveAdvertisements)
	e.GET("/search/deals", p.SearchHandler.SearchDeals)
	e.GET("/search/stores", p.SearchHandler.SearchStores)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", p.UserHandler.RegisterUser)
		authGroup.POST("/login", p.UserHandler.Login)
		authGroup.POST("/refresh", p.UserHandler.RefreshToken)
		authGroup.POST("/logout", p.UserHandler.Logout)
		authGroup.POST("/google", p.UserHandler.GoogleCallback)
	}

	// Routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(p.AuthMiddleware.Authenticate)
	{
		userGroup.GET("/profile", p.UserHandler.GetProfile)
		userGroup.PUT("/profile", p.UserHandler.UpdateProfile)
		userGroup.POST("/logout-all", p.UserHandler.LogoutAllDevices)
		userGroup.GET("/sessions", p.SessionHandler.GetActiveSessions)
		userGroup.DELETE("/sessions", p.SessionHandler.RevokeAllSessions)
		userGroup.DELETE("/sessions/:id", p.SessionHandler.RevokeSession)
		userGroup.POST("/sessions/revoke-others", p.SessionHandler.RevokeAllOtherSessions)
		userGroup.GET("/favorites", p.FavoriteHandler.ListFavorites)
		userGroup.POST("/favorites/:dealID", p.FavoriteHandler.AddFavorite)
		userGroup.DELETE("/favorites/:dealID", p.FavoriteHandler.RemoveFavorite)
		userGroup.POST("/devices", p.DeviceHandler.RegisterDevice)
		userGroup.DELETE("/devices/:id", p.DeviceHandler.RemoveDevice)
	}

	// Back-office routes: authentication plus an admin grant
	adminGroup := e.Group("/admin")
	adminGroup.Use(p.AuthMiddleware.Authenticate)
	adminGroup.Use(p.AuthMiddleware.RequireAdmin)
	{
		adminGroup.POST("/deals", p.DealHandler.CreateDeal)
		adminGroup.PUT("/deals/:id", p.DealHandler.UpdateDeal)
		adminGroup.DELETE("/deals/:id", p.DealHandler.DeleteDeal)
		adminGroup.POST("/deals/:id/image", p.DealHandler.UploadProductImage)

		adminGroup.POST("/stores", p.StoreHandler.CreateStore)
		adminGroup.PUT("/stores/:id", p.StoreHandler.UpdateStore)
		adminGroup.DELETE("/stores/:id", p.StoreHandler.DeleteStore)
		adminGroup.POST("/stores/:id/logo", p.StoreHandler.UploadLogo)

		adminGroup.POST("/categories", p.CategoryHandler.CreateCategory)
		adminGroup.PUT("/categories/:id", p.CategoryHandler.UpdateCategory)
		adminGroup.DELETE("/categories/:id", p.CategoryHandler.DeleteCategory)

		adminGroup.GET("/advertisements", p.AdvertisementHandler.ListAdvertisements)
		adminGroup.POST("/advertisements", p.AdvertisementHandler.CreateAdvertisement)
		adminGroup.PUT("/advertisements/:id", p.AdvertisementHandler.UpdateAdvertisement)
		adminGroup.DELETE("/advertisements/:id", p.AdvertisementHandler.DeleteAdvertisement)
		adminGroup.POST("/advertisements/reorder", p.AdvertisementHandler.ReorderAdvertisements)

		adminGroup.GET("/me", p.AdminHandler.GetMe)
		adminGroup.GET("/admins", p.AdminHandler.ListAdmins)
		adminGroup.POST("/admins", p.AdminHandler.MakeAdmin)
		adminGroup.DELETE("/admins/:id", p.AdminHandler.RemoveAdmin)
	}
}
