// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"inkq/config"
	"inkq/internal/delivery/api/middleware"
	"inkq/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	MediaHandler   *handler.MediaHandler
	ProfileHandler *handler.ProfileHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	mediaHandler   *handler.MediaHandler
	profileHandler *handler.ProfileHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
	apiPrefix      string
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	apiPrefix := "/api/v1"
	if params.Config != nil && params.Config.HTTP.APIPrefix != "" {
		apiPrefix = params.Config.HTTP.APIPrefix
	}

	return &router{
		authHandler:    params.AuthHandler,
		mediaHandler:   params.MediaHandler,
		profileHandler: params.ProfileHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
		apiPrefix:      apiPrefix,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)

	api := e.Group(r.apiPrefix)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/signin", r.authHandler.SignIn)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
		authGroup.POST("/signout", r.authHandler.SignOut, r.authMiddleware.Authenticate)
		authGroup.GET("/me/share-code", r.profileHandler.ShareCode, r.authMiddleware.Authenticate)
	}

	// :role is one of artists, studios, models and must match the caller's account type.
	api.GET("/:role/me", r.profileHandler.GetMine, r.authMiddleware.Authenticate)
	api.PUT("/:role/me", r.profileHandler.UpdateMine, r.authMiddleware.Authenticate)

	mediaGroup := api.Group("/media")
	mediaGroup.Use(r.authMiddleware.Authenticate)
	{
		mediaGroup.POST("/:role/me/avatar", r.mediaHandler.UploadAvatar)
		mediaGroup.POST("/:role/me/banner", r.mediaHandler.UploadBanner)
		mediaGroup.POST("/:role/me/portfolio", r.mediaHandler.UploadPortfolio)
		mediaGroup.GET("/:role/me/portfolio", r.mediaHandler.ListPortfolio)

		mediaGroup.PATCH("/portfolio/:id", r.mediaHandler.UpdatePortfolioImage)
		mediaGroup.DELETE("/portfolio/:id", r.mediaHandler.DeletePortfolioImage)
	}
}
