// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pulse/internal/delivery/http/middleware"
	"pulse/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	RelationshipHandler *handler.RelationshipHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	relationshipHandler *handler.RelationshipHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		relationshipHandler: params.RelationshipHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/sign-up", r.userHandler.SignUp)
		authGroup.POST("/login", r.userHandler.Login)
	}
	authGroup.PUT("/password", r.userHandler.ChangePassword, r.authMiddleware.Authenticate)

	// User routes that require authentication
	userGroup := e.Group("/users")
	{
		// The ranking view is public; everything else needs a session.
		userGroup.GET("/most-liked", r.relationshipHandler.MostLiked)
		userGroup.GET("/me", r.userHandler.Me, r.authMiddleware.Authenticate)
		userGroup.POST("/:id/like", r.relationshipHandler.Like, r.authMiddleware.Authenticate)
		userGroup.POST("/:id/unlike", r.relationshipHandler.Unlike, r.authMiddleware.Authenticate)
	}
}
