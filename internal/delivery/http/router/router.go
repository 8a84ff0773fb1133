// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fitlife/internal/delivery/http/middleware"
	"fitlife/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ExerciseHandler *handler.ExerciseHandler
	FoodLogHandler  *handler.FoodLogHandler
	StatsHandler    *handler.StatsHandler
	ProfileHandler  *handler.ProfileHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
	AdminMiddleware *middleware.AdminMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	exerciseHandler *handler.ExerciseHandler
	foodLogHandler  *handler.FoodLogHandler
	statsHandler    *handler.StatsHandler
	profileHandler  *handler.ProfileHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
	adminMiddleware *middleware.AdminMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		exerciseHandler: params.ExerciseHandler,
		foodLogHandler:  params.FoodLogHandler,
		statsHandler:    params.StatsHandler,
		profileHandler:  params.ProfileHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
		adminMiddleware: params.AdminMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public auth routes
	api.POST("/auth/register", r.authHandler.Register)
	api.POST("/auth/login", r.authHandler.Login)

	// Every protected route goes through the same bearer token gate.
	protected := api.Group("", r.authMiddleware.Authenticate)
	{
		protected.POST("/auth/logout", r.authHandler.Logout)
		protected.POST("/auth/refresh", r.authHandler.Refresh)

		protected.GET("/exercises", r.exerciseHandler.List)
		protected.POST("/exercises", r.exerciseHandler.Log)
		protected.DELETE("/exercises/:id", r.exerciseHandler.Delete)

		protected.GET("/food-logs", r.foodLogHandler.List)
		protected.POST("/food-logs", r.foodLogHandler.Log)
		protected.DELETE("/food-logs/:id", r.foodLogHandler.Delete)

		protected.GET("/statistics", r.statsHandler.Recent)
		protected.POST("/statistics", r.statsHandler.Save)

		protected.GET("/profile", r.profileHandler.Get)
		protected.PUT("/profile", r.profileHandler.Update)
	}

	// Admin panel rides the cookie session, never bearer tokens.
	admin := e.Group("/admin")
	admin.POST("/login", r.adminHandler.Login)
	admin.POST("/logout", r.adminHandler.Logout)

	adminProtected := admin.Group("", r.adminMiddleware.RequireSession)
	{
		adminProtected.GET("/dashboard", r.adminHandler.Dashboard)
		adminProtected.POST("/admins", r.adminHandler.CreateAdmin)
	}
}
