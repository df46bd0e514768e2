package handlers

import (
	"garagehub/internal/app"
	"garagehub/internal/http/middleware"

	"github.com/labstack/echo/v4"
)

// SetupRoutes sets up all API routes
func SetupRoutes(api *echo.Group, services *app.Services) {
	garageHandler := NewGarageHandler(services.GarageRepo, services.ScheduleRepo)
	hoursHandler := NewOpeningHoursHandler(services.GarageRepo, services.ScheduleRepo)
	callbackHandler := NewCallbackHandler(services.GarageRepo, services.CallbackRepo, services.Notifier())

	adminSecret := middleware.AdminSecret(services.AdminSecret)

	garages := api.Group("/garages")

	// Public routes (no authentication)
	garages.GET("/:slug", garageHandler.GetBySlug)
	garages.GET("/:slug/opening-hours", hoursHandler.List)
	garages.POST("/:slug/callback-requests", callbackHandler.Create)

	// Admin routes (shared secret gated)
	garages.PUT("/:slug", garageHandler.Update, adminSecret)
	garages.POST("/:slug/opening-hours", hoursHandler.Replace, adminSecret)
	garages.GET("/:slug/callback-requests", callbackHandler.List, adminSecret)
}
