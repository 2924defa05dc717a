package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/Sreevaishnavi4/inkle-tourism/internal/domain"
	"github.com/Sreevaishnavi4/inkle-tourism/internal/service"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, tripSvc *service.TripService, cache domain.GeoCache) {
	handler := NewHandler(tripSvc, cache)

	// Health check
	app.Get("/health", handler.HealthCheck)

	// Prometheus exposition
	metricsHandler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
	app.Get("/metrics", func(c *fiber.Ctx) error {
		metricsHandler(c.Context())
		return nil
	})

	// API v1 routes
	api := app.Group("/api/v1")
	{
		api.Post("/query", handler.HandleQuery)
	}
}
