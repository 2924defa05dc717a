package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Sreevaishnavi4/inkle-tourism/internal/domain"
	"github.com/Sreevaishnavi4/inkle-tourism/internal/service"
)

// Handler contains all HTTP handlers
type Handler struct {
	tripSvc *service.TripService
	cache   domain.GeoCache
}

// NewHandler creates a new handler
func NewHandler(tripSvc *service.TripService, cache domain.GeoCache) *Handler {
	return &Handler{
		tripSvc: tripSvc,
		cache:   cache,
	}
}

// QueryRequest is the inbound body for POST /api/v1/query
type QueryRequest struct {
	Query string `json:"query"`
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	cacheStatus := "ok"
	if err := h.cache.Health(c.Context()); err != nil {
		cacheStatus = "unavailable"
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "inkle-tourism",
		"version": "1.0.0",
		"cache":   cacheStatus,
	})
}

// HandleQuery processes a free-text tourism query and returns the
// composed answer. The orchestrator never errors: any outcome below the
// transport level produces a textual response.
func (h *Handler) HandleQuery(c *fiber.Ctx) error {
	var req QueryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if strings.TrimSpace(req.Query) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Query must not be empty")
	}

	result := h.tripSvc.HandleQuery(c.Context(), req.Query)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}
