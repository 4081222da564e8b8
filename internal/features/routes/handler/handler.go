package handler

import (
	"errors"
	"net/http"

	"gotur/internal/core/logger"
	"gotur/internal/features/routes/domain"
	"gotur/internal/features/routes/ports"
	tracking "gotur/internal/features/tracking/domain"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RouteHandler handles HTTP requests for saved routes.
type RouteHandler struct {
	service ports.RouteService
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(service ports.RouteService) *RouteHandler {
	return &RouteHandler{
		service: service,
	}
}

// RegisterRoutes mounts the saved route endpoints.
func (h *RouteHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/routes/:id", h.GetRoute)
	router.Get("/routes/:id/path", h.GetRoutePath)
}

// GetRoute handles GET /routes/:id.
// @Summary Get a saved route
// @Description Retrieves a route previously saved from a tracking session.
// @Tags Routes
// @Produce json
// @Param id path string true "Route ID"
// @Success 200 {object} domain.SavedRoute
// @Failure 404 {object} map[string]string
// @Failure 501 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /routes/{id} [get]
func (h *RouteHandler) GetRoute(c *fiber.Ctx) error {
	route, err := h.service.GetRoute(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(route)
}

// GetRoutePath handles GET /routes/:id/path.
// @Summary Get a saved route as GeoJSON
// @Description Returns the saved path as a GeoJSON LineString feature.
// @Tags Routes
// @Produce json
// @Param id path string true "Route ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Failure 501 {object} map[string]string
// @Router /routes/{id}/path [get]
func (h *RouteHandler) GetRoutePath(c *fiber.Ctx) error {
	route, err := h.service.GetRoute(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.writeError(c, err)
	}

	feature := tracking.PathFeature(route.Snapshot())
	feature.ID = route.ID
	feature.Properties["saved_at"] = route.SavedAt

	body, err := feature.MarshalJSON()
	if err != nil {
		return h.writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/geo+json")
	return c.Send(body)
}

func (h *RouteHandler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrRouteNotFound):
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	case errors.Is(err, domain.ErrNotSupported):
		return c.Status(http.StatusNotImplemented).JSON(fiber.Map{
			"error": "Routes are forwarded to a webhook and cannot be read back",
		})
	}

	logger.Get().Error("Failed to get route", zap.Error(err))
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}
