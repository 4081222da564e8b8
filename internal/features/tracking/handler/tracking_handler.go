package handler

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gotur/internal/core/logger"
	"gotur/internal/features/tracking/domain"
	"gotur/internal/features/tracking/ports"
	"gotur/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const keepAliveInterval = 15 * time.Second

// TrackingHandler exposes the route tracker over HTTP.
type TrackingHandler struct {
	controller ports.TrackingController
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(controller ports.TrackingController) *TrackingHandler {
	return &TrackingHandler{
		controller: controller,
	}
}

// RegisterRoutes mounts the tracking endpoints under /tracking.
func (h *TrackingHandler) RegisterRoutes(router fiber.Router) {
	g := router.Group("/tracking")
	g.Get("/", h.GetSnapshot)
	g.Get("/path", h.GetPath)
	g.Get("/events", h.StreamEvents)
	g.Post("/start", h.Start)
	g.Post("/pause", h.Pause)
	g.Post("/resume", h.Resume)
	g.Post("/stop", h.Stop)
	g.Post("/save", h.Save)
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// StartRequest answers the start confirmation prompt.
type StartRequest struct {
	Confirm bool `json:"confirm"`
}

// StartResponse reports whether a session was started.
type StartResponse struct {
	Started  bool            `json:"started"`
	Prompt   domain.Prompt   `json:"prompt"`
	Snapshot domain.Snapshot `json:"snapshot"`
}

// SaveResponse carries the id a route was saved under.
type SaveResponse struct {
	ID     string        `json:"id"`
	Notice domain.Notice `json:"notice"`
}

// GetSnapshot godoc
// @Summary Get the current tracking session
// @Description Returns status, formatted elapsed time and distance, path and latest position
// @Tags tracking
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Failure 503 {object} ErrorResponse
// @Router /tracking [get]
func (h *TrackingHandler) GetSnapshot(c *fiber.Ctx) error {
	snap, err := h.controller.Snapshot(c.UserContext())
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(snap)
}

// GetPath godoc
// @Summary Get the recorded path as GeoJSON
// @Description Returns a GeoJSON Feature with a LineString of the recorded path
// @Tags tracking
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} ErrorResponse
// @Router /tracking/path [get]
func (h *TrackingHandler) GetPath(c *fiber.Ctx) error {
	snap, err := h.controller.Snapshot(c.UserContext())
	if err != nil {
		return h.writeError(c, err)
	}

	body, err := domain.PathFeature(snap).MarshalJSON()
	if err != nil {
		return h.writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/geo+json")
	return c.Send(body)
}

// Start godoc
// @Summary Start route tracking
// @Description Starts a fresh session when the confirmation prompt is accepted
// @Tags tracking
// @Accept json
// @Produce json
// @Param request body StartRequest true "Confirmation answer"
// @Success 200 {object} StartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /tracking/start [post]
func (h *TrackingHandler) Start(c *fiber.Ctx) error {
	var req StartRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Message: "invalid request body",
				RayID:   rayID(c),
			})
		}
	}

	confirmer := ports.ConfirmFunc(func(context.Context, domain.Prompt) bool {
		return req.Confirm
	})

	err := h.controller.Start(c.UserContext(), confirmer)
	if err != nil && !errors.Is(err, service.ErrStartDeclined) {
		return h.writeError(c, err)
	}

	snap, snapErr := h.controller.Snapshot(c.UserContext())
	if snapErr != nil {
		return h.writeError(c, snapErr)
	}

	return c.JSON(StartResponse{
		Started:  err == nil,
		Prompt:   domain.StartPrompt,
		Snapshot: snap,
	})
}

// Pause godoc
// @Summary Pause route tracking
// @Tags tracking
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Failure 409 {object} ErrorResponse
// @Router /tracking/pause [post]
func (h *TrackingHandler) Pause(c *fiber.Ctx) error {
	return h.command(c, h.controller.Pause)
}

// Resume godoc
// @Summary Resume a paused session
// @Tags tracking
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Failure 409 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /tracking/resume [post]
func (h *TrackingHandler) Resume(c *fiber.Ctx) error {
	return h.command(c, h.controller.Resume)
}

// Stop godoc
// @Summary Stop route tracking
// @Description Ends the session and resets elapsed time, distance and path
// @Tags tracking
// @Produce json
// @Success 200 {object} domain.Snapshot
// @Failure 409 {object} ErrorResponse
// @Router /tracking/stop [post]
func (h *TrackingHandler) Stop(c *fiber.Ctx) error {
	return h.command(c, h.controller.Stop)
}

// Save godoc
// @Summary Save the current route
// @Description Hands the session to the save destination. Refused while tracking is active
// @Tags tracking
// @Produce json
// @Success 201 {object} SaveResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /tracking/save [post]
func (h *TrackingHandler) Save(c *fiber.Ctx) error {
	id, err := h.controller.Save(c.UserContext())
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(SaveResponse{
		ID:     id,
		Notice: domain.RouteSavedNotice,
	})
}

// StreamEvents godoc
// @Summary Stream session snapshots
// @Description Server-Sent Events stream with one "snapshot" event per change
// @Tags tracking
// @Produce text/event-stream
// @Success 200 {string} string
// @Failure 503 {object} ErrorResponse
// @Router /tracking/events [get]
func (h *TrackingHandler) StreamEvents(c *fiber.Ctx) error {
	updates, cancel, err := h.controller.Subscribe(c.UserContext())
	if err != nil {
		return h.writeError(c, err)
	}

	initial, err := h.controller.Snapshot(c.UserContext())
	if err != nil {
		cancel()
		return h.writeError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	log := logger.Named("sse").With(zap.String("ray_id", rayID(c)))

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()

		keepAlive := time.NewTicker(keepAliveInterval)
		defer keepAlive.Stop()

		if err := writeEvent(w, initial); err != nil {
			log.Debug("Event stream closed", zap.Error(err))
			return
		}

		for {
			select {
			case snap, ok := <-updates:
				if !ok {
					return
				}
				if err := writeEvent(w, snap); err != nil {
					log.Debug("Event stream closed", zap.Error(err))
					return
				}
			case <-keepAlive.C:
				if _, err := w.WriteString(": keep-alive\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					log.Debug("Event stream closed", zap.Error(err))
					return
				}
			}
		}
	}))

	return nil
}

func writeEvent(w *bufio.Writer, snap domain.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: snapshot\ndata: %s\n\n", data); err != nil {
		return err
	}
	return w.Flush()
}

func (h *TrackingHandler) command(c *fiber.Ctx, fn func(context.Context) error) error {
	if err := fn(c.UserContext()); err != nil {
		return h.writeError(c, err)
	}
	snap, err := h.controller.Snapshot(c.UserContext())
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(snap)
}

func (h *TrackingHandler) writeError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidTransition), errors.Is(err, service.ErrSaveWhileActive):
		status = fiber.StatusConflict
	case errors.Is(err, service.ErrSubscriptionFailed):
		status = fiber.StatusBadGateway
	case errors.Is(err, service.ErrControllerClosed):
		status = fiber.StatusServiceUnavailable
	case errors.Is(err, service.ErrNoDestination):
		status = fiber.StatusNotImplemented
	}

	message := err.Error()
	if status == fiber.StatusInternalServerError {
		logger.Get().Error("Tracking request failed", zap.Error(err), zap.String("ray_id", rayID(c)))
	}

	return c.Status(status).JSON(ErrorResponse{
		Message: message,
		RayID:   rayID(c),
	})
}

func rayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
