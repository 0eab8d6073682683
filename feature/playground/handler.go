package playground

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"sectionkit/core/logger"
	"sectionkit/core/mainloop"
	"sectionkit/feature/archive"
	"sectionkit/feature/scenario"
)

// GroupRequest replaces the sections of a group.
type GroupRequest struct {
	Sections []scenario.SectionSpec `json:"sections"`
}

// Handler handles HTTP requests for the playground.
type Handler struct {
	service *Service
	archive *archive.Service
}

// NewHandler creates a new HTTP handler. archive may be nil, which disables restores.
func NewHandler(service *Service, archive *archive.Service) *Handler {
	return &Handler{service: service, archive: archive}
}

// RegisterRoutes registers the playground routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/playground")
	group.Get("/layout", h.HandleLayout)
	group.Put("/groups/:id", h.HandleSetGroup)
	group.Post("/reload", h.HandleReload)
	group.Post("/flush", h.HandleFlush)
	group.Post("/restore/:name", h.HandleRestore)
}

// HandleLayout returns the live layout.
// @Summary Get Layout
// @Description Returns the live groups, rendered counts, layout dump and recent completions.
// @Tags playground
// @Produce json
// @Success 200 {object} Layout "Live layout"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /playground/layout [get]
func (h *Handler) HandleLayout(c *fiber.Ctx) error {
	layout, err := h.service.Layout(c.Context())
	if err != nil {
		return h.fail(c, "Reading layout failed", err)
	}
	return c.JSON(layout)
}

// HandleSetGroup replaces the sections of a group.
// @Summary Set Group
// @Description Replaces the sections of a group and renders the change. Unknown groups are appended.
// @Tags playground
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param animated query bool false "Render the change as an animated batch" default(true)
// @Param request body GroupRequest true "Sections"
// @Success 200 {object} Layout "Live layout"
// @Failure 400 {object} map[string]string "Invalid layout"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /playground/groups/{id} [put]
func (h *Handler) HandleSetGroup(c *fiber.Ctx) error {
	var req GroupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	layout, err := h.service.SetGroup(c.Context(), c.Params("id"), req.Sections, c.QueryBool("animated", true))
	if err != nil {
		return h.fail(c, "Setting group failed", err)
	}
	return c.JSON(layout)
}

// HandleReload reloads the whole data source.
// @Summary Reload
// @Description Reloads every group of the playground.
// @Tags playground
// @Produce json
// @Param animated query bool false "Diff the sections instead of reloading everything" default(true)
// @Success 200 {object} Layout "Live layout"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /playground/reload [post]
func (h *Handler) HandleReload(c *fiber.Ctx) error {
	layout, err := h.service.Reload(c.Context(), c.QueryBool("animated", true))
	if err != nil {
		return h.fail(c, "Reloading failed", err)
	}
	return c.JSON(layout)
}

// HandleFlush releases the frames waiting for completion.
// @Summary Flush
// @Description Completes every deferred render, which releases queued updates.
// @Tags playground
// @Produce json
// @Success 200 {object} map[string]int "Flushed count"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /playground/flush [post]
func (h *Handler) HandleFlush(c *fiber.Ctx) error {
	n, err := h.service.Flush(c.Context())
	if err != nil {
		return h.fail(c, "Flushing failed", err)
	}
	return c.JSON(fiber.Map{"flushed": n})
}

// HandleRestore replaces the live layout with an archived snapshot.
// @Summary Restore Snapshot
// @Description Loads an archived snapshot and renders it as the live layout.
// @Tags playground
// @Produce json
// @Param name path string true "Snapshot name"
// @Param animated query bool false "Diff against the live layout" default(true)
// @Success 200 {object} Layout "Live layout"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 503 {object} map[string]string "Archive unavailable"
// @Router /playground/restore/{name} [post]
func (h *Handler) HandleRestore(c *fiber.Ctx) error {
	if h.archive == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "archive is not configured"})
	}
	m, err := h.archive.Load(c.Context(), c.Params("name"))
	if err != nil {
		return h.fail(c, "Loading snapshot failed", err)
	}
	layout, err := h.service.Restore(c.Context(), m, c.QueryBool("animated", true))
	if err != nil {
		return h.fail(c, "Restoring snapshot failed", err)
	}
	return c.JSON(layout)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	switch {
	case errors.Is(err, ErrInvalidLayout), errors.Is(err, archive.ErrInvalidName):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, archive.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, mainloop.ErrClosed):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
