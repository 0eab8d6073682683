package archive

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"sectionkit/core/logger"
	"sectionkit/core/snapshot"
)

// Source provides the live snapshot archived by POST /archive/:name.
type Source interface {
	Snapshot(ctx context.Context) (*snapshot.Snapshot, error)
}

// Handler handles HTTP requests for the snapshot archive.
type Handler struct {
	service *Service
	source  Source
}

// NewHandler creates a new HTTP handler. source may be nil, which disables exports.
func NewHandler(service *Service, source Source) *Handler {
	return &Handler{service: service, source: source}
}

// RegisterRoutes registers the archive routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/archive")
	group.Get("/", h.HandleList)
	group.Delete("/", h.HandlePurge)
	group.Get("/:name", h.HandleLoad)
	group.Post("/:name", h.HandleExport)
	group.Delete("/:name", h.HandleDelete)
}

// HandleList lists archived snapshots.
// @Summary List Snapshots
// @Description Lists every snapshot stored in the archive bucket.
// @Tags archive
// @Produce json
// @Success 200 {array} Entry "Archived snapshots"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /archive [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	entries, err := h.service.List(c.Context())
	if err != nil {
		return h.fail(c, "Listing snapshots failed", err)
	}
	return c.JSON(entries)
}

// HandleLoad reads one archived snapshot.
// @Summary Get Snapshot
// @Description Returns the manifest of an archived snapshot.
// @Tags archive
// @Produce json
// @Param name path string true "Snapshot name"
// @Success 200 {object} Manifest "Snapshot manifest"
// @Failure 400 {object} map[string]string "Invalid name"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /archive/{name} [get]
func (h *Handler) HandleLoad(c *fiber.Ctx) error {
	m, err := h.service.Load(c.Context(), c.Params("name"))
	if err != nil {
		return h.fail(c, "Loading snapshot failed", err)
	}
	return c.JSON(m)
}

// HandleExport archives the live snapshot.
// @Summary Archive Snapshot
// @Description Stores the current playground layout under the given name.
// @Tags archive
// @Produce json
// @Param name path string true "Snapshot name"
// @Success 201 {object} Manifest "Stored manifest"
// @Failure 400 {object} map[string]string "Invalid name"
// @Failure 503 {object} map[string]string "No live layout"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /archive/{name} [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	if h.source == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "no live layout to archive"})
	}
	snap, err := h.source.Snapshot(c.Context())
	if err != nil {
		return h.fail(c, "Reading live snapshot failed", err)
	}
	m, err := h.service.Export(c.Context(), c.Params("name"), snap)
	if err != nil {
		return h.fail(c, "Archiving snapshot failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

// HandleDelete removes one archived snapshot.
// @Summary Delete Snapshot
// @Description Removes an archived snapshot.
// @Tags archive
// @Param name path string true "Snapshot name"
// @Success 204 "Deleted"
// @Failure 400 {object} map[string]string "Invalid name"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /archive/{name} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("name")); err != nil {
		return h.fail(c, "Deleting snapshot failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandlePurge removes every archived snapshot.
// @Summary Purge Snapshots
// @Description Removes every archived snapshot.
// @Tags archive
// @Produce json
// @Success 200 {object} map[string]int "Removed count"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /archive [delete]
func (h *Handler) HandlePurge(c *fiber.Ctx) error {
	removed, err := h.service.Purge(c.Context())
	if err != nil {
		return h.fail(c, "Purging snapshots failed", err)
	}
	return c.JSON(fiber.Map{"removed": removed})
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	switch {
	case errors.Is(err, ErrInvalidName):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
