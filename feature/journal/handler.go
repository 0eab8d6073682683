package journal

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"sectionkit/core/logger"
)

// Handler handles HTTP requests for the render journal.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the journal routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/journal")
	group.Get("/", h.HandleRecent)
	group.Get("/schema", h.HandleSchema)
}

// HandleRecent lists the most recent renders.
// @Summary List Renders
// @Description Returns the most recent renders recorded by the adapter, newest first.
// @Tags journal
// @Produce json
// @Param limit query int false "Maximum number of records (default 50, max 500)"
// @Success 200 {array} RenderRecord "Render records"
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 503 {object} map[string]string "Journal disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /journal [get]
func (h *Handler) HandleRecent(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	limit := c.QueryInt("limit", DefaultLimit)
	if limit <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "limit must be positive"})
	}

	records, err := h.service.Recent(c.Context(), limit)
	if err != nil {
		return h.fail(c, l, "Reading journal failed", err)
	}
	return c.JSON(records)
}

// HandleSchema checks the journal table.
// @Summary Check Journal Schema
// @Description Compares the render_records table with the columns the journal writes.
// @Tags journal
// @Produce json
// @Success 200 {object} SchemaReport "Schema Report"
// @Failure 503 {object} map[string]string "Journal disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /journal/schema [get]
func (h *Handler) HandleSchema(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckSchema()
	if err != nil {
		return h.fail(c, l, "Journal schema check failed", err)
	}
	if !report.Matches() {
		l.Warn("Journal schema mismatch", zap.Strings("missing", report.Missing), zap.Strings("extra", report.Extra))
	}
	return c.JSON(report)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	if errors.Is(err, ErrNoDatabase) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	l.Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
