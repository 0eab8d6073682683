package scenario

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"sectionkit/core/diff"
	"sectionkit/core/logger"
)

// Handler handles HTTP requests for scenario replays.
type Handler struct {
	runner *Runner
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(runner *Runner, logger *zap.Logger) *Handler {
	return &Handler{runner: runner, logger: logger}
}

// RegisterRoutes registers the scenario routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/scenario")
	group.Post("/run", h.HandleRun)
	group.Post("/plan", h.HandlePlan)
}

// HandleRun replays the posted scenario.
// @Summary Run Scenario
// @Description Replays a YAML scenario against a headless widget and reports every render.
// @Tags scenario
// @Accept plain
// @Produce json
// @Param scenario body string true "YAML scenario"
// @Success 200 {object} Report "Replay report"
// @Failure 400 {object} map[string]string "Invalid scenario"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /scenario/run [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	sc, err := Parse(c.Body())
	if err != nil {
		return h.fail(c, "Parsing scenario failed", err)
	}
	report, err := h.runner.Run(sc)
	if err != nil {
		return h.fail(c, "Replaying scenario failed", err)
	}
	return c.JSON(report)
}

// HandlePlan computes the section batch of the posted scenario.
// @Summary Plan Scenario
// @Description Diffs the initial and final sections of a YAML scenario without rendering.
// @Tags scenario
// @Accept plain
// @Produce json
// @Param scenario body string true "YAML scenario"
// @Success 200 {object} Plan "Section batch"
// @Failure 400 {object} map[string]string "Invalid scenario"
// @Failure 422 {object} map[string]string "Duplicate section identities"
// @Router /scenario/plan [post]
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	sc, err := Parse(c.Body())
	if err != nil {
		return h.fail(c, "Parsing scenario failed", err)
	}
	plan, err := NewPlan(sc)
	if err != nil {
		return h.fail(c, "Planning scenario failed", err)
	}
	return c.JSON(plan)
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	switch {
	case errors.Is(err, ErrInvalidScenario):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, diff.ErrDuplicateIdentity):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.logger, c).Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
