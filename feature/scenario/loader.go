package scenario

import (
	"sectionkit/core/adapter"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	runner  *Runner
	handler *Handler
	enabled bool
}

// NewFeature creates a new scenario feature.
func NewFeature(cfg adapter.Config, logger *zap.Logger, enabled bool, observers ...adapter.Observer) *Feature {
	runner := NewRunner(cfg, logger, observers...)
	return &Feature{runner: runner, handler: NewHandler(runner, logger), enabled: enabled}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "scenario"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Runner returns the scenario runner.
func (f *Feature) Runner() *Runner {
	return f.runner
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
