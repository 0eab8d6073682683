package archive

import (
	"sectionkit/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
}

// NewFeature creates a new archive feature.
func NewFeature(client storage.Client, bucket string, logger *zap.Logger, source Source, enabled bool) *Feature {
	svc := NewService(client, bucket, logger)
	return &Feature{service: svc, handler: NewHandler(svc, source), enabled: enabled}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "archive"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Service returns the archive service.
func (f *Feature) Service() *Service {
	return f.service
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
