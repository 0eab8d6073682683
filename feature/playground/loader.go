package playground

import (
	"sectionkit/feature/archive"

	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
}

// NewFeature creates a new playground feature around a started service.
func NewFeature(service *Service, archive *archive.Service, enabled bool) *Feature {
	return &Feature{service: service, handler: NewHandler(service, archive), enabled: enabled}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "playground"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled && f.service != nil
}

// Service returns the playground service.
func (f *Feature) Service() *Service {
	return f.service
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
