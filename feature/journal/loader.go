package journal

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
}

// NewFeature creates a new journal feature. It stays disabled without a database.
func NewFeature(db *gorm.DB, logger *zap.Logger, enabled bool) *Feature {
	svc := NewService(db, logger)
	return &Feature{service: svc, handler: NewHandler(svc), enabled: enabled}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "journal"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled && f.service.Enabled()
}

// Service returns the journal service, to register its recorder on adapters.
func (f *Feature) Service() *Service {
	return f.service
}

// Load migrates the journal table and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.service.Migrate(); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}
