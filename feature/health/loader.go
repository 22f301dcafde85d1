package health

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
	logger  *zap.Logger
}

// NewFeature creates the health check feature.
func NewFeature(logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(), logger: logger}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "health"
}

// IsEnabled checks if the feature is enabled. The health endpoint is always
// on so deployments can probe the server regardless of configuration.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	f.logger.Info("Health endpoint active", zap.String("path", "/health"))
	return nil
}
