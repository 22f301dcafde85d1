package luau

import (
	"decompile-server/core/engine"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
	enabled bool
	logger  *zap.Logger
}

// NewFeature creates the Luau decompilation feature.
func NewFeature(eng engine.Decompiler, enabled bool, logger *zap.Logger) *Feature {
	svc := NewService(eng, logger)
	return &Feature{handler: NewHandler(svc), enabled: enabled, logger: logger}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "luau"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	f.logger.Info("Luau endpoint active", zap.String("path", "/luau/decompile"))
	return nil
}
