package lua51

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

// NewFeature creates the Lua 5.1 decompilation feature.
func NewFeature(eng engine.Decompiler, enabled bool, logger *zap.Logger) *Feature {
	svc := NewService(eng, logger)
	return &Feature{handler: NewHandler(svc), enabled: enabled, logger: logger}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "lua51"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	f.logger.Info("Lua 5.1 endpoint active", zap.String("path", "/lua51/decompile"))
	return nil
}
