package assets

import (
	"context"

	"decompile-server/core/server"
	"decompile-server/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface. It must be registered
// last: as the catch-all fallback it claims every path the API routes left
// unmatched.
type Feature struct {
	cfg     server.Config
	handler *Handler
	logger  *zap.Logger
}

// NewFeature creates the static asset fallback feature. The storage client
// is only used when the asset source is storage; in local mode it may be
// nil.
func NewFeature(cfg server.Config, client storage.Client, bucket string, logger *zap.Logger) *Feature {
	svc := NewService(client, bucket, cfg.IndexFile, logger)
	return &Feature{cfg: cfg, handler: NewHandler(svc), logger: logger}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "assets"
}

// IsEnabled checks if the feature is enabled. The fallback always serves;
// what changes per deployment is the origin behind it.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the fallback on the router.
func (f *Feature) Load(app fiber.Router) error {
	if f.cfg.AssetSource == server.AssetSourceStorage {
		if err := f.handler.service.VerifyBucket(context.Background()); err != nil {
			return err
		}

		f.handler.RegisterRoutes(app)
		f.logger.Info("Static asset fallback active",
			zap.String("source", f.cfg.AssetSource),
			zap.String("bucket", f.handler.service.bucket),
		)
		return nil
	}

	app.Static("/", f.cfg.AssetsDir, fiber.Static{Index: f.cfg.IndexFile})
	f.logger.Info("Static asset fallback active",
		zap.String("source", f.cfg.AssetSource),
		zap.String("dir", f.cfg.AssetsDir),
	)
	return nil
}
