package cmd

import (
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"decompile-server/core/apperr"
	"decompile-server/core/config"
	"decompile-server/core/engine"
	"decompile-server/core/loader"
	"decompile-server/core/logger"
	"decompile-server/core/middleware/rayid"
	"decompile-server/core/server"
	"decompile-server/core/storage"

	"decompile-server/feature/assets"
	"decompile-server/feature/health"
	"decompile-server/feature/lua51"
	"decompile-server/feature/luau"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "decompile-server/docs/swagger"
)

// @title Decompile Server API
// @version 1.0
// @description HTTP front end for the Luau and Lua 5.1 bytecode decompilation engine.
// @host localhost:3000
// @BasePath /

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the decompilation server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		applyServeFlags(cmd, cfg)

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Validate Configuration
		// A server with no dialect only answers health checks and static
		// assets, which is a misconfiguration we refuse to run with.
		if err := cfg.Server.Validate(); err != nil {
			logg.Fatal("Invalid server configuration", zap.Error(err))
		}
		if !cfg.Server.HasDialect() {
			logg.Fatal("No decompilation dialect enabled; set server.luau or server.lua51")
		}

		// 4. Initialize Engine
		eng, err := engine.New(cfg.Engine)
		if err != nil {
			logg.Fatal("Failed to create decompilation engine", zap.Error(err))
		}

		// 5. Initialize Storage (only when assets come from a bucket)
		var store storage.Client
		if cfg.Server.AssetSource == server.AssetSourceStorage {
			store, err = storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
		}

		// 6. Assemble the Application
		app, err := buildApp(cfg, logg, eng, store)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Decompiler active", zap.Int("port", cfg.Server.Port))
			if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
		if closer, ok := eng.(io.Closer); ok {
			_ = closer.Close()
		}
	},
}

// buildApp assembles the Fiber application: error handling, middleware,
// swagger, and every enabled feature. Features load in registration order,
// so the assets fallback goes last and API routes always win.
func buildApp(cfg *config.Config, logg *zap.Logger, eng engine.Decompiler, store storage.Client) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We will log our own startup message
		ErrorHandler:          apperr.Handler(logg),
	})

	// Middleware Registration
	// 1. RayID (Must be first to trace everything)
	app.Use(rayid.New())

	// 2. CORS. The endpoints are called directly from arbitrary
	// browser-hosted front ends, so origin restriction is deliberately
	// disabled rather than configured per deployment.
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "*",
		AllowHeaders: "*",
		MaxAge:       3600,
	}))

	// 3. Request Logging (Custom to use Zap + RayID). Errors are not logged
	// here; the error handler decides which of them are error-worthy.
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		return c.Next()
	})

	// Swagger Documentation (Public)
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Feature Loader
	mgr := loader.NewManager()
	mgr.Register(health.NewFeature(logg))
	mgr.Register(luau.NewFeature(eng, cfg.Server.Luau, logg))
	mgr.Register(lua51.NewFeature(eng, cfg.Server.Lua51, logg))
	mgr.Register(assets.NewFeature(cfg.Server, store, cfg.Storage.Bucket, logg))

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}

	return app, nil
}

// applyServeFlags lets explicit command line flags override whatever the
// environment and .env produced.
func applyServeFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("port") {
		cfg.Server.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("luau") {
		cfg.Server.Luau, _ = cmd.Flags().GetBool("luau")
	}
	if cmd.Flags().Changed("lua51") {
		cfg.Server.Lua51, _ = cmd.Flags().GetBool("lua51")
	}
	if cmd.Flags().Changed("assets-dir") {
		cfg.Server.AssetsDir, _ = cmd.Flags().GetString("assets-dir")
	}
}

func init() {
	RootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 3000, "Port the server listens on")
	serveCmd.Flags().Bool("luau", true, "Enable the Luau decompilation endpoint")
	serveCmd.Flags().Bool("lua51", true, "Enable the Lua 5.1 decompilation endpoint")
	serveCmd.Flags().String("assets-dir", "public", "Directory the static fallback serves from")
}
