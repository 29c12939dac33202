package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodfunk/core/config"
	"foodfunk/core/loader"
	"foodfunk/core/logger"
	"foodfunk/core/metrics"
	"foodfunk/core/middleware/auth"
	"foodfunk/core/middleware/rayid"
	"foodfunk/core/source"
	"foodfunk/feature/integrity"
	"foodfunk/feature/properties"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "foodfunk/docs/swagger"
)

// @title foodfunk API
// @version 1.0
// @description API for resolving rot and preserving properties.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the property server",
	Long:  `Loads the property tables, watches the property file and serves the query API.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// 3. Optional backends
		db, store := connectOptional(cfg, logg)

		// 4. Build and load tables
		deps := tableDeps{db: db, store: store}
		if cfg.Server.Metrics {
			deps.observer = metrics.Get()
			deps.recorder = metrics.Get()
		}
		tbls := buildTables(cfg, logg, deps)
		svc := properties.NewService(logg, tbls.bindings()...)
		if err := svc.ReloadAll(ctx); err != nil {
			logg.Fatal("Failed to load property tables", zap.Error(err))
		}

		if cfg.Properties.Watch {
			debounce := time.Duration(cfg.Properties.DebounceMillis) * time.Millisecond
			go func() {
				if err := source.Watch(ctx, cfg.Properties.File, debounce, logg, svc.ReloadAll); err != nil {
					logg.Error("Property file watcher stopped", zap.Error(err))
				}
			}()
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 5. Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(properties.NewFeature(svc))

		mgr.Register(integrity.NewFeature(integrity.Options{
			Client:   store,
			Bucket:   cfg.Storage.Bucket,
			Object:   cfg.Storage.Object,
			DB:       db,
			Tables:   tbls.integrityTables(),
			Defaults: tbls.defaultDocument,
		}, logg))

		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Public endpoints
		app.Get("/swagger/*", swagger.HandlerDefault)
		if cfg.Server.Metrics {
			app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
		}

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port), zap.Bool("auth", cfg.Server.IsAuthEnabled()))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		cancel()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
