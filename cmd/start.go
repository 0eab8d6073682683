package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"sectionkit/core/adapter"
	"sectionkit/core/config"
	"sectionkit/core/database"
	"sectionkit/core/headless"
	"sectionkit/core/loader"
	"sectionkit/core/logger"
	"sectionkit/core/mainloop"
	"sectionkit/core/middleware/auth"
	"sectionkit/core/middleware/rayid"
	"sectionkit/core/storage"

	"sectionkit/feature/archive"
	"sectionkit/feature/journal"
	"sectionkit/feature/playground"
	"sectionkit/feature/scenario"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "sectionkit/docs/swagger"
)

// @title SectionKit API
// @version 1.0
// @description Live section adapter playground, scenario replays, render journal and snapshot archive.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the sectionkit server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
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

		// 3. Connect to Database (Optional, backs the render journal)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed, render journal disabled", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to journal database", zap.String("driver", cfg.Database.Driver))
		}

		// 4. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 5. Start the main loop owning the live adapter
		loop := mainloop.New(logg)
		defer loop.Close()

		journalFeature := journal.NewFeature(db, logg, cfg.Server.FeatureEnabled("journal"))
		var playgroundObservers, scenarioObservers []adapter.Observer
		if journalFeature.IsEnabled() {
			// The playground renders its seed layout before features load.
			if err := journalFeature.Service().Migrate(); err != nil {
				logg.Fatal("Failed to migrate render journal", zap.Error(err))
			}
			playgroundObservers = append(playgroundObservers, journalFeature.Service().Recorder("playground"))
			scenarioObservers = append(scenarioObservers, journalFeature.Service().Recorder("scenario"))
		}

		live, err := playground.NewService(ctx, loop, cfg.Adapter, headless.Options{Deferred: true},
			playground.DefaultLayout(), logg, playgroundObservers...)
		if err != nil {
			logg.Fatal("Failed to start playground", zap.Error(err))
		}

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()

		archiveFeature := archive.NewFeature(store, cfg.Storage.Bucket, logg, live, cfg.Server.FeatureEnabled("archive"))
		mgr.Register(journalFeature)
		mgr.Register(archiveFeature)
		mgr.Register(playground.NewFeature(live, archiveFeature.Service(), cfg.Server.FeatureEnabled("playground")))
		mgr.Register(scenario.NewFeature(cfg.Adapter, logg, cfg.Server.FeatureEnabled("scenario"), scenarioObservers...))

		// 7. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// RayID first so that every log line carries it
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

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/swagger"}}))

		// 8. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", mgr.Loaded()))

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
