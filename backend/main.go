package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"syllabus-tracker/backend/config"
	"syllabus-tracker/backend/routes"
	"syllabus-tracker/backend/services"
	"syllabus-tracker/backend/storage"
	"syllabus-tracker/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger(cfg)

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	var kv storage.KV
	if db == nil {
		kv = storage.NewMemoryKV()
		logger.Warn("using in-memory storage, data is lost on restart")
	} else {
		if err := storage.Migrate(db); err != nil {
			log.Fatalf("Error migrating database: %v", err)
		}
		kv = storage.NewGormKV(db)
		logger.Info("using sql storage", "driver", cfg.DBDriver)
	}

	store := services.NewSyllabusStore(kv,
		services.WithLocation(cfg.Location()),
		services.WithLogger(logger.With("component", "store")))
	auth, err := services.NewAuthService(kv, cfg.LoginDelay, logger.With("component", "auth"))
	if err != nil {
		log.Fatalf("Error initializing auth: %v", err)
	}
	notifier := services.NewNotifier(cfg.NotificationTTL)

	// Create Fiber app
	app := routes.NewApp(logger)

	// Setup routes
	routes.SetupRoutes(app, routes.Services{
		Store:    store,
		Auth:     auth,
		Settings: services.NewSettingsService(kv),
		Notifier: notifier,
	}, cfg)

	// Start server
	go func() {
		logger.Info("listening", "port", cfg.ServerPort)
		if err := app.Listen(":" + cfg.ServerPort); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("shutdown", "error", err)
	}
	notifier.Close()

	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	logger.Info("stopped")
}
