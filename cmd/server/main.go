package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"waste-sorting-app/internal/config"
	"waste-sorting-app/internal/data"
	"waste-sorting-app/internal/handler"
	"waste-sorting-app/internal/logger"
	"waste-sorting-app/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	// --- Configuration Loading ---
	// A missing .env file is not an error; the environment may already be set.
	_ = godotenv.Load()
	cfg, err := config.LoadConfig()
	if err != nil {
		// Use fmt.Printf here because the logger is not yet initialized.
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger Initialization ---
	log := logger.New(cfg.Log, os.Stdout)

	// --- Database Initialization and Migration ---
	log.Info(fmt.Sprintf("Connecting to the %s database...", cfg.DB.Driver))
	db, err := data.NewDB(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err, "Failed to connect to database")
	}
	defer db.Close()
	log.Info("Database connection successful.")

	if cfg.DB.Migrate {
		log.Info("Applying database migrations...")
		if err := data.Migrate(db); err != nil {
			log.Fatal(err, "Failed to apply migrations")
		}
		log.Info("Migrations applied successfully.")
	}

	// --- Dependency Injection and Handler Initialization ---
	categoryRepository := data.NewCategoryRepository(db)
	tipRepository := data.NewRecyclingTipRepository(db)
	guidelineRepository := data.NewDisposalGuidelineRepository(db)

	if cfg.Seed.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := service.Seed(ctx, categoryRepository, tipRepository, guidelineRepository, log)
		cancel()
		if err != nil {
			log.Fatal(err, "Failed to seed example data")
		}
	}

	categoryService := service.NewCategoryService(categoryRepository, tipRepository, guidelineRepository)
	tipService := service.NewRecyclingTipService(tipRepository, categoryRepository)
	guidelineService := service.NewDisposalGuidelineService(guidelineRepository, categoryRepository)

	locator := handler.Locator{BaseURL: cfg.Server.BaseURL}
	categoryHandler := handler.NewCategoryHandler(categoryService, locator)
	tipHandler := handler.NewRecyclingTipHandler(tipService, locator)
	guidelineHandler := handler.NewDisposalGuidelineHandler(guidelineService, locator)

	// --- Router Setup ---
	router := handler.NewRouter(categoryHandler, tipHandler, guidelineHandler, log)

	// --- Server Initialization and Graceful Shutdown ---
	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if cfg.Server.TLS.Enabled {
			log.Info(fmt.Sprintf("Starting HTTPS server on %s", server.Addr))
			if err := server.ListenAndServeTLS(cfg.Server.TLS.CertFile, cfg.Server.TLS.KeyFile); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal(err, "Could not start HTTPS server")
			}
		} else {
			log.Info(fmt.Sprintf("Starting HTTP server on %s", server.Addr))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal(err, "Could not start HTTP server")
			}
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Warn("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err, "Server forced to shutdown")
	}
	log.Info("Server exiting")
}
