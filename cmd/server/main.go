package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/andresuchdata/smart-reorder/internal/api"
	"github.com/andresuchdata/smart-reorder/internal/api/handlers"
	"github.com/andresuchdata/smart-reorder/internal/cache"
	"github.com/andresuchdata/smart-reorder/internal/config"
	"github.com/andresuchdata/smart-reorder/internal/domain"
	"github.com/andresuchdata/smart-reorder/internal/repository/memory"
	"github.com/andresuchdata/smart-reorder/internal/service"
	"github.com/andresuchdata/smart-reorder/internal/storage"
	"github.com/andresuchdata/smart-reorder/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	if cfg.Server.Mode == "debug" {
		logger.SetLevel("debug")
		gin.SetMode(gin.DebugMode)
	} else {
		logger.SetLevel("info")
		gin.SetMode(gin.ReleaseMode)
	}

	// Seed the in-memory collection with the sample dataset
	repo, err := memory.NewProductRepositoryWith(domain.SampleProducts())
	if err != nil {
		log.Fatalf("Failed to seed product repository: %v", err)
	}

	recCache, err := cache.NewRecommendationsCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("recommendations cache unavailable, continuing without it")
		recCache = cache.NewNoopRecommendationsCache()
	}

	var archive storage.ObjectStorage
	if cfg.Archive.Enabled {
		client, err := storage.NewMinioClient(cfg.Archive)
		if err != nil {
			logger.Log.Warn().Err(err).Msg("export archive unavailable, continuing without it")
		} else {
			archive = client
		}
	}

	// Initialize services
	inventoryService := service.NewInventoryService(repo, recCache)
	exportService := service.NewExportService(inventoryService, archive)

	// Initialize HTTP server
	handler := handlers.NewInventoryHandler(inventoryService, exportService)
	router := api.NewRouter(handler, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
