// backend-go/cmd/server/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/analytics"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/api"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/cache"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/config"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/repository/postgres"
	"github.com/andresuchdata/cafe-ops/backend-go/internal/service"
	"github.com/andresuchdata/cafe-ops/backend-go/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := postgres.NewDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize cache (noop when disabled)
	analyticsCache, err := cache.NewAnalyticsCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("analytics cache unavailable, continuing without it")
		analyticsCache = cache.NewNoopAnalyticsCache()
	}

	// Initialize repositories
	ingredientRepo := postgres.NewIngredientRepository(db)
	menuRepo := postgres.NewMenuRepository(db)
	salesRepo := postgres.NewSalesRepository(db)

	// Initialize services
	plannerCfg := analytics.PlannerConfig{
		SafetyStockDays:    cfg.Planner.SafetyStockDays,
		TargetCoverageDays: cfg.Planner.TargetCoverageDays,
		LookbackDays:       cfg.Planner.LookbackDays,
		HorizonDays:        cfg.Planner.HorizonDays,
	}
	analyticsService, err := service.NewAnalyticsService(ingredientRepo, menuRepo, salesRepo, plannerCfg, analyticsCache)
	if err != nil {
		log.Fatalf("Invalid planner configuration: %v", err)
	}

	services := &api.Services{
		Analytics: analyticsService,
		Costing:   service.NewCostingService(menuRepo, ingredientRepo),
		Inventory: service.NewInventoryService(ingredientRepo, analyticsCache),
		Menu:      service.NewMenuService(menuRepo, ingredientRepo, analyticsCache),
		Sales:     service.NewSalesService(salesRepo, menuRepo, analyticsCache),
	}

	// Initialize HTTP server
	router := api.NewRouter(services, cfg.Server.AllowedOrigins)
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
