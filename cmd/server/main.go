package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/purchasing-admin/backend-go/internal/api"
	"github.com/purchasing-admin/backend-go/internal/cache"
	"github.com/purchasing-admin/backend-go/internal/config"
	"github.com/purchasing-admin/backend-go/internal/recap"
	"github.com/purchasing-admin/backend-go/internal/repository/memory"
	"github.com/purchasing-admin/backend-go/internal/service"
	"github.com/purchasing-admin/backend-go/pkg/logger"
)

func main() {
	cfg := config.Load()

	logger.SetLevel(logger.ModeLevel(cfg.Server.Mode))
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// In-memory data source with demo fixtures; this service is
	// intentionally non-persistent.
	store := memory.NewStore()
	memory.SeedDemoData(store)

	recapCache, err := cache.NewRecapCache(cfg.Cache)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to initialize recap cache")
	}

	classifier := recap.NewClassifier(cfg.Reporting.Location())
	builder := recap.NewBuilder(classifier, cfg.Reporting.Rate(), int32(cfg.Reporting.CurrencyPrecision))

	services := &api.Services{
		OrderService:   service.NewOrderService(store, recapCache),
		RecapService:   service.NewRecapService(store, builder, recapCache, cfg.Filter.AllSentinel),
		ListingService: service.NewListingService(store, store, store, cfg.Filter.AllSentinel),
	}

	router := api.NewRouter(services, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
