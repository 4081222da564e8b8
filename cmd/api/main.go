package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gotur/internal/core/cache"
	"gotur/internal/core/config"
	"gotur/internal/core/httpclient"
	"gotur/internal/core/logger"
	"gotur/internal/core/server"
	routeadapters "gotur/internal/features/routes/adapters"
	routehandler "gotur/internal/features/routes/handler"
	routeports "gotur/internal/features/routes/ports"
	routeservice "gotur/internal/features/routes/service"
	trackingadapter "gotur/internal/features/tracking/adapters"
	"gotur/internal/features/tracking/domain"
	trackinghandler "gotur/internal/features/tracking/handler"
	trackingservice "gotur/internal/features/tracking/service"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// @title GO'TUR API
// @version 1.0
// @description Records a GPS route, accumulating elapsed time and travelled distance, and saves finished routes.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Location source
	route, err := trackingadapter.LoadGPX(cfg.Tracking.RouteFile)
	if err != nil {
		l.Fatal("Failed to load simulated route", zap.Error(err))
	}
	stream, err := trackingadapter.NewSimulatedStream(route, logger.Named("location"))
	if err != nil {
		l.Fatal("Failed to create location stream", zap.Error(err))
	}
	permission, err := trackingadapter.NewStaticPermission(cfg.Tracking.Permission)
	if err != nil {
		l.Fatal("Invalid location permission", zap.Error(err))
	}
	accuracy, err := domain.ParseAccuracy(cfg.Tracking.Accuracy)
	if err != nil {
		l.Fatal("Invalid location accuracy", zap.Error(err))
	}
	l.Info("Simulated route loaded",
		zap.String("file", cfg.Tracking.RouteFile),
		zap.Int("points", len(route)),
	)

	// Save destination
	repo, closeRepo := newRouteRepository(ctx, cfg, l)
	defer closeRepo()
	routeSvc := routeservice.NewRouteService(repo)

	// Tracking controller
	controller := trackingservice.NewController(trackingservice.Deps{
		Permission:  permission,
		Stream:      stream,
		Timer:       trackingadapter.NewTickerTimer(),
		Destination: routeSvc,
		Notifier:    trackingadapter.NewLogNotifier(logger.Named("notice")),
	}, trackingservice.Options{
		TickPeriod: cfg.Tracking.TickPeriod(),
		Watch: domain.WatchOptions{
			Accuracy:          accuracy,
			MinTimeInterval:   cfg.Tracking.MinTimeInterval(),
			MinDistanceMeters: cfg.Tracking.MinDistanceMeters,
		},
	})

	go func() {
		if err := controller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			l.Error("Tracking controller stopped", zap.Error(err))
		}
	}()
	defer controller.Close()

	if err := controller.Mount(ctx); err != nil {
		l.Warn("Initial position unavailable", zap.Error(err))
	}

	srv := server.New(cfg)

	// Register Routes
	trackinghandler.NewTrackingHandler(controller).RegisterRoutes(srv.App)
	routehandler.NewRouteHandler(routeSvc).RegisterRoutes(srv.App)

	go func() {
		if err := srv.Run(); err != nil {
			l.Error("Server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		l.Error("Server shutdown failed", zap.Error(err))
	}
}

// newRouteRepository picks the webhook when one is configured and Redis
// otherwise. Redis must answer a ping before the server starts.
func newRouteRepository(ctx context.Context, cfg *config.AppConfig, l *zap.Logger) (routeports.RouteRepository, func()) {
	if cfg.Routes.WebhookURL != "" {
		l.Info("Saving routes to webhook", zap.String("url", cfg.Routes.WebhookURL))
		client := httpclient.NewClient(10 * time.Second)
		return routeadapters.NewWebhookRouteRepository(client, cfg.Routes.WebhookURL), func() {}
	}

	redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
	if err != nil {
		l.Fatal("Failed to create Redis client", zap.Error(err))
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		l.Fatal("Redis Health Check Failed", zap.Error(err))
	}
	l.Info("Redis connection verified")

	repo := routeadapters.NewRedisRouteRepository(redisCache, cfg.Routes.RouteTTL())
	return repo, func() {
		if err := redisCache.Close(); err != nil {
			l.Warn("Failed to close Redis client", zap.Error(err))
		}
	}
}
