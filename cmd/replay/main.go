// Command replay plays a GPX file through the route tracker without a
// server and prints the session summary.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gotur/internal/core/cache"
	"gotur/internal/core/logger"
	routeadapters "gotur/internal/features/routes/adapters"
	routeservice "gotur/internal/features/routes/service"
	trackingadapter "gotur/internal/features/tracking/adapters"
	"gotur/internal/features/tracking/domain"
	"gotur/internal/features/tracking/ports"
	trackingservice "gotur/internal/features/tracking/service"
)

type options struct {
	GPXFile     string
	Interval    time.Duration
	MinDistance float64
	RedisURL    string
	LogLevel    string
}

func main() {
	var opts options
	flag.StringVar(&opts.GPXFile, "gpx", "", "GPX file to replay (required)")
	flag.DurationVar(&opts.Interval, "interval", 100*time.Millisecond, "Delay between samples, also used as the tick period")
	flag.Float64Var(&opts.MinDistance, "min-distance", 1, "Minimum movement in meters between delivered samples")
	flag.StringVar(&opts.RedisURL, "redis", "", "Save the finished route to this Redis URL")
	flag.StringVar(&opts.LogLevel, "log-level", "warn", "Log level")
	flag.Parse()

	if opts.GPXFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := logger.Init("development", opts.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	route, err := trackingadapter.LoadGPX(opts.GPXFile)
	if err != nil {
		return err
	}

	stream, err := trackingadapter.NewSimulatedStream(route, logger.Named("location"))
	if err != nil {
		return err
	}

	permission, err := trackingadapter.NewStaticPermission(string(ports.PermissionGranted))
	if err != nil {
		return err
	}

	deps := trackingservice.Deps{
		Permission: permission,
		Stream:     stream,
		Timer:      trackingadapter.NewTickerTimer(),
		Notifier:   trackingadapter.NewLogNotifier(logger.Named("notice")),
	}

	if opts.RedisURL != "" {
		redisCache, err := cache.NewRedisAdapter(opts.RedisURL)
		if err != nil {
			return err
		}
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			return err
		}
		deps.Destination = routeservice.NewRouteService(routeadapters.NewRedisRouteRepository(redisCache, 0))
	}

	controller := trackingservice.NewController(deps, trackingservice.Options{
		TickPeriod: opts.Interval,
		Watch: domain.WatchOptions{
			Accuracy:          domain.AccuracyBestForNavigation,
			MinTimeInterval:   opts.Interval,
			MinDistanceMeters: opts.MinDistance,
		},
	})

	go controller.Run(ctx)
	defer controller.Close()

	if err := controller.Mount(ctx); err != nil {
		return err
	}
	if err := controller.Start(ctx, ports.AlwaysConfirm); err != nil {
		return err
	}

	select {
	case <-stream.Exhausted():
	case <-ctx.Done():
		return ctx.Err()
	}

	// Pausing drains queued samples and makes the session saveable.
	if err := controller.Pause(ctx); err != nil {
		return err
	}

	snap, err := controller.Snapshot(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "time      %s\n", snap.Elapsed)
	fmt.Fprintf(out, "distance  %s km\n", snap.DistanceKm)
	fmt.Fprintf(out, "points    %d\n", len(snap.Path))

	if deps.Destination == nil {
		return nil
	}

	id, err := controller.Save(ctx)
	if err != nil {
		return fmt.Errorf("route not saved: %w", err)
	}
	fmt.Fprintf(out, "saved     %s\n", id)
	return nil
}
