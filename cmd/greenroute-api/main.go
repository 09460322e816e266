// README: Entry point; loads config, wires module services, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"googlemaps.github.io/maps"

	"greenroute/internal/config"
	httptransport "greenroute/internal/http"
	"greenroute/internal/infra"
	"greenroute/internal/modules/location"
	"greenroute/internal/modules/parking"
	"greenroute/internal/modules/points"
	"greenroute/internal/modules/ride"
	"greenroute/internal/modules/trip"
	"greenroute/internal/modules/vehicle"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load", "err", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Firebase.ProjectID == "" {
		logger.Error("GREENROUTE_FIREBASE_PROJECT_ID is required")
		os.Exit(1)
	}
	fb, err := infra.NewFirebase(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		logger.Error("firebase init", "err", err)
		os.Exit(1)
	}
	defer fb.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer redisClient.Close()

	fs := fb.Firestore()

	pointsSvc := points.NewService(points.NewStore(fs))
	vehicleSvc := vehicle.NewService(vehicle.NewStore(fs), pointsSvc)
	parkingSvc := parking.NewService(parking.NewStore(fs), pointsSvc)
	tripSvc := trip.NewService(trip.NewStore(fs), pointsSvc)
	rideSvc := ride.NewService(ride.NewStore(fs), tripSvc)
	proximitySvc := location.NewService(cfg.Geo)

	var geocoder *location.Geocoder
	if cfg.Maps.APIKey != "" {
		mapsClient, err := maps.NewClient(maps.WithAPIKey(cfg.Maps.APIKey))
		if err != nil {
			logger.Error("maps client init", "err", err)
			os.Exit(1)
		}
		geocoder = location.NewGeocoder(mapsClient, location.NewRedisCache(redisClient), cfg.Geo)
	} else {
		logger.Warn("GREENROUTE_MAPS_API_KEY not set, reverse geocoding disabled")
	}

	handler := httptransport.NewRouter(httptransport.ServerDeps{
		Points:    pointsSvc,
		Vehicles:  vehicleSvc,
		Parking:   parkingSvc,
		Trips:     tripSvc,
		Rides:     rideSvc,
		Proximity: proximitySvc,
		Geocoder:  geocoder,
		Verifier:  fb,
		Logger:    logger,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", "addr", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server", "err", err)
		os.Exit(1)
	}
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
