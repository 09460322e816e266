// README: Config loader with env defaults for HTTP, Firebase, Redis, Maps, and geo thresholds.
package config

import (
	"os"
	"strconv"
	"time"
)

// GeoConfig carries the proximity thresholds and the geocoding call timeout.
// ArrivalRadiusKm and ConfirmRadiusKm are intentionally distinct settings:
// the first flags "at the destination", the second gates the confirm action.
type GeoConfig struct {
	ArrivalRadiusKm float64
	ConfirmRadiusKm float64
	GeocodeTimeout  time.Duration
	GeocodeCacheTTL time.Duration
}

type Config struct {
	HTTP struct {
		Addr string
	}
	Firebase struct {
		ProjectID       string
		CredentialsFile string
	}
	Redis struct {
		Addr string
	}
	Maps struct {
		APIKey string
	}
	Geo GeoConfig
	Log struct {
		Level string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("GREENROUTE_HTTP_ADDR", ":8080")
	cfg.Firebase.ProjectID = os.Getenv("GREENROUTE_FIREBASE_PROJECT_ID")
	cfg.Firebase.CredentialsFile = os.Getenv("GREENROUTE_FIREBASE_CREDENTIALS")
	cfg.Redis.Addr = envOrDefault("GREENROUTE_REDIS_ADDR", "localhost:6379")
	cfg.Maps.APIKey = os.Getenv("GREENROUTE_MAPS_API_KEY")
	cfg.Geo.ArrivalRadiusKm = envOrDefaultFloat("GREENROUTE_ARRIVAL_RADIUS_KM", 0.5)
	cfg.Geo.ConfirmRadiusKm = envOrDefaultFloat("GREENROUTE_CONFIRM_RADIUS_KM", 0.7)
	cfg.Geo.GeocodeTimeout = time.Duration(envOrDefaultInt("GREENROUTE_GEOCODE_TIMEOUT_SECONDS", 8)) * time.Second
	cfg.Geo.GeocodeCacheTTL = time.Duration(envOrDefaultInt("GREENROUTE_GEOCODE_CACHE_TTL_HOURS", 24)) * time.Hour
	cfg.Log.Level = envOrDefault("GREENROUTE_LOG_LEVEL", "info")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}
