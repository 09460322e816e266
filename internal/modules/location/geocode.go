// README: Reverse geocoding via the Google Maps Geocoding API with caching.
package location

import (
	"context"
	"errors"
	"fmt"
	"time"

	"googlemaps.github.io/maps"

	"greenroute/internal/config"
	"greenroute/internal/types"
)

var ErrNoAddress = errors.New("no address found for location")

// GeocodeClient is the slice of *maps.Client the geocoder needs.
type GeocodeClient interface {
	ReverseGeocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// Geocoder resolves coordinates to human-readable addresses. Lookups are
// cached by coordinates rounded to five decimal places (~1 m) and bounded by
// the configured per-call timeout.
type Geocoder struct {
	maps    GeocodeClient
	cache   Cache
	timeout time.Duration
	ttl     time.Duration
}

func NewGeocoder(client GeocodeClient, cache Cache, cfg config.GeoConfig) *Geocoder {
	return &Geocoder{
		maps:    client,
		cache:   cache,
		timeout: cfg.GeocodeTimeout,
		ttl:     cfg.GeocodeCacheTTL,
	}
}

func (g *Geocoder) ReverseGeocode(ctx context.Context, pt types.Point) (string, error) {
	key := fmt.Sprintf("geocode:%.5f,%.5f", pt.Lat, pt.Lng)
	if g.cache != nil {
		if addr, err := g.cache.Get(ctx, key); err == nil && addr != "" {
			return addr, nil
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	results, err := g.maps.ReverseGeocode(callCtx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: pt.Lat, Lng: pt.Lng},
	})
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", ErrNoAddress
	}

	addr := results[0].FormattedAddress
	if g.cache != nil {
		_ = g.cache.Set(ctx, key, addr, g.ttl)
	}
	return addr, nil
}
