// README: Haversine and proximity-threshold tests.
package location

import (
	"math"
	"testing"

	"greenroute/internal/config"
	"greenroute/internal/types"
)

func TestHaversineKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		a, b      types.Point
		wantKm    float64
		tolerance float64
	}{
		{
			name:      "same point",
			a:         types.Point{Lat: 25.033, Lng: 121.565},
			b:         types.Point{Lat: 25.033, Lng: 121.565},
			wantKm:    0,
			tolerance: 0.000001,
		},
		{
			name:      "Taipei 101 to Taipei Main Station (~5km)",
			a:         types.Point{Lat: 25.0340, Lng: 121.5645},
			b:         types.Point{Lat: 25.0478, Lng: 121.5170},
			wantKm:    5.0,
			tolerance: 1.0,
		},
		{
			name:      "New York to Los Angeles (~3936km)",
			a:         types.Point{Lat: 40.7128, Lng: -74.0060},
			b:         types.Point{Lat: 34.0522, Lng: -118.2437},
			wantKm:    3936,
			tolerance: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineKm(tt.a, tt.b)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("HaversineKm() = %f, want %f (±%f)", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}

func TestHaversineKm_Symmetry(t *testing.T) {
	a := types.Point{Lat: 25.0, Lng: 121.0}
	b := types.Point{Lat: 26.0, Lng: 122.0}
	d1 := HaversineKm(a, b)
	d2 := HaversineKm(b, a)
	if d1 != d2 {
		t.Errorf("haversine is not symmetric: %v vs %v", d1, d2)
	}
}

func TestIsNearby(t *testing.T) {
	a := types.Point{Lat: 25.0330, Lng: 121.5654}
	// ~330m north of a
	near := types.Point{Lat: 25.0360, Lng: 121.5654}
	// ~5km away
	far := types.Point{Lat: 25.0478, Lng: 121.5170}

	if !IsNearby(a, near, 0.5) {
		t.Error("330m apart must be within 0.5km")
	}
	if IsNearby(a, far, 0.5) {
		t.Error("5km apart must not be within 0.5km")
	}
}

func TestCheck_TwoThresholdsAreDistinct(t *testing.T) {
	cfg := config.GeoConfig{ArrivalRadiusKm: 0.5, ConfirmRadiusKm: 0.7}
	svc := NewService(cfg)
	dest := types.Point{Lat: 25.0330, Lng: 121.5654}

	// ~600m away: outside the arrival radius but inside the confirm radius.
	between := types.Point{Lat: 25.0384, Lng: 121.5654}
	p := svc.Check(between, dest)
	if p.DistanceKm <= 0.5 || p.DistanceKm > 0.7 {
		t.Fatalf("fixture distance %f not between thresholds", p.DistanceKm)
	}
	if p.AtDestination {
		t.Error("600m away must not count as at destination")
	}
	if !p.CanConfirm {
		t.Error("600m away must still allow confirmation")
	}

	at := svc.Check(dest, dest)
	if !at.AtDestination || !at.CanConfirm || at.DistanceKm != 0 {
		t.Errorf("zero distance check wrong: %+v", at)
	}

	far := svc.Check(types.Point{Lat: 25.1, Lng: 121.5654}, dest)
	if far.AtDestination || far.CanConfirm {
		t.Errorf("7km away must fail both thresholds: %+v", far)
	}
}
