// README: Arrival-check service applying the two proximity thresholds.
package location

import (
	"greenroute/internal/config"
	"greenroute/internal/types"
)

// Proximity is the result of checking a reported position against a ride
// destination. AtDestination uses the arrival radius (default 0.5 km);
// CanConfirm uses the separate, slightly wider confirm radius (default
// 0.7 km) that gates the confirm-arrival action. The two thresholds are
// deliberately distinct.
type Proximity struct {
	DistanceKm    float64 `json:"distanceKm"`
	AtDestination bool    `json:"atDestination"`
	CanConfirm    bool    `json:"canConfirm"`
}

type Service struct {
	cfg config.GeoConfig
}

func NewService(cfg config.GeoConfig) *Service {
	return &Service{cfg: cfg}
}

// Check computes the distance from current to dest and evaluates both
// thresholds.
func (s *Service) Check(current, dest types.Point) Proximity {
	d := HaversineKm(current, dest)
	return Proximity{
		DistanceKm:    d,
		AtDestination: d <= s.cfg.ArrivalRadiusKm,
		CanConfirm:    d <= s.cfg.ConfirmRadiusKm,
	}
}
