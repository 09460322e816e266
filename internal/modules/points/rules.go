// README: Award rules engine; pure functions mapping domain events to point values.
package points

import (
	"fmt"
	"math"
)

type VehicleType string

const (
	VehicleElectric      VehicleType = "electric"
	VehicleHybrid        VehicleType = "hybrid"
	VehicleFuelEfficient VehicleType = "fuelEfficient"
	VehicleStandard      VehicleType = "standard"
)

type ParkingType string

const (
	ParkingEfficient ParkingType = "efficient"
	ParkingStandard  ParkingType = "standard"
)

// ScoreVehicleRegistration returns the one-time award for registering a
// vehicle of the given type, with the ledger reason. Unknown types score 0.
func ScoreVehicleRegistration(t VehicleType) (int, string) {
	switch t {
	case VehicleElectric:
		return 100, "Registered electric vehicle"
	case VehicleHybrid:
		return 50, "Registered hybrid vehicle"
	case VehicleFuelEfficient:
		return 25, "Registered fuel-efficient vehicle"
	default:
		return 0, ""
	}
}

// ScoreParkingEvent awards 10 points for efficient parking, 0 for anything else.
func ScoreParkingEvent(t ParkingType) (int, string) {
	if t == ParkingEfficient {
		return 10, "Used efficient/smart parking"
	}
	return 0, ""
}

// ScoreCarpoolTrip awards 5 points per passenger per 10 km. The floor is
// applied to the final product, not to intermediate terms. A computed value
// of zero or less earns nothing.
func ScoreCarpoolTrip(distanceKm float64, passengers int) (int, string) {
	if passengers <= 0 {
		return 0, ""
	}
	pts := int(math.Floor(distanceKm / 10 * 5 * float64(passengers)))
	if pts <= 0 {
		return 0, ""
	}
	reason := fmt.Sprintf("Carpool trip with %d passenger(s) for %gkm", passengers, distanceKm)
	return pts, reason
}
