// README: Award rules tests (vehicle, parking, carpool scoring).
package points

import "testing"

func TestScoreVehicleRegistration(t *testing.T) {
	tests := []struct {
		vehicleType VehicleType
		want        int
		wantReason  bool
	}{
		{VehicleElectric, 100, true},
		{VehicleHybrid, 50, true},
		{VehicleFuelEfficient, 25, true},
		{VehicleStandard, 0, false},
		{VehicleType("diesel"), 0, false},
		{VehicleType(""), 0, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.vehicleType), func(t *testing.T) {
			got, reason := ScoreVehicleRegistration(tt.vehicleType)
			if got != tt.want {
				t.Errorf("ScoreVehicleRegistration(%q) = %d, want %d", tt.vehicleType, got, tt.want)
			}
			if tt.wantReason && reason == "" {
				t.Errorf("ScoreVehicleRegistration(%q) returned empty reason for nonzero score", tt.vehicleType)
			}
			if !tt.wantReason && reason != "" {
				t.Errorf("ScoreVehicleRegistration(%q) returned reason %q for zero score", tt.vehicleType, reason)
			}
		})
	}
}

func TestScoreParkingEvent(t *testing.T) {
	if got, _ := ScoreParkingEvent(ParkingEfficient); got != 10 {
		t.Errorf("efficient parking = %d, want 10", got)
	}
	if got, _ := ScoreParkingEvent(ParkingStandard); got != 0 {
		t.Errorf("standard parking = %d, want 0", got)
	}
	if got, _ := ScoreParkingEvent(ParkingType("valet")); got != 0 {
		t.Errorf("unknown parking = %d, want 0", got)
	}
}

func TestScoreCarpoolTrip(t *testing.T) {
	tests := []struct {
		name       string
		distanceKm float64
		passengers int
		want       int
	}{
		{"20km two passengers", 20, 2, 20},
		{"zero distance", 0, 3, 0},
		{"no passengers", 50, 0, 0},
		{"negative passengers", 50, -1, 0},
		// floor applies to the final product: 7/10*5*3 = 10.5 -> 10
		{"fractional product", 7, 3, 10},
		// intermediate terms must not be floored: 4/10*5*1 = 2, while
		// floor(4/10)*5*1 would be 0
		{"short trip single passenger", 4, 1, 2},
		{"sub-point trip", 1, 1, 0},
		{"thirty km two passengers", 30, 2, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := ScoreCarpoolTrip(tt.distanceKm, tt.passengers)
			if got != tt.want {
				t.Errorf("ScoreCarpoolTrip(%g, %d) = %d, want %d", tt.distanceKm, tt.passengers, got, tt.want)
			}
			if tt.want > 0 && reason == "" {
				t.Error("nonzero score must carry a reason")
			}
			if tt.want == 0 && reason != "" {
				t.Errorf("zero score must not carry a reason, got %q", reason)
			}
		})
	}
}
