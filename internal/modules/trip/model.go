// README: Per-user trip record and status definitions.
package trip

import (
	"time"

	"greenroute/internal/types"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Trip is one participant's journey log entry. A ride produces one Trip per
// participant. A pending trip transitions to completed exactly once, at which
// point its points are computed and frozen.
type Trip struct {
	ID            types.ID  `firestore:"-" json:"id"`
	RideID        types.ID  `firestore:"rideId,omitempty" json:"rideId,omitempty"`
	IsDriver      bool      `firestore:"isDriver" json:"isDriver"`
	IsCarpool     bool      `firestore:"isCarpool" json:"isCarpool"`
	Passengers    int       `firestore:"passengers,omitempty" json:"passengers,omitempty"`
	DistanceKm    float64   `firestore:"distance" json:"distance"`
	Status        Status    `firestore:"status" json:"status"`
	PointsAwarded int       `firestore:"pointsAwarded" json:"pointsAwarded"`
	StartTime     time.Time `firestore:"startTime" json:"startTime"`
	RecordedAt    time.Time `firestore:"recordedAt" json:"recordedAt"`
}
