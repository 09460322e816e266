// README: Parking record model.
package parking

import (
	"time"

	"greenroute/internal/modules/points"
	"greenroute/internal/types"
)

// Record is one logged parking event. PointsAwarded is fixed when the record
// is created (0 or 10) and never changes afterwards.
type Record struct {
	ID              types.ID           `firestore:"-" json:"id"`
	Type            points.ParkingType `firestore:"type" json:"type"`
	Location        string             `firestore:"location" json:"location"`
	DurationMinutes int                `firestore:"durationMinutes" json:"durationMinutes"`
	Date            string             `firestore:"date" json:"date"`
	PointsAwarded   int                `firestore:"pointsAwarded" json:"pointsAwarded"`
	RecordedAt      time.Time          `firestore:"recordedAt" json:"recordedAt"`
}
