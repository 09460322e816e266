// README: Registered vehicle model.
package vehicle

import (
	"time"

	"greenroute/internal/modules/points"
	"greenroute/internal/types"
)

// Vehicle is registered once per user per car. The eco award is computed at
// creation time only; records are never re-scored.
type Vehicle struct {
	ID            types.ID           `firestore:"-" json:"id"`
	Type          points.VehicleType `firestore:"type" json:"type"`
	Make          string             `firestore:"make" json:"make"`
	Model         string             `firestore:"model" json:"model"`
	Year          int                `firestore:"year" json:"year"`
	Plate         string             `firestore:"plate" json:"plate"`
	Efficiency    string             `firestore:"efficiency,omitempty" json:"efficiency,omitempty"`
	PrimaryUse    string             `firestore:"primaryUse,omitempty" json:"primaryUse,omitempty"`
	PointsAwarded int                `firestore:"pointsAwarded" json:"pointsAwarded"`
	RegisteredAt  time.Time          `firestore:"registeredAt" json:"registeredAt"`
}
