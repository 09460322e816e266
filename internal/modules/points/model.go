// README: User profile and points-ledger entry models.
package points

import (
	"time"

	"greenroute/internal/types"
)

// Profile is the per-user document holding the running green-points total.
// The total is mutated only through Store.Award and profile edits.
type Profile struct {
	ID          types.ID  `firestore:"-" json:"id"`
	Email       string    `firestore:"email" json:"email"`
	DisplayName string    `firestore:"displayName" json:"displayName"`
	PhotoURL    string    `firestore:"photoURL,omitempty" json:"photoURL,omitempty"`
	GreenPoints int       `firestore:"greenPoints" json:"greenPoints"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// LedgerEntry is one immutable point-awarding event. Entries are append-only
// per user; the sum of entries equals the profile total.
type LedgerEntry struct {
	ID        types.ID  `firestore:"-" json:"id"`
	Points    int       `firestore:"points" json:"points"`
	Reason    string    `firestore:"reason" json:"reason"`
	Timestamp time.Time `firestore:"timestamp" json:"timestamp"`
}
