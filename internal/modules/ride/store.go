// README: Ride store backed by Firestore; completion and booking are transactional.
package ride

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"greenroute/internal/types"
)

const ridesCollection = "rides"

type FirestoreStore struct {
	client *firestore.Client
}

func NewStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) rideRef(rideID types.ID) *firestore.DocumentRef {
	return s.client.Collection(ridesCollection).Doc(string(rideID))
}

func (s *FirestoreStore) Get(ctx context.Context, rideID types.ID) (*Ride, error) {
	snap, err := s.rideRef(rideID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return snapToRide(snap)
}

func (s *FirestoreStore) CreateOffer(ctx context.Context, r *Ride) (types.ID, error) {
	ref := s.client.Collection(ridesCollection).NewDoc()
	_, err := ref.Create(ctx, map[string]any{
		"driverId":           string(r.DriverID),
		"driverName":         r.DriverName,
		"origin":             r.Origin,
		"originAddress":      r.OriginAddress,
		"destination":        r.Destination,
		"destinationAddress": r.DestinationAddress,
		"departureTime":      r.DepartureTime,
		"returnTime":         r.ReturnTime,
		"seatsAvailable":     r.SeatsAvailable,
		"costPerSeat":        r.CostPerSeat,
		"distance":           r.DistanceKm,
		"status":             string(StatusActive),
		"bookings":           []Booking{},
		"passengerIds":       []string{},
		"passengerVerified":  []string{},
		"driverVerified":     false,
		"createdAt":          firestore.ServerTimestamp,
		"updatedAt":          firestore.ServerTimestamp,
	})
	if err != nil {
		return "", err
	}
	return types.ID(ref.ID), nil
}

// CreateCompleted writes a ride document that is born completed. Used when a
// completion request arrives for a ride with no prior document.
func (s *FirestoreStore) CreateCompleted(ctx context.Context, r *Ride) error {
	ids := make([]string, len(r.PassengerIDs))
	for i, p := range r.PassengerIDs {
		ids[i] = string(p)
	}
	_, err := s.rideRef(r.ID).Create(ctx, map[string]any{
		"driverId":          string(r.DriverID),
		"passengerIds":      ids,
		"distance":          r.DistanceKm,
		"status":            string(StatusCompleted),
		"completedAt":       firestore.ServerTimestamp,
		"driverVerified":    true,
		"passengerVerified": []string{},
		"completedBy":       string(r.DriverID),
		"createdAt":         firestore.ServerTimestamp,
		"updatedAt":         firestore.ServerTimestamp,
	})
	return err
}

// MarkCompleted transitions active -> completed inside a transaction. A ride
// that is already completed is rejected without mutation.
func (s *FirestoreStore) MarkCompleted(ctx context.Context, rideID, driverID types.ID) error {
	ref := s.rideRef(rideID)
	return s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		r, err := snapToRide(snap)
		if err != nil {
			return err
		}
		if r.Status == StatusCompleted {
			return ErrAlreadyCompleted
		}
		return tx.Update(ref, []firestore.Update{
			{Path: "status", Value: string(StatusCompleted)},
			{Path: "completedAt", Value: firestore.ServerTimestamp},
			{Path: "driverVerified", Value: true},
			{Path: "completedBy", Value: string(driverID)},
			{Path: "updatedAt", Value: firestore.ServerTimestamp},
		})
	})
}

// AddVerifiedPassenger appends to the verified set with a server-side
// ArrayUnion, so concurrent verifications cannot lose updates.
func (s *FirestoreStore) AddVerifiedPassenger(ctx context.Context, rideID, passengerID types.ID) error {
	_, err := s.rideRef(rideID).Update(ctx, []firestore.Update{
		{Path: "passengerVerified", Value: firestore.ArrayUnion(string(passengerID))},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return err
}

func (s *FirestoreStore) Book(ctx context.Context, rideID, passengerID types.ID) error {
	ref := s.rideRef(rideID)
	return s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		r, err := snapToRide(snap)
		if err != nil {
			return err
		}
		if r.Status != StatusActive {
			return ErrAlreadyCompleted
		}
		if r.HasPassenger(passengerID) {
			return ErrAlreadyBooked
		}
		if r.SeatsAvailable < 1 {
			return ErrRideFull
		}
		booking := map[string]any{
			"passengerId": string(passengerID),
			"status":      string(BookingConfirmed),
			"createdAt":   time.Now().UTC(),
		}
		return tx.Update(ref, []firestore.Update{
			{Path: "bookings", Value: firestore.ArrayUnion(booking)},
			{Path: "passengerIds", Value: firestore.ArrayUnion(string(passengerID))},
			{Path: "seatsAvailable", Value: firestore.Increment(-1)},
			{Path: "updatedAt", Value: firestore.ServerTimestamp},
		})
	})
}

func (s *FirestoreStore) ListOpen(ctx context.Context) ([]Ride, error) {
	iter := s.client.Collection(ridesCollection).
		Where("status", "==", string(StatusActive)).
		OrderBy("departureTime", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var rides []Ride
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		r, err := snapToRide(doc)
		if err != nil {
			return nil, err
		}
		rides = append(rides, *r)
	}
	return rides, nil
}

func snapToRide(snap *firestore.DocumentSnapshot) (*Ride, error) {
	var r Ride
	if err := snap.DataTo(&r); err != nil {
		return nil, err
	}
	r.ID = types.ID(snap.Ref.ID)
	return &r, nil
}
