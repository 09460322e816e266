// README: Trip store backed by Firestore (users/{uid}/trips).
package trip

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"greenroute/internal/types"
)

const (
	usersCollection = "users"
	tripsCollection = "trips"
)

type FirestoreStore struct {
	client *firestore.Client
}

func NewStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) collection(userID types.ID) *firestore.CollectionRef {
	return s.client.Collection(usersCollection).Doc(string(userID)).Collection(tripsCollection)
}

func (s *FirestoreStore) Create(ctx context.Context, userID types.ID, t *Trip) (types.ID, error) {
	ref := s.collection(userID).NewDoc()
	_, err := ref.Create(ctx, map[string]any{
		"rideId":        string(t.RideID),
		"isDriver":      t.IsDriver,
		"isCarpool":     t.IsCarpool,
		"passengers":    t.Passengers,
		"distance":      t.DistanceKm,
		"status":        string(t.Status),
		"pointsAwarded": t.PointsAwarded,
		"startTime":     t.StartTime,
		"recordedAt":    firestore.ServerTimestamp,
	})
	if err != nil {
		return "", err
	}
	return types.ID(ref.ID), nil
}

func (s *FirestoreStore) Get(ctx context.Context, userID, tripID types.ID) (*Trip, error) {
	snap, err := s.collection(userID).Doc(string(tripID)).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var t Trip
	if err := snap.DataTo(&t); err != nil {
		return nil, err
	}
	t.ID = tripID
	return &t, nil
}

func (s *FirestoreStore) Update(ctx context.Context, userID, tripID types.ID, fields map[string]any) error {
	updates := make([]firestore.Update, 0, len(fields)+1)
	for k, v := range fields {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})
	_, err := s.collection(userID).Doc(string(tripID)).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return err
}

func (s *FirestoreStore) ListByUser(ctx context.Context, userID types.ID) ([]Trip, error) {
	iter := s.collection(userID).OrderBy("recordedAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var trips []Trip
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var t Trip
		if err := doc.DataTo(&t); err != nil {
			return nil, err
		}
		t.ID = types.ID(doc.Ref.ID)
		trips = append(trips, t)
	}
	return trips, nil
}
