// README: Vehicle store backed by Firestore (users/{uid}/vehicles).
package vehicle

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"greenroute/internal/types"
)

const (
	usersCollection    = "users"
	vehiclesCollection = "vehicles"
)

type FirestoreStore struct {
	client *firestore.Client
}

func NewStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) collection(userID types.ID) *firestore.CollectionRef {
	return s.client.Collection(usersCollection).Doc(string(userID)).Collection(vehiclesCollection)
}

func (s *FirestoreStore) Add(ctx context.Context, userID types.ID, v *Vehicle) (types.ID, error) {
	ref := s.collection(userID).NewDoc()
	_, err := ref.Create(ctx, map[string]any{
		"type":          string(v.Type),
		"make":          v.Make,
		"model":         v.Model,
		"year":          v.Year,
		"plate":         v.Plate,
		"efficiency":    v.Efficiency,
		"primaryUse":    v.PrimaryUse,
		"pointsAwarded": v.PointsAwarded,
		"registeredAt":  firestore.ServerTimestamp,
	})
	if err != nil {
		return "", err
	}
	return types.ID(ref.ID), nil
}

func (s *FirestoreStore) ListByUser(ctx context.Context, userID types.ID) ([]Vehicle, error) {
	iter := s.collection(userID).OrderBy("registeredAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var vehicles []Vehicle
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var v Vehicle
		if err := doc.DataTo(&v); err != nil {
			return nil, err
		}
		v.ID = types.ID(doc.Ref.ID)
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}
