// README: Parking store backed by Firestore (users/{uid}/parking).
package parking

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"greenroute/internal/types"
)

const (
	usersCollection   = "users"
	parkingCollection = "parking"
)

type FirestoreStore struct {
	client *firestore.Client
}

func NewStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) collection(userID types.ID) *firestore.CollectionRef {
	return s.client.Collection(usersCollection).Doc(string(userID)).Collection(parkingCollection)
}

func (s *FirestoreStore) Add(ctx context.Context, userID types.ID, r *Record) (types.ID, error) {
	ref := s.collection(userID).NewDoc()
	_, err := ref.Create(ctx, map[string]any{
		"type":            string(r.Type),
		"location":        r.Location,
		"durationMinutes": r.DurationMinutes,
		"date":            r.Date,
		"pointsAwarded":   0,
		"recordedAt":      firestore.ServerTimestamp,
	})
	if err != nil {
		return "", err
	}
	return types.ID(ref.ID), nil
}

func (s *FirestoreStore) SetPointsAwarded(ctx context.Context, userID, recordID types.ID, pts int) error {
	_, err := s.collection(userID).Doc(string(recordID)).Update(ctx, []firestore.Update{
		{Path: "pointsAwarded", Value: pts},
	})
	return err
}

func (s *FirestoreStore) ListByUser(ctx context.Context, userID types.ID) ([]Record, error) {
	iter := s.collection(userID).OrderBy("recordedAt", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var records []Record
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var r Record
		if err := doc.DataTo(&r); err != nil {
			return nil, err
		}
		r.ID = types.ID(doc.Ref.ID)
		records = append(records, r)
	}
	return records, nil
}
