// README: Points store backed by Firestore; award is a single transaction.
package points

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"greenroute/internal/types"
)

const (
	usersCollection     = "users"
	pointsLogCollection = "pointsLog"
)

type FirestoreStore struct {
	client *firestore.Client
}

func NewStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) userRef(userID types.ID) *firestore.DocumentRef {
	return s.client.Collection(usersCollection).Doc(string(userID))
}

// CreateProfile creates the user document with a zero points total. It fails
// if the document already exists; callers ensure first-sign-in semantics.
func (s *FirestoreStore) CreateProfile(ctx context.Context, p *Profile) error {
	_, err := s.userRef(p.ID).Create(ctx, map[string]any{
		"email":       p.Email,
		"displayName": p.DisplayName,
		"photoURL":    p.PhotoURL,
		"greenPoints": 0,
		"createdAt":   firestore.ServerTimestamp,
		"updatedAt":   firestore.ServerTimestamp,
	})
	return err
}

func (s *FirestoreStore) Profile(ctx context.Context, userID types.ID) (*Profile, error) {
	snap, err := s.userRef(userID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var p Profile
	if err := snap.DataTo(&p); err != nil {
		return nil, err
	}
	p.ID = userID
	return &p, nil
}

func (s *FirestoreStore) UpdateProfile(ctx context.Context, userID types.ID, fields map[string]any) error {
	updates := make([]firestore.Update, 0, len(fields)+1)
	for k, v := range fields {
		updates = append(updates, firestore.Update{Path: k, Value: v})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})
	_, err := s.userRef(userID).Update(ctx, updates)
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	return err
}

// Award increments the running total and appends the ledger entry in one
// Firestore transaction, so neither half can land without the other.
func (s *FirestoreStore) Award(ctx context.Context, userID types.ID, pts int, reason string) error {
	userRef := s.userRef(userID)
	entryRef := userRef.Collection(pointsLogCollection).NewDoc()
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(userRef); err != nil {
			if status.Code(err) == codes.NotFound {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Update(userRef, []firestore.Update{
			{Path: "greenPoints", Value: firestore.Increment(pts)},
			{Path: "updatedAt", Value: firestore.ServerTimestamp},
		}); err != nil {
			return err
		}
		return tx.Create(entryRef, map[string]any{
			"points":    pts,
			"reason":    reason,
			"timestamp": firestore.ServerTimestamp,
		})
	})
	return err
}

// History returns the user's ledger entries, newest first.
func (s *FirestoreStore) History(ctx context.Context, userID types.ID) ([]LedgerEntry, error) {
	iter := s.userRef(userID).Collection(pointsLogCollection).
		OrderBy("timestamp", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var entries []LedgerEntry
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var e LedgerEntry
		if err := doc.DataTo(&e); err != nil {
			return nil, err
		}
		e.ID = types.ID(doc.Ref.ID)
		entries = append(entries, e)
	}
	return entries, nil
}
