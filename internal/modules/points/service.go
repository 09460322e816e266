// README: Points service; profile bootstrap and ledger operations.
package points

import (
	"context"
	"errors"
	"strings"

	"greenroute/internal/types"
)

var (
	ErrNotFound   = errors.New("user profile not found")
	ErrBadRequest = errors.New("bad request")
)

// Store is the persistence contract the service needs. *FirestoreStore is the
// production implementation.
type Store interface {
	CreateProfile(ctx context.Context, p *Profile) error
	Profile(ctx context.Context, userID types.ID) (*Profile, error)
	UpdateProfile(ctx context.Context, userID types.ID, fields map[string]any) error
	Award(ctx context.Context, userID types.ID, pts int, reason string) error
	History(ctx context.Context, userID types.ID) ([]LedgerEntry, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// EnsureProfile creates the user profile on first sign-in. An existing
// profile is returned unchanged.
func (s *Service) EnsureProfile(ctx context.Context, userID types.ID, email, displayName string) (*Profile, error) {
	if userID == "" {
		return nil, ErrBadRequest
	}
	p, err := s.store.Profile(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if displayName == "" {
		displayName = email
		if at := strings.Index(email, "@"); at > 0 {
			displayName = email[:at]
		}
	}
	created := &Profile{ID: userID, Email: email, DisplayName: displayName}
	if err := s.store.CreateProfile(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) Profile(ctx context.Context, userID types.ID) (*Profile, error) {
	return s.store.Profile(ctx, userID)
}

func (s *Service) UpdateProfile(ctx context.Context, userID types.ID, displayName, photoURL string) error {
	fields := map[string]any{}
	if displayName != "" {
		fields["displayName"] = displayName
	}
	if photoURL != "" {
		fields["photoURL"] = photoURL
	}
	if len(fields) == 0 {
		return ErrBadRequest
	}
	return s.store.UpdateProfile(ctx, userID, fields)
}

// Award records pts with the given reason. A zero award is a no-op: no ledger
// entry is written and the total is untouched.
func (s *Service) Award(ctx context.Context, userID types.ID, pts int, reason string) error {
	if userID == "" || (pts != 0 && reason == "") {
		return ErrBadRequest
	}
	if pts == 0 {
		return nil
	}
	return s.store.Award(ctx, userID, pts, reason)
}

func (s *Service) History(ctx context.Context, userID types.ID) ([]LedgerEntry, error) {
	return s.store.History(ctx, userID)
}
