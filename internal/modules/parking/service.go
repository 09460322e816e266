// README: Parking service; logs events and awards points for efficient parking.
package parking

import (
	"context"
	"errors"

	"greenroute/internal/modules/points"
	"greenroute/internal/types"
)

var ErrBadRequest = errors.New("bad request")

// Store is the persistence contract; *FirestoreStore implements it.
type Store interface {
	Add(ctx context.Context, userID types.ID, r *Record) (types.ID, error)
	SetPointsAwarded(ctx context.Context, userID, recordID types.ID, pts int) error
	ListByUser(ctx context.Context, userID types.ID) ([]Record, error)
}

// Awarder posts to the points ledger; *points.Service implements it.
type Awarder interface {
	Award(ctx context.Context, userID types.ID, pts int, reason string) error
}

type Service struct {
	store  Store
	points Awarder
}

func NewService(store Store, awarder Awarder) *Service {
	return &Service{store: store, points: awarder}
}

type LogCommand struct {
	UserID          types.ID
	Type            points.ParkingType
	Location        string
	DurationMinutes int
	Date            string
}

type LogResult struct {
	RecordID     types.ID `json:"recordId"`
	PointsEarned int      `json:"pointsEarned"`
}

// Log persists the parking record and, for efficient parking, awards the
// points and stamps them on the record.
func (s *Service) Log(ctx context.Context, cmd LogCommand) (*LogResult, error) {
	if cmd.UserID == "" || cmd.Type == "" || cmd.Location == "" {
		return nil, ErrBadRequest
	}
	if cmd.DurationMinutes < 0 {
		return nil, ErrBadRequest
	}

	id, err := s.store.Add(ctx, cmd.UserID, &Record{
		Type:            cmd.Type,
		Location:        cmd.Location,
		DurationMinutes: cmd.DurationMinutes,
		Date:            cmd.Date,
	})
	if err != nil {
		return nil, err
	}

	pts, reason := points.ScoreParkingEvent(cmd.Type)
	if pts > 0 {
		if err := s.points.Award(ctx, cmd.UserID, pts, reason); err != nil {
			return nil, err
		}
		if err := s.store.SetPointsAwarded(ctx, cmd.UserID, id, pts); err != nil {
			return nil, err
		}
	}
	return &LogResult{RecordID: id, PointsEarned: pts}, nil
}

func (s *Service) History(ctx context.Context, userID types.ID) ([]Record, error) {
	return s.store.ListByUser(ctx, userID)
}
