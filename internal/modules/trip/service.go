// README: Trip service; records journeys and scores carpool trips.
package trip

import (
	"context"
	"errors"
	"fmt"
	"time"

	"greenroute/internal/modules/points"
	"greenroute/internal/types"
)

var (
	ErrNotFound     = errors.New("trip not found")
	ErrInvalidState = errors.New("trip is not pending")
	ErrBadRequest   = errors.New("bad request")
)

// Store is the persistence contract; *FirestoreStore implements it.
type Store interface {
	Create(ctx context.Context, userID types.ID, t *Trip) (types.ID, error)
	Get(ctx context.Context, userID, tripID types.ID) (*Trip, error)
	Update(ctx context.Context, userID, tripID types.ID, fields map[string]any) error
	ListByUser(ctx context.Context, userID types.ID) ([]Trip, error)
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

type RecordCommand struct {
	UserID     types.ID
	RideID     types.ID
	IsDriver   bool
	IsCarpool  bool
	Passengers int
	DistanceKm float64
	StartTime  time.Time
	// Verified trips are scored and frozen at completed immediately;
	// unverified ones wait for Verify.
	Verified bool
}

type RecordResult struct {
	TripID       types.ID `json:"tripId"`
	PointsEarned int      `json:"pointsEarned"`
}

// Record creates the trip as pending, or completed-and-scored when verified.
func (s *Service) Record(ctx context.Context, cmd RecordCommand) (*RecordResult, error) {
	if cmd.UserID == "" {
		return nil, ErrBadRequest
	}
	if cmd.DistanceKm < 0 || cmd.Passengers < 0 {
		return nil, ErrBadRequest
	}

	st := StatusPending
	if cmd.Verified {
		st = StatusCompleted
	}
	t := &Trip{
		RideID:     cmd.RideID,
		IsDriver:   cmd.IsDriver,
		IsCarpool:  cmd.IsCarpool,
		Passengers: cmd.Passengers,
		DistanceKm: cmd.DistanceKm,
		Status:     st,
		StartTime:  cmd.StartTime,
	}
	id, err := s.store.Create(ctx, cmd.UserID, t)
	if err != nil {
		return nil, err
	}

	earned := 0
	if cmd.Verified {
		earned, err = s.awardTrip(ctx, cmd.UserID, id, t)
		if err != nil {
			return nil, err
		}
	}
	return &RecordResult{TripID: id, PointsEarned: earned}, nil
}

// Verify transitions a pending trip to completed, scoring it exactly once.
// Trips in any other status are rejected without mutation.
func (s *Service) Verify(ctx context.Context, userID, tripID types.ID) (int, error) {
	t, err := s.store.Get(ctx, userID, tripID)
	if err != nil {
		return 0, err
	}
	if t.Status != StatusPending {
		return 0, fmt.Errorf("%w: already in %s status", ErrInvalidState, t.Status)
	}
	return s.awardTrip(ctx, userID, tripID, t)
}

func (s *Service) History(ctx context.Context, userID types.ID) ([]Trip, error) {
	return s.store.ListByUser(ctx, userID)
}

// awardTrip scores the trip, posts the award, and freezes the record at
// completed with the earned points. Non-carpool trips and zero scores still
// complete, they just earn nothing.
func (s *Service) awardTrip(ctx context.Context, userID, tripID types.ID, t *Trip) (int, error) {
	pts := 0
	if t.IsCarpool {
		var reason string
		pts, reason = points.ScoreCarpoolTrip(t.DistanceKm, t.Passengers)
		if pts > 0 {
			if err := s.points.Award(ctx, userID, pts, reason); err != nil {
				return 0, err
			}
		}
	}
	fields := map[string]any{"status": string(StatusCompleted)}
	if pts > 0 {
		fields["pointsAwarded"] = pts
	}
	if err := s.store.Update(ctx, userID, tripID, fields); err != nil {
		return 0, err
	}
	return pts, nil
}
