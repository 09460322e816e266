// README: Vehicle registration service; persists the record and awards eco points.
package vehicle

import (
	"context"
	"errors"

	"greenroute/internal/modules/points"
	"greenroute/internal/types"
)

var ErrBadRequest = errors.New("bad request")

// Store is the persistence contract; *FirestoreStore implements it.
type Store interface {
	Add(ctx context.Context, userID types.ID, v *Vehicle) (types.ID, error)
	ListByUser(ctx context.Context, userID types.ID) ([]Vehicle, error)
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

type RegisterCommand struct {
	UserID     types.ID
	Type       points.VehicleType
	Make       string
	Model      string
	Year       int
	Plate      string
	Efficiency string
	PrimaryUse string
}

type RegisterResult struct {
	VehicleID    types.ID `json:"vehicleId"`
	PointsEarned int      `json:"pointsEarned"`
}

// Register persists the vehicle and, for eco-friendly types, posts the
// one-time award. Unknown types register fine but earn nothing.
func (s *Service) Register(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	if cmd.UserID == "" || cmd.Type == "" || cmd.Make == "" || cmd.Model == "" {
		return nil, ErrBadRequest
	}

	pts, reason := points.ScoreVehicleRegistration(cmd.Type)
	id, err := s.store.Add(ctx, cmd.UserID, &Vehicle{
		Type:          cmd.Type,
		Make:          cmd.Make,
		Model:         cmd.Model,
		Year:          cmd.Year,
		Plate:         cmd.Plate,
		Efficiency:    cmd.Efficiency,
		PrimaryUse:    cmd.PrimaryUse,
		PointsAwarded: pts,
	})
	if err != nil {
		return nil, err
	}
	if pts > 0 {
		if err := s.points.Award(ctx, cmd.UserID, pts, reason); err != nil {
			return nil, err
		}
	}
	return &RegisterResult{VehicleID: id, PointsEarned: pts}, nil
}

func (s *Service) List(ctx context.Context, userID types.ID) ([]Vehicle, error) {
	return s.store.ListByUser(ctx, userID)
}
