// README: Ride service; offers, bookings, and the completion workflow.
package ride

import (
	"context"
	"errors"
	"time"

	"greenroute/internal/modules/trip"
	"greenroute/internal/types"
)

var (
	ErrNotFound         = errors.New("ride not found")
	ErrAlreadyCompleted = errors.New("ride has already been completed")
	ErrNotParticipant   = errors.New("passenger is not part of this ride")
	ErrAlreadyBooked    = errors.New("passenger already booked this ride")
	ErrRideFull         = errors.New("no seats available")
	ErrOwnRide          = errors.New("driver cannot book own ride")
	ErrBadRequest       = errors.New("bad request")
)

// Store is the persistence contract; *FirestoreStore implements it.
type Store interface {
	Get(ctx context.Context, rideID types.ID) (*Ride, error)
	CreateOffer(ctx context.Context, r *Ride) (types.ID, error)
	CreateCompleted(ctx context.Context, r *Ride) error
	MarkCompleted(ctx context.Context, rideID, driverID types.ID) error
	AddVerifiedPassenger(ctx context.Context, rideID, passengerID types.ID) error
	Book(ctx context.Context, rideID, passengerID types.ID) error
	ListOpen(ctx context.Context) ([]Ride, error)
}

// TripRecorder writes per-participant trip records; *trip.Service implements it.
type TripRecorder interface {
	Record(ctx context.Context, cmd trip.RecordCommand) (*trip.RecordResult, error)
}

type Service struct {
	store Store
	trips TripRecorder
	now   func() time.Time
}

func NewService(store Store, trips TripRecorder) *Service {
	return &Service{store: store, trips: trips, now: time.Now}
}

type OfferCommand struct {
	DriverID           types.ID
	DriverName         string
	Origin             types.Point
	OriginAddress      string
	Destination        types.Point
	DestinationAddress string
	DepartureTime      time.Time
	ReturnTime         *time.Time
	SeatsAvailable     int
	CostPerSeat        *types.Money
	DistanceKm         float64
}

// Offer publishes a new active carpool offer.
func (s *Service) Offer(ctx context.Context, cmd OfferCommand) (types.ID, error) {
	if cmd.DriverID == "" || cmd.DepartureTime.IsZero() {
		return "", ErrBadRequest
	}
	if cmd.Origin == (types.Point{}) || cmd.Destination == (types.Point{}) {
		return "", ErrBadRequest
	}
	if cmd.SeatsAvailable < 1 || cmd.DistanceKm < 0 {
		return "", ErrBadRequest
	}
	return s.store.CreateOffer(ctx, &Ride{
		DriverID:           cmd.DriverID,
		DriverName:         cmd.DriverName,
		Origin:             cmd.Origin,
		OriginAddress:      cmd.OriginAddress,
		Destination:        cmd.Destination,
		DestinationAddress: cmd.DestinationAddress,
		DepartureTime:      cmd.DepartureTime,
		ReturnTime:         cmd.ReturnTime,
		SeatsAvailable:     cmd.SeatsAvailable,
		CostPerSeat:        cmd.CostPerSeat,
		DistanceKm:         cmd.DistanceKm,
		Status:             StatusActive,
	})
}

func (s *Service) Get(ctx context.Context, rideID types.ID) (*Ride, error) {
	return s.store.Get(ctx, rideID)
}

func (s *Service) ListOpen(ctx context.Context) ([]Ride, error) {
	return s.store.ListOpen(ctx)
}

// Book confirms a seat for the passenger. Seat accounting and duplicate
// checks happen inside the store transaction.
func (s *Service) Book(ctx context.Context, rideID, passengerID types.ID) error {
	if rideID == "" || passengerID == "" {
		return ErrBadRequest
	}
	r, err := s.store.Get(ctx, rideID)
	if err != nil {
		return err
	}
	if r.DriverID == passengerID {
		return ErrOwnRide
	}
	return s.store.Book(ctx, rideID, passengerID)
}

type CompleteCommand struct {
	RideID       types.ID
	DriverID     types.ID
	PassengerIDs []types.ID
	DistanceKm   float64
}

// PassengerResult reports the outcome of recording one passenger's trip.
type PassengerResult struct {
	PassengerID types.ID `json:"passengerId"`
	TripID      types.ID `json:"tripId,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// CompletionResult carries per-participant outcomes. Callers must inspect the
// passenger results for gaps: a failed passenger trip does not fail the
// completion as a whole.
type CompletionResult struct {
	RideID           types.ID          `json:"rideId"`
	DriverTripID     types.ID          `json:"driverTripId,omitempty"`
	DriverError      string            `json:"driverError,omitempty"`
	PassengerResults []PassengerResult `json:"passengerResults"`
}

// Complete transitions the ride to its terminal state and records one trip
// per participant, each scored immediately. A ride with no document yet is
// created already-completed. Completing a completed ride fails with
// ErrAlreadyCompleted and performs no mutation.
func (s *Service) Complete(ctx context.Context, cmd CompleteCommand) (*CompletionResult, error) {
	if cmd.RideID == "" || cmd.DriverID == "" {
		return nil, ErrBadRequest
	}
	if cmd.DistanceKm < 0 {
		return nil, ErrBadRequest
	}

	r, err := s.store.Get(ctx, cmd.RideID)
	switch {
	case errors.Is(err, ErrNotFound):
		err = s.store.CreateCompleted(ctx, &Ride{
			ID:           cmd.RideID,
			DriverID:     cmd.DriverID,
			PassengerIDs: cmd.PassengerIDs,
			DistanceKm:   cmd.DistanceKm,
			Status:       StatusCompleted,
		})
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	case r.Status == StatusCompleted:
		return nil, ErrAlreadyCompleted
	default:
		if err := s.store.MarkCompleted(ctx, cmd.RideID, cmd.DriverID); err != nil {
			return nil, err
		}
	}

	res := &CompletionResult{RideID: cmd.RideID}
	start := s.now()

	driverTrip, err := s.trips.Record(ctx, trip.RecordCommand{
		UserID:     cmd.DriverID,
		RideID:     cmd.RideID,
		IsDriver:   true,
		IsCarpool:  len(cmd.PassengerIDs) > 0,
		Passengers: len(cmd.PassengerIDs),
		DistanceKm: cmd.DistanceKm,
		StartTime:  start,
		Verified:   true,
	})
	if err != nil {
		res.DriverError = err.Error()
	} else {
		res.DriverTripID = driverTrip.TripID
	}

	for _, pid := range cmd.PassengerIDs {
		pr := PassengerResult{PassengerID: pid}
		passengerTrip, err := s.trips.Record(ctx, trip.RecordCommand{
			UserID:     pid,
			RideID:     cmd.RideID,
			IsDriver:   false,
			IsCarpool:  true,
			DistanceKm: cmd.DistanceKm,
			StartTime:  start,
			Verified:   true,
		})
		if err != nil {
			pr.Error = err.Error()
		} else {
			pr.TripID = passengerTrip.TripID
		}
		res.PassengerResults = append(res.PassengerResults, pr)
	}
	return res, nil
}

// VerifyPassengerLocation marks the passenger as arrived. It is idempotent
// and never awards points or completes the ride; completion is solely the
// driver's action.
func (s *Service) VerifyPassengerLocation(ctx context.Context, rideID, passengerID types.ID) (alreadyVerified bool, err error) {
	if rideID == "" || passengerID == "" {
		return false, ErrBadRequest
	}
	r, err := s.store.Get(ctx, rideID)
	if err != nil {
		return false, err
	}
	if !r.HasPassenger(passengerID) {
		return false, ErrNotParticipant
	}
	if r.HasVerified(passengerID) {
		return true, nil
	}
	if err := s.store.AddVerifiedPassenger(ctx, rideID, passengerID); err != nil {
		return false, err
	}
	return false, nil
}
