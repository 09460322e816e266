// README: Carpool ride aggregate, bookings, and status definitions.
package ride

import (
	"time"

	"greenroute/internal/types"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is one passenger's seat on a ride offer.
type Booking struct {
	PassengerID types.ID      `firestore:"passengerId" json:"passengerId"`
	Status      BookingStatus `firestore:"status" json:"status"`
	CreatedAt   time.Time     `firestore:"createdAt" json:"createdAt"`
}

// Ride links one driver and zero or more passengers for a single carpool
// instance. Status moves active -> completed exactly once; PassengerVerified
// holds the passengers that confirmed arrival (set semantics).
type Ride struct {
	ID                 types.ID     `firestore:"-" json:"id"`
	DriverID           types.ID     `firestore:"driverId" json:"driverId"`
	DriverName         string       `firestore:"driverName,omitempty" json:"driverName,omitempty"`
	Origin             types.Point  `firestore:"origin" json:"origin"`
	OriginAddress      string       `firestore:"originAddress,omitempty" json:"originAddress,omitempty"`
	Destination        types.Point  `firestore:"destination" json:"destination"`
	DestinationAddress string       `firestore:"destinationAddress,omitempty" json:"destinationAddress,omitempty"`
	DepartureTime      time.Time    `firestore:"departureTime" json:"departureTime"`
	ReturnTime         *time.Time   `firestore:"returnTime,omitempty" json:"returnTime,omitempty"`
	SeatsAvailable     int          `firestore:"seatsAvailable" json:"seatsAvailable"`
	CostPerSeat        *types.Money `firestore:"costPerSeat,omitempty" json:"costPerSeat,omitempty"`
	DistanceKm         float64      `firestore:"distance" json:"distance"`
	Status             Status       `firestore:"status" json:"status"`
	Bookings           []Booking    `firestore:"bookings" json:"bookings"`
	PassengerIDs       []types.ID   `firestore:"passengerIds" json:"passengerIds"`
	PassengerVerified  []types.ID   `firestore:"passengerVerified" json:"passengerVerified"`
	DriverVerified     bool         `firestore:"driverVerified" json:"driverVerified"`
	CompletedBy        types.ID     `firestore:"completedBy,omitempty" json:"completedBy,omitempty"`
	CompletedAt        *time.Time   `firestore:"completedAt,omitempty" json:"completedAt,omitempty"`
	CreatedAt          time.Time    `firestore:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time    `firestore:"updatedAt" json:"updatedAt"`
}

// HasPassenger reports whether id is part of the ride's passenger set.
func (r *Ride) HasPassenger(id types.ID) bool {
	for _, p := range r.PassengerIDs {
		if p == id {
			return true
		}
	}
	return false
}

// HasVerified reports whether id already confirmed arrival.
func (r *Ride) HasVerified(id types.ID) bool {
	for _, p := range r.PassengerVerified {
		if p == id {
			return true
		}
	}
	return false
}

// ConfirmedPassengers returns the ids of confirmed bookings, in booking order.
func (r *Ride) ConfirmedPassengers() []types.ID {
	var ids []types.ID
	for _, b := range r.Bookings {
		if b.Status == BookingConfirmed {
			ids = append(ids, b.PassengerID)
		}
	}
	return ids
}

// Completable reports whether the driver may initiate completion: the ride is
// still active and the scheduled departure has passed. Advisory only; the
// completion transition itself is guarded by status.
func (r *Ride) Completable(now time.Time) bool {
	return r.Status == StatusActive && !now.Before(r.DepartureTime)
}
