// README: Ride handlers; offers, bookings, arrival verification, completion.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"greenroute/internal/http/middleware"
	"greenroute/internal/modules/ride"
	"greenroute/internal/types"
)

type RideHandler struct {
	rides *ride.Service
}

func NewRideHandler(svc *ride.Service) *RideHandler {
	return &RideHandler{rides: svc}
}

type offerRideReq struct {
	DriverName         string       `json:"driverName"`
	Origin             types.Point  `json:"origin"`
	OriginAddress      string       `json:"originAddress"`
	Destination        types.Point  `json:"destination"`
	DestinationAddress string       `json:"destinationAddress"`
	DepartureTime      time.Time    `json:"departureTime"`
	ReturnTime         *time.Time   `json:"returnTime,omitempty"`
	SeatsAvailable     int          `json:"seatsAvailable"`
	CostPerSeat        *types.Money `json:"costPerSeat,omitempty"`
	DistanceKm         float64      `json:"distanceKm"`
}

func (h *RideHandler) Offer(c *gin.Context) {
	var req offerRideReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	id, err := h.rides.Offer(c.Request.Context(), ride.OfferCommand{
		DriverID:           types.ID(middleware.CallerUID(c)),
		DriverName:         req.DriverName,
		Origin:             req.Origin,
		OriginAddress:      req.OriginAddress,
		Destination:        req.Destination,
		DestinationAddress: req.DestinationAddress,
		DepartureTime:      req.DepartureTime,
		ReturnTime:         req.ReturnTime,
		SeatsAvailable:     req.SeatsAvailable,
		CostPerSeat:        req.CostPerSeat,
		DistanceKm:         req.DistanceKm,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"rideId": id})
}

func (h *RideHandler) List(c *gin.Context) {
	rides, err := h.rides.ListOpen(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"rides": rides})
}

func (h *RideHandler) Get(c *gin.Context) {
	r, err := h.rides.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, r)
}

func (h *RideHandler) Book(c *gin.Context) {
	rideID := types.ID(c.Param("id"))
	uid := types.ID(middleware.CallerUID(c))
	if err := h.rides.Book(c.Request.Context(), rideID, uid); err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"booked": true})
}

type completeRideReq struct {
	PassengerIDs []string `json:"passengerIds"`
	DistanceKm   float64  `json:"distanceKm"`
}

// Complete finalises the ride and records trips for every participant. The
// response carries per-passenger outcomes so partial failures are visible.
func (h *RideHandler) Complete(c *gin.Context) {
	var req completeRideReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	pids := make([]types.ID, 0, len(req.PassengerIDs))
	for _, p := range req.PassengerIDs {
		pids = append(pids, types.ID(p))
	}
	res, err := h.rides.Complete(c.Request.Context(), ride.CompleteCommand{
		RideID:       types.ID(c.Param("id")),
		DriverID:     types.ID(middleware.CallerUID(c)),
		PassengerIDs: pids,
		DistanceKm:   req.DistanceKm,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, res)
}

// VerifyLocation marks the caller as arrived at the ride destination.
func (h *RideHandler) VerifyLocation(c *gin.Context) {
	rideID := types.ID(c.Param("id"))
	uid := types.ID(middleware.CallerUID(c))
	already, err := h.rides.VerifyPassengerLocation(c.Request.Context(), rideID, uid)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"verified": true, "alreadyVerified": already})
}
