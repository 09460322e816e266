// README: Trip handlers; record, verify, and list journeys.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"greenroute/internal/http/middleware"
	"greenroute/internal/modules/trip"
	"greenroute/internal/types"
)

type TripHandler struct {
	trips *trip.Service
}

func NewTripHandler(svc *trip.Service) *TripHandler {
	return &TripHandler{trips: svc}
}

type recordTripReq struct {
	RideID     string    `json:"rideId"`
	IsDriver   bool      `json:"isDriver"`
	IsCarpool  bool      `json:"isCarpool"`
	Passengers int       `json:"passengers"`
	DistanceKm float64   `json:"distanceKm"`
	StartTime  time.Time `json:"startTime"`
	Verified   bool      `json:"verified"`
}

func (h *TripHandler) Record(c *gin.Context) {
	var req recordTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.StartTime.IsZero() {
		req.StartTime = time.Now()
	}
	res, err := h.trips.Record(c.Request.Context(), trip.RecordCommand{
		UserID:     types.ID(middleware.CallerUID(c)),
		RideID:     types.ID(req.RideID),
		IsDriver:   req.IsDriver,
		IsCarpool:  req.IsCarpool,
		Passengers: req.Passengers,
		DistanceKm: req.DistanceKm,
		StartTime:  req.StartTime,
		Verified:   req.Verified,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, res)
}

// Verify completes a pending trip and scores it exactly once.
func (h *TripHandler) Verify(c *gin.Context) {
	uid := types.ID(middleware.CallerUID(c))
	tripID := types.ID(c.Param("id"))
	pts, err := h.trips.Verify(c.Request.Context(), uid, tripID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"pointsEarned": pts})
}

func (h *TripHandler) History(c *gin.Context) {
	uid := types.ID(middleware.CallerUID(c))
	trips, err := h.trips.History(c.Request.Context(), uid)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"trips": trips})
}
