// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"greenroute/internal/modules/parking"
	"greenroute/internal/modules/points"
	"greenroute/internal/modules/ride"
	"greenroute/internal/modules/trip"
	"greenroute/internal/modules/vehicle"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeDomainError maps module sentinel errors onto HTTP statuses. Anything
// unrecognised is a transport/data-layer failure and stays opaque.
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, points.ErrBadRequest),
		errors.Is(err, vehicle.ErrBadRequest),
		errors.Is(err, parking.ErrBadRequest),
		errors.Is(err, trip.ErrBadRequest),
		errors.Is(err, ride.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, points.ErrNotFound),
		errors.Is(err, trip.ErrNotFound),
		errors.Is(err, ride.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, trip.ErrInvalidState),
		errors.Is(err, ride.ErrAlreadyCompleted),
		errors.Is(err, ride.ErrNotParticipant),
		errors.Is(err, ride.ErrAlreadyBooked),
		errors.Is(err, ride.ErrRideFull),
		errors.Is(err, ride.ErrOwnRide):
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
