// README: Location handlers; arrival checks and reverse geocoding.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"greenroute/internal/modules/location"
	"greenroute/internal/types"
)

type LocationHandler struct {
	proximity *location.Service
	geocoder  *location.Geocoder
}

// NewLocationHandler accepts a nil geocoder; reverse geocoding then answers
// 503 instead of being wired to a dead client.
func NewLocationHandler(proximity *location.Service, geocoder *location.Geocoder) *LocationHandler {
	return &LocationHandler{proximity: proximity, geocoder: geocoder}
}

type checkArrivalReq struct {
	Current     types.Point `json:"current"`
	Destination types.Point `json:"destination"`
}

func (h *LocationHandler) CheckArrival(c *gin.Context) {
	var req checkArrivalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	writeJSON(c, http.StatusOK, h.proximity.Check(req.Current, req.Destination))
}

func (h *LocationHandler) ReverseGeocode(c *gin.Context) {
	if h.geocoder == nil {
		writeError(c, http.StatusServiceUnavailable, "geocoding not configured")
		return
	}
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid lat")
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid lng")
		return
	}
	addr, err := h.geocoder.ReverseGeocode(c.Request.Context(), types.Point{Lat: lat, Lng: lng})
	if err != nil {
		if errors.Is(err, location.ErrNoAddress) {
			writeError(c, http.StatusNotFound, err.Error())
			return
		}
		writeError(c, http.StatusBadGateway, "geocoding failed")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"address": addr})
}
