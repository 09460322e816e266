// README: Parking handlers; log events and read history.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"greenroute/internal/http/middleware"
	"greenroute/internal/modules/parking"
	"greenroute/internal/modules/points"
	"greenroute/internal/types"
)

type ParkingHandler struct {
	parking *parking.Service
}

func NewParkingHandler(svc *parking.Service) *ParkingHandler {
	return &ParkingHandler{parking: svc}
}

type logParkingReq struct {
	Type            string `json:"type"`
	Location        string `json:"location"`
	DurationMinutes int    `json:"durationMinutes"`
	Date            string `json:"date"`
}

func (h *ParkingHandler) Log(c *gin.Context) {
	var req logParkingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	res, err := h.parking.Log(c.Request.Context(), parking.LogCommand{
		UserID:          types.ID(middleware.CallerUID(c)),
		Type:            points.ParkingType(req.Type),
		Location:        req.Location,
		DurationMinutes: req.DurationMinutes,
		Date:            req.Date,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, res)
}

func (h *ParkingHandler) History(c *gin.Context) {
	uid := types.ID(middleware.CallerUID(c))
	records, err := h.parking.History(c.Request.Context(), uid)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"parking": records})
}
