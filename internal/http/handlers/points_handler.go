// README: Points handlers; total, ledger history, manual awards.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"greenroute/internal/http/middleware"
	"greenroute/internal/modules/points"
	"greenroute/internal/types"
)

type PointsHandler struct {
	points *points.Service
}

func NewPointsHandler(svc *points.Service) *PointsHandler {
	return &PointsHandler{points: svc}
}

func (h *PointsHandler) Total(c *gin.Context) {
	uid := types.ID(middleware.CallerUID(c))
	p, err := h.points.Profile(c.Request.Context(), uid)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"greenPoints": p.GreenPoints})
}

func (h *PointsHandler) History(c *gin.Context) {
	uid := types.ID(middleware.CallerUID(c))
	entries, err := h.points.History(c.Request.Context(), uid)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"history": entries})
}

type awardReq struct {
	Points int    `json:"points"`
	Reason string `json:"reason"`
}

// Award posts a manual award (special achievements and the like) to the
// caller's own ledger.
func (h *PointsHandler) Award(c *gin.Context) {
	var req awardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	uid := types.ID(middleware.CallerUID(c))
	if err := h.points.Award(c.Request.Context(), uid, req.Points, req.Reason); err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"points": req.Points})
}
