// README: Profile handlers; bootstrap on first sign-in, read and edit.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"greenroute/internal/http/middleware"
	"greenroute/internal/modules/points"
	"greenroute/internal/types"
)

type ProfileHandler struct {
	points *points.Service
}

func NewProfileHandler(svc *points.Service) *ProfileHandler {
	return &ProfileHandler{points: svc}
}

// Get returns the caller's profile, creating it on first sign-in.
func (h *ProfileHandler) Get(c *gin.Context) {
	uid := types.ID(middleware.CallerUID(c))
	p, err := h.points.EnsureProfile(c.Request.Context(), uid, middleware.CallerEmail(c), "")
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, p)
}

type updateProfileReq struct {
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL"`
}

func (h *ProfileHandler) Update(c *gin.Context) {
	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	uid := types.ID(middleware.CallerUID(c))
	if err := h.points.UpdateProfile(c.Request.Context(), uid, req.DisplayName, req.PhotoURL); err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"updated": true})
}
