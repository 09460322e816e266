// README: Vehicle registration handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"greenroute/internal/http/middleware"
	"greenroute/internal/modules/points"
	"greenroute/internal/modules/vehicle"
	"greenroute/internal/types"
)

type VehicleHandler struct {
	vehicles *vehicle.Service
}

func NewVehicleHandler(svc *vehicle.Service) *VehicleHandler {
	return &VehicleHandler{vehicles: svc}
}

type registerVehicleReq struct {
	Type       string `json:"type"`
	Make       string `json:"make"`
	Model      string `json:"model"`
	Year       int    `json:"year"`
	Plate      string `json:"plate"`
	Efficiency string `json:"efficiency"`
	PrimaryUse string `json:"primaryUse"`
}

func (h *VehicleHandler) Register(c *gin.Context) {
	var req registerVehicleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	res, err := h.vehicles.Register(c.Request.Context(), vehicle.RegisterCommand{
		UserID:     types.ID(middleware.CallerUID(c)),
		Type:       points.VehicleType(req.Type),
		Make:       req.Make,
		Model:      req.Model,
		Year:       req.Year,
		Plate:      req.Plate,
		Efficiency: req.Efficiency,
		PrimaryUse: req.PrimaryUse,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, res)
}

func (h *VehicleHandler) List(c *gin.Context) {
	uid := types.ID(middleware.CallerUID(c))
	vehicles, err := h.vehicles.List(c.Request.Context(), uid)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"vehicles": vehicles})
}
