package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Razooooo/CaristSI/internal/domain/placements"
	"github.com/Razooooo/CaristSI/internal/infra/metrics"
)

type placementRequest struct {
	CaristID  int64 `json:"carist_id" binding:"required,gt=0"`
	PackageID int64 `json:"package_id" binding:"required,gt=0"`
	SlotID    int64 `json:"slot_id" binding:"required,gt=0"`
}

type placementResponse struct {
	ID          int64     `json:"id"`
	CaristID    int64     `json:"carist_id"`
	PackageID   int64     `json:"package_id"`
	SlotID      int64     `json:"slot_id"`
	DepositedAt time.Time `json:"deposited_at"`
}

func toPlacementResponse(p placements.Placement) placementResponse {
	return placementResponse{
		ID:          p.ID,
		CaristID:    p.CaristID,
		PackageID:   p.PackageID,
		SlotID:      p.SlotID,
		DepositedAt: p.DepositedAt,
	}
}

// assignPlacement is the primary entry point: "carist C puts package P into
// slot S". Idempotent when P already sits in S.
func (h *Handlers) assignPlacement(c *gin.Context) {
	var req placementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	outcome, err := h.ledger.Assign(c.Request.Context(), req.CaristID, req.PackageID, req.SlotID)
	if err != nil {
		h.fail(c, err)
		return
	}
	metrics.PlacementsTotal.WithLabelValues(string(outcome)).Inc()

	c.JSON(http.StatusOK, gin.H{"outcome": outcome})
}

func (h *Handlers) removePlacement(c *gin.Context) {
	var req placementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.ledger.Remove(c.Request.Context(), req.CaristID, req.PackageID, req.SlotID); err != nil {
		h.fail(c, err)
		return
	}
	metrics.RemovalsTotal.Inc()

	c.Status(http.StatusNoContent)
}

func (h *Handlers) currentPlacement(c *gin.Context) {
	packageID, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.ledger.Current(c.Request.Context(), packageID)
	if err != nil {
		h.fail(c, err)
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "package is not placed"})
		return
	}
	c.JSON(http.StatusOK, toPlacementResponse(*p))
}

func (h *Handlers) placementHistory(c *gin.Context) {
	packageID, ok := pathID(c, "id")
	if !ok {
		return
	}

	history, err := h.ledger.History(c.Request.Context(), packageID)
	if err != nil {
		h.fail(c, err)
		return
	}

	out := make([]placementResponse, 0, len(history))
	for _, p := range history {
		out = append(out, toPlacementResponse(p))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handlers) listPlacements(c *gin.Context) {
	all, err := h.ledger.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	out := make([]placementResponse, 0, len(all))
	for _, p := range all {
		out = append(out, toPlacementResponse(p))
	}
	c.JSON(http.StatusOK, out)
}
