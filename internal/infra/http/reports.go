package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Razooooo/CaristSI/internal/domain/reports"
	"github.com/Razooooo/CaristSI/internal/infra/metrics"
)

func (h *Handlers) slotsOverview(c *gin.Context) {
	out, err := h.reports.SlotsWithContext(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handlers) placementsWithDetails(c *gin.Context) {
	out, err := h.reports.PlacementsWithDetails(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// slotOccupancy returns the package(s) currently sitting at a slot. More
// than one resident means the ledger drifted from the one-active-placement
// invariant: reported as a warning, counted, and alerted, never a crash.
func (h *Handlers) slotOccupancy(c *gin.Context) {
	slotID, ok := pathID(c, "id")
	if !ok {
		return
	}

	occupants, err := h.reports.Occupancy(c.Request.Context(), slotID)
	if err != nil {
		h.fail(c, err)
		return
	}

	warning := len(occupants) > 1
	if warning {
		h.log.Warn("slot holds more than one current package", "slot_id", slotID, "count", len(occupants))
		metrics.IntegrityWarningsTotal.Inc()
		h.notifier.Alert(fmt.Sprintf("integrity warning: slot %d holds %d current packages", slotID, len(occupants)))
	}

	c.JSON(http.StatusOK, gin.H{
		"slot_id":           slotID,
		"occupants":         occupants,
		"integrity_warning": warning,
	})
}

func (h *Handlers) placementsWorkbook(c *gin.Context) {
	details, err := h.reports.PlacementsWithDetails(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}

	buf, err := reports.PlacementsWorkbook(details)
	if err != nil {
		h.log.Error("workbook build failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "report generation failed"})
		return
	}

	fileName := fmt.Sprintf("placements_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
