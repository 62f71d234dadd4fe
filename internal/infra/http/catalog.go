package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

/* Aisles */

type aisleRequest struct {
	Number int `json:"number" binding:"required"`
}

func (h *Handlers) createAisle(c *gin.Context) {
	var req aisleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	a, err := h.catalog.CreateAisle(c.Request.Context(), req.Number)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *Handlers) listAisles(c *gin.Context) {
	out, err := h.catalog.ListAisles(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handlers) getAisle(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	a, err := h.catalog.GetAisle(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if a == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "aisle not found"})
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handlers) updateAisle(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req aisleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	a, err := h.catalog.UpdateAisleNumber(c.Request.Context(), id, req.Number)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handlers) deleteAisle(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.DeleteAisle(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

/* Columns */

type columnRequest struct {
	Number  int   `json:"number" binding:"required"`
	AisleID int64 `json:"aisle_id" binding:"required,gt=0"`
}

func (h *Handlers) createColumn(c *gin.Context) {
	var req columnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	col, err := h.catalog.CreateColumn(c.Request.Context(), req.Number, req.AisleID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, col)
}

func (h *Handlers) listColumns(c *gin.Context) {
	if raw := c.Query("aisle_id"); raw != "" {
		aisleID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || aisleID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid aisle_id"})
			return
		}
		out, err := h.catalog.ListColumnsByAisle(c.Request.Context(), aisleID)
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
		return
	}

	out, err := h.catalog.ListColumns(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handlers) getColumn(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	col, err := h.catalog.GetColumn(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if col == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "column not found"})
		return
	}
	c.JSON(http.StatusOK, col)
}

func (h *Handlers) deleteColumn(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.DeleteColumn(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

/* Slots */

type slotRequest struct {
	Level     *int    `json:"level" binding:"required"`
	MaxVolume float64 `json:"max_volume" binding:"required,gt=0"`
	MaxWeight float64 `json:"max_weight" binding:"required,gt=0"`
	ColumnID  int64   `json:"column_id" binding:"required,gt=0"`
}

func (h *Handlers) createSlot(c *gin.Context) {
	var req slotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	s, err := h.catalog.CreateSlot(c.Request.Context(), *req.Level, req.MaxVolume, req.MaxWeight, req.ColumnID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *Handlers) getSlot(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	s, err := h.catalog.GetSlot(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if s == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "slot not found"})
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *Handlers) listSlotsByColumn(c *gin.Context) {
	columnID, ok := pathID(c, "id")
	if !ok {
		return
	}
	out, err := h.catalog.ListSlotsByColumn(c.Request.Context(), columnID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handlers) deleteSlot(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.catalog.DeleteSlot(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
