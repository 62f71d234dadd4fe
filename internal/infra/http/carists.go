package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type caristRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Login     string `json:"login" binding:"required"`
	Password  string `json:"password" binding:"required"`
	BornOn    string `json:"born_on"`
	HiredOn   string `json:"hired_on"`
}

func parseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (h *Handlers) createCarist(c *gin.Context) {
	var req caristRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	bornOn, err := parseDate(req.BornOn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid born_on, want YYYY-MM-DD"})
		return
	}
	hiredOn, err := parseDate(req.HiredOn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hired_on, want YYYY-MM-DD"})
		return
	}

	carist, err := h.carists.Create(c.Request.Context(), req.FirstName, req.LastName, req.Login, req.Password, bornOn, hiredOn)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, carist)
}

func (h *Handlers) getCarist(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	carist, err := h.carists.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if carist == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "carist not found"})
		return
	}
	c.JSON(http.StatusOK, carist)
}

func (h *Handlers) listCarists(c *gin.Context) {
	out, err := h.carists.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
