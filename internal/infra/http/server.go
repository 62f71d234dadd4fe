package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	srv *http.Server
}

func New(addr string, h *Handlers, log *slog.Logger, exposeMetrics bool) *Server {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(slogMiddleware(log))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	if exposeMetrics {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	api := r.Group("/api/v1")
	{
		api.POST("/login", h.login)

		api.POST("/carists", h.createCarist)
		api.GET("/carists", h.listCarists)
		api.GET("/carists/:id", h.getCarist)

		api.POST("/aisles", h.createAisle)
		api.GET("/aisles", h.listAisles)
		api.GET("/aisles/:id", h.getAisle)
		api.PUT("/aisles/:id", h.updateAisle)
		api.DELETE("/aisles/:id", h.deleteAisle)

		api.POST("/columns", h.createColumn)
		api.GET("/columns", h.listColumns)
		api.GET("/columns/:id", h.getColumn)
		api.GET("/columns/:id/slots", h.listSlotsByColumn)
		api.DELETE("/columns/:id", h.deleteColumn)

		api.POST("/slots", h.createSlot)
		api.GET("/slots/overview", h.slotsOverview)
		api.GET("/slots/:id", h.getSlot)
		api.GET("/slots/:id/occupancy", h.slotOccupancy)
		api.DELETE("/slots/:id", h.deleteSlot)

		api.POST("/packages", h.createPackage)
		api.GET("/packages", h.listPackages)
		api.GET("/packages/:id", h.getPackage)
		api.GET("/packages/:id/placement", h.currentPlacement)
		api.GET("/packages/:id/history", h.placementHistory)
		api.DELETE("/packages/:id", h.deletePackage)

		api.POST("/placements", h.assignPlacement)
		api.DELETE("/placements", h.removePlacement)
		api.GET("/placements", h.listPlacements)
		api.GET("/placements/details", h.placementsWithDetails)

		api.GET("/reports/placements.xlsx", h.placementsWorkbook)
	}

	return &Server{srv: &http.Server{Addr: addr, Handler: r}}
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Handler exposes the router, used by tests.
func (s *Server) Handler() http.Handler { return s.srv.Handler }

func slogMiddleware(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
