package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Razooooo/CaristSI/internal/domain/catalog"
	"github.com/Razooooo/CaristSI/internal/domain/operators"
	"github.com/Razooooo/CaristSI/internal/domain/packages"
	"github.com/Razooooo/CaristSI/internal/domain/placements"
	"github.com/Razooooo/CaristSI/internal/domain/reports"
	"github.com/Razooooo/CaristSI/internal/infra/notify"
)

// Ledger is the placement subsystem as consumed by the HTTP boundary.
type Ledger interface {
	Assign(ctx context.Context, caristID, packageID, slotID int64) (placements.Outcome, error)
	Remove(ctx context.Context, caristID, packageID, slotID int64) error
	Current(ctx context.Context, packageID int64) (*placements.Placement, error)
	History(ctx context.Context, packageID int64) ([]placements.Placement, error)
	List(ctx context.Context) ([]placements.Placement, error)
}

type Catalog interface {
	CreateAisle(ctx context.Context, number int) (*catalog.Aisle, error)
	GetAisle(ctx context.Context, id int64) (*catalog.Aisle, error)
	ListAisles(ctx context.Context) ([]catalog.Aisle, error)
	UpdateAisleNumber(ctx context.Context, id int64, number int) (*catalog.Aisle, error)
	DeleteAisle(ctx context.Context, id int64) error

	CreateColumn(ctx context.Context, number int, aisleID int64) (*catalog.Column, error)
	GetColumn(ctx context.Context, id int64) (*catalog.Column, error)
	ListColumns(ctx context.Context) ([]catalog.Column, error)
	ListColumnsByAisle(ctx context.Context, aisleID int64) ([]catalog.Column, error)
	DeleteColumn(ctx context.Context, id int64) error

	CreateSlot(ctx context.Context, level int, maxVolume, maxWeight float64, columnID int64) (*catalog.Slot, error)
	GetSlot(ctx context.Context, id int64) (*catalog.Slot, error)
	ListSlotsByColumn(ctx context.Context, columnID int64) ([]catalog.Slot, error)
	DeleteSlot(ctx context.Context, id int64) error
}

type PackageStore interface {
	Create(ctx context.Context, length, width, height, weight float64) (*packages.Package, error)
	Get(ctx context.Context, id int64) (*packages.Package, error)
	List(ctx context.Context) ([]packages.Package, error)
	Delete(ctx context.Context, id int64) error
}

type ReportSource interface {
	SlotsWithContext(ctx context.Context) ([]reports.SlotContext, error)
	PlacementsWithDetails(ctx context.Context) ([]reports.PlacementDetail, error)
	Occupancy(ctx context.Context, slotID int64) ([]reports.Occupant, error)
}

type Carists interface {
	Authenticate(ctx context.Context, login, password string) (*operators.Carist, error)
	Create(ctx context.Context, firstName, lastName, login, password string, bornOn, hiredOn *time.Time) (*operators.Carist, error)
	GetByID(ctx context.Context, id int64) (*operators.Carist, error)
	List(ctx context.Context) ([]operators.Carist, error)
}

// Handlers adapts the domain repositories to the JSON API.
type Handlers struct {
	log      *slog.Logger
	ledger   Ledger
	catalog  Catalog
	packages PackageStore
	reports  ReportSource
	carists  Carists
	notifier notify.Notifier
}

func NewHandlers(log *slog.Logger, ledger Ledger, cat Catalog, pkgs PackageStore,
	reps ReportSource, carists Carists, notifier notify.Notifier) *Handlers {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &Handlers{
		log: log, ledger: ledger, catalog: cat, packages: pkgs,
		reports: reps, carists: carists, notifier: notifier,
	}
}

// fail maps the domain error taxonomy onto HTTP statuses. Anything outside
// the taxonomy is a storage failure: logged here, opaque to the client.
func (h *Handlers) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, placements.ErrPackageNotFound),
		errors.Is(err, placements.ErrSlotNotFound),
		errors.Is(err, placements.ErrCaristNotFound),
		errors.Is(err, placements.ErrPlacementNotFound),
		errors.Is(err, catalog.ErrAisleNotFound),
		errors.Is(err, catalog.ErrColumnNotFound),
		errors.Is(err, catalog.ErrSlotNotFound),
		errors.Is(err, packages.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, catalog.ErrLevelOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, catalog.ErrDuplicateSlotPosition),
		errors.Is(err, placements.ErrSlotOccupied),
		errors.Is(err, catalog.ErrInUse),
		errors.Is(err, packages.ErrInUse),
		errors.Is(err, operators.ErrLoginTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Error("storage failure", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage unavailable"})
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
