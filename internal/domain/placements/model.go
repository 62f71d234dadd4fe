package placements

import "time"

// Outcome reports what an assign actually did to the ledger.
type Outcome string

const (
	OutcomePlaced    Outcome = "placed"
	OutcomeMoved     Outcome = "moved"
	OutcomeUnchanged Outcome = "unchanged"
)

// Placement is one ledger row: carist put package into slot at a point in
// time. Rows are insert-only; the newest row per package is its current
// location, older rows are its history.
type Placement struct {
	ID          int64
	CaristID    int64
	PackageID   int64
	SlotID      int64
	DepositedAt time.Time
}
