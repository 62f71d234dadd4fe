package reports

import "time"

// SlotContext is a slot joined to its column and aisle. Parent fields are
// pointers because the joins are LEFT: a broken reference surfaces as nil,
// not as an error.
type SlotContext struct {
	SlotID       int64   `json:"slot_id"`
	Level        int     `json:"level"`
	MaxVolume    float64 `json:"max_volume"`
	MaxWeight    float64 `json:"max_weight"`
	ColumnID     *int64  `json:"column_id"`
	ColumnNumber *int    `json:"column_number"`
	AisleID      *int64  `json:"aisle_id"`
	AisleNumber  *int    `json:"aisle_number"`
}

// PlacementDetail is a fully denormalized ledger row: the package's
// dimensions plus the full location path. Current marks the package's
// newest row.
type PlacementDetail struct {
	PlacementID int64     `json:"placement_id"`
	CaristID    int64     `json:"carist_id"`
	PackageID   int64     `json:"package_id"`
	SlotID      int64     `json:"slot_id"`
	DepositedAt time.Time `json:"deposited_at"`
	Current     bool      `json:"current"`

	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`

	Level        *int `json:"level"`
	ColumnNumber *int `json:"column_number"`
	AisleNumber  *int `json:"aisle_number"`
}

// Occupant is a package whose current placement is a given slot.
type Occupant struct {
	PackageID   int64     `json:"package_id"`
	CaristID    int64     `json:"carist_id"`
	DepositedAt time.Time `json:"deposited_at"`
}
