package catalog

// Slot levels are shelf heights within a column; the warehouse racks have
// four of them.
const (
	MinLevel = 0
	MaxLevel = 3
)

type Aisle struct {
	ID     int64 `json:"id"`
	Number int   `json:"number"`
}

type Column struct {
	ID      int64 `json:"id"`
	Number  int   `json:"number"`
	AisleID int64 `json:"aisle_id"`
}

type Slot struct {
	ID        int64   `json:"id"`
	Level     int     `json:"level"`
	MaxVolume float64 `json:"max_volume"`
	MaxWeight float64 `json:"max_weight"`
	ColumnID  int64   `json:"column_id"`
}
