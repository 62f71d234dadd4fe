package operators

import "time"

// Carist is a warehouse operator. Placements in the ledger record which
// carist performed them.
type Carist struct {
	ID        int64      `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Login     string     `json:"login"`
	BornOn    *time.Time `json:"born_on,omitempty"`
	HiredOn   *time.Time `json:"hired_on,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
