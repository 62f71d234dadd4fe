package reports

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// SlotsWithContext returns every slot with its column and aisle, the rows
// behind the hierarchical warehouse view.
func (r *Repo) SlotsWithContext(ctx context.Context) ([]SlotContext, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.id, s.level, s.max_volume, s.max_weight,
		       c.id, c.number, a.id, a.number
		FROM slots s
		LEFT JOIN columns c ON c.id = s.column_id
		LEFT JOIN aisles a ON a.id = c.aisle_id
		ORDER BY a.number, c.number, s.level, s.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SlotContext
	for rows.Next() {
		var sc SlotContext
		if err := rows.Scan(&sc.SlotID, &sc.Level, &sc.MaxVolume, &sc.MaxWeight,
			&sc.ColumnID, &sc.ColumnNumber, &sc.AisleID, &sc.AisleNumber); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

// PlacementsWithDetails joins the ledger to the package registry (INNER:
// the package must exist) and to the location path (LEFT: missing parents
// come back nil). Each package's newest row is flagged current.
func (r *Repo) PlacementsWithDetails(ctx context.Context) ([]PlacementDetail, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT pl.id, pl.carist_id, pl.package_id, pl.slot_id, pl.deposited_at,
		       pl.id = first_value(pl.id) OVER w AS current,
		       pk.length, pk.width, pk.height, pk.weight,
		       s.level, c.number, a.number
		FROM placements pl
		JOIN packages pk ON pk.id = pl.package_id
		LEFT JOIN slots s   ON s.id = pl.slot_id
		LEFT JOIN columns c ON c.id = s.column_id
		LEFT JOIN aisles a  ON a.id = c.aisle_id
		WINDOW w AS (PARTITION BY pl.package_id ORDER BY pl.deposited_at DESC, pl.id DESC)
		ORDER BY pl.deposited_at DESC, pl.id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PlacementDetail
	for rows.Next() {
		var d PlacementDetail
		if err := rows.Scan(&d.PlacementID, &d.CaristID, &d.PackageID, &d.SlotID, &d.DepositedAt,
			&d.Current,
			&d.Length, &d.Width, &d.Height, &d.Weight,
			&d.Level, &d.ColumnNumber, &d.AisleNumber); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Occupancy lists the packages currently placed at a slot. Under the
// one-active-placement invariant this is 0 or 1 entries; more than one is
// a data-integrity finding the caller should surface, not a query error.
func (r *Repo) Occupancy(ctx context.Context, slotID int64) ([]Occupant, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT cur.package_id, cur.carist_id, cur.deposited_at
		FROM (
			SELECT DISTINCT ON (package_id) package_id, carist_id, slot_id, deposited_at
			FROM placements
			ORDER BY package_id, deposited_at DESC, id DESC
		) cur
		WHERE cur.slot_id = $1
		ORDER BY cur.deposited_at DESC
	`, slotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Occupant
	for rows.Next() {
		var o Occupant
		if err := rows.Scan(&o.PackageID, &o.CaristID, &o.DepositedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
