package placements

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Razooooo/CaristSI/internal/infra/db"
)

var (
	ErrPackageNotFound   = errors.New("package not found")
	ErrSlotNotFound      = errors.New("slot not found")
	ErrCaristNotFound    = errors.New("carist not found")
	ErrPlacementNotFound = errors.New("placement not found")
	ErrSlotOccupied      = errors.New("slot already holds another package")
)

type Repo struct {
	pool *pgxpool.Pool
	// strictSlots rejects assigns into a slot currently holding a different package.
	strictSlots bool
}

func NewRepo(pool *pgxpool.Pool, strictSlots bool) *Repo {
	return &Repo{pool: pool, strictSlots: strictSlots}
}

type queryer interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// decide picks the ledger action given the package's current placement
// (nil when the package has never been placed).
func decide(current *Placement, slotID int64) Outcome {
	switch {
	case current == nil:
		return OutcomePlaced
	case current.SlotID == slotID:
		return OutcomeUnchanged
	default:
		return OutcomeMoved
	}
}

// Assign records that caristID put packageID into slotID. The whole
// sequence runs in one transaction; the package row is locked so
// concurrent assigns for the same package serialize and the
// one-active-placement invariant holds. Re-assigning a package to the
// slot it already occupies commits nothing and returns OutcomeUnchanged.
func (r *Repo) Assign(ctx context.Context, caristID, packageID, slotID int64) (Outcome, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var locked int64
	err = tx.QueryRow(ctx, `SELECT id FROM packages WHERE id = $1 FOR UPDATE`, packageID).Scan(&locked)
	if err == pgx.ErrNoRows {
		return "", ErrPackageNotFound
	}
	if err != nil {
		return "", err
	}

	var slotExists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM slots WHERE id = $1)`, slotID).Scan(&slotExists); err != nil {
		return "", err
	}
	if !slotExists {
		return "", ErrSlotNotFound
	}

	current, err := currentOf(ctx, tx, packageID)
	if err != nil {
		return "", err
	}

	out := decide(current, slotID)
	if out == OutcomeUnchanged {
		return out, tx.Commit(ctx)
	}

	if r.strictSlots {
		taken, err := slotHoldsOther(ctx, tx, slotID, packageID)
		if err != nil {
			return "", err
		}
		if taken {
			return "", ErrSlotOccupied
		}
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO placements (carist_id, package_id, slot_id)
		VALUES ($1,$2,$3)
	`, caristID, packageID, slotID); err != nil {
		if db.IsForeignKeyViolation(err) {
			return "", ErrCaristNotFound
		}
		return "", err
	}

	return out, tx.Commit(ctx)
}

// Remove deletes the newest ledger row matching the exact triple. With an
// insert-only ledger the same triple can recur, so only the latest
// occurrence is undone.
func (r *Repo) Remove(ctx context.Context, caristID, packageID, slotID int64) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM placements
		WHERE id = (
			SELECT id FROM placements
			WHERE carist_id = $1 AND package_id = $2 AND slot_id = $3
			ORDER BY deposited_at DESC, id DESC
			LIMIT 1
		)
	`, caristID, packageID, slotID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPlacementNotFound
	}
	return nil
}

// Current returns the package's newest placement, or nil if it was never placed.
func (r *Repo) Current(ctx context.Context, packageID int64) (*Placement, error) {
	return currentOf(ctx, r.pool, packageID)
}

func currentOf(ctx context.Context, q queryer, packageID int64) (*Placement, error) {
	row := q.QueryRow(ctx, `
		SELECT id, carist_id, package_id, slot_id, deposited_at
		FROM placements
		WHERE package_id = $1
		ORDER BY deposited_at DESC, id DESC
		LIMIT 1
	`, packageID)

	var p Placement
	if err := row.Scan(&p.ID, &p.CaristID, &p.PackageID, &p.SlotID, &p.DepositedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// slotHoldsOther reports whether some other package's current placement is slotID.
func slotHoldsOther(ctx context.Context, q queryer, slotID, packageID int64) (bool, error) {
	var taken bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM (
				SELECT DISTINCT ON (package_id) package_id, slot_id
				FROM placements
				ORDER BY package_id, deposited_at DESC, id DESC
			) cur
			WHERE cur.slot_id = $1 AND cur.package_id <> $2
		)
	`, slotID, packageID).Scan(&taken)
	return taken, err
}

// History returns every ledger row for the package, newest first.
func (r *Repo) History(ctx context.Context, packageID int64) ([]Placement, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, carist_id, package_id, slot_id, deposited_at
		FROM placements
		WHERE package_id = $1
		ORDER BY deposited_at DESC, id DESC
	`, packageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Placement
	for rows.Next() {
		var p Placement
		if err := rows.Scan(&p.ID, &p.CaristID, &p.PackageID, &p.SlotID, &p.DepositedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// List returns the whole ledger, newest first.
func (r *Repo) List(ctx context.Context) ([]Placement, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, carist_id, package_id, slot_id, deposited_at
		FROM placements
		ORDER BY deposited_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Placement
	for rows.Next() {
		var p Placement
		if err := rows.Scan(&p.ID, &p.CaristID, &p.PackageID, &p.SlotID, &p.DepositedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
