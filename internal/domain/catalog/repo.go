package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Razooooo/CaristSI/internal/infra/db"
)

var (
	ErrAisleNotFound  = errors.New("aisle not found")
	ErrColumnNotFound = errors.New("column not found")
	ErrSlotNotFound   = errors.New("slot not found")
	// ErrDuplicateSlotPosition: a slot already exists at (column, level).
	ErrDuplicateSlotPosition = errors.New("slot position already taken")
	// ErrInUse: deletion rejected because children or ledger rows still reference the row.
	ErrInUse           = errors.New("entity still referenced")
	ErrLevelOutOfRange = errors.New("level out of range")
)

func ValidateLevel(level int) error {
	if level < MinLevel || level > MaxLevel {
		return fmt.Errorf("%w: %d not in %d..%d", ErrLevelOutOfRange, level, MinLevel, MaxLevel)
	}
	return nil
}

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

/* Aisles */

func (r *Repo) CreateAisle(ctx context.Context, number int) (*Aisle, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO aisles (number) VALUES ($1)
		RETURNING id, number
	`, number)
	var a Aisle
	if err := row.Scan(&a.ID, &a.Number); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repo) GetAisle(ctx context.Context, id int64) (*Aisle, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, number FROM aisles WHERE id = $1`, id)
	var a Aisle
	if err := row.Scan(&a.ID, &a.Number); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *Repo) ListAisles(ctx context.Context) ([]Aisle, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, number FROM aisles ORDER BY number, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Aisle
	for rows.Next() {
		var a Aisle
		if err := rows.Scan(&a.ID, &a.Number); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *Repo) UpdateAisleNumber(ctx context.Context, id int64, number int) (*Aisle, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE aisles SET number = $2 WHERE id = $1
		RETURNING id, number
	`, id, number)
	var a Aisle
	if err := row.Scan(&a.ID, &a.Number); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrAisleNotFound
		}
		return nil, err
	}
	return &a, nil
}

// DeleteAisle rejects deletion while columns still belong to the aisle.
func (r *Repo) DeleteAisle(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM aisles WHERE id = $1`, id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return ErrInUse
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAisleNotFound
	}
	return nil
}

/* Columns */

func (r *Repo) CreateColumn(ctx context.Context, number int, aisleID int64) (*Column, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO columns (number, aisle_id) VALUES ($1,$2)
		RETURNING id, number, aisle_id
	`, number, aisleID)
	var c Column
	if err := row.Scan(&c.ID, &c.Number, &c.AisleID); err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, ErrAisleNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *Repo) GetColumn(ctx context.Context, id int64) (*Column, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, number, aisle_id FROM columns WHERE id = $1`, id)
	var c Column
	if err := row.Scan(&c.ID, &c.Number, &c.AisleID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *Repo) ListColumns(ctx context.Context) ([]Column, error) {
	return r.listColumns(ctx, `SELECT id, number, aisle_id FROM columns ORDER BY aisle_id, number, id`)
}

func (r *Repo) ListColumnsByAisle(ctx context.Context, aisleID int64) ([]Column, error) {
	return r.listColumns(ctx, `SELECT id, number, aisle_id FROM columns WHERE aisle_id = $1 ORDER BY number, id`, aisleID)
}

func (r *Repo) listColumns(ctx context.Context, sql string, args ...any) ([]Column, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Column
	for rows.Next() {
		var c Column
		if err := rows.Scan(&c.ID, &c.Number, &c.AisleID); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) DeleteColumn(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM columns WHERE id = $1`, id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return ErrInUse
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrColumnNotFound
	}
	return nil
}

/* Slots */

// CreateSlot relies on the UNIQUE (column_id, level) constraint instead of a
// check-then-insert round trip, so concurrent creations cannot slip through.
func (r *Repo) CreateSlot(ctx context.Context, level int, maxVolume, maxWeight float64, columnID int64) (*Slot, error) {
	if err := ValidateLevel(level); err != nil {
		return nil, err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO slots (level, max_volume, max_weight, column_id)
		VALUES ($1,$2,$3,$4)
		RETURNING id, level, max_volume, max_weight, column_id
	`, level, maxVolume, maxWeight, columnID)
	var s Slot
	if err := row.Scan(&s.ID, &s.Level, &s.MaxVolume, &s.MaxWeight, &s.ColumnID); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrDuplicateSlotPosition
		}
		if db.IsForeignKeyViolation(err) {
			return nil, ErrColumnNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *Repo) GetSlot(ctx context.Context, id int64) (*Slot, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, level, max_volume, max_weight, column_id
		FROM slots WHERE id = $1
	`, id)
	var s Slot
	if err := row.Scan(&s.ID, &s.Level, &s.MaxVolume, &s.MaxWeight, &s.ColumnID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *Repo) ListSlotsByColumn(ctx context.Context, columnID int64) ([]Slot, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, level, max_volume, max_weight, column_id
		FROM slots WHERE column_id = $1
		ORDER BY level
	`, columnID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Slot
	for rows.Next() {
		var s Slot
		if err := rows.Scan(&s.ID, &s.Level, &s.MaxVolume, &s.MaxWeight, &s.ColumnID); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repo) DeleteSlot(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM slots WHERE id = $1`, id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return ErrInUse
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSlotNotFound
	}
	return nil
}
