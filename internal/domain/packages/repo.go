package packages

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Razooooo/CaristSI/internal/infra/db"
)

var (
	ErrNotFound = errors.New("package not found")
	// ErrInUse: the package still appears in the placement ledger.
	ErrInUse = errors.New("package still referenced by placements")
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

func (r *Repo) Create(ctx context.Context, length, width, height, weight float64) (*Package, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO packages (length, width, height, weight)
		VALUES ($1,$2,$3,$4)
		RETURNING id, length, width, height, weight
	`, length, width, height, weight)
	var p Package
	if err := row.Scan(&p.ID, &p.Length, &p.Width, &p.Height, &p.Weight); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repo) Get(ctx context.Context, id int64) (*Package, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, length, width, height, weight
		FROM packages WHERE id = $1
	`, id)
	var p Package
	if err := row.Scan(&p.ID, &p.Length, &p.Width, &p.Height, &p.Weight); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repo) List(ctx context.Context) ([]Package, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, length, width, height, weight
		FROM packages ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Package
	for rows.Next() {
		var p Package
		if err := rows.Scan(&p.ID, &p.Length, &p.Width, &p.Height, &p.Weight); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM packages WHERE id = $1`, id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return ErrInUse
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
