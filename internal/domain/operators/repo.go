package operators

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Razooooo/CaristSI/internal/infra/db"
)

var ErrLoginTaken = errors.New("login already taken")

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// Authenticate performs the credential-equality lookup. Returns nil when
// the login/password pair matches no carist; the password never leaves
// this package.
func (r *Repo) Authenticate(ctx context.Context, login, password string) (*Carist, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, login, born_on, hired_on, created_at
		FROM carists WHERE login = $1 AND password = $2
	`, login, password)
	return scanCarist(row)
}

func (r *Repo) GetByID(ctx context.Context, id int64) (*Carist, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, login, born_on, hired_on, created_at
		FROM carists WHERE id = $1
	`, id)
	return scanCarist(row)
}

func (r *Repo) Create(ctx context.Context, firstName, lastName, login, password string, bornOn, hiredOn *time.Time) (*Carist, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO carists (first_name, last_name, login, password, born_on, hired_on)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, first_name, last_name, login, born_on, hired_on, created_at
	`, firstName, lastName, login, password, bornOn, hiredOn)

	var c Carist
	if err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Login, &c.BornOn, &c.HiredOn, &c.CreatedAt); err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrLoginTaken
		}
		return nil, err
	}
	return &c, nil
}

func (r *Repo) List(ctx context.Context) ([]Carist, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, first_name, last_name, login, born_on, hired_on, created_at
		FROM carists ORDER BY last_name, first_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Carist
	for rows.Next() {
		var c Carist
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Login, &c.BornOn, &c.HiredOn, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanCarist(row pgx.Row) (*Carist, error) {
	var c Carist
	if err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Login, &c.BornOn, &c.HiredOn, &c.CreatedAt); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
