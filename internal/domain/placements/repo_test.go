package placements

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Integration tests against a migrated Postgres database. They skip unless
// TEST_DATABASE_DSN points at one.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}
	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

type fixtures struct {
	caristID  int64
	packageID int64
	slot1     int64
	slot2     int64
}

func seed(t *testing.T, ctx context.Context, pool *pgxpool.Pool) fixtures {
	t.Helper()
	var fx fixtures

	require.NoError(t, pool.QueryRow(ctx, `
		INSERT INTO carists (first_name, last_name, login, password)
		VALUES ('Jean', 'Dupont', 'jdupont-' || gen_random_uuid()::text, 'secret')
		RETURNING id
	`).Scan(&fx.caristID))

	var aisleID, columnID int64
	require.NoError(t, pool.QueryRow(ctx, `INSERT INTO aisles (number) VALUES (7) RETURNING id`).Scan(&aisleID))
	require.NoError(t, pool.QueryRow(ctx, `
		INSERT INTO columns (number, aisle_id) VALUES (3, $1) RETURNING id
	`, aisleID).Scan(&columnID))
	require.NoError(t, pool.QueryRow(ctx, `
		INSERT INTO slots (level, max_volume, max_weight, column_id)
		VALUES (0, 5000, 200, $1) RETURNING id
	`, columnID).Scan(&fx.slot1))
	require.NoError(t, pool.QueryRow(ctx, `
		INSERT INTO slots (level, max_volume, max_weight, column_id)
		VALUES (1, 5000, 200, $1) RETURNING id
	`, columnID).Scan(&fx.slot2))

	require.NoError(t, pool.QueryRow(ctx, `
		INSERT INTO packages (length, width, height, weight)
		VALUES (40, 30, 20, 8.5) RETURNING id
	`).Scan(&fx.packageID))

	return fx
}

func TestAssignLifecycle(t *testing.T) {
	ctx := context.Background()
	pool := testPool(t)
	fx := seed(t, ctx, pool)
	repo := NewRepo(pool, false)

	cur, err := repo.Current(ctx, fx.packageID)
	require.NoError(t, err)
	assert.Nil(t, cur, "package with no prior placement has no current placement")

	out, err := repo.Assign(ctx, fx.caristID, fx.packageID, fx.slot1)
	require.NoError(t, err)
	assert.Equal(t, OutcomePlaced, out)

	cur, err = repo.Current(ctx, fx.packageID)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, fx.slot1, cur.SlotID)

	// Idempotent re-assign: same outcome contract, no extra ledger row.
	out, err = repo.Assign(ctx, fx.caristID, fx.packageID, fx.slot1)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUnchanged, out)

	history, err := repo.History(ctx, fx.packageID)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	// Move: the old row survives as history.
	out, err = repo.Assign(ctx, fx.caristID, fx.packageID, fx.slot2)
	require.NoError(t, err)
	assert.Equal(t, OutcomeMoved, out)

	cur, err = repo.Current(ctx, fx.packageID)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, fx.slot2, cur.SlotID)

	history, err = repo.History(ctx, fx.packageID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, fx.slot2, history[0].SlotID, "newest first")
	assert.Equal(t, fx.slot1, history[1].SlotID)
}

func TestAssignUnknownPackage(t *testing.T) {
	ctx := context.Background()
	pool := testPool(t)
	fx := seed(t, ctx, pool)
	repo := NewRepo(pool, false)

	_, err := repo.Assign(ctx, fx.caristID, 99999999, fx.slot1)
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestAssignUnknownSlot(t *testing.T) {
	ctx := context.Background()
	pool := testPool(t)
	fx := seed(t, ctx, pool)
	repo := NewRepo(pool, false)

	_, err := repo.Assign(ctx, fx.caristID, fx.packageID, 99999999)
	assert.ErrorIs(t, err, ErrSlotNotFound)

	history, herr := repo.History(ctx, fx.packageID)
	require.NoError(t, herr)
	assert.Empty(t, history, "failed assign writes no row")
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	pool := testPool(t)
	fx := seed(t, ctx, pool)
	repo := NewRepo(pool, false)

	err := repo.Remove(ctx, fx.caristID, fx.packageID, fx.slot1)
	assert.ErrorIs(t, err, ErrPlacementNotFound)

	_, err = repo.Assign(ctx, fx.caristID, fx.packageID, fx.slot1)
	require.NoError(t, err)

	require.NoError(t, repo.Remove(ctx, fx.caristID, fx.packageID, fx.slot1))

	cur, err := repo.Current(ctx, fx.packageID)
	require.NoError(t, err)
	assert.Nil(t, cur)
}

func TestStrictSlotExclusivity(t *testing.T) {
	ctx := context.Background()
	pool := testPool(t)
	fx := seed(t, ctx, pool)

	var otherPackage int64
	require.NoError(t, pool.QueryRow(ctx, `
		INSERT INTO packages (length, width, height, weight)
		VALUES (10, 10, 10, 1) RETURNING id
	`).Scan(&otherPackage))

	strict := NewRepo(pool, true)

	_, err := strict.Assign(ctx, fx.caristID, fx.packageID, fx.slot1)
	require.NoError(t, err)

	_, err = strict.Assign(ctx, fx.caristID, otherPackage, fx.slot1)
	assert.ErrorIs(t, err, ErrSlotOccupied)

	// The resident package itself may re-assign into its own slot.
	out, err := strict.Assign(ctx, fx.caristID, fx.packageID, fx.slot1)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUnchanged, out)
}
