package reports

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Razooooo/CaristSI/internal/domain/placements"
)

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

// The full chain: aisle 7 → column 3 → slot level 0, one package placed by
// one carist, visible in the denormalized views.
func TestPlacementScenario(t *testing.T) {
	ctx := context.Background()
	pool := testPool(t)

	var caristID, aisleID, columnID, slotID, packageID int64
	require.NoError(t, pool.QueryRow(ctx, `
		INSERT INTO carists (first_name, last_name, login, password)
		VALUES ('Marie', 'Laurent', 'mlaurent-' || gen_random_uuid()::text, 'secret')
		RETURNING id
	`).Scan(&caristID))
	require.NoError(t, pool.QueryRow(ctx, `INSERT INTO aisles (number) VALUES (7) RETURNING id`).Scan(&aisleID))
	require.NoError(t, pool.QueryRow(ctx, `
		INSERT INTO columns (number, aisle_id) VALUES (3, $1) RETURNING id
	`, aisleID).Scan(&columnID))
	require.NoError(t, pool.QueryRow(ctx, `
		INSERT INTO slots (level, max_volume, max_weight, column_id)
		VALUES (0, 5000, 200, $1) RETURNING id
	`, columnID).Scan(&slotID))
	require.NoError(t, pool.QueryRow(ctx, `
		INSERT INTO packages (length, width, height, weight)
		VALUES (40, 30, 20, 8.5) RETURNING id
	`).Scan(&packageID))

	ledger := placements.NewRepo(pool, false)
	_, err := ledger.Assign(ctx, caristID, packageID, slotID)
	require.NoError(t, err)

	repo := NewRepo(pool)

	details, err := repo.PlacementsWithDetails(ctx)
	require.NoError(t, err)
	var found *PlacementDetail
	for i := range details {
		if details[i].PackageID == packageID {
			found = &details[i]
			break
		}
	}
	require.NotNil(t, found, "placed package appears in the detailed view")
	assert.True(t, found.Current)
	assert.Equal(t, caristID, found.CaristID)
	require.NotNil(t, found.AisleNumber)
	assert.Equal(t, 7, *found.AisleNumber)
	require.NotNil(t, found.ColumnNumber)
	assert.Equal(t, 3, *found.ColumnNumber)
	require.NotNil(t, found.Level)
	assert.Equal(t, 0, *found.Level)
	assert.Equal(t, 40.0, found.Length)

	occupants, err := repo.Occupancy(ctx, slotID)
	require.NoError(t, err)
	require.Len(t, occupants, 1)
	assert.Equal(t, packageID, occupants[0].PackageID)

	slots, err := repo.SlotsWithContext(ctx)
	require.NoError(t, err)
	var slotFound bool
	for _, sc := range slots {
		if sc.SlotID == slotID {
			slotFound = true
			require.NotNil(t, sc.AisleNumber)
			assert.Equal(t, 7, *sc.AisleNumber)
		}
	}
	assert.True(t, slotFound)
}

// A moved package stops counting against its old slot's occupancy, and only
// its newest detail row carries the current flag.
func TestOccupancyAfterMove(t *testing.T) {
	ctx := context.Background()
	pool := testPool(t)

	var caristID, aisleID, columnID, slot1, slot2, packageID int64
	require.NoError(t, pool.QueryRow(ctx, `
		INSERT INTO carists (first_name, last_name, login, password)
		VALUES ('Paul', 'Martin', 'pmartin-' || gen_random_uuid()::text, 'secret')
		RETURNING id
	`).Scan(&caristID))
	require.NoError(t, pool.QueryRow(ctx, `INSERT INTO aisles (number) VALUES (8) RETURNING id`).Scan(&aisleID))
	require.NoError(t, pool.QueryRow(ctx, `
		INSERT INTO columns (number, aisle_id) VALUES (1, $1) RETURNING id
	`, aisleID).Scan(&columnID))
	require.NoError(t, pool.QueryRow(ctx, `
		INSERT INTO slots (level, max_volume, max_weight, column_id)
		VALUES (0, 5000, 200, $1) RETURNING id
	`, columnID).Scan(&slot1))
	require.NoError(t, pool.QueryRow(ctx, `
		INSERT INTO slots (level, max_volume, max_weight, column_id)
		VALUES (1, 5000, 200, $1) RETURNING id
	`, columnID).Scan(&slot2))
	require.NoError(t, pool.QueryRow(ctx, `
		INSERT INTO packages (length, width, height, weight)
		VALUES (20, 20, 20, 4) RETURNING id
	`).Scan(&packageID))

	ledger := placements.NewRepo(pool, false)
	_, err := ledger.Assign(ctx, caristID, packageID, slot1)
	require.NoError(t, err)
	_, err = ledger.Assign(ctx, caristID, packageID, slot2)
	require.NoError(t, err)

	repo := NewRepo(pool)

	old, err := repo.Occupancy(ctx, slot1)
	require.NoError(t, err)
	assert.Empty(t, old)

	cur, err := repo.Occupancy(ctx, slot2)
	require.NoError(t, err)
	require.Len(t, cur, 1)
	assert.Equal(t, packageID, cur[0].PackageID)

	details, err := repo.PlacementsWithDetails(ctx)
	require.NoError(t, err)
	currents := 0
	for _, d := range details {
		if d.PackageID == packageID && d.Current {
			currents++
			assert.Equal(t, slot2, d.SlotID)
		}
	}
	assert.Equal(t, 1, currents)
}
