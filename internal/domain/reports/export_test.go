package reports

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func intPtr(v int) *int { return &v }

func TestPlacementsWorkbook(t *testing.T) {
	deposited := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	details := []PlacementDetail{
		{
			PlacementID: 1,
			CaristID:    9,
			PackageID:   50,
			SlotID:      100,
			DepositedAt: deposited,
			Current:     true,
			Length:      40, Width: 30, Height: 20, Weight: 8.5,
			AisleNumber:  intPtr(7),
			ColumnNumber: intPtr(3),
			Level:        intPtr(0),
		},
		{
			PlacementID: 2,
			CaristID:    9,
			PackageID:   51,
			SlotID:      101,
			DepositedAt: deposited.Add(-time.Hour),
			Current:     false,
			Length:      10, Width: 10, Height: 10, Weight: 1,
			// Broken location path: join fields absent.
		},
	}

	buf, err := PlacementsWorkbook(details)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per detail")

	assert.Equal(t, "placement_id", rows[0][0])
	assert.Equal(t, "aisle", rows[0][9])

	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "yes", rows[1][2])
	assert.Equal(t, "7", rows[1][9])
	assert.Equal(t, "3", rows[1][10])
	assert.Equal(t, "0", rows[1][11])

	assert.Equal(t, "no", rows[2][2])
	// Missing parents render as empty cells, not zeros.
	if len(rows[2]) > 9 {
		assert.Equal(t, "", rows[2][9])
	}
}

func TestPlacementsWorkbookEmpty(t *testing.T) {
	buf, err := PlacementsWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(f.GetActiveSheetIndex()))
	require.NoError(t, err)
	assert.Len(t, rows, 1, "header only")
}
