package reports

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// PlacementsWorkbook renders placement details as an xlsx workbook, the
// audit artifact handed to warehouse admins.
func PlacementsWorkbook(details []PlacementDetail) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"placement_id",
		"deposited_at",
		"current",
		"carist_id",
		"package_id",
		"length",
		"width",
		"height",
		"weight",
		"aisle",
		"column",
		"level",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("workbook header: %w", err)
	}

	row := 2
	for _, d := range details {
		excelRow := []interface{}{
			d.PlacementID,
			d.DepositedAt.Format("2006-01-02 15:04:05"),
			map[bool]string{true: "yes", false: "no"}[d.Current],
			d.CaristID,
			d.PackageID,
			d.Length,
			d.Width,
			d.Height,
			d.Weight,
			intOrEmpty(d.AisleNumber),
			intOrEmpty(d.ColumnNumber),
			intOrEmpty(d.Level),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("workbook cell: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("workbook row %d: %w", row, err)
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("workbook write: %w", err)
	}
	return buf, nil
}

func intOrEmpty(v *int) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
