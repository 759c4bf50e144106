package batch

import (
	"fmt"
	"io"

	design "Rockbolt/internal/calc/design"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Support"

var header = []any{
	"Case", "A1", "A2", "A3", "A4", "A5", "RMR", "Class", "Description",
	"Bolt length (m)", "Spacing (m)", "Bolts per row", "Rows per m",
	"Density (bolts/m)", "Total bolts", "Total bolt length (m)",
	"Bolt type", "Capacity", "Additional support",
}

// WriteXLSX writes one row per evaluated case.
func WriteXLSX(w io.Writer, results []design.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}
	for i, res := range results {
		name := res.Name
		if name == "" {
			name = fmt.Sprintf("case %d", i+1)
		}
		row := []any{
			name,
			res.RMR.Ratings.Strength,
			res.RMR.Ratings.RQD,
			res.RMR.Ratings.Spacing,
			res.RMR.Ratings.Condition,
			res.RMR.Ratings.Groundwater,
			res.RMR.Total,
			string(res.RMR.Class),
			res.RMR.Description,
			res.Support.BoltLengthM,
			res.Support.BoltSpacingM,
			res.Support.BoltsPerRow,
			res.Support.RowsPerMeter,
			res.Support.BoltDensity,
			res.Support.TotalBolts,
			res.Support.TotalBoltLengthM,
			res.Support.BoltType,
			res.Support.Capacity,
			res.Support.AdditionalSupport,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}
