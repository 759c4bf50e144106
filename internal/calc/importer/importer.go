package importer

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	calc "Rockbolt/internal/calc"
	design "Rockbolt/internal/calc/design"
	rmr "Rockbolt/internal/calc/rmr"
	support "Rockbolt/internal/calc/support"
	"github.com/xuri/excelize/v2"
)

// Columns expected in the first sheet, after a header row.
const (
	colStrength = iota
	colRQD
	colSpacing
	colCondition
	colGroundwater
	colWidth
	colHeight
	colLength
	colName
	minCols = colLength + 1
)

type Skipped struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type Result struct {
	Count   int             `json:"count"`
	Results []design.Result `json:"results"`
	Skipped []Skipped       `json:"skipped,omitempty"`
}

// Read evaluates every data row of the workbook. Rows that cannot be parsed
// or evaluated are reported in Skipped rather than failing the import.
func Read(r io.Reader) (Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Result{}, calc.Invalid("invalid file: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		return Result{}, calc.Invalid("empty sheet")
	}

	var out Result
	for i := 1; i < len(rows); i++ {
		// spreadsheet rows are 1-based
		rowNum := i + 1
		input, err := parseRow(rows[i])
		if err != nil {
			out.Skipped = append(out.Skipped, Skipped{Row: rowNum, Reason: err.Error()})
			continue
		}
		res, err := design.Evaluate(input)
		if err != nil {
			out.Skipped = append(out.Skipped, Skipped{Row: rowNum, Reason: err.Error()})
			continue
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)
	return out, nil
}

func parseRow(row []string) (design.Input, error) {
	if len(row) < minCols {
		return design.Input{}, fmt.Errorf("expected at least %d columns, got %d", minCols, len(row))
	}
	width, err := toFloat(row[colWidth])
	if err != nil {
		return design.Input{}, fmt.Errorf("width: %w", err)
	}
	height, err := toFloat(row[colHeight])
	if err != nil {
		return design.Input{}, fmt.Errorf("height: %w", err)
	}
	length, err := toFloat(row[colLength])
	if err != nil {
		return design.Input{}, fmt.Errorf("tunnel length: %w", err)
	}
	name := ""
	if len(row) > colName {
		name = strings.TrimSpace(row[colName])
	}
	return design.Input{
		Name: name,
		Input: rmr.Input{
			Strength:    rmr.Strength(strings.TrimSpace(row[colStrength])),
			RQD:         rmr.RQD(strings.TrimSpace(row[colRQD])),
			Spacing:     rmr.Spacing(strings.TrimSpace(row[colSpacing])),
			Condition:   rmr.Condition(strings.TrimSpace(row[colCondition])),
			Groundwater: rmr.Groundwater(strings.TrimSpace(row[colGroundwater])),
		},
		Geometry: support.Geometry{
			WidthM:        width,
			HeightM:       height,
			TunnelLengthM: length,
		},
	}, nil
}

// toFloat takes the whole cell, so "5 m" is an error rather than 5.
func toFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", s)
	}
	return v, nil
}
