package batch

import (
	"bytes"
	"errors"
	"testing"

	calc "Rockbolt/internal/calc"
	design "Rockbolt/internal/calc/design"
	rmr "Rockbolt/internal/calc/rmr"
	support "Rockbolt/internal/calc/support"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func item(name string, water rmr.Groundwater) design.Input {
	return design.Input{
		Name: name,
		Input: rmr.Input{
			Strength:    rmr.Strength100To250,
			RQD:         rmr.RQD75To90,
			Spacing:     rmr.Spacing06To2m,
			Condition:   rmr.ConditionSlightlyWeathered,
			Groundwater: water,
		},
		Geometry: support.Geometry{WidthM: 6, HeightM: 4, TunnelLengthM: 50},
	}
}

func TestEvaluate(t *testing.T) {
	res, err := Evaluate(Input{Items: []design.Input{
		item("dry", rmr.GroundwaterDry),
		item("flowing", rmr.GroundwaterFlowing),
	}})
	require.NoError(t, err)
	require.Len(t, res.Results, 2)

	// 12+17+15+25 = 69 before groundwater
	assert.Equal(t, 84, res.Results[0].RMR.Total)
	assert.Equal(t, rmr.ClassI, res.Results[0].RMR.Class)
	assert.Equal(t, 69, res.Results[1].RMR.Total)
	assert.Equal(t, rmr.ClassII, res.Results[1].RMR.Class)
}

func TestEvaluateEmpty(t *testing.T) {
	_, err := Evaluate(Input{})
	assert.True(t, errors.Is(err, calc.ErrInvalidInput))
}

func TestEvaluateReportsFailingItem(t *testing.T) {
	_, err := Evaluate(Input{Items: []design.Input{
		item("ok", rmr.GroundwaterDry),
		item("bad", "Geyser"),
	}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, calc.ErrInvalidInput))
	assert.Contains(t, err.Error(), "item 1")
}

func TestWriteXLSX(t *testing.T) {
	res, err := Evaluate(Input{Items: []design.Input{
		item("dry", rmr.GroundwaterDry),
		item("", rmr.GroundwaterWet),
	}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, res.Results))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Case", rows[0][0])
	assert.Equal(t, "dry", rows[1][0])
	assert.Equal(t, "84", rows[1][6])
	assert.Equal(t, "I", rows[1][7])
	assert.Equal(t, "case 2", rows[2][0])
	assert.Equal(t, "II", rows[2][7])
}
