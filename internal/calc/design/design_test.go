package design

import (
	"errors"
	"math"
	"testing"

	calc "Rockbolt/internal/calc"
	rmr "Rockbolt/internal/calc/rmr"
	support "Rockbolt/internal/calc/support"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fairRock() Input {
	return Input{
		Name: "drive 3",
		Input: rmr.Input{
			Strength:    rmr.Strength50To100,
			RQD:         rmr.RQD50To75,
			Spacing:     rmr.Spacing200To600mm,
			Condition:   rmr.ConditionHighlyWeathered,
			Groundwater: rmr.GroundwaterDamp,
		},
		Geometry: support.Geometry{WidthM: 5, HeightM: 3.5, TunnelLengthM: 100},
	}
}

func TestEvaluateFairRock(t *testing.T) {
	res, err := Evaluate(fairRock())
	require.NoError(t, err)

	assert.Equal(t, "drive 3", res.Name)
	assert.Equal(t, 60, res.RMR.Total)
	assert.Equal(t, rmr.ClassIII, res.RMR.Class)
	assert.Equal(t, rmr.ClassIII, res.Support.Class)
	assert.Equal(t, 3.0, res.Support.BoltLengthM)
	assert.Equal(t, 4, res.Support.BoltsPerRow)

	s := res.Schematic
	assert.Equal(t, rmr.ClassIII, s.Class)
	assert.Equal(t, 1.2, s.SpacingM)
	assert.Equal(t, 3.0, s.BoltLengthM)
	assert.InDelta(t, 2.25, s.DrawnDepthM, 1e-12)
	// rows = max(2, floor(3.5/1.2)=2), cols = 4, two crown rows
	assert.Len(t, s.Bolts, 8)
}

func TestEvaluateScoreErrorPropagates(t *testing.T) {
	in := fairRock()
	in.Groundwater = "Soaked"
	_, err := Evaluate(in)
	assert.True(t, errors.Is(err, calc.ErrInvalidInput))
}

func TestEvaluateStrictBounds(t *testing.T) {
	cases := map[string]support.Geometry{
		"narrow": {WidthM: 0.5, HeightM: 3, TunnelLengthM: 100},
		"tall":   {WidthM: 5, HeightM: 31, TunnelLengthM: 100},
		"long":   {WidthM: 5, HeightM: 3, TunnelLengthM: 1001},
	}
	for name, g := range cases {
		t.Run(name, func(t *testing.T) {
			in := fairRock()
			in.Geometry = g
			in.Strict = true
			_, err := Evaluate(in)
			assert.True(t, errors.Is(err, calc.ErrInvalidInput), "got %v", err)

			in.Strict = false
			_, err = Evaluate(in)
			assert.NoError(t, err)
		})
	}
}

func TestEvaluateStrictRejectsNonFinite(t *testing.T) {
	for name, g := range map[string]support.Geometry{
		"nan height": {WidthM: 5, HeightM: math.NaN(), TunnelLengthM: 100},
		"inf width":  {WidthM: math.Inf(1), HeightM: 3.5, TunnelLengthM: 100},
		"nan length": {WidthM: 5, HeightM: 3.5, TunnelLengthM: math.NaN()},
	} {
		t.Run(name, func(t *testing.T) {
			in := fairRock()
			in.Geometry = g
			in.Strict = true
			_, err := Evaluate(in)
			assert.True(t, errors.Is(err, calc.ErrInvalidInput), "got %v", err)

			in.Strict = false
			_, err = Evaluate(in)
			assert.True(t, errors.Is(err, calc.ErrInvalidInput), "got %v", err)
		})
	}
}

func TestEvaluateOversizedSectionRejected(t *testing.T) {
	in := fairRock()
	in.Strength = rmr.StrengthUnder1
	in.RQD = rmr.RQDUnder25
	in.Spacing = rmr.SpacingUnder60mm
	in.Condition = rmr.ConditionSoftGouge
	in.Groundwater = rmr.GroundwaterFlowing
	in.Geometry = support.Geometry{WidthM: 600, HeightM: 600, TunnelLengthM: 100}

	_, err := Evaluate(in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, calc.ErrInvalidInput))
}
