package design

import (
	calc "Rockbolt/internal/calc"
	layout "Rockbolt/internal/calc/layout"
	rmr "Rockbolt/internal/calc/rmr"
	support "Rockbolt/internal/calc/support"
)

// Bounds the input form enforces on excavation geometry.
const (
	MinSectionM = 1.0
	MaxSectionM = 30.0
	MinLengthM  = 1.0
	MaxLengthM  = 1000.0
)

type Input struct {
	Name string `json:"name,omitempty"`
	rmr.Input
	support.Geometry
	// Strict rejects geometry outside the form bounds.
	Strict bool `json:"strict,omitempty"`
}

type Result struct {
	Name      string           `json:"name,omitempty"`
	RMR       rmr.Result       `json:"rmr"`
	Support   support.Result   `json:"support"`
	Schematic layout.Schematic `json:"schematic"`
}

// Evaluate scores the rock mass, plans its support and lays out the bolts.
func Evaluate(in Input) (Result, error) {
	if in.Strict {
		if err := checkBounds(in.Geometry); err != nil {
			return Result{}, err
		}
	}

	score, err := rmr.Score(in.Input)
	if err != nil {
		return Result{}, err
	}
	plan, err := support.Plan(score.Class, in.Geometry)
	if err != nil {
		return Result{}, err
	}
	schematic, err := layout.NewSchematic(score.Class, in.WidthM, in.HeightM, plan.BoltSpacingM, plan.BoltLengthM)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Name:      in.Name,
		RMR:       score,
		Support:   plan,
		Schematic: schematic,
	}, nil
}

func checkBounds(g support.Geometry) error {
	if !within(g.WidthM, MinSectionM, MaxSectionM) {
		return calc.Invalid("width %.2f m outside [%.0f, %.0f]", g.WidthM, MinSectionM, MaxSectionM)
	}
	if !within(g.HeightM, MinSectionM, MaxSectionM) {
		return calc.Invalid("height %.2f m outside [%.0f, %.0f]", g.HeightM, MinSectionM, MaxSectionM)
	}
	if !within(g.TunnelLengthM, MinLengthM, MaxLengthM) {
		return calc.Invalid("tunnel length %.2f m outside [%.0f, %.0f]", g.TunnelLengthM, MinLengthM, MaxLengthM)
	}
	return nil
}

// within is false for NaN.
func within(x, lo, hi float64) bool {
	return x >= lo && x <= hi
}
