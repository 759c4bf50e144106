package support

import (
	"fmt"
	"math"

	calc "Rockbolt/internal/calc"
	rmr "Rockbolt/internal/calc/rmr"
)

// Geometry of the excavation, all in metres.
type Geometry struct {
	WidthM        float64 `json:"width_m"`
	HeightM       float64 `json:"height_m"`
	TunnelLengthM float64 `json:"tunnel_length_m"`
}

func (g Geometry) Validate() error {
	if !calc.Positive(g.WidthM) || !calc.Positive(g.HeightM) || !calc.Positive(g.TunnelLengthM) {
		return calc.Invalid("width, height and tunnel length must be positive finite numbers")
	}
	return nil
}

type Input struct {
	Class rmr.Class `json:"class"`
	Geometry
}

type Result struct {
	Class             rmr.Class `json:"class"`
	BoltLengthM       float64   `json:"bolt_length_m"`
	BoltSpacingM      float64   `json:"bolt_spacing_m"`
	Pattern           string    `json:"pattern"`
	BoltType          string    `json:"bolt_type"`
	Capacity          string    `json:"capacity"`
	AdditionalSupport string    `json:"additional_support"`
	BoltsPerRow       int       `json:"bolts_per_row"`
	RowsPerMeter      float64   `json:"rows_per_meter"`
	BoltDensity       float64   `json:"bolt_density"`
	TotalBolts        float64   `json:"total_bolts"`
	TotalBoltLengthM  float64   `json:"total_bolt_length_m"`
}

// Plan sizes roof bolting for a rock class and excavation.
func Plan(class rmr.Class, g Geometry) (Result, error) {
	rule, ok := rules[class]
	if !ok {
		return Result{}, calc.Invalid("unknown rock class %q", class)
	}
	if err := g.Validate(); err != nil {
		return Result{}, err
	}

	length := math.Max(rule.minLengthM, g.WidthM/rule.widthDivisor)
	spacing := rule.spacingM

	// Ties round to even: 2.5 bolts is 2, 3.5 is 4.
	perRowF := math.RoundToEven(g.WidthM / spacing)
	if perRowF > maxBoltsPerRow {
		return Result{}, calc.Invalid("%.0f bolts per row exceed the limit of %d", perRowF, maxBoltsPerRow)
	}
	perRow := int(perRowF)
	rowsPerMeter := 1 / spacing
	minPerRow := 3
	if class == rmr.ClassI {
		minPerRow = 2
		rowsPerMeter = spotRowsPerMeter
	}
	if perRow < minPerRow {
		perRow = minPerRow
	}

	density := float64(perRow) * rowsPerMeter
	total := density * g.TunnelLengthM

	return Result{
		Class:             class,
		BoltLengthM:       length,
		BoltSpacingM:      spacing,
		Pattern:           rule.pattern,
		BoltType:          rule.boltType,
		Capacity:          rule.capacity,
		AdditionalSupport: rule.additional,
		BoltsPerRow:       perRow,
		RowsPerMeter:      rowsPerMeter,
		BoltDensity:       density,
		TotalBolts:        total,
		TotalBoltLengthM:  total * length,
	}, nil
}

// Row is one line of the support recommendation table.
type Row struct {
	Parameter      string `json:"parameter"`
	Recommendation string `json:"recommendation"`
}

func (r Result) Rows() []Row {
	return []Row{
		{"Bolt Length", fmt.Sprintf("%.2f m", r.BoltLengthM)},
		{"Bolt Spacing", fmt.Sprintf("%.2f m", r.BoltSpacingM)},
		{"Pattern", r.Pattern},
		{"Recommended Bolt Type", r.BoltType},
		{"Required Bolt Capacity", r.Capacity},
		{"Additional Support", r.AdditionalSupport},
		{"Bolts per Row", fmt.Sprintf("%d", r.BoltsPerRow)},
		{"Rows per Meter", fmt.Sprintf("%.2f", r.RowsPerMeter)},
		{"Bolt Density", fmt.Sprintf("%.2f bolts/m", r.BoltDensity)},
		{"Total Bolts Required", fmt.Sprintf("%.0f bolts", r.TotalBolts)},
		{"Total Bolt Length", fmt.Sprintf("%.0f m", r.TotalBoltLengthM)},
	}
}
