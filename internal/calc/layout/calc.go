package layout

import (
	"math"

	calc "Rockbolt/internal/calc"
	rmr "Rockbolt/internal/calc/rmr"
)

// Point is a bolt head in the excavation cross-section, metres from the
// top-left corner.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

const (
	spotBoltDepthM = 0.5
	minCols        = 3
	// Crown bolting for classes II and III only fills the first two rows.
	crownRows = 2
	// Drawn bolt length as a fraction of the real bolt length.
	depthScale = 0.75
)

// MaxBolts caps one section's layout. A 30 x 30 m section at the tightest
// spacing holds 2500.
const MaxBolts = 10000

// Generate places bolts across a width x height section. Points come out
// row by row, left to right.
func Generate(class rmr.Class, width, height, spacing float64) ([]Point, error) {
	if !class.Valid() {
		return nil, calc.Invalid("unknown rock class %q", class)
	}
	if !calc.Positive(width) || !calc.Positive(height) || !calc.Positive(spacing) {
		return nil, calc.Invalid("width, height and spacing must be positive finite numbers")
	}

	if class == rmr.ClassI {
		return []Point{
			{width / 4, spotBoltDepthM},
			{width / 2, spotBoltDepthM},
			{3 * width / 4, spotBoltDepthM},
		}, nil
	}

	crown := class == rmr.ClassII || class == rmr.ClassIII

	// Counts stay float64 until the size check so huge sections cannot
	// overflow int.
	rowsF := math.Floor(height / spacing)
	if crown {
		rowsF = math.Max(crownRows, rowsF)
	}
	colsF := math.Max(minCols, math.Floor(width/spacing))
	emitF := rowsF
	if crown {
		emitF = math.Min(rowsF, crownRows)
	}
	if emitF*colsF > MaxBolts {
		return nil, calc.Invalid("%.0f bolts exceed the %d bolt limit for one section", emitF*colsF, MaxBolts)
	}
	if rowsF == 0 {
		// Section lower than one spacing in class IV/V: nothing fits.
		return []Point{}, nil
	}
	rows, cols, emitRows := int(rowsF), int(colsF), int(emitF)

	points := make([]Point, 0, emitRows*cols)
	for row := 0; row < emitRows; row++ {
		y := (float64(row) + 0.5) * (height / float64(rows))
		for col := 0; col < cols; col++ {
			x := (float64(col) + 0.5) * (width / float64(cols))
			points = append(points, Point{x, y})
		}
	}
	return points, nil
}

// Schematic is everything a renderer needs to draw one section.
type Schematic struct {
	Class       rmr.Class `json:"class"`
	WidthM      float64   `json:"width_m"`
	HeightM     float64   `json:"height_m"`
	SpacingM    float64   `json:"spacing_m"`
	BoltLengthM float64   `json:"bolt_length_m"`
	// DrawnDepthM is the penetration line length; zero for spot bolting.
	DrawnDepthM float64 `json:"drawn_depth_m"`
	Bolts       []Point `json:"bolts"`
}

func NewSchematic(class rmr.Class, width, height, spacing, boltLength float64) (Schematic, error) {
	points, err := Generate(class, width, height, spacing)
	if err != nil {
		return Schematic{}, err
	}
	depth := boltLength * depthScale
	if class == rmr.ClassI {
		depth = 0
	}
	return Schematic{
		Class:       class,
		WidthM:      width,
		HeightM:     height,
		SpacingM:    spacing,
		BoltLengthM: boltLength,
		DrawnDepthM: depth,
		Bolts:       points,
	}, nil
}
