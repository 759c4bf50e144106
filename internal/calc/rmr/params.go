package rmr

// Strength is parameter A1, uniaxial compressive strength of intact rock.
type Strength string

const (
	StrengthOver250  Strength = ">250 MPa"
	Strength100To250 Strength = "100-250 MPa"
	Strength50To100  Strength = "50-100 MPa"
	Strength25To50   Strength = "25-50 MPa"
	Strength5To25    Strength = "5-25 MPa"
	Strength1To5     Strength = "1-5 MPa"
	StrengthUnder1   Strength = "<1 MPa"
)

// RQD is parameter A2, rock quality designation.
type RQD string

const (
	RQD90To100 RQD = "90-100%"
	RQD75To90  RQD = "75-90%"
	RQD50To75  RQD = "50-75%"
	RQD25To50  RQD = "25-50%"
	RQDUnder25 RQD = "<25%"
)

// Spacing is parameter A3, spacing of discontinuities.
type Spacing string

const (
	SpacingOver2m     Spacing = ">2 m"
	Spacing06To2m     Spacing = "0.6-2 m"
	Spacing200To600mm Spacing = "200-600 mm"
	Spacing60To200mm  Spacing = "60-200 mm"
	SpacingUnder60mm  Spacing = "<60 mm"
)

// Condition is parameter A4, condition of discontinuities.
type Condition string

const (
	ConditionVeryRough         Condition = "Very rough, not continuous, no separation, unweathered"
	ConditionSlightlyWeathered Condition = "Slightly rough, separation < 1 mm, slightly weathered"
	ConditionHighlyWeathered   Condition = "Slightly rough, separation < 1 mm, highly weathered"
	ConditionSlickensided      Condition = "Slickensided/gouge < 5 mm, or separation 1-5 mm"
	ConditionSoftGouge         Condition = "Soft gouge > 5 mm, or separation > 5 mm"
)

// Groundwater is parameter A5.
type Groundwater string

const (
	GroundwaterDry      Groundwater = "Completely dry"
	GroundwaterDamp     Groundwater = "Damp"
	GroundwaterWet      Groundwater = "Wet"
	GroundwaterDripping Groundwater = "Dripping"
	GroundwaterFlowing  Groundwater = "Flowing"
)

// Option is one selectable value of a parameter with its rating.
type Option struct {
	Label  string `json:"label"`
	Points int    `json:"points"`
}

var strengthTable = []Option{
	{string(StrengthOver250), 15},
	{string(Strength100To250), 12},
	{string(Strength50To100), 7},
	{string(Strength25To50), 4},
	{string(Strength5To25), 2},
	{string(Strength1To5), 1},
	{string(StrengthUnder1), 0},
}

var rqdTable = []Option{
	{string(RQD90To100), 20},
	{string(RQD75To90), 17},
	{string(RQD50To75), 13},
	{string(RQD25To50), 8},
	{string(RQDUnder25), 3},
}

var spacingTable = []Option{
	{string(SpacingOver2m), 20},
	{string(Spacing06To2m), 15},
	{string(Spacing200To600mm), 10},
	{string(Spacing60To200mm), 8},
	{string(SpacingUnder60mm), 5},
}

var conditionTable = []Option{
	{string(ConditionVeryRough), 30},
	{string(ConditionSlightlyWeathered), 25},
	{string(ConditionHighlyWeathered), 20},
	{string(ConditionSlickensided), 10},
	{string(ConditionSoftGouge), 0},
}

var groundwaterTable = []Option{
	{string(GroundwaterDry), 15},
	{string(GroundwaterDamp), 10},
	{string(GroundwaterWet), 7},
	{string(GroundwaterDripping), 4},
	{string(GroundwaterFlowing), 0},
}

func lookup(table []Option, label string) (int, bool) {
	for _, o := range table {
		if o.Label == label {
			return o.Points, true
		}
	}
	return 0, false
}

// Points returns the A1 rating.
func (s Strength) Points() (int, bool) { return lookup(strengthTable, string(s)) }

// Points returns the A2 rating.
func (q RQD) Points() (int, bool) { return lookup(rqdTable, string(q)) }

// Points returns the A3 rating.
func (s Spacing) Points() (int, bool) { return lookup(spacingTable, string(s)) }

// Points returns the A4 rating.
func (c Condition) Points() (int, bool) { return lookup(conditionTable, string(c)) }

// Points returns the A5 rating.
func (g Groundwater) Points() (int, bool) { return lookup(groundwaterTable, string(g)) }

// Options lists every parameter's choices in canonical order, best first.
type Options struct {
	Strength    []Option `json:"strength"`
	RQD         []Option `json:"rqd"`
	Spacing     []Option `json:"spacing"`
	Condition   []Option `json:"condition"`
	Groundwater []Option `json:"groundwater"`
}

func AllOptions() Options {
	return Options{
		Strength:    append([]Option(nil), strengthTable...),
		RQD:         append([]Option(nil), rqdTable...),
		Spacing:     append([]Option(nil), spacingTable...),
		Condition:   append([]Option(nil), conditionTable...),
		Groundwater: append([]Option(nil), groundwaterTable...),
	}
}
