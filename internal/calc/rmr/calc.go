package rmr

import (
	"strconv"

	calc "Rockbolt/internal/calc"
)

// Class is a rock mass class, I (best) to V (worst).
type Class string

const (
	ClassI   Class = "I"
	ClassII  Class = "II"
	ClassIII Class = "III"
	ClassIV  Class = "IV"
	ClassV   Class = "V"
)

// Classes in order from best to worst rock.
var Classes = []Class{ClassI, ClassII, ClassIII, ClassIV, ClassV}

func (c Class) Valid() bool {
	switch c {
	case ClassI, ClassII, ClassIII, ClassIV, ClassV:
		return true
	}
	return false
}

type band struct {
	min         int
	class       Class
	description string
	color       string
}

// Lower bounds are inclusive; anything under 21 falls through to class V.
var bands = []band{
	{81, ClassI, "Very good rock", "green"},
	{61, ClassII, "Good rock", "lightgreen"},
	{41, ClassIII, "Fair rock", "yellow"},
	{21, ClassIV, "Poor rock", "orange"},
}

var classV = band{0, ClassV, "Very poor rock", "red"}

func bandFor(total int) band {
	for _, b := range bands {
		if total >= b.min {
			return b
		}
	}
	return classV
}

// Classify buckets an RMR total into its rock class.
func Classify(total int) Class {
	return bandFor(total).class
}

// Description returns the class name used in reports, e.g. "Fair rock".
func (c Class) Description() string {
	for _, b := range bands {
		if b.class == c {
			return b.description
		}
	}
	if c == ClassV {
		return classV.description
	}
	return ""
}

type Input struct {
	Strength    Strength    `json:"strength"`
	RQD         RQD         `json:"rqd"`
	Spacing     Spacing     `json:"spacing"`
	Condition   Condition   `json:"condition"`
	Groundwater Groundwater `json:"groundwater"`
}

type Ratings struct {
	Strength    int `json:"a1_strength"`
	RQD         int `json:"a2_rqd"`
	Spacing     int `json:"a3_spacing"`
	Condition   int `json:"a4_condition"`
	Groundwater int `json:"a5_groundwater"`
}

func (r Ratings) Sum() int {
	return r.Strength + r.RQD + r.Spacing + r.Condition + r.Groundwater
}

type Result struct {
	Input       Input   `json:"input"`
	Ratings     Ratings `json:"ratings"`
	Total       int     `json:"total"`
	Class       Class   `json:"class"`
	Description string  `json:"description"`
	Color       string  `json:"color"`
}

// Score rates the five parameters and classifies the rock mass.
func Score(in Input) (Result, error) {
	var r Ratings
	var ok bool
	if r.Strength, ok = in.Strength.Points(); !ok {
		return Result{}, calc.Invalid("unknown strength %q", in.Strength)
	}
	if r.RQD, ok = in.RQD.Points(); !ok {
		return Result{}, calc.Invalid("unknown rqd %q", in.RQD)
	}
	if r.Spacing, ok = in.Spacing.Points(); !ok {
		return Result{}, calc.Invalid("unknown spacing %q", in.Spacing)
	}
	if r.Condition, ok = in.Condition.Points(); !ok {
		return Result{}, calc.Invalid("unknown condition %q", in.Condition)
	}
	if r.Groundwater, ok = in.Groundwater.Points(); !ok {
		return Result{}, calc.Invalid("unknown groundwater %q", in.Groundwater)
	}

	total := r.Sum()
	b := bandFor(total)
	return Result{
		Input:       in,
		Ratings:     r,
		Total:       total,
		Class:       b.class,
		Description: b.description,
		Color:       b.color,
	}, nil
}

// Row is one line of the results table.
type Row struct {
	Parameter string `json:"parameter"`
	Condition string `json:"condition"`
	Rating    string `json:"rating"`
}

// Rows lays the result out as the parameter table shown to engineers.
func (r Result) Rows() []Row {
	return []Row{
		{"A1: Rock Strength", string(r.Input.Strength), strconv.Itoa(r.Ratings.Strength)},
		{"A2: RQD", string(r.Input.RQD), strconv.Itoa(r.Ratings.RQD)},
		{"A3: Spacing of Discontinuities", string(r.Input.Spacing), strconv.Itoa(r.Ratings.Spacing)},
		{"A4: Condition of Discontinuities", string(r.Input.Condition), strconv.Itoa(r.Ratings.Condition)},
		{"A5: Groundwater Conditions", string(r.Input.Groundwater), strconv.Itoa(r.Ratings.Groundwater)},
		{"TOTAL RMR", "", strconv.Itoa(r.Total)},
		{"Rock Mass Class", string(r.Class) + " - " + r.Description, ""},
	}
}
