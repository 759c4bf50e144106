package support

import rmr "Rockbolt/internal/calc/rmr"

// Spot bolting is laid out at one row every two metres whatever the spacing.
const spotRowsPerMeter = 0.5

// Keeps the per-row count well inside int range for absurd widths.
const maxBoltsPerRow = 1_000_000

type rule struct {
	minLengthM   float64
	widthDivisor float64
	spacingM     float64
	pattern      string
	boltType     string
	capacity     string
	additional   string
}

var rules = map[rmr.Class]rule{
	rmr.ClassI: {
		minLengthM:   2.0,
		widthDivisor: 5,
		spacingM:     2.0,
		pattern:      "Spot bolting only where necessary",
		boltType:     "Friction or Fully Grouted Bolts",
		capacity:     "Low capacity (10-15 tons)",
		additional:   "Generally no additional support required",
	},
	rmr.ClassII: {
		minLengthM:   2.5,
		widthDivisor: 4,
		spacingM:     1.5,
		pattern:      "Systematic bolting at 1.5-2.0m spacing",
		boltType:     "Fully Grouted Rebar or Friction Bolts",
		capacity:     "Medium capacity (15-20 tons)",
		additional:   "Spot mesh in crown where needed",
	},
	rmr.ClassIII: {
		minLengthM:   3.0,
		widthDivisor: 3,
		spacingM:     1.2,
		pattern:      "Systematic bolting at 1.0-1.5m spacing in crown and walls",
		boltType:     "Fully Grouted Rebar",
		capacity:     "Medium-high capacity (20-25 tons)",
		additional:   "Wire mesh in crown; spot fiber-reinforced shotcrete (50mm)",
	},
	rmr.ClassIV: {
		minLengthM:   4.0,
		widthDivisor: 2.5,
		spacingM:     1.0,
		pattern:      "Systematic bolting at 1.0m spacing with wire mesh in crown and walls",
		boltType:     "Fully Grouted Rebar or Cable Bolts",
		capacity:     "High capacity (25-30 tons)",
		additional:   "Wire mesh in crown and walls; fiber-reinforced shotcrete (100-150mm)",
	},
	rmr.ClassV: {
		minLengthM:   4.5,
		widthDivisor: 2,
		spacingM:     0.6,
		pattern:      "Systematic bolting at 0.5-0.8m spacing with wire mesh and straps",
		boltType:     "Fully Grouted Cable Bolts and Rebar",
		capacity:     "Very high capacity (>30 tons)",
		additional:   "Wire mesh with straps in crown and walls; fiber-reinforced shotcrete (150-200mm); light steel sets",
	},
}
