package layout

import (
	"net/http"

	calc "Rockbolt/internal/calc"
	rmr "Rockbolt/internal/calc/rmr"
	support "Rockbolt/internal/calc/support"
)

type Input struct {
	Class       rmr.Class `json:"class"`
	WidthM      float64   `json:"width_m"`
	HeightM     float64   `json:"height_m"`
	SpacingM    float64   `json:"spacing_m"`
	BoltLengthM float64   `json:"bolt_length_m"`
}

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := calc.DecodeJSON(r, &input); err != nil {
		calc.WriteError(w, err)
		return
	}
	// Spacing and length default to the planner's values for the class.
	if input.SpacingM <= 0 || input.BoltLengthM <= 0 {
		plan, err := support.Plan(input.Class, support.Geometry{
			WidthM:        input.WidthM,
			HeightM:       input.HeightM,
			TunnelLengthM: 1,
		})
		if err != nil {
			calc.WriteError(w, err)
			return
		}
		if input.SpacingM <= 0 {
			input.SpacingM = plan.BoltSpacingM
		}
		if input.BoltLengthM <= 0 {
			input.BoltLengthM = plan.BoltLengthM
		}
	}
	res, err := NewSchematic(input.Class, input.WidthM, input.HeightM, input.SpacingM, input.BoltLengthM)
	if err != nil {
		calc.WriteError(w, err)
		return
	}
	calc.WriteJSON(w, http.StatusOK, res)
}
