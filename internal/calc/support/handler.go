package support

import (
	"net/http"

	calc "Rockbolt/internal/calc"
)

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := calc.DecodeJSON(r, &input); err != nil {
		calc.WriteError(w, err)
		return
	}
	res, err := Plan(input.Class, input.Geometry)
	if err != nil {
		calc.WriteError(w, err)
		return
	}
	calc.WriteJSON(w, http.StatusOK, struct {
		Result
		Rows []Row `json:"rows"`
	}{res, res.Rows()})
}
