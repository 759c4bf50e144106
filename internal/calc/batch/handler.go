package batch

import (
	"net/http"

	calc "Rockbolt/internal/calc"
	"go.uber.org/zap"
)

type Handler struct {
	Log *zap.Logger
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := calc.DecodeJSON(r, &input); err != nil {
		calc.WriteError(w, err)
		return
	}
	res, err := Evaluate(input)
	if err != nil {
		calc.WriteError(w, err)
		return
	}
	calc.WriteJSON(w, http.StatusOK, res)
}

// Export returns the evaluated batch as a spreadsheet.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := calc.DecodeJSON(r, &input); err != nil {
		calc.WriteError(w, err)
		return
	}
	res, err := Evaluate(input)
	if err != nil {
		calc.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"support.xlsx\"")
	if err := WriteXLSX(w, res.Results); err != nil {
		h.logger().Error("xlsx export failed", zap.Error(err))
	}
}

func (h *Handler) logger() *zap.Logger {
	if h.Log == nil {
		return zap.NewNop()
	}
	return h.Log
}
