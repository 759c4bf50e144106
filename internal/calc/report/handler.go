package report

import (
	"bytes"
	"net/http"
	"time"

	calc "Rockbolt/internal/calc"
	design "Rockbolt/internal/calc/design"
)

type Input struct {
	Meta
	Case design.Input `json:"case"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := calc.DecodeJSON(r, &input); err != nil {
		calc.WriteError(w, err)
		return
	}
	res, err := design.Evaluate(input.Case)
	if err != nil {
		calc.WriteError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := Write(&buf, input.Meta, res, time.Now()); err != nil {
		calc.WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"rmr-report.pdf\"")
	_, _ = w.Write(buf.Bytes())
}
