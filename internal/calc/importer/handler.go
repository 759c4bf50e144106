package importer

import (
	"net/http"

	calc "Rockbolt/internal/calc"
)

const MaxUploadSize = 10 << 20 // 10MB

type Handler struct{}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		calc.WriteError(w, calc.Invalid("file required"))
		return
	}
	defer file.Close()

	res, err := Read(file)
	if err != nil {
		calc.WriteError(w, err)
		return
	}
	calc.WriteJSON(w, http.StatusOK, res)
}
