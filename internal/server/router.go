package server

import (
	"net/http"

	calc "Rockbolt/internal/calc"
	batch "Rockbolt/internal/calc/batch"
	design "Rockbolt/internal/calc/design"
	importer "Rockbolt/internal/calc/importer"
	layout "Rockbolt/internal/calc/layout"
	report "Rockbolt/internal/calc/report"
	rmr "Rockbolt/internal/calc/rmr"
	support "Rockbolt/internal/calc/support"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// NewRouter wires every calculator under /api and wraps the result in CORS.
func NewRouter(log *zap.Logger, limiter *IPRateLimiter) http.Handler {
	r := mux.NewRouter()
	r.Use(loggingMiddleware(log))

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", health).Methods("GET")

	tools := api.PathPrefix("/tools").Subrouter()
	if limiter != nil {
		tools.Use(limiter.LimitMiddleware)
	}

	rmrH := &rmr.Handler{}
	supportH := &support.Handler{}
	layoutH := &layout.Handler{}
	designH := &design.Handler{}
	batchH := &batch.Handler{Log: log}
	importerH := &importer.Handler{}
	reportH := &report.Handler{}

	tools.HandleFunc("/rmr/options", rmrH.Options).Methods("GET")
	tools.HandleFunc("/rmr/calc", rmrH.Calc).Methods("POST")
	tools.HandleFunc("/support/calc", supportH.Calc).Methods("POST")
	tools.HandleFunc("/layout/calc", layoutH.Calc).Methods("POST")
	tools.HandleFunc("/design/calc", designH.Calc).Methods("POST")
	tools.HandleFunc("/batch/calc", batchH.Calc).Methods("POST")
	tools.HandleFunc("/batch/xlsx", batchH.Export).Methods("POST")
	tools.HandleFunc("/import/xlsx", importerH.Import).Methods("POST")
	tools.HandleFunc("/report/pdf", reportH.Generate).Methods("POST")

	return CORS(r)
}

func health(w http.ResponseWriter, r *http.Request) {
	calc.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
