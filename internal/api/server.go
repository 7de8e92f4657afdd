package api

import (
	"encoding/json"
	"net/http"

	"github.com/ExcaliDevBot/ExcaliStrategy/internal/db"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/jobs"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/services"
	"github.com/ExcaliDevBot/ExcaliStrategy/internal/worker"
)

type Server struct {
	DB                 *db.DB
	Pool               *worker.Pool
	Queue              jobs.JobQueue
	ScoutingService    services.ScoutingService
	TeamDataService    services.TeamDataService
	AggregationService services.AggregationService
	AllianceService    services.AllianceService
	StrategyService    services.StrategyService
}

// writeJSON sends a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON parses a request body into v, limiting the body size so a
// runaway upload cannot exhaust memory.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	return dec.Decode(v)
}
