// v1
// internal/api/handlers.go
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iiishop/CASA0019/internal/engine"
)

type statsSource interface {
	Snapshot() engine.Stats
}

type Handlers struct {
	Log    *slog.Logger
	Engine statsSource
}

func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// Status reports the engine counters.
func (h *Handlers) Status(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.Engine.Snapshot()); err != nil {
		h.Log.Error("encode status", "error", err)
	}
}
