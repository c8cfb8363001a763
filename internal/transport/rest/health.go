package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const healthTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// snapshotStats reports the order snapshot's state.
type snapshotStats interface {
	Len() int
	LoadedAt() time.Time
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	db       dbPinger
	snapshot snapshotStats
	version  string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, snapshot snapshotStats, version string) *HealthHandler {
	return &HealthHandler{db: db, snapshot: snapshot, version: version}
}

// HealthResponse is the body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

func (c CompStatus) healthy() bool { return c.Status != "down" }

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready answers 503 while the database is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.database(r.Context())
	writeProbe(w, HealthResponse{Timestamp: time.Now()}, db.healthy())
}

// Health reports every dependency. Only the database can fail it: an
// unloaded snapshot is reported as "loading" because searches load it on
// demand.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := map[string]CompStatus{
		"database":       h.database(r.Context()),
		"order_snapshot": h.orderSnapshot(),
	}

	healthy := true
	for _, c := range components {
		healthy = healthy && c.healthy()
	}

	writeProbe(w, HealthResponse{
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	}, healthy)
}

func (h *HealthHandler) database(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}

func (h *HealthHandler) orderSnapshot() CompStatus {
	loaded := h.snapshot.LoadedAt()
	if loaded.IsZero() {
		return CompStatus{Status: "loading"}
	}
	return CompStatus{
		Status: "ok",
		Detail: fmt.Sprintf("%d orders, loaded %s", h.snapshot.Len(), loaded.UTC().Format(time.RFC3339)),
	}
}

func writeProbe(w http.ResponseWriter, resp HealthResponse, healthy bool) {
	status := http.StatusOK
	resp.Status = "ok"
	if !healthy {
		status = http.StatusServiceUnavailable
		resp.Status = "down"
	}
	writeJSON(w, status, resp)
}
