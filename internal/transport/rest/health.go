package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/bookhive/bookhive-backend/internal/domain"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

type schemaChecker interface {
	CheckSchemaHealth(ctx context.Context) (domain.SchemaHealth, error)
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	schema  schemaChecker
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, schema schemaChecker, version string) *HealthHandler {
	return &HealthHandler{db: db, schema: schema, version: version}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// SchemaResponse is the JSON response for /health/schema.
type SchemaResponse struct {
	State          string    `json:"state"`
	Missing        []string  `json:"missing,omitempty"`
	RemediationSQL string    `json:"remediation_sql,omitempty"`
	Instructions   []string  `json:"instructions,omitempty"`
	CheckedAt      time.Time `json:"checked_at"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings DB: 200 if OK, 503 if not. Schema
// drift does not make the process unready.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check: database latency plus schema state.
// Drift degrades the status but keeps 200; a down database is 503.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus, 2)
	overall := "ok"

	start := time.Now()
	err := h.db.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		components["database"] = CompStatus{Status: "down"}
		overall = "down"
	} else {
		components["database"] = CompStatus{Status: "ok", Latency: latency.String()}
	}

	switch health, err := h.schema.CheckSchemaHealth(ctx); {
	case err != nil:
		components["schema"] = CompStatus{Status: domain.SchemaStateUnknown.String()}
	case health.State == domain.SchemaStateDriftDetected:
		components["schema"] = CompStatus{Status: health.State.String()}
		if overall == "ok" {
			overall = "degraded"
		}
	default:
		components["schema"] = CompStatus{Status: "ok"}
	}

	status := http.StatusOK
	if overall == "down" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

// Schema runs the drift check and returns the remediation notice when the
// schema is behind. Reloading this endpoint after applying the DDL is the
// re-check.
func (h *HealthHandler) Schema(w http.ResponseWriter, r *http.Request) {
	health, err := h.schema.CheckSchemaHealth(r.Context())
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, "schema check unavailable, retry later")
		return
	}

	resp := SchemaResponse{State: health.State.String(), CheckedAt: health.CheckedAt}
	if n := health.Notice; n != nil {
		resp.Missing = n.Missing
		resp.RemediationSQL = n.RemediationSQL
		resp.Instructions = n.Instructions
	}
	writeJSON(w, http.StatusOK, resp)
}
