package handlers

import (
	"net/http"
	"time"

	"github.com/tmanas06/uportfolio-sub000/internal/catalog"
	"github.com/tmanas06/uportfolio-sub000/internal/contextutil"
)

// SnapshotReader exposes the current snapshot without blocking.
// *catalog.Catalog satisfies it.
type SnapshotReader interface {
	Current() *catalog.Snapshot
}

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	snapshots SnapshotReader
	now       func() time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(snapshots SnapshotReader) *HealthHandler {
	return &HealthHandler{
		snapshots: snapshots,
		now:       time.Now,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Overall health status: "healthy" or "unhealthy"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results
	Checks map[string]string `json:"checks"`

	// Version of the served content snapshot
	Version string `json:"version,omitempty"`

	// When the served snapshot was loaded
	LoadedAt string `json:"loaded_at,omitempty"`

	// Number of searchable records in the snapshot
	Records int `json:"records"`

	// List of issues (only present if status is unhealthy)
	Issues []string `json:"issues,omitempty"`
}

// ServeHTTP handles HTTP requests for health checks.
//
// Returns 200 OK once a content snapshot is being served and
// 503 Service Unavailable before the first successful load.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if methodNotAllowed(ctx, w, r, http.MethodGet) {
		return
	}

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: h.now().UTC().Format(time.RFC3339),
		Checks:    map[string]string{},
	}
	httpStatus := http.StatusOK

	snap := h.snapshots.Current()
	if snap == nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "health check before content was loaded")
		response.Status = "unhealthy"
		response.Checks["content"] = "error"
		response.Issues = []string{"content_not_loaded"}
		httpStatus = http.StatusServiceUnavailable
	} else {
		response.Checks["content"] = "ok"
		response.Version = snap.Version
		response.LoadedAt = snap.LoadedAt.UTC().Format(time.RFC3339)
		response.Records = len(snap.Index)
	}

	writeJSON(ctx, w, httpStatus, response)
}
