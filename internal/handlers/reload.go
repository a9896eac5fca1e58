package handlers

import (
	"context"
	"net/http"

	"github.com/tmanas06/uportfolio-sub000/internal/catalog"
	"github.com/tmanas06/uportfolio-sub000/internal/contextutil"
)

// Reloader rebuilds the content snapshot. *catalog.Catalog satisfies it.
type Reloader interface {
	Reload(ctx context.Context) (*catalog.Snapshot, error)
}

// ReloadResponse represents the response from the reload endpoint.
type ReloadResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// ReloadHandler handles HTTP requests for reloading content.
type ReloadHandler struct {
	reloader Reloader
}

// NewReloadHandler creates a new ReloadHandler.
func NewReloadHandler(reloader Reloader) *ReloadHandler {
	return &ReloadHandler{reloader: reloader}
}

// ServeHTTP handles POST /api/reload.
func (h *ReloadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if methodNotAllowed(ctx, w, r, http.MethodPost) {
		return
	}

	logger.InfoContext(ctx, "content reload triggered via API")

	// The reload outlives the request, so it gets a fresh context carrying only the logger.
	go func() {
		reloadCtx := contextutil.WithLogger(context.Background(), logger)
		if _, err := h.reloader.Reload(reloadCtx); err != nil {
			logger.ErrorContext(reloadCtx, "content reload failed", "error", err)
			return
		}
		logger.InfoContext(reloadCtx, "content reload completed")
	}()

	writeJSON(ctx, w, http.StatusAccepted, ReloadResponse{
		Message: "Reload started. Check server logs for progress.",
		Status:  "accepted",
	})
}
