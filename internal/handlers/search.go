package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tmanas06/uportfolio-sub000/internal/contextutil"
	"github.com/tmanas06/uportfolio-sub000/internal/search"
	"github.com/tmanas06/uportfolio-sub000/internal/service"
)

// SearchResponse is the body of GET /api/search.
type SearchResponse struct {
	Query   string         `json:"query"`
	Total   int            `json:"total"`
	Groups  []search.Group `json:"groups"`
	Version string         `json:"version"`
}

// NavigationResponse tells the client where to go after a submit or select.
type NavigationResponse struct {
	Target       string         `json:"target"`
	ClearQuery   bool           `json:"clear_query"`
	CloseResults bool           `json:"close_results"`
	Record       *search.Record `json:"record,omitempty"`
}

// SearchHandler serves live search results.
type SearchHandler struct {
	searchService service.SearchService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searchService service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// ServeHTTP handles GET /api/search?q=.
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if methodNotAllowed(ctx, w, r, http.MethodGet) {
		return
	}

	svcResp, err := h.searchService.Search(ctx, service.SearchRequest{Query: r.URL.Query().Get("q")})
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to search")
		return
	}

	groups := svcResp.Results.Groups
	if groups == nil {
		groups = []search.Group{}
	}
	writeJSON(ctx, w, http.StatusOK, SearchResponse{
		Query:   svcResp.Query,
		Total:   svcResp.Results.Len(),
		Groups:  groups,
		Version: svcResp.Version,
	})
}

// SubmitHandler resolves an enter-key submission into a navigation.
type SubmitHandler struct {
	searchService service.SearchService
}

// NewSubmitHandler creates a new SubmitHandler.
func NewSubmitHandler(searchService service.SearchService) *SubmitHandler {
	return &SubmitHandler{searchService: searchService}
}

// ServeHTTP handles GET /api/search/submit?q=. A blank query answers 204.
func (h *SubmitHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if methodNotAllowed(ctx, w, r, http.MethodGet) {
		return
	}

	svcResp, err := h.searchService.Submit(ctx, service.SubmitRequest{Query: r.URL.Query().Get("q")})
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to submit search")
		return
	}
	if !svcResp.OK {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(ctx, w, http.StatusOK, NavigationResponse{
		Target:       svcResp.Navigation.Target,
		ClearQuery:   svcResp.Navigation.ClearQuery,
		CloseResults: svcResp.Navigation.CloseResults,
	})
}

// SelectHandler resolves a selected record into a navigation.
type SelectHandler struct {
	searchService service.SearchService
}

// NewSelectHandler creates a new SelectHandler.
func NewSelectHandler(searchService service.SearchService) *SelectHandler {
	return &SelectHandler{searchService: searchService}
}

// ServeHTTP handles GET /api/search/select/{id}.
func (h *SelectHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if methodNotAllowed(ctx, w, r, http.MethodGet) {
		return
	}

	id := chi.URLParam(r, "id")
	svcResp, err := h.searchService.Select(ctx, service.SelectRequest{ID: id})
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to select record")
		return
	}

	contextutil.LoggerFromContext(ctx).DebugContext(ctx, "record selected", "id", id, "target", svcResp.Navigation.Target)
	writeJSON(ctx, w, http.StatusOK, NavigationResponse{
		Target:       svcResp.Navigation.Target,
		ClearQuery:   svcResp.Navigation.ClearQuery,
		CloseResults: svcResp.Navigation.CloseResults,
		Record:       &svcResp.Record,
	})
}
