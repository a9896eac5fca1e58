package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tmanas06/uportfolio-sub000/internal/content"
	"github.com/tmanas06/uportfolio-sub000/internal/search"
	"github.com/tmanas06/uportfolio-sub000/internal/service"
)

// ProjectsResponse is the body of GET /api/projects.
type ProjectsResponse struct {
	Category   search.ProjectCategory   `json:"category"`
	Categories []search.ProjectCategory `json:"categories"`
	Total      int                      `json:"total"`
	Projects   []content.Project        `json:"projects"`
}

// ProjectsHandler serves the filtered project grid.
type ProjectsHandler struct {
	searchService service.SearchService
}

// NewProjectsHandler creates a new ProjectsHandler.
func NewProjectsHandler(searchService service.SearchService) *ProjectsHandler {
	return &ProjectsHandler{searchService: searchService}
}

// ServeHTTP handles GET /api/projects?category=&q=&featured=.
func (h *ProjectsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if methodNotAllowed(ctx, w, r, http.MethodGet) {
		return
	}

	query := r.URL.Query()
	featured := false
	if raw := query.Get("featured"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid featured parameter")
			return
		}
		featured = v
	}

	svcResp, err := h.searchService.FilterProjects(ctx, service.ProjectFilterRequest{
		Category:     query.Get("category"),
		Text:         query.Get("q"),
		FeaturedOnly: featured,
	})
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to list projects")
		return
	}

	writeJSON(ctx, w, http.StatusOK, ProjectsResponse{
		Category:   svcResp.Category,
		Categories: search.ProjectCategories,
		Total:      len(svcResp.Projects),
		Projects:   svcResp.Projects,
	})
}

// ProjectResponse is a single project with its description rendered to HTML.
type ProjectResponse struct {
	content.Project
	DescriptionHTML string `json:"description_html"`
}

// ProjectHandler serves a single project.
type ProjectHandler struct {
	searchService service.SearchService
	renderer      *content.Renderer
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(searchService service.SearchService, renderer *content.Renderer) *ProjectHandler {
	return &ProjectHandler{
		searchService: searchService,
		renderer:      renderer,
	}
}

// ServeHTTP handles GET /api/projects/{id}.
func (h *ProjectHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if methodNotAllowed(ctx, w, r, http.MethodGet) {
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid project id")
		return
	}

	project, err := h.searchService.Project(ctx, id)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to get project")
		return
	}

	html, err := h.renderer.Render(project.Description)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to render project")
		return
	}

	writeJSON(ctx, w, http.StatusOK, ProjectResponse{Project: project, DescriptionHTML: html})
}
