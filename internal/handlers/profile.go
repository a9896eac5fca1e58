package handlers

import (
	"net/http"

	"github.com/tmanas06/uportfolio-sub000/internal/content"
	"github.com/tmanas06/uportfolio-sub000/internal/service"
)

// ProfileResponse is the site owner's profile with the bio rendered to HTML.
type ProfileResponse struct {
	Name     string            `json:"name"`
	Headline string            `json:"headline"`
	Location string            `json:"location,omitempty"`
	Email    string            `json:"email,omitempty"`
	BioHTML  string            `json:"bio_html"`
	Links    map[string]string `json:"links,omitempty"`
	Featured []content.Project `json:"featured"`
}

// ProfileHandler serves the profile.
type ProfileHandler struct {
	searchService service.SearchService
	renderer      *content.Renderer
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(searchService service.SearchService, renderer *content.Renderer) *ProfileHandler {
	return &ProfileHandler{
		searchService: searchService,
		renderer:      renderer,
	}
}

// ServeHTTP handles GET /api/profile.
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if methodNotAllowed(ctx, w, r, http.MethodGet) {
		return
	}

	c, err := h.searchService.Content(ctx)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to load profile")
		return
	}

	bio, err := h.renderer.Render(c.Profile.Bio)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to render profile")
		return
	}

	writeJSON(ctx, w, http.StatusOK, ProfileResponse{
		Name:     c.Profile.Name,
		Headline: c.Profile.Headline,
		Location: c.Profile.Location,
		Email:    c.Profile.Email,
		BioHTML:  bio,
		Links:    c.Profile.Links,
		Featured: nonNil(c.Featured()),
	})
}
