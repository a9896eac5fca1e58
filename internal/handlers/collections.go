package handlers

import (
	"net/http"

	"github.com/tmanas06/uportfolio-sub000/internal/content"
	"github.com/tmanas06/uportfolio-sub000/internal/service"
)

// Collection names served by CollectionHandler.
const (
	CollectionSkills         = "skills"
	CollectionExperience     = "experience"
	CollectionAchievements   = "achievements"
	CollectionCertifications = "certifications"
)

// SkillGroupResponse is one skill group in display order.
type SkillGroupResponse struct {
	Key    string          `json:"key"`
	Label  string          `json:"label"`
	Skills []content.Skill `json:"skills"`
}

// CollectionHandler serves one raw content collection.
type CollectionHandler struct {
	searchService service.SearchService
	collection    string
}

// NewCollectionHandler creates a CollectionHandler for the named collection.
func NewCollectionHandler(searchService service.SearchService, collection string) *CollectionHandler {
	return &CollectionHandler{
		searchService: searchService,
		collection:    collection,
	}
}

// ServeHTTP handles GET /api/{collection}.
func (h *CollectionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if methodNotAllowed(ctx, w, r, http.MethodGet) {
		return
	}

	c, err := h.searchService.Content(ctx)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to load "+h.collection)
		return
	}

	var body any
	switch h.collection {
	case CollectionSkills:
		groups := make([]SkillGroupResponse, 0, 4)
		for _, g := range c.Skills.Ordered() {
			skills := g.Skills
			if skills == nil {
				skills = []content.Skill{}
			}
			groups = append(groups, SkillGroupResponse{Key: g.Key, Label: g.Label, Skills: skills})
		}
		body = groups
	case CollectionExperience:
		body = nonNil(c.Experience)
	case CollectionAchievements:
		body = nonNil(c.Achievements)
	case CollectionCertifications:
		body = nonNil(c.Certifications)
	default:
		writeError(w, http.StatusNotFound, "Unknown collection")
		return
	}

	writeJSON(ctx, w, http.StatusOK, body)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
