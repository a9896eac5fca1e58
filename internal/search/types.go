package search

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category identifies the source collection a Record was built from.
type Category string

// The closed set of record categories.
const (
	CategoryProject       Category = "project"
	CategorySkill         Category = "skill"
	CategoryExperience    Category = "experience"
	CategoryAchievement   Category = "achievement"
	CategoryCertification Category = "certification"
)

// Categories lists every category in index emission order.
var Categories = []Category{
	CategoryProject,
	CategorySkill,
	CategoryExperience,
	CategoryAchievement,
	CategoryCertification,
}

// Label returns the display label for the category, e.g. "Project".
// A Caser holds state, so one is created per call.
func (c Category) Label() string {
	return cases.Title(language.English).String(string(c))
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Record is one searchable entry in the unified content index.
type Record struct {
	// ID is unique across the index, namespaced by category (e.g. "project-3").
	ID string `json:"id"`
	// Title is the primary display text.
	Title string `json:"title"`
	// Subtitle is secondary text derived per category.
	Subtitle string `json:"subtitle"`
	// Category is the source collection.
	Category Category `json:"category"`
	// NavigationTarget is the route the presentation layer opens on selection.
	NavigationTarget string `json:"navigation_target"`
	// DisplayColor is a decorative hex color tag.
	DisplayColor string `json:"display_color"`
}

// Group is the set of matches for one category.
type Group struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Records  []Record `json:"records"`
}

// Results is a grouped search result. Groups appear in the order their
// category was first seen in the capped match list.
type Results struct {
	Groups []Group `json:"groups"`
}

// Len returns the total number of records across all groups.
func (r Results) Len() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Records)
	}
	return n
}

// Empty reports whether the result holds no records.
func (r Results) Empty() bool {
	return len(r.Groups) == 0
}

// Map returns the category to records mapping view of the result.
func (r Results) Map() map[Category][]Record {
	m := make(map[Category][]Record, len(r.Groups))
	for _, g := range r.Groups {
		m[g.Category] = g.Records
	}
	return m
}

// Flatten returns all records in result order.
func (r Results) Flatten() []Record {
	out := make([]Record, 0, r.Len())
	for _, g := range r.Groups {
		out = append(out, g.Records...)
	}
	return out
}

// Navigation is what the presentation layer does after a result is chosen.
type Navigation struct {
	Target       string `json:"target"`
	ClearQuery   bool   `json:"clear_query"`
	CloseResults bool   `json:"close_results"`
}
