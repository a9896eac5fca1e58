package search

import (
	"fmt"
	"strings"

	"github.com/tmanas06/uportfolio-sub000/internal/content"
)

// ProjectCategory is a projects-page filter tab.
type ProjectCategory string

// Project filter tabs.
const (
	ProjectsAll    ProjectCategory = "all"
	ProjectsWeb3   ProjectCategory = "web3"
	ProjectsMobile ProjectCategory = "mobile"
	ProjectsAI     ProjectCategory = "ai"
)

// ProjectCategories lists the filter tabs in display order.
var ProjectCategories = []ProjectCategory{ProjectsAll, ProjectsWeb3, ProjectsMobile, ProjectsAI}

// ParseProjectCategory parses a filter tab name case-insensitively.
// An empty string means all.
func ParseProjectCategory(s string) (ProjectCategory, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ProjectsAll, nil
	}
	for _, c := range ProjectCategories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown project category %q", s)
}

// techKeywords are the tag fragments that put a project in a tech-based tab.
var techKeywords = map[ProjectCategory][]string{
	ProjectsMobile: {"flutter", "mobile"},
	ProjectsAI:     {"ai", "ml"},
}

// FilterProjects returns the projects in category that also match searchText,
// in source order.
//
// web3 requires at least one chain; mobile and ai require a tech tag that
// contains one of their keywords, case-insensitively. A non-blank searchText
// must be a case-insensitive substring of the title, the description or a
// tech tag. An unknown category matches nothing.
func FilterProjects(projects []content.Project, category ProjectCategory, searchText string) []content.Project {
	out := []content.Project{}
	for _, p := range projects {
		if inCategory(p, category) && matchesText(p, searchText) {
			out = append(out, p)
		}
	}
	return out
}

func inCategory(p content.Project, category ProjectCategory) bool {
	switch category {
	case ProjectsAll:
		return true
	case ProjectsWeb3:
		return len(p.Chains) > 0
	case ProjectsMobile, ProjectsAI:
		return anyTagContains(p.Tech, techKeywords[category])
	default:
		return false
	}
}

func anyTagContains(tags, keywords []string) bool {
	for _, tag := range tags {
		t := strings.ToLower(tag)
		for _, kw := range keywords {
			if strings.Contains(t, kw) {
				return true
			}
		}
	}
	return false
}

func matchesText(p content.Project, searchText string) bool {
	if strings.TrimSpace(searchText) == "" {
		return true
	}
	q := strings.ToLower(searchText)
	if strings.Contains(strings.ToLower(p.Title), q) || strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	return anyTagContains(p.Tech, []string{q})
}
