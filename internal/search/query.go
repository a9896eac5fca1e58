package search

import (
	"net/url"
	"strings"
)

// MaxResults caps the number of records a search returns. The cap applies to
// the whole result before grouping, so early categories can starve later ones.
const MaxResults = 8

// FallbackRoute is the listing page a submission navigates to when nothing matched.
const FallbackRoute = "/search"

// Search returns the records matching query, grouped by category.
//
// A blank query returns an empty result rather than the whole index. Otherwise
// a record matches when the lower-cased query is a substring of its title,
// subtitle or category name. Matches are taken in index order and capped at
// MaxResults before grouping.
func Search(index []Record, query string) Results {
	matches := match(index, query)
	return group(matches)
}

func match(index []Record, query string) []Record {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	q := strings.ToLower(query)

	var out []Record
	for _, r := range index {
		if !matches(r, q) {
			continue
		}
		out = append(out, r)
		if len(out) == MaxResults {
			break
		}
	}
	return out
}

func matches(r Record, q string) bool {
	return strings.Contains(strings.ToLower(r.Title), q) ||
		strings.Contains(strings.ToLower(r.Subtitle), q) ||
		strings.Contains(string(r.Category), q)
}

// group buckets records by category, keeping first-seen category order and
// the relative order of records within each category.
func group(records []Record) Results {
	res := Results{Groups: []Group{}}
	pos := make(map[Category]int)
	for _, r := range records {
		i, ok := pos[r.Category]
		if !ok {
			i = len(res.Groups)
			pos[r.Category] = i
			res.Groups = append(res.Groups, Group{Category: r.Category, Label: r.Category.Label()})
		}
		res.Groups[i].Records = append(res.Groups[i].Records, r)
	}
	return res
}

// Select returns the navigation for a chosen record: clear the query, close
// the results panel and open the record's target.
func Select(r Record) Navigation {
	return Navigation{
		Target:       r.NavigationTarget,
		ClearQuery:   true,
		CloseResults: true,
	}
}

// Submit resolves a full-text submission (enter pressed with nothing selected).
// The first result is selected when there is one. With no results a non-blank
// query falls back to the listing route carrying the raw query. A blank query
// navigates nowhere and ok is false.
func Submit(index []Record, query string) (nav Navigation, ok bool) {
	if strings.TrimSpace(query) == "" {
		return Navigation{}, false
	}
	if first := match(index, query); len(first) > 0 {
		return Select(first[0]), true
	}
	return Navigation{
		Target:       FallbackRoute + "?q=" + url.QueryEscape(query),
		ClearQuery:   true,
		CloseResults: true,
	}, true
}
