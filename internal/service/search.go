package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_snapshot_provider.go -package=mocks github.com/tmanas06/uportfolio-sub000/internal/service SnapshotProvider
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_search_service.go -package=mocks -mock_names=SearchService=MockSearchService github.com/tmanas06/uportfolio-sub000/internal/service SearchService

import (
	"context"
	"errors"
	"strings"

	"github.com/tmanas06/uportfolio-sub000/internal/catalog"
	"github.com/tmanas06/uportfolio-sub000/internal/content"
	"github.com/tmanas06/uportfolio-sub000/internal/contextutil"
	"github.com/tmanas06/uportfolio-sub000/internal/search"
)

// SnapshotProvider hands out the current content snapshot.
// *catalog.Catalog satisfies it.
type SnapshotProvider interface {
	Snapshot() (*catalog.Snapshot, error)
}

// SearchRequest is a live search-as-you-type query.
type SearchRequest struct {
	Query string
}

// SearchResponse carries grouped results for one query.
type SearchResponse struct {
	Query   string
	Results search.Results
	Version string
}

// SubmitRequest is a full-text submission with nothing selected.
type SubmitRequest struct {
	Query string
}

// SubmitResponse is the navigation decided for a submission.
// OK is false when the query was blank and nothing should happen.
type SubmitResponse struct {
	Navigation search.Navigation
	OK         bool
}

// SelectRequest selects one record by id.
type SelectRequest struct {
	ID string
}

// SelectResponse carries the selected record and where to go.
type SelectResponse struct {
	Record     search.Record
	Navigation search.Navigation
}

// ProjectFilterRequest drives the projects page grid.
type ProjectFilterRequest struct {
	Category     string
	Text         string
	FeaturedOnly bool
}

// ProjectFilterResponse is the filtered project list.
type ProjectFilterResponse struct {
	Category search.ProjectCategory
	Projects []content.Project
}

// SearchService answers search, navigation and listing queries against the
// current content snapshot.
type SearchService interface {
	// Search returns grouped results for a query.
	Search(ctx context.Context, req SearchRequest) (SearchResponse, error)
	// Submit resolves an enter-key submission.
	Submit(ctx context.Context, req SubmitRequest) (SubmitResponse, error)
	// Select resolves a record selection.
	Select(ctx context.Context, req SelectRequest) (SelectResponse, error)
	// FilterProjects filters the project grid by tab and free text.
	FilterProjects(ctx context.Context, req ProjectFilterRequest) (ProjectFilterResponse, error)
	// Project returns a single project by id.
	Project(ctx context.Context, id int) (content.Project, error)
	// Content returns the full content set of the current snapshot.
	Content(ctx context.Context) (*content.Content, error)
}

// searchService implements SearchService.
type searchService struct {
	snapshots SnapshotProvider
}

// NewSearchService creates a new SearchService.
func NewSearchService(snapshots SnapshotProvider) SearchService {
	return &searchService{snapshots: snapshots}
}

func (s *searchService) snapshot(ctx context.Context) (*catalog.Snapshot, error) {
	snap, err := s.snapshots.Snapshot()
	if err != nil {
		if errors.Is(err, catalog.ErrNotLoaded) {
			contextutil.LoggerFromContext(ctx).WarnContext(ctx, "request before content was loaded")
			return nil, ErrUnavailable
		}
		return nil, WrapError(err, "failed to get content snapshot")
	}
	return snap, nil
}

// Search returns grouped results. A blank query yields empty results, not an error.
func (s *searchService) Search(ctx context.Context, req SearchRequest) (SearchResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	snap, err := s.snapshot(ctx)
	if err != nil {
		return SearchResponse{}, err
	}

	results := search.Search(snap.Index, req.Query)
	logger.DebugContext(ctx, "search processed", "query_length", len(req.Query), "results", results.Len())
	return SearchResponse{
		Query:   req.Query,
		Results: results,
		Version: snap.Version,
	}, nil
}

// Submit resolves an enter-key submission.
func (s *searchService) Submit(ctx context.Context, req SubmitRequest) (SubmitResponse, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return SubmitResponse{}, err
	}

	nav, ok := search.Submit(snap.Index, req.Query)
	contextutil.LoggerFromContext(ctx).DebugContext(ctx, "search submitted", "target", nav.Target, "ok", ok)
	return SubmitResponse{Navigation: nav, OK: ok}, nil
}

// Select looks the record up in the current index.
func (s *searchService) Select(ctx context.Context, req SelectRequest) (SelectResponse, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if strings.TrimSpace(req.ID) == "" {
		logger.WarnContext(ctx, "empty id in select request")
		return SelectResponse{}, &ValidationError{
			Field:   "id",
			Message: "cannot be empty",
		}
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return SelectResponse{}, err
	}

	record, ok := search.Lookup(snap.Index, req.ID)
	if !ok {
		logger.InfoContext(ctx, "selected record not found", "id", req.ID)
		return SelectResponse{}, ErrNotFound
	}
	return SelectResponse{Record: record, Navigation: search.Select(record)}, nil
}

// FilterProjects applies the tab and text filters, then the featured flag.
func (s *searchService) FilterProjects(ctx context.Context, req ProjectFilterRequest) (ProjectFilterResponse, error) {
	category, err := search.ParseProjectCategory(req.Category)
	if err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid project category", "category", req.Category)
		return ProjectFilterResponse{}, &ValidationError{
			Field:   "category",
			Message: err.Error(),
		}
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return ProjectFilterResponse{}, err
	}

	projects := search.FilterProjects(snap.Content.Projects, category, req.Text)
	if req.FeaturedOnly {
		featured := make([]content.Project, 0, len(projects))
		for _, p := range projects {
			if p.Featured {
				featured = append(featured, p)
			}
		}
		projects = featured
	}

	return ProjectFilterResponse{Category: category, Projects: projects}, nil
}

// Project returns the project with the given id or ErrNotFound.
func (s *searchService) Project(ctx context.Context, id int) (content.Project, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return content.Project{}, err
	}

	p, ok := snap.Content.ProjectByID(id)
	if !ok {
		return content.Project{}, ErrNotFound
	}
	return p, nil
}

// Content returns the full content of the current snapshot.
func (s *searchService) Content(ctx context.Context) (*content.Content, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Content, nil
}
