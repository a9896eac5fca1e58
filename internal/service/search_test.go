package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/tmanas06/uportfolio-sub000/internal/catalog"
	"github.com/tmanas06/uportfolio-sub000/internal/content"
	"github.com/tmanas06/uportfolio-sub000/internal/search"
	"github.com/tmanas06/uportfolio-sub000/internal/service"
	"github.com/tmanas06/uportfolio-sub000/internal/service/mocks"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testSnapshot(t *testing.T) *catalog.Snapshot {
	t.Helper()

	c := &content.Content{
		Projects: []content.Project{
			{ID: 1, Title: "ZKWhisper", Tech: []string{"Circom", "TypeScript"}, Chains: []string{"Base"}, Featured: true},
			{ID: 2, Title: "Campus Connect", Tech: []string{"Flutter", "Firebase"}},
			{ID: 3, Title: "MediScan", Tech: []string{"Python", "ML"}, Featured: true},
		},
		Skills: content.SkillGroups{
			Languages: []content.Skill{{Name: "Go", Level: 80}},
		},
		Experience: []content.Experience{{Title: "Engineer", Company: "Acme", Period: "2024"}},
	}
	return &catalog.Snapshot{Version: "v1", Content: c, Index: search.BuildIndexFrom(c)}
}

func TestSearchService_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockSnapshotProvider(ctrl)
	provider.EXPECT().Snapshot().Return(testSnapshot(t), nil).AnyTimes()
	svc := service.NewSearchService(provider)

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "title match", query: "zkw", wantIDs: []string{"project-1"}},
		{name: "category match", query: "skill", wantIDs: []string{"skill-languages-0"}},
		{name: "subtitle match", query: "acme", wantIDs: []string{"experience-0"}},
		{name: "blank query", query: "   ", wantIDs: nil},
		{name: "no match", query: "cobol", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Search(context.Background(), service.SearchRequest{Query: tt.query})
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if resp.Version != "v1" {
				t.Errorf("Search() version = %q, want v1", resp.Version)
			}

			var got []string
			for _, r := range resp.Results.Flatten() {
				got = append(got, r.ID)
			}
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Search() ids = %v, want %v", got, tt.wantIDs)
			}
			for i := range got {
				if got[i] != tt.wantIDs[i] {
					t.Errorf("Search() ids = %v, want %v", got, tt.wantIDs)
				}
			}
		})
	}
}

func TestSearchService_Unavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockSnapshotProvider(ctrl)
	provider.EXPECT().Snapshot().Return(nil, catalog.ErrNotLoaded).AnyTimes()
	svc := service.NewSearchService(provider)
	ctx := context.Background()

	if _, err := svc.Search(ctx, service.SearchRequest{Query: "go"}); !errors.Is(err, service.ErrUnavailable) {
		t.Errorf("Search() error = %v, want ErrUnavailable", err)
	}
	if _, err := svc.Submit(ctx, service.SubmitRequest{Query: "go"}); !errors.Is(err, service.ErrUnavailable) {
		t.Errorf("Submit() error = %v, want ErrUnavailable", err)
	}
	if _, err := svc.Select(ctx, service.SelectRequest{ID: "project-1"}); !errors.Is(err, service.ErrUnavailable) {
		t.Errorf("Select() error = %v, want ErrUnavailable", err)
	}
	if _, err := svc.FilterProjects(ctx, service.ProjectFilterRequest{}); !errors.Is(err, service.ErrUnavailable) {
		t.Errorf("FilterProjects() error = %v, want ErrUnavailable", err)
	}
	if _, err := svc.Content(ctx); !errors.Is(err, service.ErrUnavailable) {
		t.Errorf("Content() error = %v, want ErrUnavailable", err)
	}
}

func TestSearchService_ProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("boom")
	provider := mocks.NewMockSnapshotProvider(ctrl)
	provider.EXPECT().Snapshot().Return(nil, boom)
	svc := service.NewSearchService(provider)

	_, err := svc.Search(context.Background(), service.SearchRequest{Query: "go"})
	if !errors.Is(err, boom) {
		t.Errorf("Search() error = %v, want wrapped boom", err)
	}
	if errors.Is(err, service.ErrUnavailable) {
		t.Error("Search() should not report ErrUnavailable for other errors")
	}
}

func TestSearchService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockSnapshotProvider(ctrl)
	provider.EXPECT().Snapshot().Return(testSnapshot(t), nil).AnyTimes()
	svc := service.NewSearchService(provider)

	tests := []struct {
		name       string
		query      string
		wantOK     bool
		wantTarget string
	}{
		{name: "first result", query: "campus", wantOK: true, wantTarget: "/projects/2"},
		{name: "fallback", query: "rust & go", wantOK: true, wantTarget: "/search?q=rust+%26+go"},
		{name: "blank", query: "  ", wantOK: false, wantTarget: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Submit(context.Background(), service.SubmitRequest{Query: tt.query})
			if err != nil {
				t.Fatalf("Submit() error = %v", err)
			}
			if resp.OK != tt.wantOK {
				t.Errorf("Submit() ok = %v, want %v", resp.OK, tt.wantOK)
			}
			if resp.Navigation.Target != tt.wantTarget {
				t.Errorf("Submit() target = %q, want %q", resp.Navigation.Target, tt.wantTarget)
			}
		})
	}
}

func TestSearchService_Select(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockSnapshotProvider(ctrl)
	provider.EXPECT().Snapshot().Return(testSnapshot(t), nil).AnyTimes()
	svc := service.NewSearchService(provider)

	tests := []struct {
		name         string
		id           string
		wantTarget   string
		wantErr      error
		checkErrType func(error) bool
	}{
		{name: "project", id: "project-3", wantTarget: "/projects/3"},
		{name: "skill", id: "skill-languages-0", wantTarget: "/skills#languages"},
		{name: "experience", id: "experience-0", wantTarget: "/about#experience"},
		{name: "unknown", id: "project-99", wantErr: service.ErrNotFound},
		{
			name: "empty id",
			id:   " ",
			checkErrType: func(err error) bool {
				var validationErr *service.ValidationError
				return errors.As(err, &validationErr) && validationErr.Field == "id"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Select(context.Background(), service.SelectRequest{ID: tt.id})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Select() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if tt.checkErrType != nil {
				if err == nil || !tt.checkErrType(err) {
					t.Errorf("Select() error type mismatch: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Select() unexpected error: %v", err)
			}
			if resp.Navigation.Target != tt.wantTarget {
				t.Errorf("Select() target = %q, want %q", resp.Navigation.Target, tt.wantTarget)
			}
			if !resp.Navigation.ClearQuery || !resp.Navigation.CloseResults {
				t.Errorf("Select() navigation = %+v, want query cleared and results closed", resp.Navigation)
			}
			if resp.Record.ID != tt.id {
				t.Errorf("Select() record id = %q, want %q", resp.Record.ID, tt.id)
			}
		})
	}
}

func TestSearchService_FilterProjects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockSnapshotProvider(ctrl)
	provider.EXPECT().Snapshot().Return(testSnapshot(t), nil).AnyTimes()
	svc := service.NewSearchService(provider)

	tests := []struct {
		name         string
		req          service.ProjectFilterRequest
		wantCategory search.ProjectCategory
		wantIDs      []int
		wantErr      bool
	}{
		{name: "default all", req: service.ProjectFilterRequest{}, wantCategory: search.ProjectsAll, wantIDs: []int{1, 2, 3}},
		{name: "web3", req: service.ProjectFilterRequest{Category: "web3"}, wantCategory: search.ProjectsWeb3, wantIDs: []int{1}},
		{name: "mobile upper case", req: service.ProjectFilterRequest{Category: "MOBILE"}, wantCategory: search.ProjectsMobile, wantIDs: []int{2}},
		{name: "ai", req: service.ProjectFilterRequest{Category: "ai"}, wantCategory: search.ProjectsAI, wantIDs: []int{3}},
		{name: "text", req: service.ProjectFilterRequest{Text: "firebase"}, wantCategory: search.ProjectsAll, wantIDs: []int{2}},
		{name: "featured only", req: service.ProjectFilterRequest{FeaturedOnly: true}, wantCategory: search.ProjectsAll, wantIDs: []int{1, 3}},
		{name: "no match", req: service.ProjectFilterRequest{Text: "cobol"}, wantCategory: search.ProjectsAll, wantIDs: []int{}},
		{name: "unknown category", req: service.ProjectFilterRequest{Category: "desktop"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.FilterProjects(context.Background(), tt.req)
			if tt.wantErr {
				var validationErr *service.ValidationError
				if !errors.As(err, &validationErr) || validationErr.Field != "category" {
					t.Errorf("FilterProjects() error = %v, want category validation error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FilterProjects() unexpected error: %v", err)
			}
			if resp.Category != tt.wantCategory {
				t.Errorf("FilterProjects() category = %q, want %q", resp.Category, tt.wantCategory)
			}
			if resp.Projects == nil {
				t.Fatal("FilterProjects() projects is nil, want empty slice")
			}
			if len(resp.Projects) != len(tt.wantIDs) {
				t.Fatalf("FilterProjects() returned %d projects, want %d", len(resp.Projects), len(tt.wantIDs))
			}
			for i, p := range resp.Projects {
				if p.ID != tt.wantIDs[i] {
					t.Errorf("FilterProjects()[%d].ID = %d, want %d", i, p.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestSearchService_Project(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockSnapshotProvider(ctrl)
	provider.EXPECT().Snapshot().Return(testSnapshot(t), nil).Times(2)
	svc := service.NewSearchService(provider)

	p, err := svc.Project(context.Background(), 2)
	if err != nil {
		t.Fatalf("Project(2) error = %v", err)
	}
	if p.Title != "Campus Connect" {
		t.Errorf("Project(2) title = %q, want Campus Connect", p.Title)
	}

	if _, err := svc.Project(context.Background(), 42); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Project(42) error = %v, want ErrNotFound", err)
	}
}
