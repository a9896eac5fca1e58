package search

import (
	"testing"

	"github.com/tmanas06/uportfolio-sub000/internal/content"
)

func sampleContent(t *testing.T) *content.Content {
	t.Helper()
	c, err := content.NewEmbeddedSource().Load(t.Context())
	if err != nil {
		t.Fatalf("load sample content: %v", err)
	}
	return c
}

func TestBuildIndex_Empty(t *testing.T) {
	index := BuildIndex(nil, content.SkillGroups{}, nil, nil, nil)
	if index == nil {
		t.Fatal("BuildIndex() returned nil, want empty slice")
	}
	if len(index) != 0 {
		t.Errorf("BuildIndex() len = %d, want 0", len(index))
	}
}

func TestBuildIndex_OneRecordPerSourceItem(t *testing.T) {
	c := sampleContent(t)
	index := BuildIndexFrom(c)

	want := len(c.Projects) + c.Skills.Len() + len(c.Experience) + len(c.Achievements) + len(c.Certifications)
	if len(index) != want {
		t.Errorf("BuildIndex() len = %d, want %d", len(index), want)
	}

	seen := make(map[string]bool, len(index))
	for _, r := range index {
		if seen[r.ID] {
			t.Errorf("duplicate record id %q", r.ID)
		}
		seen[r.ID] = true
	}
}

func TestBuildIndex_Mapping(t *testing.T) {
	projects := []content.Project{
		{ID: 7, Title: "Hook", Tech: []string{"Solidity", "Noir", "Foundry", "Uniswap v4"}},
	}
	skills := content.SkillGroups{
		Frameworks: []content.Skill{{Name: "React", Level: 92}},
	}
	experience := []content.Experience{{Title: "Engineer", Company: "Acme", Period: "2024 - Present"}}
	achievements := []content.Achievement{{Title: "ETHGlobal", Position: "Finalist"}}
	certifications := []content.Certification{{Name: "Cloud Engineer", Issuer: "Google", Year: "2024"}}

	index := BuildIndex(projects, skills, experience, achievements, certifications)

	want := []Record{
		{ID: "project-7", Title: "Hook", Subtitle: "Solidity, Noir, Foundry", Category: CategoryProject, NavigationTarget: "/projects/7"},
		{ID: "skill-frameworks-0", Title: "React", Subtitle: "Framework – 92% proficiency", Category: CategorySkill, NavigationTarget: "/skills#frameworks"},
		{ID: "experience-0", Title: "Engineer", Subtitle: "Acme – 2024 - Present", Category: CategoryExperience, NavigationTarget: "/about#experience"},
		{ID: "achievement-0", Title: "ETHGlobal", Subtitle: "Finalist", Category: CategoryAchievement, NavigationTarget: "/about#achievements"},
		{ID: "certification-0", Title: "Cloud Engineer", Subtitle: "Google – 2024", Category: CategoryCertification, NavigationTarget: "/about#certifications"},
	}

	if len(index) != len(want) {
		t.Fatalf("BuildIndex() len = %d, want %d", len(index), len(want))
	}
	for i, w := range want {
		got := index[i]
		if got.ID != w.ID || got.Title != w.Title || got.Subtitle != w.Subtitle ||
			got.Category != w.Category || got.NavigationTarget != w.NavigationTarget {
			t.Errorf("index[%d] = %+v, want %+v", i, got, w)
		}
		if got.DisplayColor == "" {
			t.Errorf("index[%d] has no display color", i)
		}
	}
}

func TestBuildIndex_ProjectSubtitleShortTech(t *testing.T) {
	index := BuildIndex([]content.Project{{ID: 1, Title: "A", Tech: []string{"Go"}}, {ID: 2, Title: "B"}},
		content.SkillGroups{}, nil, nil, nil)

	if index[0].Subtitle != "Go" {
		t.Errorf("subtitle = %q, want %q", index[0].Subtitle, "Go")
	}
	if index[1].Subtitle != "" {
		t.Errorf("subtitle = %q, want empty", index[1].Subtitle)
	}
}

func TestBuildIndex_SkillGroupOrder(t *testing.T) {
	skills := content.SkillGroups{
		Tools:      []content.Skill{{Name: "Docker", Level: 75}},
		Blockchain: []content.Skill{{Name: "Ethereum", Level: 90}},
		Frameworks: []content.Skill{{Name: "React", Level: 92}, {Name: "Flutter", Level: 80}},
		Languages:  []content.Skill{{Name: "Go", Level: 80}},
	}

	index := BuildIndex(nil, skills, nil, nil, nil)

	wantTitles := []string{"Go", "React", "Flutter", "Ethereum", "Docker"}
	if len(index) != len(wantTitles) {
		t.Fatalf("BuildIndex() len = %d, want %d", len(index), len(wantTitles))
	}
	for i, title := range wantTitles {
		if index[i].Title != title {
			t.Errorf("index[%d].Title = %q, want %q", i, index[i].Title, title)
		}
	}
}

func TestBuildIndex_NoDeduplication(t *testing.T) {
	index := BuildIndex(
		[]content.Project{{ID: 1, Title: "Flutter", Tech: []string{"Flutter"}}},
		content.SkillGroups{Frameworks: []content.Skill{{Name: "Flutter", Level: 80}}},
		nil, nil, nil,
	)
	if len(index) != 2 {
		t.Fatalf("BuildIndex() len = %d, want 2", len(index))
	}
	if index[0].ID == index[1].ID {
		t.Error("records from different categories share an id")
	}
}

func TestLookup(t *testing.T) {
	index := BuildIndexFrom(sampleContent(t))

	r, ok := Lookup(index, "project-2")
	if !ok {
		t.Fatal("Lookup(project-2) not found")
	}
	if r.Title != "ZKWhisper" {
		t.Errorf("Lookup(project-2).Title = %q, want ZKWhisper", r.Title)
	}

	if _, ok := Lookup(index, "project-999"); ok {
		t.Error("Lookup(project-999) found, want missing")
	}
}

func TestCategory_Label(t *testing.T) {
	tests := []struct {
		category Category
		want     string
	}{
		{CategoryProject, "Project"},
		{CategoryCertification, "Certification"},
	}
	for _, tt := range tests {
		if got := tt.category.Label(); got != tt.want {
			t.Errorf("%s.Label() = %q, want %q", tt.category, got, tt.want)
		}
	}
	if Category("blog").Valid() {
		t.Error(`Category("blog").Valid() = true, want false`)
	}
}
