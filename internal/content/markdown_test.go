package content

import (
	"strings"
	"testing"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name     string
		source   string
		contains []string
		excludes []string
	}{
		{
			name:     "emphasis and paragraphs",
			source:   "I build **on-chain products**.\n\nSecond paragraph.",
			contains: []string{"<strong>on-chain products</strong>", "<p>Second paragraph.</p>"},
		},
		{
			name:     "heading ids",
			source:   "## Open source",
			contains: []string{`<h2 id="open-source">Open source</h2>`},
		},
		{
			name:     "gfm strikethrough",
			source:   "~~old~~",
			contains: []string{"<del>old</del>"},
		},
		{
			name:     "raw html is not passed through",
			source:   "<script>alert(1)</script>",
			excludes: []string{"<script>"},
		},
		{
			name:   "empty",
			source: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Render(tt.source)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Render() = %q, want it to contain %q", got, want)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(got, bad) {
					t.Errorf("Render() = %q, must not contain %q", got, bad)
				}
			}
		})
	}
}
