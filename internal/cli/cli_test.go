package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tmanas06/uportfolio-sub000/internal/search"
)

// run executes the command tree with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSearchCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
		wantErr  bool
	}{
		{
			name:     "grouped table",
			args:     []string{"search", "solidity"},
			contains: []string{"Project", "project-1", "Skill", "skill-languages-0", "/skills#languages"},
		},
		{
			name:     "no results",
			args:     []string{"search", "cobol"},
			contains: []string{`No results for "cobol"`},
		},
		{
			name:     "submit with a match",
			args:     []string{"search", "--submit", "zkwhisper"},
			contains: []string{"/projects/2"},
		},
		{
			name:     "submit falls back to listing",
			args:     []string{"search", "--submit", "cobol", "jobs"},
			contains: []string{"/search?q=cobol+jobs"},
		},
		{
			name:    "missing query",
			args:    []string{"search"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output = %q, want it to contain %q", out, want)
				}
			}
		})
	}
}

func TestSearchCommand_BlankSubmitPrintsNothing(t *testing.T) {
	for _, args := range [][]string{
		{"search", "--submit", "   "},
		{"--json", "search", "--submit", "   "},
	} {
		out, err := run(t, args...)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", args, err)
		}
		if out != "" {
			t.Errorf("%v: output = %q, want none", args, out)
		}
	}
}

func TestSearchCommand_JSON(t *testing.T) {
	out, err := run(t, "--json", "search", "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var results search.Results
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if results.Len() != search.MaxResults {
		t.Errorf("results = %d, want the %d cap", results.Len(), search.MaxResults)
	}
}

func TestProjectsCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
		wantErr  bool
	}{
		{
			name:     "mobile tab",
			args:     []string{"projects", "--category", "mobile"},
			contains: []string{"ChainPay Wallet", "Campus Connect", "2 project(s) in mobile"},
			excludes: []string{"MediScan"},
		},
		{
			name:     "text filter",
			args:     []string{"projects", "x-ray"},
			contains: []string{"MediScan", "1 project(s) in all"},
		},
		{
			name:    "unknown category",
			args:    []string{"projects", "-c", "desktop"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output = %q, want it to contain %q", out, want)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(out, bad) {
					t.Errorf("output = %q, must not contain %q", out, bad)
				}
			}
		})
	}
}

func TestIndexCommand(t *testing.T) {
	out, err := run(t, "index")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if !strings.HasPrefix(lines[0], "ID") {
		t.Errorf("first line = %q, want header", lines[0])
	}
	if !strings.HasPrefix(lines[1], "project-1") {
		t.Errorf("second line = %q, want project-1 first", lines[1])
	}
	if !strings.HasPrefix(lines[len(lines)-1], "certification-") {
		t.Errorf("last line = %q, want a certification last", lines[len(lines)-1])
	}
}

func TestSeedAndSQLiteSource(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "content.db")
	yamlPath := filepath.Join(dir, "content.yaml")

	body := `
profile:
  name: Seeded Person
projects:
  - id: 7
    title: Seeded Project
    tech: [Go, SQLite]
    chains: [Base]
`
	if err := os.WriteFile(yamlPath, []byte(body), 0644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}

	out, err := run(t, "seed", "--from", yamlPath, "--db", dbPath)
	if err != nil {
		t.Fatalf("seed error: %v", err)
	}
	if !strings.Contains(out, "1 projects") {
		t.Errorf("seed output = %q, want project count", out)
	}

	out, err = run(t, "--source", "sqlite", "--db", dbPath, "projects", "--category", "web3")
	if err != nil {
		t.Fatalf("projects error: %v", err)
	}
	if !strings.Contains(out, "Seeded Project") {
		t.Errorf("projects output = %q, want seeded project", out)
	}

	out, err = run(t, "--source", "sqlite", "--db", dbPath, "export")
	if err != nil {
		t.Fatalf("export error: %v", err)
	}
	if !strings.Contains(out, "Seeded Person") || !strings.Contains(out, "Seeded Project") {
		t.Errorf("export output = %q, want seeded content", out)
	}
}

func TestSQLiteSource_NotSeeded(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "empty.db")

	if _, err := run(t, "--source", "sqlite", "--db", dbPath, "index"); err == nil {
		t.Error("expected error for an unseeded database")
	}
}

func TestUnknownSource(t *testing.T) {
	if _, err := run(t, "--source", "postgres", "index"); err == nil {
		t.Error("expected error for an unknown source")
	}
	if _, err := run(t, "--source", "yaml", "index"); err == nil {
		t.Error("expected error for yaml source without --content")
	}
}
