package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGroupInputRequiresOneSource(t *testing.T) {
	tests := []struct {
		name string
		in   groupInput
	}{
		{"nothing", groupInput{}},
		{"file and gens", groupInput{file: "x.toml", gens: []string{"(1 2)"}}},
		{"gens and symmetric", groupInput{gens: []string{"(1 2)"}, symmetric: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := tt.in.load(); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestGroupInputFromGenerators(t *testing.T) {
	in := groupInput{gens: []string{"(1 2)", "(2 3)"}}
	g, name, err := in.load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if name != "group" {
		t.Errorf("name = %q, want %q", name, "group")
	}
	if got := g.Order().Int64(); got != 6 {
		t.Errorf("order = %d, want 6", got)
	}
}

func TestGroupInputBadGenerator(t *testing.T) {
	in := groupInput{gens: []string{"(1 2"}}
	if _, _, err := in.load(); err == nil {
		t.Fatal("expected parse error, got nil")
	}
}

func TestGroupInputSymmetric(t *testing.T) {
	in := groupInput{symmetric: 4}
	g, name, err := in.load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if name != "S4" {
		t.Errorf("name = %q, want %q", name, "S4")
	}
	if got := g.Order().Int64(); got != 24 {
		t.Errorf("order = %d, want 24", got)
	}
}

func TestGroupInputFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "klein.toml")
	def := `name = "klein"
generators = ["(1 2)(3 4)", "(1 3)(2 4)"]
`
	if err := os.WriteFile(path, []byte(def), 0o644); err != nil {
		t.Fatal(err)
	}

	in := groupInput{file: path}
	g, name, err := in.load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if name != "klein" {
		t.Errorf("name = %q, want %q", name, "klein")
	}
	if got := g.Order().Int64(); got != 4 {
		t.Errorf("order = %d, want 4", got)
	}
}

func TestGroupInputFileNameFallsBackToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.toml")
	if err := os.WriteFile(path, []byte(`generators = ["(1 2 3)"]`), 0o644); err != nil {
		t.Fatal(err)
	}

	in := groupInput{file: path}
	_, name, err := in.load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if name != path {
		t.Errorf("name = %q, want the file path %q", name, path)
	}
}
