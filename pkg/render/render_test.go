package render

import (
	"strings"
	"testing"

	"github.com/permkit/permkit/pkg/group"
	"github.com/permkit/permkit/pkg/perm"
)

func s3() *group.Group {
	return group.New([]perm.Perm{perm.MustParse("(1 2)"), perm.MustParse("(2 3)")})
}

func TestOrbitDOT(t *testing.T) {
	dot := OrbitDOT(s3(), 1)

	if !strings.HasPrefix(dot, "digraph Orbit {") {
		t.Fatalf("missing digraph header:\n%s", dot)
	}
	for _, node := range []string{"p1 [", "p2 [", "p3 ["} {
		if !strings.Contains(dot, node) {
			t.Errorf("missing orbit point node %q", node)
		}
	}
	// (1 2) sends 1 to 2.
	if !strings.Contains(dot, "p1 -> p2") {
		t.Error("missing edge p1 -> p2 for generator (1 2)")
	}
	if !strings.Contains(dot, `label="(1 2)"`) {
		t.Error("edges should be labeled with generator cycle notation")
	}
}

func TestOrbitDOTSinglePoint(t *testing.T) {
	dot := OrbitDOT(s3(), 9)

	if !strings.Contains(dot, "p9 [") {
		t.Error("orbit of an unmoved point should still render the point")
	}
	if strings.Contains(dot, "->") {
		t.Error("orbit of an unmoved point should have no edges")
	}
}

func TestCayleyDOT(t *testing.T) {
	dot := CayleyDOT(s3())

	// One node per element.
	for _, label := range []string{`"()"`, `"(1 2)"`, `"(2 3)"`, `"(1 3)"`, `"(1 2 3)"`, `"(1 3 2)"`} {
		if !strings.Contains(dot, "label="+label) {
			t.Errorf("missing element node %s", label)
		}
	}
	// Every element has one outgoing edge per generator; none are loops
	// here, so 6 elements x 2 generators = 12 edges.
	if got := strings.Count(dot, "->"); got != 12 {
		t.Errorf("edge count = %d, want 12", got)
	}
}

func TestCayleyDOTSkipsIdentityLoops(t *testing.T) {
	g := group.New([]perm.Perm{perm.Identity(), perm.MustParse("(1 2)")})
	dot := CayleyDOT(g)

	// The identity generator would produce a self-loop on both elements.
	if got := strings.Count(dot, "->"); got != 2 {
		t.Errorf("edge count = %d, want 2 (self-loops omitted)", got)
	}
}
