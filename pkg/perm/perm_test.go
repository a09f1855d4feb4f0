package perm

import (
	"slices"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "Identity", in: "()", want: "()"},
		{name: "Empty", in: "", want: "()"},
		{name: "Whitespace", in: "  (1 2)  ", want: "(1 2)"},
		{name: "Transposition", in: "(1 2)", want: "(1 2)"},
		{name: "ThreeCycle", in: "(2 3 4)", want: "(2 3 4)"},
		{name: "TwoCycles", in: "(1 2)(3 4)", want: "(1 2)(3 4)"},
		{name: "Commas", in: "(1,2)(3,4)", want: "(1 2)(3 4)"},
		{name: "NonCanonicalRotation", in: "(3 4 2)", want: "(2 3 4)"},
		{name: "OverlappingCycles", in: "(1 2)(2 3)", want: "(1 3 2)"},
		{name: "NotParenthesized", in: "1 2", wantErr: true},
		{name: "BadPoint", in: "(1 x)", wantErr: true},
		{name: "ZeroPoint", in: "(0 1)", wantErr: true},
		{name: "RepeatedPoint", in: "(1 2 1)", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %v, want error", tt.in, p)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if got := p.String(); got != tt.want {
				t.Errorf("Parse(%q).String() = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromImages(t *testing.T) {
	p, err := FromImages([]int{2, 1, 3})
	if err != nil {
		t.Fatalf("FromImages error: %v", err)
	}
	if !p.Equal(MustParse("(1 2)")) {
		t.Errorf("FromImages([2 1 3]) = %v, want (1 2)", p)
	}

	if _, err := FromImages([]int{1, 1}); err == nil {
		t.Error("duplicate image should fail")
	}
	if _, err := FromImages([]int{1, 3}); err == nil {
		t.Error("image outside table should fail")
	}
	if _, err := FromImages([]int{0, 1}); err == nil {
		t.Error("non-positive point should fail")
	}
}

func TestCompose(t *testing.T) {
	a := MustParse("(1 2)")
	b := MustParse("(2 3)")

	// Left-to-right: apply a first. 1 -> 2 -> 3.
	ab := a.Compose(b)
	if got := ab.Image(1); got != 3 {
		t.Errorf("(1 2)(2 3) maps 1 to %d, want 3", got)
	}
	if want := MustParse("(1 3 2)"); !ab.Equal(want) {
		t.Errorf("(1 2)·(2 3) = %v, want %v", ab, want)
	}
	if ba := b.Compose(a); !ba.Equal(MustParse("(1 2 3)")) {
		t.Errorf("(2 3)·(1 2) = %v, want (1 2 3)", ba)
	}
}

func TestInverse(t *testing.T) {
	for _, s := range []string{"()", "(1 2)", "(1 2 3)", "(1 4)(2 5 3)"} {
		p := MustParse(s)
		if got := p.Compose(p.Inverse()); !got.IsIdentity() {
			t.Errorf("%s · inverse = %v, want identity", s, got)
		}
		if got := p.Inverse().Compose(p); !got.IsIdentity() {
			t.Errorf("inverse · %s = %v, want identity", s, got)
		}
	}
}

func TestImageOutsideSupport(t *testing.T) {
	p := MustParse("(1 2)")
	if got := p.Image(7); got != 7 {
		t.Errorf("Image(7) = %d, want 7 (points outside support are fixed)", got)
	}
	if got := Identity().Image(3); got != 3 {
		t.Errorf("identity.Image(3) = %d, want 3", got)
	}
}

func TestNormalization(t *testing.T) {
	// (1 2) built inside S5 must equal (1 2) built inside S2.
	big, err := FromImages([]int{2, 1, 3, 4, 5})
	if err != nil {
		t.Fatalf("FromImages error: %v", err)
	}
	small := MustParse("(1 2)")
	if !big.Equal(small) {
		t.Error("trailing fixed points should not affect equality")
	}
	if big.Degree() != 2 {
		t.Errorf("Degree = %d, want 2", big.Degree())
	}
}

func TestCompare(t *testing.T) {
	elems := []Perm{
		MustParse("(1 3)"),
		MustParse("(1 2 3)"),
		MustParse("()"),
		MustParse("(1 2)"),
		MustParse("(2 3)"),
		MustParse("(1 3 2)"),
	}
	slices.SortFunc(elems, Perm.Compare)

	want := []string{"()", "(2 3)", "(1 2)", "(1 2 3)", "(1 3 2)", "(1 3)"}
	for i, p := range elems {
		if p.String() != want[i] {
			t.Fatalf("sorted[%d] = %v, want %v", i, p, want[i])
		}
	}
	if Identity().Compare(MustParse("(5 6)")) >= 0 {
		t.Error("identity must sort before every other permutation")
	}
}

func TestMovedPoints(t *testing.T) {
	tests := []struct {
		in       string
		min, max int
	}{
		{"()", 0, 0},
		{"(1 2)", 1, 2},
		{"(3 7)", 3, 7},
		{"(2 5)(4 9)", 2, 9},
	}
	for _, tt := range tests {
		p := MustParse(tt.in)
		if got := p.MinMoved(); got != tt.min {
			t.Errorf("%s MinMoved = %d, want %d", tt.in, got, tt.min)
		}
		if got := p.MaxMoved(); got != tt.max {
			t.Errorf("%s MaxMoved = %d, want %d", tt.in, got, tt.max)
		}
	}
}

func TestCycles(t *testing.T) {
	p := MustParse("(4 5)(1 3 2)")
	got := p.Cycles()
	want := [][]int{{1, 3, 2}, {4, 5}}
	if len(got) != len(want) {
		t.Fatalf("Cycles = %v, want %v", got, want)
	}
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("Cycles[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
