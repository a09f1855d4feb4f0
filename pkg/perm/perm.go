package perm

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	// ErrInvalidPoint is returned by [FromImages] and [FromCycles] when a
	// point is smaller than 1. Permutations act on positive integers only.
	ErrInvalidPoint = errors.New("points must be positive integers")

	// ErrNotBijective is returned by [FromImages] when the image table maps
	// two points to the same image or references an image outside the table.
	ErrNotBijective = errors.New("image table is not a bijection")

	// ErrRepeatedPoint is returned by [FromCycles] when a single cycle
	// mentions the same point twice, e.g. (1 2 1).
	ErrRepeatedPoint = errors.New("cycle repeats a point")
)

// Perm is an immutable permutation: a bijection on a finite subset of the
// positive integers {1, ..., n}. Points above n are fixed by definition, so
// two permutations are equal iff they induce the same map on all points,
// regardless of how they were constructed.
//
// Composition reads left to right: (p.Compose(q)).Image(x) == q.Image(p.Image(x)),
// written p·q. This matches the convention that x^(p·q) = (x^p)^q.
//
// The zero value is the identity permutation and is ready to use.
type Perm struct {
	// img[i] is the image of point i+1. Trailing fixed points are trimmed
	// so that equal permutations have identical tables.
	img []int
}

// Identity returns the identity permutation, which fixes every point.
func Identity() Perm {
	return Perm{}
}

// FromImages builds a permutation from a 1-based image table: img[i] is the
// image of point i+1. The table must be a bijection of {1, ..., len(img)}
// onto itself.
func FromImages(img []int) (Perm, error) {
	seen := make([]bool, len(img))
	for _, v := range img {
		if v < 1 {
			return Perm{}, ErrInvalidPoint
		}
		if v > len(img) || seen[v-1] {
			return Perm{}, ErrNotBijective
		}
		seen[v-1] = true
	}
	return normalize(slices.Clone(img)), nil
}

// FromCycles builds a permutation from cycles of points. Cycles are composed
// left to right, so disjoint cycles commute and overlapping cycles behave
// like the product of the individual cycle permutations.
//
// A cycle must not repeat a point; empty and single-point cycles are allowed
// and contribute nothing.
func FromCycles(cycles ...[]int) (Perm, error) {
	p := Identity()
	for _, c := range cycles {
		q, err := oneCycle(c)
		if err != nil {
			return Perm{}, err
		}
		p = p.Compose(q)
	}
	return p, nil
}

func oneCycle(c []int) (Perm, error) {
	if len(c) < 2 {
		for _, pt := range c {
			if pt < 1 {
				return Perm{}, ErrInvalidPoint
			}
		}
		return Perm{}, nil
	}
	max := 0
	seen := make(map[int]bool, len(c))
	for _, pt := range c {
		if pt < 1 {
			return Perm{}, ErrInvalidPoint
		}
		if seen[pt] {
			return Perm{}, fmt.Errorf("%w: %d", ErrRepeatedPoint, pt)
		}
		seen[pt] = true
		if pt > max {
			max = pt
		}
	}
	img := make([]int, max)
	for i := range img {
		img[i] = i + 1
	}
	for i, pt := range c {
		img[pt-1] = c[(i+1)%len(c)]
	}
	return normalize(img), nil
}

// Parse reads a permutation in cycle notation, e.g. "(1 2)(3 4 5)".
// Points may be separated by spaces or commas. "()" and the empty string
// denote the identity.
func Parse(s string) (Perm, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "()" {
		return Identity(), nil
	}
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return Perm{}, fmt.Errorf("parse %q: cycle notation must be wrapped in parentheses", s)
	}
	var cycles [][]int
	for _, part := range strings.Split(s[1:len(s)-1], ")(") {
		fields := strings.FieldsFunc(part, func(r rune) bool { return r == ' ' || r == ',' })
		cycle := make([]int, 0, len(fields))
		for _, f := range fields {
			pt, err := strconv.Atoi(f)
			if err != nil {
				return Perm{}, fmt.Errorf("parse %q: invalid point %q", s, f)
			}
			cycle = append(cycle, pt)
		}
		cycles = append(cycles, cycle)
	}
	p, err := FromCycles(cycles...)
	if err != nil {
		return Perm{}, fmt.Errorf("parse %q: %w", s, err)
	}
	return p, nil
}

// MustParse is like [Parse] but panics on malformed input.
// It is intended for literals in tests and examples.
func MustParse(s string) Perm {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// normalize trims trailing fixed points so equality is structural.
func normalize(img []int) Perm {
	n := len(img)
	for n > 0 && img[n-1] == n {
		n--
	}
	return Perm{img: img[:n]}
}

// Image returns the image of point x. Points outside the permutation's
// support are fixed, so Image(x) == x for any x above [Perm.Degree].
func (p Perm) Image(x int) int {
	if x < 1 || x > len(p.img) {
		return x
	}
	return p.img[x-1]
}

// Compose returns the product p·q, the permutation that applies p first and
// then q: (p·q)(x) = q(p(x)).
func (p Perm) Compose(q Perm) Perm {
	n := max(len(p.img), len(q.img))
	img := make([]int, n)
	for i := range img {
		img[i] = q.Image(p.Image(i + 1))
	}
	return normalize(img)
}

// Inverse returns the permutation q with p·q = q·p = identity.
func (p Perm) Inverse() Perm {
	img := make([]int, len(p.img))
	for i, v := range p.img {
		img[v-1] = i + 1
	}
	return Perm{img: img}
}

// IsIdentity reports whether p fixes every point.
func (p Perm) IsIdentity() bool {
	return len(p.img) == 0
}

// Equal reports whether p and q induce the same map on all points.
func (p Perm) Equal(q Perm) bool {
	return slices.Equal(p.img, q.img)
}

// Compare orders permutations lexicographically by their image sequence
// 1, 2, 3, ... and returns -1, 0, or +1. The identity sorts before every
// other permutation. This is the total order used to produce deterministic
// element listings.
func (p Perm) Compare(q Perm) int {
	n := max(len(p.img), len(q.img))
	for x := 1; x <= n; x++ {
		if c := p.Image(x) - q.Image(x); c != 0 {
			if c < 0 {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Degree returns the largest moved point, or 0 for the identity.
func (p Perm) Degree() int {
	return len(p.img)
}

// MaxMoved returns the largest point not fixed by p, or 0 for the identity.
func (p Perm) MaxMoved() int {
	return len(p.img)
}

// MinMoved returns the smallest point not fixed by p, or 0 for the identity.
func (p Perm) MinMoved() int {
	for i, v := range p.img {
		if v != i+1 {
			return i + 1
		}
	}
	return 0
}

// Cycles returns the disjoint cycle decomposition of p. Cycles are rotated
// to start at their smallest point and sorted by that point; fixed points
// are omitted. The identity yields no cycles.
func (p Perm) Cycles() [][]int {
	var cycles [][]int
	done := make([]bool, len(p.img))
	for start := 1; start <= len(p.img); start++ {
		if done[start-1] || p.img[start-1] == start {
			continue
		}
		var cycle []int
		for x := start; !done[x-1]; x = p.img[x-1] {
			done[x-1] = true
			cycle = append(cycle, x)
		}
		cycles = append(cycles, cycle)
	}
	return cycles
}

// String renders p in cycle notation, e.g. "(1 2)(3 4 5)". The identity is
// rendered as "()". The notation is canonical: equal permutations have equal
// strings, so String is safe to use as a map key.
func (p Perm) String() string {
	cycles := p.Cycles()
	if len(cycles) == 0 {
		return "()"
	}
	var b strings.Builder
	for _, c := range cycles {
		b.WriteByte('(')
		for i, pt := range c {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(pt))
		}
		b.WriteByte(')')
	}
	return b.String()
}
