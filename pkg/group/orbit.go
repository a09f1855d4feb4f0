package group

import (
	"slices"

	"github.com/permkit/permkit/pkg/perm"
)

// Orbit returns the set of points reachable from p by repeatedly applying
// any of the generators, as a sorted slice. The orbit of a point outside the
// acted-on domain is {p}.
//
// The closure is computed breadth first: every generator is applied to every
// frontier point until no new points appear. Termination follows from the
// domain being finite.
func Orbit(gens []perm.Perm, p int) []int {
	seen := map[int]bool{p: true}
	frontier := []int{p}
	for len(frontier) > 0 {
		var next []int
		for _, q := range frontier {
			for _, s := range gens {
				if r := s.Image(q); !seen[r] {
					seen[r] = true
					next = append(next, r)
				}
			}
		}
		frontier = next
	}
	points := make([]int, 0, len(seen))
	for q := range seen {
		points = append(points, q)
	}
	slices.Sort(points)
	return points
}

// OrbitTransversal computes the orbit of p together with a transversal: a
// map from every orbit point q to a representative permutation u with
// p^u == q. The base point maps to the identity.
//
// Representatives are built along the breadth-first discovery: when point q
// is first reached as the image of a known point under generator s, its
// representative is rep[known]·s. Each point is inserted at most once, so
// the map is well defined.
func OrbitTransversal(gens []perm.Perm, p int) map[int]perm.Perm {
	reps := map[int]perm.Perm{p: perm.Identity()}
	frontier := []int{p}
	for len(frontier) > 0 {
		var next []int
		for _, q := range frontier {
			for _, s := range gens {
				r := s.Image(q)
				if _, ok := reps[r]; !ok {
					reps[r] = reps[q].Compose(s)
					next = append(next, r)
				}
			}
		}
		frontier = next
	}
	return reps
}

// sortedPoints returns the keys of a transversal in increasing order.
// Map iteration order is random in Go; the chain builder and element
// iterator need a deterministic traversal.
func sortedPoints(trans map[int]perm.Perm) []int {
	points := make([]int, 0, len(trans))
	for q := range trans {
		points = append(points, q)
	}
	slices.Sort(points)
	return points
}
