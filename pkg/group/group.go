package group

import (
	"context"
	"math/big"
	"slices"
	"sync"
	"time"

	"github.com/permkit/permkit/pkg/observability"
	"github.com/permkit/permkit/pkg/perm"
)

// Group is a permutation group given by a finite list of generators.
//
// A Group computes structural data on demand and caches it for its lifetime:
// the stabilizer chain (base, strong generating sets, transversals) via the
// Schreier-Sims algorithm, the group order, and the full element/word
// listing. Generators are fixed at construction; there is no invalidation.
//
// All methods are safe for concurrent use: the lazily computed properties
// are guarded by a mutex and published as immutable snapshots.
type Group struct {
	gens []perm.Perm

	mu      sync.Mutex
	derived derived
}

// derived holds the lazily computed properties, each with an explicit
// "not yet computed" state. chain covers the base, strong generators,
// stabilizers and transversals as one atomically published unit; elements
// and words are produced together by the word enumerator.
type derived struct {
	chain    *chain
	order    *big.Int
	elements []perm.Perm
	words    [][]int
}

// New creates a group generated by gens. The generator slice is copied.
// An empty (or nil) generator list yields the trivial group, whose only
// element is the identity.
func New(gens []perm.Perm) *Group {
	return &Group{gens: slices.Clone(gens)}
}

// SymmetricGroup returns the full symmetric group on {1, ..., n}, generated
// by the transposition (1 2) and the n-cycle (1 2 ... n). For n < 2 it
// returns the trivial group.
func SymmetricGroup(n int) *Group {
	if n < 2 {
		return New(nil)
	}
	points := make([]int, n)
	for i := range points {
		points[i] = i + 1
	}
	swap, _ := perm.FromCycles([]int{1, 2})
	cycle, _ := perm.FromCycles(points)
	return New([]perm.Perm{swap, cycle})
}

// Generators returns the generator list the group was constructed with.
// The returned slice must not be modified.
func (g *Group) Generators() []perm.Perm {
	return g.gens
}

// Degree returns the largest point moved by any generator. The trivial
// group has degree 0 by convention.
func (g *Group) Degree() int {
	d := 0
	for _, s := range g.gens {
		if m := s.MaxMoved(); m > d {
			d = m
		}
	}
	return d
}

// Orbit returns the orbit of point p under the group, sorted. For a point
// outside the acted-on domain the orbit is {p}.
func (g *Group) Orbit(p int) []int {
	return Orbit(g.gens, p)
}

// Transversal returns the orbit of p together with representatives: a map
// from each orbit point q to an element u of the group with p^u == q. The
// point p itself maps to the identity.
func (g *Group) Transversal(p int) map[int]perm.Perm {
	return OrbitTransversal(g.gens, p)
}

// Base returns the base of the group's stabilizer chain: a sequence of
// points such that the identity is the only group element fixing all of
// them. The trivial group has an empty base. The returned slice must not
// be modified.
func (g *Group) Base() []int {
	return g.chainData().base
}

// StrongGenerators returns the per-level strong generating sets of the
// stabilizer chain. Level i generates the pointwise stabilizer of the first
// i base points; level 0 generates the whole group.
func (g *Group) StrongGenerators() [][]perm.Perm {
	return g.chainData().strong
}

// Stabilizers returns the stabilizer subgroups along the chain.
// Stabilizers()[i] is the subgroup fixing the first i base points; index 0
// is the whole group. Each entry is a full Group whose own properties are
// computed on demand.
func (g *Group) Stabilizers() []*Group {
	return g.chainData().stabs
}

// Transversals returns the per-level transversal tables of the stabilizer
// chain: Transversals()[i] maps each point in the orbit of Base()[i] under
// Stabilizers()[i] to a representative sending the base point there.
func (g *Group) Transversals() []map[int]perm.Perm {
	return g.chainData().trans
}

// Order returns the number of elements in the group. By the orbit-stabilizer
// theorem this is the product of the transversal sizes along the chain, so
// no element listing is required. The trivial group has order 1.
//
// Group orders grow factorially with the degree, hence the big.Int result.
// The returned value is shared; callers must not mutate it.
func (g *Group) Order() *big.Int {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.chainLocked()
	return g.derived.order
}

// Contains reports whether p is an element of the group. The test sieves p
// through the stabilizer chain; membership holds exactly when the residual
// of a full pass is the identity.
func (g *Group) Contains(p perm.Perm) bool {
	res, level := g.Sieve(p)
	return level == g.chainData().depth() && res.IsIdentity()
}

// Sieve reduces p through the group's stabilizer chain and returns the
// residual together with the level reached. A level equal to the chain
// depth means every level absorbed its part; p is a group element iff the
// residual is then the identity. A smaller level identifies where the
// reduction failed, which callers extending the chain can use directly.
func (g *Group) Sieve(p perm.Perm) (perm.Perm, int) {
	c := g.chainData()
	return sieve(p, c.base, c.trans)
}

// Elements returns every element of the group, sorted by [perm.Perm.Compare].
// The listing is produced by the word enumerator (see [Group.Words]), not by
// the stabilizer chain, and is cached after the first call. The returned
// slice must not be modified.
//
// The element count equals Order(), which is factorial in the degree;
// callers should bound the degree before asking for a full listing.
func (g *Group) Elements() []perm.Perm {
	elems, _ := g.wordData()
	return elems
}

// Words returns, for each element of [Group.Elements], a generating word:
// a sequence of 0-based generator indices whose left-to-right composition
// equals the element. Words()[i] composes to Elements()[i]; the identity
// carries the empty word. Words are short (discovered in breadth-first
// order) but not guaranteed globally minimal. The returned slices must not
// be modified.
func (g *Group) Words() [][]int {
	_, words := g.wordData()
	return words
}

// chainData returns the group's stabilizer chain, building it on first use.
func (g *Group) chainData() *chain {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.chainLocked()
}

// chainLocked builds the chain and derives the order in the same step, so
// both publish together. Callers must hold g.mu.
func (g *Group) chainLocked() *chain {
	if g.derived.chain == nil {
		start := time.Now()
		observability.Chain().OnBuildStart(context.Background(), len(g.gens))

		c := buildChain(g.gens)
		order := big.NewInt(1)
		for _, t := range c.trans {
			order.Mul(order, big.NewInt(int64(len(t))))
		}
		g.derived.chain = c
		g.derived.order = order

		observability.Chain().OnBuildComplete(context.Background(), len(c.base), order.String(), time.Since(start))
	}
	return g.derived.chain
}

// wordData returns the cached element/word listing, running the enumerator
// on first use. Unlike Order, this materializes the whole group.
func (g *Group) wordData() ([]perm.Perm, [][]int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.derived.elements == nil {
		g.derived.elements, g.derived.words = enumerateWords(g.gens)
	}
	return g.derived.elements, g.derived.words
}
