package group

import "github.com/permkit/permkit/pkg/perm"

// chain is a base and strong generating set: the data produced by the
// Schreier-Sims algorithm. For a base B of length k,
//
//   - strong[i] generates the pointwise stabilizer of B[0..i-1]
//     (strong[0] generates the whole group),
//   - trans[i] is the transversal of the orbit of B[i] under strong[i]:
//     every orbit point maps to a representative carrying B[i] to it,
//   - stabs[i] is the stabilizer subgroup itself, a lazily evaluated
//     [Group] over strong[i].
//
// Invariants: len(base) == len(strong) == len(trans) == len(stabs); no
// non-identity element of the group fixes every base point; the group order
// equals the product of the transversal sizes.
//
// A chain is immutable once built and published to a Group's cache, so
// readers never observe a partially constructed chain.
type chain struct {
	base   []int
	strong [][]perm.Perm
	trans  []map[int]perm.Perm
	stabs  []*Group
}

// buildChain runs the deterministic incremental Schreier-Sims algorithm on
// the generator list.
//
// The construction has three phases. Seeding walks each generator down the
// existing base levels, adding it to every level whose previous base points
// it fixes, and extends the base when a generator fixes all of them. The
// transversal phase computes per-level orbits of the base points. The
// closure phase checks every Schreier generator at every level, deepest
// level first; each failure deposits a new strong generator and restarts
// the scan at the deepest touched level.
//
// Termination: every restart strictly enlarges some level's transversal or
// deepens the chain, and both are bounded by the symmetric group on the
// acted-on points.
func buildChain(gens []perm.Perm) *chain {
	c := &chain{}
	for _, x := range gens {
		if x.IsIdentity() {
			continue
		}
		c.seed(x)
	}
	for i := range c.base {
		c.trans[i] = OrbitTransversal(c.strong[i], c.base[i])
	}

	// Closure scan with an explicit level index instead of recursion:
	// verifyLevel reports the deepest level it touched, and the scan
	// resumes there before working back toward level 0.
	for i := len(c.base) - 1; i >= 0; {
		if j := c.verifyLevel(i); j >= 0 {
			i = j
		} else {
			i--
		}
	}

	c.stabs = make([]*Group, len(c.base))
	for i := range c.base {
		c.stabs[i] = New(c.strong[i])
	}
	return c
}

// seed places generator x into the strong-generator buckets. x joins every
// level whose earlier base points it fixes, stopping at the first level
// whose base point it moves. A generator fixing all current base points
// opens a new level based at its smallest moved point.
func (c *chain) seed(x perm.Perm) {
	for j := range c.base {
		c.strong[j] = append(c.strong[j], x)
		if x.Image(c.base[j]) != c.base[j] {
			return
		}
	}
	c.base = append(c.base, x.MinMoved())
	c.strong = append(c.strong, []perm.Perm{x})
	c.trans = append(c.trans, nil)
}

// verifyLevel applies Schreier's lemma at level i: for every orbit point β
// and strong generator x, the Schreier generator u_β·x·u_{β^x}⁻¹ lies in the
// stabilizer at level i and must sieve to the identity through the chain.
//
// On the first Schreier generator that does not, the residual is appended to
// the strong sets of every level it newly belongs to (extending the base
// when it survives the whole chain), the touched transversals are rebuilt,
// and verifyLevel returns the deepest touched level so the caller can resume
// there. It returns -1 once every Schreier generator at level i sieves to
// the identity.
func (c *chain) verifyLevel(i int) int {
	for _, beta := range sortedPoints(c.trans[i]) {
		u := c.trans[i][beta]
		for _, x := range c.strong[i] {
			h := u.Compose(x).Compose(c.trans[i][x.Image(beta)].Inverse())
			if h.IsIdentity() {
				continue
			}
			res, j := sieve(h, c.base, c.trans)
			if res.IsIdentity() {
				continue
			}
			if j == len(c.base) {
				// The residual fixes every base point: the chain is
				// too shallow. Open a new level at its smallest
				// moved point.
				c.base = append(c.base, res.MinMoved())
				c.strong = append(c.strong, nil)
				c.trans = append(c.trans, nil)
			}
			// The residual fixes base[0..j-1], so it belongs to every
			// stabilizer between the current level and the failure level.
			for l := i + 1; l <= j; l++ {
				c.strong[l] = append(c.strong[l], res)
				c.trans[l] = OrbitTransversal(c.strong[l], c.base[l])
			}
			return j
		}
	}
	return -1
}

// depth returns the number of levels in the chain.
func (c *chain) depth() int {
	return len(c.base)
}
