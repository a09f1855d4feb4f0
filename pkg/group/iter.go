package group

import (
	"iter"

	"github.com/permkit/permkit/pkg/perm"
)

// All returns an iterator over every element of the group, each produced
// exactly once. The sequence is built directly from the stabilizer chain:
// it walks the cross product of the per-level transversals, deepest level
// varying fastest, accumulating the product of the chosen representatives.
// No element listing is materialized, so All is the right way to stream
// through large groups.
//
// The iteration order is deterministic but an implementation artifact, not
// a contract; use [Group.Elements] for the sorted listing. The returned
// sequence is restartable: each range over it enumerates the group from the
// start. The stabilizer chain is built on first iteration if not cached.
func (g *Group) All() iter.Seq[perm.Perm] {
	return func(yield func(perm.Perm) bool) {
		c := g.chainData()
		if c.depth() == 0 {
			yield(perm.Identity())
			return
		}
		points := make([][]int, c.depth())
		for i := range points {
			points[i] = sortedPoints(c.trans[i])
		}

		// Every element factors uniquely as u_{k-1}·...·u_1·u_0 with u_i
		// drawn from the level-i transversal, by the same decomposition
		// the sieve inverts. rest carries the product of the levels
		// chosen so far, which sit on the right end of the factorization.
		var walk func(level int, rest perm.Perm) bool
		walk = func(level int, rest perm.Perm) bool {
			if level == c.depth() {
				return yield(rest)
			}
			for _, pt := range points[level] {
				if !walk(level+1, c.trans[level][pt].Compose(rest)) {
					return false
				}
			}
			return true
		}
		walk(0, perm.Identity())
	}
}
