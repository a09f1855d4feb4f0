package group

import "github.com/permkit/permkit/pkg/perm"

// sieve reduces g through a stabilizer chain, one level at a time. At level
// i the current residual sends base[i] to some point β; if β lies in the
// level's orbit the residual is multiplied on the right by the inverse of
// the transversal representative for β, pinning base[i], and the sieve
// advances. If β is outside the orbit the reduction fails.
//
// sieve returns the final residual and the level reached: len(base) means
// every level absorbed its part, and a failure at level i returns i. The
// permutation g belongs to the chain's group iff the residual of a full
// pass is the identity.
func sieve(g perm.Perm, base []int, trans []map[int]perm.Perm) (perm.Perm, int) {
	res := g
	for i, b := range base {
		u, ok := trans[i][res.Image(b)]
		if !ok {
			return res, i
		}
		res = res.Compose(u.Inverse())
	}
	return res, len(base)
}
