// Package perm implements permutations on finite subsets of the positive
// integers.
//
// # Overview
//
// A [Perm] is an immutable bijection on {1, ..., n}. It is the value type
// consumed by the group-theory packages: composition, inversion, point
// images, equality and a total order are all provided here, so higher layers
// never touch the underlying image table.
//
// # Conventions
//
// Composition reads left to right: p.Compose(q) applies p first, then q.
// Writing x^p for the image of x under p, this is the usual right-action
// rule x^(p·q) = (x^p)^q.
//
// Permutations are written and parsed in cycle notation:
//
//	p := perm.MustParse("(1 2)(3 4 5)")
//	p.Image(3)   // 4
//	p.String()   // "(1 2)(3 4 5)"
//
// Trailing fixed points are normalized away, so perm.MustParse("(1 2)") and
// the same permutation viewed inside a larger symmetric group are equal.
//
// # Ordering
//
// [Perm.Compare] orders permutations lexicographically by image sequence,
// with the identity first. Group element listings sort with it to produce
// deterministic output.
package perm
