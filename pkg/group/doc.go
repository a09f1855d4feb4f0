// Package group implements computational permutation-group theory: orbits,
// stabilizer chains, membership testing, order computation and element
// enumeration for groups given by finite generating sets.
//
// # Overview
//
// A [Group] is defined by a list of [perm.Perm] generators and never
// materializes itself naively. Structural questions are answered through a
// base and strong generating set computed by the deterministic incremental
// Schreier-Sims algorithm:
//
//	g := group.New([]perm.Perm{
//	    perm.MustParse("(1 2)"),
//	    perm.MustParse("(2 3)"),
//	})
//	g.Order()                          // 6
//	g.Contains(perm.MustParse("(1 3)")) // true
//	g.Base()                           // [1 2]
//
// Derived data is computed on first use and cached for the group's lifetime.
// Accessing Order builds the stabilizer chain if needed; it does not trigger
// the independent element/word enumeration behind [Group.Elements] and
// [Group.Words].
//
// # Stabilizer chains
//
// The chain consists of a base (points whose pointwise stabilizer is
// trivial), per-level strong generating sets, the stabilizer subgroups they
// generate, and per-level orbit transversals. The group order is the product
// of the transversal sizes (orbit-stabilizer theorem), and membership is
// decided by sieving a permutation through the chain ([Group.Sieve]).
//
// # Enumeration
//
// Two independent enumerations are available. [Group.All] streams every
// element exactly once from the cross product of the chain's transversals
// without building a list. [Group.Elements] and [Group.Words] materialize
// the sorted element list together with short generating words, grown
// subgroup by subgroup via breadth-first coset discovery.
//
// # Costs
//
// All computations terminate on finite domains, but group order is
// factorial in the degree. Order and membership stay cheap through the
// chain; full enumeration is exponential and callers should bound the
// degree before requesting it.
package group
