// Package pkg provides the core libraries for permkit permutation-group
// computations.
//
// # Overview
//
// permkit derives structural data of finite permutation groups given by
// generators. The pkg directory is organized into five areas:
//
//  1. [perm] - Permutation values (cycle notation, composition, inverses)
//  2. [group] - Group computations (orbits, stabilizer chains, membership,
//     element and word enumeration)
//  3. [groupio] - Definition files and result envelopes (TOML/JSON)
//  4. [render] - Orbit and Cayley graph rendering (DOT, SVG, PNG)
//  5. [cache], [errors], [observability] - Infrastructure shared by the
//     CLI and API
//
// # Architecture
//
// The typical data flow through permkit:
//
//	Generators (cycle notation)
//	         ↓
//	    [perm] package (parse, normalize)
//	         ↓
//	    [group] package (Schreier-Sims chain → order, base, membership)
//	         ↓
//	    [groupio] / [render] (JSON envelopes, DOT/SVG/PNG graphs)
//
// # Quick Start
//
// Build a group and query it:
//
//	import (
//	    "fmt"
//	    "github.com/permkit/permkit/pkg/group"
//	    "github.com/permkit/permkit/pkg/perm"
//	)
//
//	g := group.New([]perm.Perm{
//	    perm.MustParse("(1 2)"),
//	    perm.MustParse("(2 3)"),
//	})
//	fmt.Println(g.Order())                          // 6
//	fmt.Println(g.Contains(perm.MustParse("(1 3)"))) // true
//	for p := range g.All() {
//	    fmt.Println(p)
//	}
//
// # Main Packages
//
// [perm] - Immutable permutation values on positive integer points. Parsing
// and printing use disjoint cycle notation; composition applies the left
// factor first.
//
// [group] - Lazily computed group structure. The Schreier-Sims algorithm
// produces a base, strong generating sets and transversals; orders come from
// the orbit-stabilizer theorem, membership from sieving, and full listings
// from a word enumerator that pairs every element with a generating word.
//
// [groupio] - Reads group definitions (TOML for files, JSON for the API) and
// writes result envelopes stamped with run IDs.
//
// [render] - Emits Graphviz DOT for orbit actions and Cayley graphs, and
// renders SVG/PNG via the Graphviz bindings.
//
// [cache] - Persistent result cache with file, Redis, MongoDB and null
// backends, keyed by a hash of the generator list.
//
// [errors] - Structured errors with machine-readable codes, shared by the
// CLI and the HTTP API.
//
// [observability] - Hook registry for chain-build and cache events, so the
// core stays free of logging and metrics dependencies.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...     # All tests
//	go test ./pkg/group/  # Specific package
//	go test -run Example  # Examples only
//	go test -short ./...  # Skip the larger enumeration tests
//
// [perm]: https://pkg.go.dev/github.com/permkit/permkit/pkg/perm
// [group]: https://pkg.go.dev/github.com/permkit/permkit/pkg/group
// [groupio]: https://pkg.go.dev/github.com/permkit/permkit/pkg/groupio
// [render]: https://pkg.go.dev/github.com/permkit/permkit/pkg/render
// [cache]: https://pkg.go.dev/github.com/permkit/permkit/pkg/cache
// [errors]: https://pkg.go.dev/github.com/permkit/permkit/pkg/errors
// [observability]: https://pkg.go.dev/github.com/permkit/permkit/pkg/observability
package pkg
