// Package render draws group structure as Graphviz DOT and SVG.
//
// Two views are provided. [OrbitDOT] shows the action of the generators on
// one orbit: points are nodes and every generator application is a labeled
// edge. [CayleyDOT] shows the Cayley graph of the whole group: elements are
// nodes and right multiplication by each generator is an edge. Both emit
// plain DOT; [SVG] and [PNG] render DOT to images via Graphviz.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/permkit/permkit/pkg/group"
)

// edge colors cycle per generator index so the generator driving each arrow
// stays readable without a legend.
var edgeColors = []string{"#1f77b4", "#d62728", "#2ca02c", "#9467bd", "#ff7f0e", "#8c564b"}

func edgeColor(i int) string {
	return edgeColors[i%len(edgeColors)]
}

// OrbitDOT returns a Graphviz DOT digraph of the orbit of point p under the
// group's generators. Each orbit point becomes a node; for every generator
// s with q^s != q an edge q -> q^s is drawn, labeled with the generator's
// cycle notation and colored per generator.
func OrbitDOT(g *group.Group, p int) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Orbit {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=14, shape=circle, style=filled, fillcolor=white];\n\n")

	orbit := g.Orbit(p)
	for _, q := range orbit {
		if q == p {
			fmt.Fprintf(&buf, "  p%d [label=\"%d\", penwidth=2];\n", q, q)
		} else {
			fmt.Fprintf(&buf, "  p%d [label=\"%d\"];\n", q, q)
		}
	}
	for _, q := range orbit {
		for i, s := range g.Generators() {
			if r := s.Image(q); r != q {
				fmt.Fprintf(&buf, "  p%d -> p%d [label=%q, color=%q, fontcolor=%q];\n",
					q, r, s.String(), edgeColor(i), edgeColor(i))
			}
		}
	}
	buf.WriteString("}\n")
	return buf.String()
}

// CayleyDOT returns a Graphviz DOT digraph of the group's Cayley graph with
// respect to its generators: one node per element (labeled with its cycle
// notation) and one edge per element/generator pair for right
// multiplication. Self-loops from identity generators are omitted.
//
// The node count equals the group order, so callers should bound the degree
// before rendering; see [group.Group.Order].
func CayleyDOT(g *group.Group) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Cayley {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, shape=box, style=\"filled,rounded\", fillcolor=white];\n\n")

	elems := g.Elements()
	id := make(map[string]int, len(elems))
	for i, e := range elems {
		id[e.String()] = i
		fmt.Fprintf(&buf, "  n%d [label=%q];\n", i, e.String())
	}
	for i, e := range elems {
		for gi, s := range g.Generators() {
			next := e.Compose(s)
			j := id[next.String()]
			if j == i {
				continue
			}
			fmt.Fprintf(&buf, "  n%d -> n%d [color=%q];\n", i, j, edgeColor(gi))
		}
	}
	buf.WriteString("}\n")
	return buf.String()
}

// SVG renders a DOT digraph to a complete SVG document via Graphviz.
//
// SVG requires the Graphviz bindings (github.com/goccy/go-graphviz) to
// initialize; errors from initialization, DOT parsing and rendering are
// wrapped with %w for errors.Is/As.
func SVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// PNG renders a DOT digraph to a PNG image via Graphviz.
func PNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(context.Background())
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	graph, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer graph.Close()

	var buf bytes.Buffer
	if err := gv.Render(context.Background(), graph, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
