// Package graph builds the whole-project logical dependency graph consumed
// by ProjectRule implementations; its analysis subpackage runs Tarjan's
// strongly-connected-components algorithm over it to detect circular
// dependencies.
package graph

import (
	"sort"

	"github.com/archguard/archguard/internal/logicalpath"
	"github.com/archguard/archguard/internal/sourcefile"
)

// DependencyGraph maps each logical module to the logical modules it
// depends on, aggregated across every SourceFile that resolves to the same
// logical path.
type DependencyGraph struct {
	edges map[logicalpath.Path]map[logicalpath.Path]bool
}

// Build aggregates the per-file dependency lists of files into a single
// module-level graph. Several files can share a logical path (submodules
// spread across a directory); their dependencies are unioned.
func Build(files []*sourcefile.SourceFile) *DependencyGraph {
	g := &DependencyGraph{edges: make(map[logicalpath.Path]map[logicalpath.Path]bool)}
	for _, f := range files {
		g.addNode(f.LogicalPath)
		for _, dep := range f.Dependencies {
			g.addEdge(f.LogicalPath, dep)
		}
	}
	return g
}

func (g *DependencyGraph) addNode(node logicalpath.Path) {
	if _, ok := g.edges[node]; !ok {
		g.edges[node] = make(map[logicalpath.Path]bool)
	}
}

func (g *DependencyGraph) addEdge(from, to logicalpath.Path) {
	g.addNode(from)
	g.addNode(to)
	g.edges[from][to] = true
}

// Nodes returns every module in the graph, sorted for determinism: map
// iteration order is randomized per run, and callers such as the cycle
// detector depend on a stable node ordering to produce a repeatable
// violation list for identical input.
func (g *DependencyGraph) Nodes() []logicalpath.Path {
	nodes := make([]logicalpath.Path, 0, len(g.edges))
	for n := range g.edges {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
	return nodes
}

// Dependencies returns the modules node directly depends on, sorted for
// the same determinism reason as Nodes.
func (g *DependencyGraph) Dependencies(node logicalpath.Path) []logicalpath.Path {
	deps := make([]logicalpath.Path, 0, len(g.edges[node]))
	for d := range g.edges[node] {
		deps = append(deps, d)
	}
	sort.Slice(deps, func(i, j int) bool { return deps[i] < deps[j] })
	return deps
}

// Truncate produces a derived graph in which every node is collapsed to its
// first depth segments, per spec §4.7. An edge that already pointed a node
// to itself before truncation (e.g. a glob self-import) never counts as a
// cycle and is dropped; an edge between two originally-distinct nodes that
// happen to truncate to the same identifier is a real in-module reference
// and is kept, even though it now reads as a self-loop.
func (g *DependencyGraph) Truncate(depth int) *DependencyGraph {
	truncated := &DependencyGraph{edges: make(map[logicalpath.Path]map[logicalpath.Path]bool)}
	for from, deps := range g.edges {
		tFrom := from.Truncate(depth)
		truncated.addNode(tFrom)
		for to := range deps {
			if from == to {
				continue
			}
			tTo := to.Truncate(depth)
			truncated.addEdge(tFrom, tTo)
		}
	}
	return truncated
}
