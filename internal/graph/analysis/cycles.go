// Package analysis runs Tarjan's strongly-connected-components algorithm
// over a graph.DependencyGraph to find circular dependencies, per the
// NoCircularDependencies project rule.
package analysis

import (
	"strings"

	"github.com/archguard/archguard/internal/graph"
	"github.com/archguard/archguard/internal/logicalpath"
)

// Cycle is one detected circular dependency, its nodes in traversal order.
type Cycle struct {
	Nodes []logicalpath.Path
}

// String renders the cycle as "A -> B -> C -> A".
func (c Cycle) String() string {
	if len(c.Nodes) == 0 {
		return ""
	}
	names := make([]string, 0, len(c.Nodes)+1)
	for _, n := range c.Nodes {
		names = append(names, string(n))
	}
	names = append(names, string(c.Nodes[0]))
	return strings.Join(names, " -> ")
}

// CycleDetector finds circular dependencies in a truncated dependency
// graph via Tarjan's SCC algorithm.
type CycleDetector struct {
	graph *graph.DependencyGraph
}

// NewCycleDetector wraps an already-truncated graph.
func NewCycleDetector(g *graph.DependencyGraph) *CycleDetector {
	return &CycleDetector{graph: g}
}

// FindCycles returns one Cycle per strongly-connected component of size
// greater than one, plus one Cycle per self-looping node that also has at
// least one other outgoing edge (a trivial self-loop with no siblings is
// not reported).
func (d *CycleDetector) FindCycles() []Cycle {
	nodes := d.graph.Nodes()

	index := make(map[logicalpath.Path]int, len(nodes))
	for i, n := range nodes {
		index[n] = i
	}
	adjacency := make([][]int, len(nodes))
	for i, n := range nodes {
		for _, dep := range d.graph.Dependencies(n) {
			if j, ok := index[dep]; ok {
				adjacency[i] = append(adjacency[i], j)
			}
		}
	}

	sccs := tarjanSCC(adjacency)

	var cycles []Cycle
	for _, scc := range sccs {
		if len(scc) > 1 {
			cycles = append(cycles, reconstructCycle(scc, nodes, adjacency))
			continue
		}
		v := scc[0]
		if hasSelfLoopWithSibling(v, adjacency) {
			cycles = append(cycles, Cycle{Nodes: []logicalpath.Path{nodes[v]}})
		}
	}
	return cycles
}

func hasSelfLoopWithSibling(v int, adjacency [][]int) bool {
	hasSelf := false
	others := 0
	for _, w := range adjacency[v] {
		if w == v {
			hasSelf = true
		} else {
			others++
		}
	}
	return hasSelf && others > 0
}

// tarjanSCC computes strongly connected components of the graph described
// by adjacency, an index-based adjacency list.
func tarjanSCC(adjacency [][]int) [][]int {
	n := len(adjacency)
	indices := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	for i := range indices {
		indices[i] = -1
	}
	var stack []int
	var sccs [][]int
	next := 0

	var strongconnect func(v int)
	strongconnect = func(v int) {
		indices[v] = next
		lowlink[v] = next
		next++
		stack = append(stack, v)
		onStack[v] = true

		for _, w := range adjacency[v] {
			if indices[w] == -1 {
				strongconnect(w)
				lowlink[v] = min(lowlink[v], lowlink[w])
			} else if onStack[w] {
				lowlink[v] = min(lowlink[v], indices[w])
			}
		}

		if lowlink[v] == indices[v] {
			var scc []int
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				scc = append(scc, w)
				if w == v {
					break
				}
			}
			sccs = append(sccs, scc)
		}
	}

	for v := 0; v < n; v++ {
		if indices[v] == -1 {
			strongconnect(v)
		}
	}
	return sccs
}

// reconstructCycle finds one actual cycle path within an SCC of size > 1
// via DFS restricted to the SCC's members, matching the detected component
// but expressed as a walkable path rather than an unordered set.
func reconstructCycle(scc []int, nodes []logicalpath.Path, adjacency [][]int) Cycle {
	members := make(map[int]bool, len(scc))
	for _, v := range scc {
		members[v] = true
	}
	start := scc[0]
	visited := make(map[int]bool)
	var path []int

	var dfs func(v int) bool
	dfs = func(v int) bool {
		visited[v] = true
		path = append(path, v)
		for _, w := range adjacency[v] {
			if !members[w] {
				continue
			}
			if w == start && len(path) > 1 {
				return true
			}
			if !visited[w] && dfs(w) {
				return true
			}
		}
		path = path[:len(path)-1]
		return false
	}

	if !dfs(start) {
		return Cycle{Nodes: []logicalpath.Path{nodes[start]}}
	}
	result := make([]logicalpath.Path, len(path))
	for i, v := range path {
		result[i] = nodes[v]
	}
	return Cycle{Nodes: result}
}
