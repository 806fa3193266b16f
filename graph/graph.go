package graph

import "tlog.app/go/tlog"

// Graph owns every live Node produced through it, plus the three uniquing
// tables (float constants, int constants, implicit variables) that give
// Make its hash-consing behavior.
//
// The original reference keeps this state in package-level globals (spec
// design note §9). This implementation threads it through a context object
// instead, which restores the ability to run independent compilations
// without cross-talk and turns Clear into an ordinary method instead of a
// magic reset of global state. Callers that want the reference's
// single-shared-store behavior can simply keep one Graph for the process
// lifetime.
type Graph struct {
	nodes []*Node

	floatConsts map[float64]*Node
	intConsts   map[int64]*Node
	varConsts   map[OpCode]*Node
}

// New returns an empty Graph with no live nodes.
func New() *Graph {
	return &Graph{
		floatConsts: make(map[float64]*Node),
		intConsts:   make(map[int64]*Node),
		varConsts:   make(map[OpCode]*Node),
	}
}

// Len returns the number of live nodes in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Clear deletes every node and resets all uniquing tables. Intended for
// whole-graph tear-down between independent compilations.
func (g *Graph) Clear() {
	tlog.Printw("graph: clear", "nodes", len(g.nodes))

	g.nodes = nil
	g.floatConsts = make(map[float64]*Node)
	g.intConsts = make(map[int64]*Node)
	g.varConsts = make(map[OpCode]*Node)
}
