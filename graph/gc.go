package graph

import "tlog.app/go/tlog"

// CollectGarbage reclaims every node not reachable from roots. It marks the
// transitive closure of roots through Inputs, then sweeps: surviving nodes
// keep their place in g.nodes, each survivor's Outputs is pruned down to
// the users that also survived, and all three uniquing tables are rebuilt
// from scratch over the survivors rather than patched in place, since a
// freed constant or variable node must stop being returned by Int/Float/Op
// the next time it's asked for.
func (g *Graph) CollectGarbage(roots []*Node) {
	before := len(g.nodes)

	for _, n := range g.nodes {
		n.marked = false
	}
	for _, r := range roots {
		markDescendents(r)
	}

	survivors := g.nodes[:0]
	for _, n := range g.nodes {
		if n.marked {
			survivors = append(survivors, n)
		}
	}
	g.nodes = survivors

	for _, n := range g.nodes {
		pruned := n.Outputs[:0]
		for _, out := range n.Outputs {
			if out.marked {
				pruned = append(pruned, out)
			}
		}
		n.Outputs = pruned
	}

	g.floatConsts = make(map[float64]*Node)
	g.intConsts = make(map[int64]*Node)
	g.varConsts = make(map[OpCode]*Node)
	for _, n := range g.nodes {
		switch {
		case n.Op == Const && n.Type == Float:
			g.floatConsts[n.FVal] = n
		case n.Op == Const && n.Type == Int:
			g.intConsts[n.IVal] = n
		case isVar(n.Op):
			g.varConsts[n.Op] = n
		}
	}

	tlog.Printw("graph: collect garbage", "before", before, "after", len(g.nodes), "roots", len(roots))
}

// markDescendents marks n and everything n transitively depends on through
// Inputs. It is idempotent on an already-marked subgraph: a node is only
// ever visited once per collection since the marked check short-circuits
// re-descent into shared subexpressions.
func markDescendents(n *Node) {
	if n.marked {
		return
	}
	n.marked = true
	for _, in := range n.Inputs {
		markDescendents(in)
	}
}
