package graph

import "sort"

// term is one signed addend collected out of a Plus/Minus/PlusImm chain.
type term struct {
	node     *Node
	positive bool
}

// RebalanceSum normalizes a chain of Plus/Minus/PlusImm into the form that
// minimizes the level of the outermost term, so loop-invariant prefixes can
// be hoisted by later passes. Nodes whose op is not Plus, Minus or PlusImm
// are returned unchanged. The result is idempotent:
// RebalanceSum(RebalanceSum(n)) == RebalanceSum(n) by reference, since
// re-running the same deterministic rebuild over an already-canonical tree
// re-derives the identical sequence of Make calls and hits CSE throughout.
func (g *Graph) RebalanceSum(n *Node) *Node {
	if n.Op != Plus && n.Op != Minus && n.Op != PlusImm {
		return n
	}

	var rawTerms []term
	collectSum(g, n, true, &rawTerms)

	var constTerms, nonConst []term
	for _, tm := range rawTerms {
		if tm.node.Op == Const {
			constTerms = append(constTerms, tm)
		} else {
			nonConst = append(nonConst, tm)
		}
	}

	if len(nonConst) == 0 {
		// Unreachable under the invariants Make maintains (a fully
		// constant sum is folded away before it ever reaches
		// RebalanceSum), but handled defensively: fold the constants
		// directly rather than indexing an empty slice.
		return foldConstTerms(g, n.Type, constTerms)
	}

	sort.SliceStable(nonConst, func(i, j int) bool {
		return nonConst[i].node.Level < nonConst[j].node.Level
	})

	t, tPos := nonConst[0].node, nonConst[0].positive

	if n.Type == Float {
		c := 0.0
		for _, ct := range constTerms {
			if ct.positive {
				c += ct.node.FVal
			} else {
				c -= ct.node.FVal
			}
		}
		if c != 0 {
			if tPos {
				t = g.Op(Plus, g.Float(c), t)
			} else {
				t = g.Op(Minus, g.Float(c), t)
			}
		}
	}

	for i := 1; i < len(nonConst); i++ {
		next, nextPos := nonConst[i].node, nonConst[i].positive
		switch {
		case tPos == nextPos:
			t = g.Op(Plus, t, next)
		case tPos && !nextPos:
			t = g.Op(Minus, t, next)
		default: // !tPos && nextPos
			tPos = true
			t = g.Op(Minus, next, t)
		}
	}

	if n.Type == Int {
		c := int64(0)
		for _, ct := range constTerms {
			if ct.positive {
				c += ct.node.IVal
			} else {
				c -= ct.node.IVal
			}
		}
		if c != 0 {
			if tPos {
				t = g.Imm(PlusImm, c, t)
			} else {
				t = g.Op(Minus, g.Int(c), t)
			}
		}
	}

	return t
}

// collectSum flattens a Plus/Minus/PlusImm chain into its signed terms.
// Plus descends both children with the current sign; Minus descends its
// left child with the current sign and its right child with the sign
// flipped; PlusImm descends its operand with the current sign and appends
// its integer immediate as its own always-positive constant term — matched
// from the original reference, including for a PlusImm nested under a
// negating Minus, where the immediate's sign is not flipped. Anything else
// is a leaf term at the current sign.
func collectSum(g *Graph, n *Node, positive bool, terms *[]term) {
	switch n.Op {
	case Plus:
		collectSum(g, n.Inputs[0], positive, terms)
		collectSum(g, n.Inputs[1], positive, terms)
	case Minus:
		collectSum(g, n.Inputs[0], positive, terms)
		collectSum(g, n.Inputs[1], !positive, terms)
	case PlusImm:
		collectSum(g, n.Inputs[0], positive, terms)
		*terms = append(*terms, term{g.Int(n.IVal), true})
	default:
		*terms = append(*terms, term{n, positive})
	}
}

func foldConstTerms(g *Graph, t Type, terms []term) *Node {
	if t == Float {
		c := 0.0
		for _, ct := range terms {
			if ct.positive {
				c += ct.node.FVal
			} else {
				c -= ct.node.FVal
			}
		}
		return g.Float(c)
	}
	c := int64(0)
	for _, ct := range terms {
		if ct.positive {
			c += ct.node.IVal
		} else {
			c -= ct.node.IVal
		}
	}
	return g.Int(c)
}

// Optimize applies any optimization that must run after generation is
// otherwise complete. Today that is a single final RebalanceSum at the
// root.
func (g *Graph) Optimize(n *Node) *Node {
	return g.RebalanceSum(n)
}
