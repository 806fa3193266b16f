package graph

// Int returns the uniqued Int constant node for v. For any two calls with
// equal v, the returned reference is identical.
func (g *Graph) Int(v int64) *Node {
	if n, ok := g.intConsts[v]; ok {
		return n
	}
	n := g.construct(Int, Const, nil, v, 0)
	g.intConsts[v] = n
	return n
}

// Float returns the uniqued Float constant node for v.
func (g *Graph) Float(v float64) *Node {
	if n, ok := g.floatConsts[v]; ok {
		return n
	}
	n := g.construct(Float, Const, nil, 0, v)
	g.floatConsts[v] = n
	return n
}

// Op is the common-case entry point for building a node with no immediate:
// Op(Plus, x, y), Op(Sin, x), Op(VarX).
func (g *Graph) Op(op OpCode, inputs ...*Node) *Node {
	return g.Make(op, inputs, 0, 0)
}

// Imm builds a node that carries an integer immediate alongside its inputs
// — PlusImm, TimesImm, LoadImm.
func (g *Graph) Imm(op OpCode, ival int64, inputs ...*Node) *Node {
	return g.Make(op, inputs, ival, 0)
}

// Make is the factory's internal routine: given an opcode, its inputs, and
// an optional integer/float immediate, it returns the canonical node for
// that expression. Clients do not construct Const this way — use Int or
// Float — attempting to do so is fatal.
//
// Make runs a fixed seven-stage pipeline, each stage able to return early:
//
//  1. type inference & coercion
//  2. constant folding
//  3. algebraic rewrites (strength reduction, rebalancing of children)
//  4. variable uniquing
//  5. fusion (Load/LoadImm, TimesImm)
//  6. common-subexpression elimination
//  7. construct
//
// Reordering these is not safe: folding before coercion would mis-type a
// mixed expression, and CSE after fusion finds strictly more matches than
// CSE before it.
func (g *Graph) Make(op OpCode, inputs []*Node, ival int64, fval float64) *Node {
	if op == Const {
		fatalf("Const must be built with Graph.Int or Graph.Float, not Make")
	}

	t, inputs, shortCircuit := inferAndCoerce(g, op, inputs)
	if shortCircuit != nil {
		return shortCircuit
	}

	if n, ok := tryFold(g, op, t, inputs, ival); ok {
		return n
	}

	rewritten, inputs, shortCircuited := applyAlgebraicRewrites(g, op, t, inputs, ival)
	if shortCircuited {
		return rewritten
	}

	if isVar(op) {
		if n, ok := g.varConsts[op]; ok {
			return n
		}
		n := g.construct(t, op, nil, 0, 0)
		g.varConsts[op] = n
		return n
	}
	if op == UnboundVar {
		return g.construct(t, op, nil, 0, 0)
	}

	if n := tryFuse(g, op, t, inputs, ival); n != nil {
		return n
	}

	if n := findCSE(op, t, inputs, ival, fval); n != nil {
		return n
	}

	return g.construct(t, op, inputs, ival, fval)
}
