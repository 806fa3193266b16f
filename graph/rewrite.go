package graph

// applyAlgebraicRewrites runs stage 3 of Make: strength reduction and
// sum-rebalancing of children, in the fixed order the pipeline contract
// requires. Each rule may return early with its own canonical replacement,
// itself built through a recursive call to Make so every later stage still
// runs over the rewritten expression.
func applyAlgebraicRewrites(g *Graph, op OpCode, t Type, inputs []*Node, ival int64) (*Node, []*Node, bool) {
	// 1. NoOp elimination.
	if op == NoOp {
		return inputs[0], inputs, true
	}

	// 2. Divide-to-multiply hoist: push a loop-invariant reciprocal out of
	// the loop by rewriting x/y as x*(1/y) when y is more constant than x.
	if op == Divide && inputs[1].Level < inputs[0].Level {
		recip := g.Op(Divide, g.Float(1), inputs[1])
		return g.Op(Times, inputs[0], recip), inputs, true
	}

	// 3. Distribute multiplication over addition: (x+a)*b = x*b + a*b when
	// that hoists a*b to a lower level than x.
	if op == Times {
		var x, a, b *Node
		switch {
		case inputs[0].Op == Plus:
			b = inputs[1]
			x, a = inputs[0].Inputs[1], inputs[0].Inputs[0]
		case inputs[1].Op == Plus:
			b = inputs[0]
			x, a = inputs[1].Inputs[1], inputs[1].Inputs[0]
		}

		if x != nil {
			if x.Level < a.Level {
				x, a = a, x
			}
			if x.Level > a.Level && x.Level > b.Level {
				return g.Op(Plus, g.Op(Times, x, b), g.Op(Times, a, b)), inputs, true
			}
		}

		if inputs[0].Op == PlusImm {
			y, k, b := inputs[0].Inputs[0], inputs[0].IVal, inputs[1]
			return g.Op(Plus, g.Op(Times, y, b), g.Op(Times, b, g.Int(k))), inputs, true
		}
	}

	// 4. Re-associate products to push constants inward: (x*a)*b =
	// x*(a*b) when a and b are both more constant than x.
	if op == Times {
		var x, a, b *Node
		switch {
		case inputs[0].Op == Times:
			x, a, b = inputs[0].Inputs[0], inputs[0].Inputs[1], inputs[1]
		case inputs[1].Op == Times:
			x, a, b = inputs[1].Inputs[0], inputs[1].Inputs[1], inputs[0]
		}

		if x != nil {
			if x.Level < a.Level {
				x, a = a, x
			}
			if x.Level > a.Level && x.Level > b.Level {
				return g.Op(Times, x, g.Op(Times, a, b)), inputs, true
			}
		}
	}

	// 5. Whenever a non-additive context consumes a sum, canonicalize that
	// sum first so later hoisting sees it in rebalanced form.
	if op != Plus && op != Minus && op != PlusImm {
		rebalanced := make([]*Node, len(inputs))
		for i, in := range inputs {
			rebalanced[i] = g.RebalanceSum(in)
		}
		inputs = rebalanced
	}

	return nil, inputs, false
}
