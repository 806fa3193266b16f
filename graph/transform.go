package graph

// depBit maps one of the four implicit variable opcodes to its dependency
// flag. Passing a non-variable opcode is fatal.
func depBit(v OpCode) Deps {
	switch v {
	case VarX:
		return DepX
	case VarY:
		return DepY
	case VarT:
		return DepT
	case VarC:
		return DepC
	default:
		fatalf("%s is not a variable", v)
		return 0
	}
}

// Substitute returns a graph equivalent to n with every occurrence of the
// implicit variable v replaced by the integer constant val. If n does not
// depend on v, Substitute returns n unchanged — the dep-bit check makes
// this a cheap no-op over the large parts of a graph that don't mention v,
// instead of an unconditional deep rebuild.
func (g *Graph) Substitute(n *Node, v OpCode, val int64) *Node {
	if n.Op == v {
		return g.Int(val)
	}

	bit := depBit(v)
	if n.Deps&bit == 0 {
		return n
	}

	newInputs := make([]*Node, len(n.Inputs))
	for i, in := range n.Inputs {
		newInputs[i] = g.Substitute(in, v, val)
	}
	return g.Make(n.Op, newInputs, n.IVal, n.FVal)
}

// Bind replaces every UnboundVar node that is identical by reference to x,
// y, t or c with the corresponding implicit variable, rebuilding through
// Make so rewrites re-run over the substituted graph. If n has no unbound
// dependency, Bind returns n unchanged.
func (g *Graph) Bind(n, x, y, t, c *Node) *Node {
	if n.Deps&DepUnbound == 0 {
		return n
	}
	switch n {
	case x:
		return g.Op(VarX)
	case y:
		return g.Op(VarY)
	case t:
		return g.Op(VarT)
	case c:
		return g.Op(VarC)
	}

	newInputs := make([]*Node, len(n.Inputs))
	for i, in := range n.Inputs {
		newInputs[i] = g.Bind(in, x, y, t, c)
	}
	return g.Make(n.Op, newInputs, n.IVal, n.FVal)
}
