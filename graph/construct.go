package graph

// construct is stage 7 of Make: allocate a new node, compute its deps and
// level from its inputs, register it in the graph, and wire up the
// back-edges (each input's Outputs gains this node). This is the only
// place a *Node literal is ever created.
func (g *Graph) construct(t Type, op OpCode, inputs []*Node, ival int64, fval float64) *Node {
	n := &Node{
		Type:   t,
		Op:     op,
		Inputs: inputs,
		IVal:   ival,
		FVal:   fval,
		Reg:    -1,
		Width:  1,
	}

	n.Deps = selfDep(op)
	for _, in := range inputs {
		n.Deps |= in.Deps
	}
	n.Level = level(n.Deps)

	g.nodes = append(g.nodes, n)
	for _, in := range inputs {
		in.addOutput(n)
	}

	return n
}
