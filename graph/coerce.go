package graph

// As returns a node equivalent to n with the requested type, inserting the
// canonical cast op when n.Type differs from t: Int<->Float via
// IntToFloat/FloatToInt, any->Bool via NEQ against a zero of n's type,
// Bool->numeric via And against a one of the target type. Identity when
// the types already match. Requesting an undefined coercion is fatal.
func (g *Graph) As(n *Node, t Type) *Node {
	if n.Type == t {
		return n
	}

	switch n.Type {
	case Int:
		switch t {
		case Float:
			return g.Op(IntToFloat, n)
		case Bool:
			return g.Op(NEQ, n, g.Int(0))
		}

	case Bool:
		switch t {
		case Float:
			return g.Op(And, n, g.Float(1))
		case Int:
			return g.Op(And, n, g.Int(1))
		}

	case Float:
		switch t {
		case Bool:
			return g.Op(NEQ, n, g.Float(0))
		case Int:
			return g.Op(FloatToInt, n)
		}
	}

	fatalf("no coercion defined from %s to %s", n.Type, t)
	return nil
}
