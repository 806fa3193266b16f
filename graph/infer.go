package graph

// inferAndCoerce runs stage 1 of Make: arity and type-precondition checks,
// result-type computation, and coercion of operands to their required
// type. It returns the inferred result type, the (possibly coerced) input
// slice, and a non-nil shortCircuit node for the handful of opcodes whose
// stage-1 rule is an identity passthrough rather than a type (Abs of Bool,
// Floor/Ceil/Round of a non-Float input) — Make returns shortCircuit
// immediately in that case, skipping every later stage, exactly as the
// original reference does inline in its type-switch.
func inferAndCoerce(g *Graph, op OpCode, inputs []*Node) (t Type, out []*Node, shortCircuit *Node) {
	arity := func(n int) {
		if len(inputs) != n {
			fatalf("wrong number of inputs for opcode %s: got %d, want %d", op, len(inputs), n)
		}
	}

	switch op {
	case NoOp:
		arity(1)
		return inputs[0].Type, inputs, nil

	case VarX, VarY, VarT, VarC, UnboundVar:
		arity(0)
		return Int, inputs, nil

	case Plus, Minus, Times, Power, Mod:
		arity(2)
		t = Int
		if inputs[0].Type == Float || inputs[1].Type == Float {
			t = Float
		}
		out = []*Node{g.As(inputs[0], t), g.As(inputs[1], t)}
		return t, out, nil

	case Divide, ATan2:
		arity(2)
		out = []*Node{g.As(inputs[0], Float), g.As(inputs[1], Float)}
		return Float, out, nil

	case Sin, Cos, Tan, ASin, ACos, ATan, Exp, Log:
		arity(1)
		out = []*Node{g.As(inputs[0], Float)}
		return Float, out, nil

	case Abs:
		arity(1)
		if inputs[0].Type == Bool {
			return inputs[0].Type, inputs, inputs[0]
		}
		return inputs[0].Type, inputs, nil

	case Floor, Ceil, Round:
		arity(1)
		if inputs[0].Type != Float {
			return inputs[0].Type, inputs, inputs[0]
		}
		return Float, inputs, nil

	case LT, GT, LTE, GTE, EQ, NEQ:
		arity(2)
		cmp := Int
		if inputs[0].Type == Float || inputs[1].Type == Float {
			cmp = Float
		}
		out = []*Node{g.As(inputs[0], cmp), g.As(inputs[1], cmp)}
		return Bool, out, nil

	case And, Nand:
		arity(2)
		guard := g.As(inputs[0], Bool)
		return inputs[1].Type, []*Node{guard, inputs[1]}, nil

	case Or:
		arity(2)
		t = Bool
		if inputs[0].Type == Float || inputs[1].Type == Float {
			t = Float
		} else if inputs[0].Type == Int || inputs[1].Type == Int {
			t = Int
		}
		out = []*Node{g.As(inputs[0], t), g.As(inputs[1], t)}
		return t, out, nil

	case IntToFloat:
		arity(1)
		if inputs[0].Type != Int {
			fatalf("IntToFloat requires an Int input, got %s", inputs[0].Type)
		}
		return Float, inputs, nil

	case FloatToInt:
		arity(1)
		if inputs[0].Type != Float {
			fatalf("FloatToInt requires a Float input, got %s", inputs[0].Type)
		}
		return Int, inputs, nil

	case PlusImm, TimesImm:
		arity(1)
		return Int, inputs, nil

	case Load, LoadImm:
		arity(1)
		out = []*Node{g.As(inputs[0], Int)}
		return Float, out, nil

	default:
		fatalf("unknown opcode %s", op)
		return 0, nil, nil
	}
}
