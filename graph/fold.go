package graph

// tryFold runs stage 2 of Make: if every input is constant (Deps == 0) and
// op has a defined fold, it computes the result and returns the uniqued
// constant node for it. Folding is defined only for Plus, Minus, Times,
// Divide, PlusImm, TimesImm, And, Or, Nand, IntToFloat and FloatToInt;
// transcendentals and comparisons fall through to normal construction, as
// the original reference leaves them unfolded too.
//
// Bool values have no dedicated constant representation — there is no
// Graph.Bool — so a folded And/Nand/Or reads and writes Bool truth values
// through the same IVal field Int uses, exactly as the original reference
// does (it stores Bool in the same `ival` slot and never builds a
// type-Bool Const node).
func tryFold(g *Graph, op OpCode, t Type, inputs []*Node, ival int64) (*Node, bool) {
	if len(inputs) == 0 {
		return nil, false
	}
	for _, in := range inputs {
		if !in.isConstant() {
			return nil, false
		}
	}

	switch op {
	case Plus:
		if t == Float {
			return g.Float(inputs[0].FVal + inputs[1].FVal), true
		}
		return g.Int(inputs[0].IVal + inputs[1].IVal), true

	case Minus:
		if t == Float {
			return g.Float(inputs[0].FVal - inputs[1].FVal), true
		}
		return g.Int(inputs[0].IVal - inputs[1].IVal), true

	case Times:
		if t == Float {
			return g.Float(inputs[0].FVal * inputs[1].FVal), true
		}
		return g.Int(inputs[0].IVal * inputs[1].IVal), true

	case PlusImm:
		return g.Int(inputs[0].IVal + ival), true

	case TimesImm:
		return g.Int(inputs[0].IVal * ival), true

	case Divide:
		return g.Float(inputs[0].FVal / inputs[1].FVal), true

	case And:
		guard, v := inputs[0], inputs[1]
		if guard.IVal != 0 {
			if v.Type == Float {
				return g.Float(v.FVal), true
			}
			return g.Int(v.IVal), true
		}
		if v.Type == Float {
			return g.Float(0), true
		}
		return g.Int(0), true

	case Nand:
		guard, v := inputs[0], inputs[1]
		if guard.IVal == 0 {
			if v.Type == Float {
				return g.Float(v.FVal), true
			}
			return g.Int(v.IVal), true
		}
		if v.Type == Float {
			return g.Float(0), true
		}
		return g.Int(0), true

	case Or:
		if t == Float {
			return g.Float(inputs[0].FVal + inputs[1].FVal), true
		}
		// Bitwise OR on 0/1-valued Bool operands is logical OR, so this
		// one branch serves both the Int and Bool result types.
		return g.Int(inputs[0].IVal | inputs[1].IVal), true

	case IntToFloat:
		return g.Float(float64(inputs[0].IVal)), true

	case FloatToInt:
		return g.Int(int64(inputs[0].FVal)), true

	default:
		return nil, false
	}
}
