package graph

// tryFuse runs stage 5 of Make: combining an arithmetic op with an
// immediate neighbor into a single fused opcode. It returns nil if no
// fusion rule applies, leaving the normal construction path to run.
func tryFuse(g *Graph, op OpCode, t Type, inputs []*Node, ival int64) *Node {
	switch op {
	case Load, LoadImm:
		base := inputs[0]
		switch {
		case base.Op == Plus && base.Inputs[0].Op == Const:
			return g.Imm(LoadImm, base.Inputs[0].IVal+ival, base.Inputs[1])
		case base.Op == Plus && base.Inputs[1].Op == Const:
			return g.Imm(LoadImm, base.Inputs[1].IVal+ival, base.Inputs[0])
		case base.Op == Minus && base.Inputs[1].Op == Const:
			return g.Imm(LoadImm, -base.Inputs[1].IVal+ival, base.Inputs[0])
		case base.Op == PlusImm:
			return g.Imm(LoadImm, base.IVal+ival, base.Inputs[0])
		}
		return nil

	case Times:
		if t != Int {
			return nil
		}
		left, right := inputs[0], inputs[1]
		switch {
		case left.Op == Const:
			return g.Imm(TimesImm, left.IVal, right)
		case right.Op == Const:
			return g.Imm(TimesImm, right.IVal, left)
		}
		return nil

	default:
		return nil
	}
}
