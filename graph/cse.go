package graph

// findCSE runs stage 6 of Make: common-subexpression elimination. It scans
// inputs[0].Outputs for a node that already represents exactly this
// (op, type, ival, fval, inputs) signature and returns it if found.
//
// Scanning only inputs[0]'s back-edges suffices: any node with the same
// first input that performs the same op on the same remaining inputs must
// itself be recorded as one of that first input's outputs, by the
// back-edge invariant every construct call maintains.
func findCSE(op OpCode, t Type, inputs []*Node, ival int64, fval float64) *Node {
	if len(inputs) == 0 || len(inputs[0].Outputs) == 0 {
		return nil
	}

	for _, candidate := range inputs[0].Outputs {
		if candidate.Op != op || candidate.Type != t {
			continue
		}
		if candidate.IVal != ival || candidate.FVal != fval {
			continue
		}
		if len(candidate.Inputs) != len(inputs) {
			continue
		}
		match := true
		for j, in := range inputs {
			if candidate.Inputs[j] != in {
				match = false
				break
			}
		}
		if match {
			return candidate
		}
	}
	return nil
}
