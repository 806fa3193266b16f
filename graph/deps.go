package graph

// Deps is a bitmask of which implicit variables, memory or unbound
// placeholders a node transitively depends on.
type Deps uint8

const (
	DepX Deps = 1 << iota
	DepY
	DepT
	DepC
	DepMem
	DepUnbound
)

// selfDep returns the dependency bit a node contributes on its own account,
// over and above the union of its inputs' deps. Only VarX/Y/T/C, Load and
// UnboundVar contribute a self bit — notably LoadImm does not, matching
// the original reference exactly (IRNode's constructor only sets DepMem for
// op == Load).
func selfDep(op OpCode) Deps {
	switch op {
	case VarX:
		return DepX
	case VarY:
		return DepY
	case VarT:
		return DepT
	case VarC:
		return DepC
	case Load:
		return DepMem
	case UnboundVar:
		return DepUnbound
	default:
		return 0
	}
}

// level ranks a dependency mask by how "constant" it is: level 0 is fully
// loop-invariant, higher levels are bound to iteration variables further
// into the loop nest. DepC and DepMem are deliberately conflated at level 4
// (spec §9): a node that only touches memory, not any iteration variable,
// is still treated as innermost, encoding the assumption that loads are
// sequenced with channel iteration.
func level(d Deps) int {
	switch {
	case d&DepUnbound != 0:
		return 99
	case d&(DepC|DepMem) != 0:
		return 4
	case d&DepX != 0:
		return 3
	case d&DepY != 0:
		return 2
	case d&DepT != 0:
		return 1
	default:
		return 0
	}
}

// isConstant reports whether a node's value can be computed at graph-build
// time: it has no dependency on any iteration variable, memory, or unbound
// placeholder.
func (n *Node) isConstant() bool {
	return n.Deps == 0
}
