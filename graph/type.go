// Package graph builds and optimizes the small typed expression DAG used by
// an image-processing JIT: arithmetic, comparisons, logical connectives,
// transcendentals, casts, memory loads and a handful of fused immediate
// forms, all over four implicit iteration variables (x, y, t, c) and
// unbound placeholders.
//
// Make is the sole entry point for constructing nodes. Every call performs
// type inference and coercion, constant folding, algebraic strength
// reduction, sum rebalancing, instruction fusion and hash-consing in one
// fixed pipeline, so the node it returns is always the canonical form of
// the requested expression over the given inputs.
package graph

// Type is one of the three primitive types nodes can carry.
type Type int

const (
	Int Type = iota
	Float
	Bool
)

func (t Type) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	default:
		return "type?"
	}
}
