package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstitutePreservesUnrelatedGraph(t *testing.T) {
	g := New()

	y := g.Op(VarY)

	assert.Same(t, y, g.Substitute(y, VarX, 5))
}

func TestSubstituteRebuildsDependentGraph(t *testing.T) {
	g := New()

	x := g.Op(VarX)
	y := g.Op(VarY)
	sum := g.Op(Plus, x, y)

	got := g.Substitute(sum, VarX, 5)

	assert.Same(t, g.Op(Plus, g.Int(5), y), got)
}

func TestBindPreservesGraphWithoutUnbound(t *testing.T) {
	g := New()

	n := g.Op(Plus, g.Op(VarX), g.Int(1))

	x, y, tt, c := g.Op(UnboundVar), g.Op(UnboundVar), g.Op(UnboundVar), g.Op(UnboundVar)

	assert.Same(t, n, g.Bind(n, x, y, tt, c))
}

func TestBindReplacesMatchingUnbound(t *testing.T) {
	g := New()

	x := g.Op(UnboundVar)
	y := g.Op(UnboundVar)
	tt := g.Op(UnboundVar)
	c := g.Op(UnboundVar)

	expr := g.Op(Plus, x, g.Int(3))

	got := g.Bind(expr, x, y, tt, c)

	assert.Same(t, g.Op(Plus, g.Op(VarX), g.Int(3)), got)
}

func TestDepBitRejectsNonVariable(t *testing.T) {
	assert.Panics(t, func() {
		depBit(Plus)
	})
}
