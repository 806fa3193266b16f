package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintExprInfix(t *testing.T) {
	g := New()

	n := g.Op(Plus, g.Op(VarX), g.Int(3))

	assert.Equal(t, "(x+3)", PrintExpr(n))
}

func TestPrintExprLoad(t *testing.T) {
	g := New()

	n := g.Op(Load, g.Op(Plus, g.Op(VarX), g.Int(7)))

	assert.Equal(t, "[x+7]", PrintExpr(n))
}

// The general fallback must print every input, not just the first one
// repeated — the bug present in the reference this was grounded on.
func TestPrintExprFallbackPrintsEachInput(t *testing.T) {
	g := New()

	n := g.Op(ATan2, g.Float(1), g.Float(2))

	assert.Equal(t, "ATan2(1, 2)", PrintExpr(n))
}

func TestPrintExprLeaf(t *testing.T) {
	g := New()

	assert.Equal(t, "x", PrintExpr(g.Op(VarX)))
	assert.Equal(t, "5", PrintExpr(g.Int(5)))
}

func TestPrintInstructionForm(t *testing.T) {
	g := New()

	x := g.Op(VarX)
	x.Reg = 2

	n := g.Op(Plus, x, g.Int(3))
	n.Reg = 5

	assert.Equal(t, "r5 = r2 + 3", Print(n))
}

func TestPrintLoadImm(t *testing.T) {
	g := New()

	x := g.Op(VarX)
	x.Reg = 1

	n := g.Op(Load, g.Op(Plus, x, g.Int(7)))
	n.Reg = 16

	assert.Equal(t, "xmm0 = Load r1 + 7", Print(n))
}
