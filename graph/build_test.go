package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntUniqueness(t *testing.T) {
	g := New()

	a := g.Int(42)
	b := g.Int(42)

	assert.Same(t, a, b)
	assert.NotSame(t, a, g.Int(43))
}

func TestFloatUniqueness(t *testing.T) {
	g := New()

	a := g.Float(1.5)
	b := g.Float(1.5)

	assert.Same(t, a, b)
}

func TestVarUniqueness(t *testing.T) {
	g := New()

	x1 := g.Op(VarX)
	x2 := g.Op(VarX)
	y := g.Op(VarY)

	assert.Same(t, x1, x2)
	assert.NotSame(t, x1, y)
}

func TestUnboundVarNotUnique(t *testing.T) {
	g := New()

	a := g.Op(UnboundVar)
	b := g.Op(UnboundVar)

	assert.NotSame(t, a, b)
}

func TestBackEdgeConsistency(t *testing.T) {
	g := New()

	x := g.Op(VarX)
	y := g.Op(VarY)
	sum := g.Op(Plus, x, y)

	assert.Contains(t, x.Outputs, sum)
	assert.Contains(t, y.Outputs, sum)
}

func TestConstructingConstDirectlyIsFatal(t *testing.T) {
	g := New()

	assert.Panics(t, func() {
		g.Make(Const, nil, 5, 0)
	})
}

// Times(3, 4) folds to the uniqued int constant 12.
func TestFoldDominatesConstruct(t *testing.T) {
	g := New()

	n := g.Op(Times, g.Int(3), g.Int(4))

	assert.Equal(t, Const, n.Op)
	assert.Equal(t, int64(12), n.IVal)
	assert.Same(t, n, g.Int(12))
}

func TestCSE(t *testing.T) {
	g := New()

	x := g.Op(VarX)
	a := g.Op(Sin, x)
	b := g.Op(Sin, x)

	assert.Same(t, a, b)
	assert.Equal(t, 1, len(x.Outputs))
}

// Load(Plus(VarX, make(7))) with ival=0 fuses to a LoadImm with input VarX
// and ival=7.
func TestLoadFusion(t *testing.T) {
	g := New()

	x := g.Op(VarX)
	load := g.Op(Load, g.Op(Plus, x, g.Int(7)))

	assert.Equal(t, LoadImm, load.Op)
	assert.Equal(t, int64(7), load.IVal)
	assert.Equal(t, []*Node{x}, load.Inputs)
}

// Times(Plus(VarX, VarY), 3) distributes since VarY and the constant are
// both lower level than VarX.
func TestTimesDistributesOverPlus(t *testing.T) {
	g := New()

	x := g.Op(VarX)
	y := g.Op(VarY)
	three := g.Int(3)

	got := g.Op(Times, g.Op(Plus, x, y), three)

	want := g.Op(Plus, g.Op(Times, x, three), g.Op(Times, y, three))

	assert.Same(t, want, got)
}

func TestAbsOfBoolIsIdentity(t *testing.T) {
	g := New()

	b := g.Op(NEQ, g.Int(1), g.Int(0))
	n := g.Op(Abs, b)

	assert.Same(t, b, n)
}

func TestFloorOfIntIsIdentity(t *testing.T) {
	g := New()

	n := g.Op(Floor, g.Int(5))

	assert.Same(t, g.Int(5), n)
}

func TestDivideAlwaysCoercesToFloat(t *testing.T) {
	g := New()

	n := g.Op(Divide, g.Int(1), g.Int(4))

	assert.Equal(t, Float, n.Type)
	assert.Equal(t, 0.25, n.FVal)
}
