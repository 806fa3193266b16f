package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Plus(VarX, make(0)) only folds its zero term away after a final
// rebalance, not at construction time.
func TestRebalanceFoldsZeroTerm(t *testing.T) {
	g := New()

	x := g.Op(VarX)
	sum := g.Op(Plus, x, g.Int(0))

	assert.NotSame(t, x, sum, "const-zero term should not fold at construction time")
	assert.Same(t, x, g.Optimize(sum))
}

// rebalanceSum(Plus(make(1), Plus(VarX, make(2)))) on Int yields
// PlusImm(VarX, 3).
func TestRebalanceCombinesConstants(t *testing.T) {
	g := New()

	x := g.Op(VarX)
	n := g.Op(Plus, g.Int(1), g.Op(Plus, x, g.Int(2)))

	got := g.RebalanceSum(n)

	assert.Equal(t, PlusImm, got.Op)
	assert.Equal(t, int64(3), got.IVal)
	assert.Equal(t, []*Node{x}, got.Inputs)
}

func TestRebalanceIdempotent(t *testing.T) {
	g := New()

	x := g.Op(VarX)
	y := g.Op(VarY)
	n := g.Op(Minus, g.Op(Plus, x, g.Int(4)), y)

	once := g.RebalanceSum(n)
	twice := g.RebalanceSum(once)

	assert.Same(t, once, twice)
}

func TestRebalanceNonSumIsIdentity(t *testing.T) {
	g := New()

	n := g.Op(Times, g.Op(VarX), g.Int(2))

	assert.Same(t, n, g.RebalanceSum(n))
}

func TestRebalanceSortsByAscendingLevel(t *testing.T) {
	g := New()

	x := g.Op(VarX) // level 3
	y := g.Op(VarY) // level 2

	n := g.Op(Plus, x, y)

	got := g.RebalanceSum(n)

	assert.Equal(t, Plus, got.Op)
	assert.Same(t, y, got.Inputs[0])
	assert.Same(t, x, got.Inputs[1])
}
