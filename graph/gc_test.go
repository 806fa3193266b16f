package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectGarbageKeepsReachable(t *testing.T) {
	g := New()

	x := g.Op(VarX)
	keep := g.Op(Plus, x, g.Int(1))

	g.CollectGarbage([]*Node{keep})

	assert.Equal(t, 3, g.Len()) // x, Int(1), keep
}

func TestCollectGarbageDropsUnreachable(t *testing.T) {
	g := New()

	x := g.Op(VarX)
	keep := g.Op(Plus, x, g.Int(1))
	_ = g.Op(Sin, g.Op(VarY)) // unreachable from keep

	g.CollectGarbage([]*Node{keep})

	assert.Equal(t, 3, g.Len())
}

func TestCollectGarbageRestoresUniquing(t *testing.T) {
	g := New()

	keep := g.Int(7)
	g.CollectGarbage([]*Node{keep})

	assert.Same(t, keep, g.Int(7))
}

func TestCollectGarbagePrunesOutputsOfSurvivors(t *testing.T) {
	g := New()

	x := g.Op(VarX)
	keep := g.Op(Plus, x, g.Int(1))
	_ = g.Op(Sin, x) // another user of x, not reachable from keep

	g.CollectGarbage([]*Node{keep})

	assert.Equal(t, []*Node{keep}, x.Outputs)
}

func TestClearResetsGraph(t *testing.T) {
	g := New()

	g.Op(VarX)
	g.Int(1)

	g.Clear()
	assert.Equal(t, 0, g.Len())

	g.Op(VarX)
	assert.Equal(t, 1, g.Len())
}
