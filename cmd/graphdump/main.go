// Command graphdump builds a handful of canonical expressions through the
// graph package and prints their canonicalized and rebalanced forms. It
// exists as an observability aid over the package, not as a compiler
// front end: there is no input language, no file format, nothing to
// parse.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mpeaton37/Halide/graph"
	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"
)

func main() {
	dumpCmd := &cli.Command{
		Name:   "dump",
		Action: dumpAct,
		Args:   cli.Args{},
	}

	gcCmd := &cli.Command{
		Name:   "gc",
		Action: gcAct,
		Args:   cli.Args{},
	}

	app := &cli.Command{
		Name:        "graphdump",
		Description: "graphdump builds sample expression graphs and prints them",
		Commands: []*cli.Command{
			dumpCmd,
			gcCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func dumpAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	tr, _ := tlog.SpawnFromContextAndWrap(ctx, "graphdump: dump")
	defer tr.Finish("err", &err)

	g := graph.New()

	for _, ex := range sampleExprs(g) {
		opt := g.Optimize(ex)

		fmt.Printf("expr:  %s\n", graph.PrintExpr(ex))
		fmt.Printf("optim: %s\n", graph.PrintExpr(opt))
		fmt.Printf("instr: %s\n\n", graph.Print(opt))
	}

	return nil
}

func gcAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	tr, _ := tlog.SpawnFromContextAndWrap(ctx, "graphdump: gc")
	defer tr.Finish("err", &err)

	g := graph.New()

	roots := sampleExprs(g)
	before := g.Len()

	g.CollectGarbage(roots[:1])

	tr.Printw("collected", "before", before, "after", g.Len())

	if g.Len() > before {
		return errors.New("collect garbage grew the graph: %d -> %d", before, g.Len())
	}

	return nil
}

// sampleExprs builds a few expressions exercising the rewrite and fusion
// rules: a sum that rebalances, a load that fuses to LoadImm, and a times
// that distributes over a sum.
func sampleExprs(g *graph.Graph) []*graph.Node {
	sum := g.Op(graph.Plus, g.Int(1), g.Op(graph.Plus, g.Op(graph.VarX), g.Int(2)))

	load := g.Op(graph.Load, g.Op(graph.Plus, g.Op(graph.VarX), g.Int(7)))

	dist := g.Op(graph.Times, g.Op(graph.Plus, g.Op(graph.VarX), g.Op(graph.VarY)), g.Int(3))

	return []*graph.Node{sum, load, dist}
}
