package search

import (
	"context"
	"time"

	"github.com/herohde/jieqi/pkg/board"
	"github.com/herohde/jieqi/pkg/eval"
	"github.com/seekerror/logw"
)

// PV is the result of searching to a given depth: node count, score from the
// side-to-move's perspective, and the principal variation.
type PV struct {
	Depth int
	Nodes uint64
	Score eval.Score
	Moves []board.Move
	Time  time.Duration
}

// Searcher searches b to a fixed depth and returns the node count, score,
// and principal variation.
type Searcher interface {
	Search(ctx context.Context, b *board.Board, depth int) (uint64, eval.Score, []board.Move)
}

// IterativeDeepening runs a synchronous fixed-depth search repeatedly at
// increasing depths up to maxDepth, returning only the final iteration's
// result. There is no time budget or cancellation: spec.md calls for a
// single-threaded engine that always completes the requested depth.
type IterativeDeepening struct {
	Search Searcher
}

// Run searches b up to maxDepth and returns the deepest iteration's PV.
//
// b.BestMoveLast is reset to empty between iterations, exactly as the
// reference engine does: the intent of reusing the previous iteration's
// principal variation to seed move ordering at the next depth never
// actually takes effect, since the reset happens before the seed could be
// read back out. Preserved as-is rather than "fixed" -- the move ordering
// behavior of a fixed maxDepth is part of what this package reproduces.
func (d IterativeDeepening) Run(ctx context.Context, b *board.Board, maxDepth int) PV {
	if maxDepth <= 3 {
		return d.runOnce(ctx, b, maxDepth)
	}

	var pv PV
	for depth := 3; depth <= maxDepth; depth++ {
		pv = d.runOnce(ctx, b, depth)
		if depth == maxDepth {
			return pv
		}
		b.BestMoveLast = nil
	}
	return pv
}

func (d IterativeDeepening) runOnce(ctx context.Context, b *board.Board, depth int) PV {
	start := time.Now()
	nodes, score, moves := d.Search.Search(ctx, b, depth)

	pv := PV{
		Depth: depth,
		Nodes: nodes,
		Score: score,
		Moves: moves,
		Time:  time.Since(start),
	}
	logw.Debugf(ctx, "Searched %v to depth=%v: %v", b, depth, pv)

	b.BestMoveLast = moves
	return pv
}
