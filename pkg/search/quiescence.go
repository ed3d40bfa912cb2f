package search

import (
	"context"

	"github.com/herohde/jieqi/pkg/board"
	"github.com/herohde/jieqi/pkg/eval"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// MaxDepth bounds the ply count from the search root (board.Distance, which
// includes the nominal search depth) beyond which quiescence stops descending
// and returns the static evaluation. It is a hard backstop, not a tuning
// parameter: without it a long forcing sequence of checks and captures could
// recurse indefinitely.
const MaxDepth = 32

// Quiescence resolves a leaf position by searching captures (and, if the
// side to move is in check, all replies) until the position is quiet,
// returning a stable stand-pat score instead of evaluating mid-exchange.
type Quiescence struct {
	Eval eval.Evaluator
}

func (q Quiescence) Search(ctx context.Context, b *board.Board, alpha, beta eval.Score) eval.Score {
	run := &runQuiescence{eval: q.Eval, b: b}
	return run.search(ctx, alpha, beta)
}

type runQuiescence struct {
	eval  eval.Evaluator
	b     *board.Board
	nodes uint64
}

func (r *runQuiescence) search(ctx context.Context, alpha, beta eval.Score) eval.Score {
	if contextx.IsCancelled(ctx) {
		return 0
	}
	if r.b.Distance > MaxDepth {
		return r.eval.Evaluate(ctx, r.b, r.b.Turn)
	}

	r.nodes++

	standPat := r.eval.Evaluate(ctx, r.b, r.b.Turn)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	captureOnly := !r.b.IsChecked(r.b.Turn)
	moves := r.b.GenerateMove(captureOnly)

	for _, m := range moves {
		r.b.DoMove(m, false) // explored, not played: never reveal a Jieqi piece here
		if r.b.IsChecked(r.b.Turn.Opponent()) {
			r.b.UndoMove(m)
			continue
		}

		v := -r.search(ctx, -beta, -alpha)
		r.b.UndoMove(m)

		if v >= beta {
			return beta
		}
		if v > alpha {
			alpha = v
		}
	}

	return alpha
}
