package search

import (
	"context"

	"github.com/herohde/jieqi/pkg/board"
	"github.com/herohde/jieqi/pkg/eval"
)

// PVS implements principal variation search over board.Board: a zero-window
// probe first, with a full-window re-search only when the probe fails high.
// Pseudo-code:
//
// function pvs(node, depth, α, β, color) is
//    if depth = 0 or node is a terminal node then
//        return color × the heuristic value of node
//    for each child of node do
//        if child is first child then
//            score := −pvs(child, depth − 1, −β, −α, −color)
//        else
//            score := −pvs(child, depth − 1, −α − 1, −α, −color) (* null window *)
//            if α < score < β then
//                score := −pvs(child, depth − 1, −β, −score, −color) (* re-search *)
//        α := max(α, score)
//        if α ≥ β then
//            break (* beta cut-off *)
//    return α
//
// See: https://en.wikipedia.org/wiki/Principal_variation_search.
type PVS struct {
	Quiescence Quiescence
}

// Search returns the node count, the score from the side-to-move's
// perspective, and the principal variation found at depth.
func (p PVS) Search(ctx context.Context, b *board.Board, depth int) (uint64, eval.Score, []board.Move) {
	// Distance counts plies from this search root, not moves already played.
	root := b.Distance
	b.Distance = 0
	defer func() { b.Distance = root }()

	run := &runPVS{quiescence: p.Quiescence, b: b}
	score, pv := run.search(ctx, depth, eval.NegInf, eval.Inf)
	return run.nodes, score, pv
}

type runPVS struct {
	quiescence Quiescence
	b          *board.Board
	nodes      uint64
}

// search returns the score from the side to move's perspective at the
// current node, and the line that achieves it.
func (r *runPVS) search(ctx context.Context, depth int, alpha, beta eval.Score) (eval.Score, []board.Move) {
	if depth == 0 {
		r.nodes++
		return r.quiescence.Search(ctx, r.b, alpha, beta), nil
	}

	moves := r.b.GenerateMove(false)
	seedPV(moves, r.b.BestMoveLast, r.b.MoveHistory)

	tried := 0
	var pv []board.Move

	for _, m := range moves {
		r.b.DoMove(m, false) // explored, not played: never reveal a Jieqi piece here
		if r.b.IsChecked(r.b.Turn.Opponent()) {
			r.b.UndoMove(m)
			continue
		}
		tried++

		value, rem := r.search(ctx, depth-1, -(alpha + 1), -alpha)
		value = -value
		if value == eval.NegInf || (value > alpha && value < beta) {
			value, rem = r.search(ctx, depth-1, -beta, -alpha)
			value = -value
		}

		r.b.UndoMove(m)

		if value >= beta {
			return value, nil
		}
		if value > alpha {
			alpha = value
			pv = append([]board.Move{m}, rem...)
		}
	}

	if tried == 0 {
		return eval.Kill - eval.Score(depth), nil
	}
	return alpha, pv
}

// seedPV moves the previous iteration's principal-variation move to the
// front of moves, at the first ply where moves diverges from history: once
// the position has departed from the prior best line there is nothing left
// to seed. Re-sorts with board.First so the MVV-LVA ordering GenerateMove
// already applied is preserved among the remaining moves, rather than
// disturbed by a raw swap.
func seedPV(moves []board.Move, bestMoveLast, history []board.Move) {
	for i, m := range bestMoveLast {
		if i < len(history) {
			if !m.Equals(history[i]) {
				return
			}
			continue
		}
		for _, cand := range moves {
			if cand.Equals(m) {
				board.SortByPriority(moves, board.First(m, board.MVVLVA))
				return
			}
		}
		return
	}
}
