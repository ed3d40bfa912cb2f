package board

import (
	"math"
	"sort"
)

// MovePriority represents the move order priority.
type MovePriority int16

// MovePriorityFn assigns a priority to moves
type MovePriorityFn func(move Move) MovePriority

// MVVLVA assigns priority by most-valuable-victim, least-valuable-attacker: a capture's
// priority is 100 plus the captured kind's type value minus the moving kind's, so capturing
// a Rook with a Pawn outranks capturing a Pawn with a Rook, and every capture outranks a
// quiet move. Quiet moves score 0.
func MVVLVA(move Move) MovePriority {
	if !move.IsCapture() {
		return 0
	}
	return MovePriority(move.Capture.Kind.TypeValue()-move.Piece.Kind.TypeValue()) + 100
}

// First puts the given move first. Otherwise uses the given function.
func First(first Move, fn MovePriorityFn) MovePriorityFn {
	return func(m Move) MovePriority {
		if first.Equals(m) {
			return math.MaxInt16
		}
		return fn(m)
	}
}

// SortByPriority sorts the moves by priority, preserving order for same priority.
func SortByPriority(moves []Move, fn MovePriorityFn) {
	sort.SliceStable(moves, func(i, j int) bool {
		return fn(moves[i]) > fn(moves[j])
	})
}
