package eval_test

import (
	"context"
	"testing"

	"github.com/herohde/jieqi/pkg/board"
	"github.com/herohde/jieqi/pkg/eval"
	"github.com/stretchr/testify/assert"
)

func TestPSTEvaluateAfterOpeningRookMove(t *testing.T) {
	zt := board.NewZobristTable(1)
	ztLock := board.NewZobristTable(2)
	b := board.NewInitial(zt, ztLock, false, false, 1)

	from := board.Position{Row: 9, Col: 8}
	m := board.Move{Color: board.Red, From: from, To: board.Position{Row: 7, Col: 8}, Piece: b.ChessAt(from)}
	b.DoMove(m, b.Jieqi)

	got := (eval.PST{}).Evaluate(context.Background(), b, board.Red)
	assert.Equal(t, eval.Score(7), got)
}

func TestPSTEvaluateIsSymmetricAtStart(t *testing.T) {
	zt := board.NewZobristTable(1)
	ztLock := board.NewZobristTable(2)
	b := board.NewInitial(zt, ztLock, false, false, 1)

	red := (eval.PST{}).Evaluate(context.Background(), b, board.Red)
	black := (eval.PST{}).Evaluate(context.Background(), b, board.Black)
	assert.Equal(t, red, black)
}

func TestRandomZeroLimitIsInert(t *testing.T) {
	r := eval.Random{}
	assert.Equal(t, eval.Score(0), r.Evaluate(context.Background(), nil, board.Red))
}
