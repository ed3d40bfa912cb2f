package search_test

import (
	"context"
	"testing"

	"github.com/herohde/jieqi/pkg/board"
	"github.com/herohde/jieqi/pkg/board/fen"
	"github.com/herohde/jieqi/pkg/eval"
	"github.com/herohde/jieqi/pkg/search"
	"github.com/stretchr/testify/assert"
)

func newBoard(t *testing.T) *board.Board {
	t.Helper()
	zt := board.NewZobristTable(1)
	ztLock := board.NewZobristTable(2)
	return board.NewInitial(zt, ztLock, false, false, 1)
}

func newPVS() search.PVS {
	return search.PVS{Quiescence: search.Quiescence{Eval: eval.PST{}}}
}

func TestPVSSearchFindsAMove(t *testing.T) {
	b := newBoard(t)
	nodes, _, pv := newPVS().Search(context.Background(), b, 2)

	assert.Greater(t, nodes, uint64(0))
	assert.NotEmpty(t, pv)
}

func TestPVSSearchScoreIsBalancedAtOpening(t *testing.T) {
	b := newBoard(t)
	_, score, _ := newPVS().Search(context.Background(), b, 1)

	// The opening position is balanced: neither side should see a huge
	// swing at a shallow depth.
	assert.Less(t, score, eval.Score(200))
	assert.Greater(t, score, eval.Score(-200))
}

func TestPVSSearchDoesNotMutateBoard(t *testing.T) {
	b := newBoard(t)
	before := b.ZobristValue()
	beforeTurn := b.Turn

	newPVS().Search(context.Background(), b, 2)

	assert.Equal(t, before, b.ZobristValue())
	assert.Equal(t, beforeTurn, b.Turn)
}

func TestPVSSearchFavorsMaterialAdvantage(t *testing.T) {
	// Black has an extra Rook with nothing else on the board: Red, to move,
	// should score clearly worse than the balanced opening.
	chesses, turn := fen.Decode("4k4/9/9/9/9/9/9/9/r8/4K4 w")

	zt := board.NewZobristTable(1)
	ztLock := board.NewZobristTable(2)
	b := board.NewFromLayout(zt, ztLock, chesses, turn)

	_, score, _ := newPVS().Search(context.Background(), b, 2)
	assert.Less(t, score, eval.Score(-50))
}
