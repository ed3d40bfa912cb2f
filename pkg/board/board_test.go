package board_test

import (
	"testing"

	"github.com/herohde/jieqi/pkg/board"
	"github.com/herohde/jieqi/pkg/board/fen"
	"github.com/stretchr/testify/assert"
)

func newInitial(t *testing.T) *board.Board {
	t.Helper()
	zt := board.NewZobristTable(1)
	ztLock := board.NewZobristTable(2)
	return board.NewInitial(zt, ztLock, false, false, 1)
}

func TestGenerateMoveOpeningCount(t *testing.T) {
	b := newInitial(t)
	moves := b.GenerateMove(false)
	assert.Len(t, moves, 5+24+4+4+4+2+1)
}

func TestIsCheckedInitialPositionIsFalse(t *testing.T) {
	b := newInitial(t)
	assert.False(t, b.IsChecked(board.Red))
	assert.False(t, b.IsChecked(board.Black))
}

func TestKingEyeToEye(t *testing.T) {
	chesses, turn := fen.Decode("4k4/9/9/9/9/9/9/9/9/4K4 w")

	zt := board.NewZobristTable(1)
	ztLock := board.NewZobristTable(2)
	b := board.NewFromLayout(zt, ztLock, chesses, turn)
	assert.True(t, b.KingEyeToEye())
	assert.True(t, b.IsChecked(board.Red))
}

func TestDoMoveUndoMoveRoundTrip(t *testing.T) {
	b := newInitial(t)
	before := b.ZobristValue()
	beforeChesses := b.Chesses()

	m := board.Move{
		Color: board.Red,
		From:  board.Position{Row: 9, Col: 8},
		To:    board.Position{Row: 7, Col: 8},
		Piece: b.ChessAt(board.Position{Row: 9, Col: 8}),
	}

	b.DoMove(m, b.Jieqi)
	assert.NotEqual(t, before, b.ZobristValue())
	assert.Equal(t, board.Black, b.Turn)

	b.UndoMove(m)
	assert.Equal(t, before, b.ZobristValue())
	assert.Equal(t, board.Red, b.Turn)
	assert.Equal(t, beforeChesses, b.Chesses())
}

func TestMaterialDiffIsZeroAtStart(t *testing.T) {
	b := newInitial(t)
	assert.Equal(t, 0, b.MaterialDiff(board.Red))
	assert.Equal(t, 0, b.MaterialDiff(board.Black))
}

func TestFENRoundTrip(t *testing.T) {
	const want = "rnbakabnr/9/1c5c1/p1p1p1p1p/9/9/P1P1P1P1P/1C5C1/9/RNBAKABNR w"
	chesses, turn := fen.Decode(want)
	assert.Equal(t, board.Red, turn)
	assert.Equal(t, want, fen.Encode(chesses, turn))
}
