package engine_test

import (
	"context"
	"testing"

	"github.com/herohde/jieqi/pkg/board"
	"github.com/herohde/jieqi/pkg/engine"
	"github.com/stretchr/testify/assert"
)

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	return engine.New(context.Background(), "jieqi", "test", false, true, engine.WithZobrist(1))
}

func TestNewStartsAtRedToMove(t *testing.T) {
	e := newEngine(t)
	assert.Equal(t, board.Red, e.Board().Turn)
}

func TestClickSelectsOwnPieceWithoutMoving(t *testing.T) {
	e := newEngine(t)
	moved := e.Click(context.Background(), 0, 9) // Red rook at a0 (bottom-left)
	assert.False(t, moved)
	assert.Equal(t, board.Red, e.Board().Turn)
}

func TestClickAppliesLegalMove(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	e.Click(ctx, 0, 6) // select Red's a-file pawn
	moved := e.Click(ctx, 0, 5)

	assert.True(t, moved)
	assert.Equal(t, board.Black, e.Board().Turn)
}

func TestClickOnEmptySquareWithoutSelectionIsNoop(t *testing.T) {
	e := newEngine(t)
	moved := e.Click(context.Background(), 4, 5)
	assert.False(t, moved)
	assert.Equal(t, board.Red, e.Board().Turn)
}

func TestClickOffBoardIsNoop(t *testing.T) {
	e := newEngine(t)
	moved := e.Click(context.Background(), -1, 0)
	assert.False(t, moved)
}

func TestRobotMoveDeclinesWhenRedToMove(t *testing.T) {
	e := newEngine(t)
	moved, err := e.RobotMove(context.Background())
	assert.NoError(t, err)
	assert.False(t, moved)
}

func TestRobotMoveDeclinesWhenRobotOff(t *testing.T) {
	e := engine.New(context.Background(), "jieqi", "test", false, false, engine.WithZobrist(1))
	ctx := context.Background()

	e.Click(ctx, 0, 6)
	e.Click(ctx, 0, 5) // Red moves, now Black to move, but robot is off

	moved, err := e.RobotMove(ctx)
	assert.NoError(t, err)
	assert.False(t, moved)
}

func TestRobotMovePlaysBlackAfterRedMoves(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	e.Click(ctx, 0, 6)
	e.Click(ctx, 0, 5)
	assert.Equal(t, board.Black, e.Board().Turn)

	moved, err := e.RobotMove(ctx)
	assert.NoError(t, err)
	assert.True(t, moved)
	assert.Equal(t, board.Red, e.Board().Turn)
}

func TestPositionRoundTripsThroughFEN(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	fen := e.Position()
	e.FromFEN(ctx, fen)
	assert.Equal(t, fen, e.Position())
}

func TestFromFENPreservesRobotFlag(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	e.FromFEN(ctx, "4k4/9/9/9/9/9/9/9/9/4K4 w")
	assert.True(t, e.Board().Robot)
}

func TestFromFENIgnoresMalformedPositionInstead(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	// A malformed FEN is silently accepted, not rejected: in the placement
	// field "not" only 'n' is a piece letter (a Black knight at a9), the
	// others are ignored, and the side-to-move field "a" leaves Red to move.
	e.FromFEN(ctx, "not a fen")
	assert.Equal(t, board.Red, e.Board().Turn)
}

func TestResetClearsSelection(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()

	e.Click(ctx, 0, 9) // select a piece, but don't move it
	e.Reset(ctx, false, true)

	// After reset, a click on an empty square the selected rook could reach
	// (a2) must not be treated as a move target carried over from the stale
	// selection.
	moved := e.Click(ctx, 0, 7)
	assert.False(t, moved)
}

func TestNameIncludesVersion(t *testing.T) {
	e := newEngine(t)
	assert.Contains(t, e.Name(), "jieqi")
}
