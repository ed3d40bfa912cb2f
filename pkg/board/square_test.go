package board_test

import (
	"testing"

	"github.com/herohde/jieqi/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestPositionString(t *testing.T) {
	pos, err := board.ParsePositionStr("e9")
	assert.NoError(t, err)
	assert.Equal(t, board.Position{Row: 0, Col: 4}, pos)
	assert.Equal(t, "e9", pos.String())

	pos, err = board.ParsePositionStr("a0")
	assert.NoError(t, err)
	assert.Equal(t, board.Position{Row: 9, Col: 0}, pos)
	assert.Equal(t, "a0", pos.String())

	_, err = board.ParsePositionStr("z9")
	assert.Error(t, err)
	_, err = board.ParsePositionStr("aX")
	assert.Error(t, err)
}

func TestPositionFlip(t *testing.T) {
	pos := board.Position{Row: 0, Col: 0}
	assert.Equal(t, board.Position{Row: 9, Col: 8}, pos.Flip())
	assert.Equal(t, pos, pos.Flip().Flip())
}

func TestPositionInBoard(t *testing.T) {
	assert.True(t, board.Position{Row: 0, Col: 0}.InBoard())
	assert.True(t, board.Position{Row: 9, Col: 8}.InBoard())
	assert.False(t, board.Position{Row: -1, Col: 0}.InBoard())
	assert.False(t, board.Position{Row: 0, Col: 9}.InBoard())
	assert.False(t, board.Position{Row: 10, Col: 0}.InBoard())
}

func TestInPalace(t *testing.T) {
	assert.True(t, board.InPalace(board.Position{Row: 0, Col: 4}, board.Black))
	assert.False(t, board.InPalace(board.Position{Row: 0, Col: 0}, board.Black))
	assert.True(t, board.InPalace(board.Position{Row: 9, Col: 3}, board.Red))
	assert.False(t, board.InPalace(board.Position{Row: 6, Col: 4}, board.Red))
}

func TestInCountry(t *testing.T) {
	assert.True(t, board.InCountry(0, board.Black))
	assert.False(t, board.InCountry(9, board.Black))
	assert.True(t, board.InCountry(9, board.Red))
	assert.False(t, board.InCountry(0, board.Red))
}
