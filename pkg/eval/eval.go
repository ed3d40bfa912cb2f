// Package eval contains static position evaluation: piece-square tables and
// the material-plus-position balance the search package calls at the leaves.
package eval

import (
	"context"

	"github.com/herohde/jieqi/pkg/board"
)

// InitiativeBonus is added to the evaluated side's own score, whichever side
// is to move.
const InitiativeBonus Score = 3

// Evaluator is a static position evaluator.
type Evaluator interface {
	// Evaluate returns the position score from side's perspective.
	Evaluate(ctx context.Context, b *board.Board, side board.Color) Score
}

// PST evaluates a position as the piece-square-table score difference between
// the two sides, plus InitiativeBonus for the side the score is computed for.
type PST struct{}

func (PST) Evaluate(ctx context.Context, b *board.Board, side board.Color) Score {
	var red, black Score

	chesses := b.Chesses()
	for row := 0; row < board.BoardHeight; row++ {
		for col := 0; col < board.BoardWidth; col++ {
			c := chesses[row][col]
			if c.IsEmpty() {
				continue
			}

			pos := board.Position{Row: row, Col: col}
			if c.Color == board.Black {
				pos = pos.Flip()
			}
			value := Score(pstValue(c.Kind, pos.Row, pos.Col))

			if c.Color == board.Red {
				red += value
			} else {
				black += value
			}
		}
	}

	if side == board.Red {
		return red - black + InitiativeBonus
	}
	return black - red + InitiativeBonus
}
