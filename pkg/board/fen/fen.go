// Package fen decodes and encodes the 9x10 Xiangqi FEN subset: 10 ranks of
// piece placement separated by '/', from Black's back rank to Red's, followed
// by a side-to-move field.
package fen

import (
	"strconv"
	"strings"

	"github.com/herohde/jieqi/pkg/board"
)

// Decode parses a FEN string into piece placement and side to move. Ranks
// run top (Black's back rank, row 0) to bottom (Red's, row 9); within a rank,
// columns run a..i (0..8). Digits run-length encode consecutive empty
// squares.
//
// Decode never errors, matching the reference parser's laxity: a wrong
// number of ranks, a rank that overflows the board width, or a letter that
// is not a recognized piece are all silently ignored rather than rejected
// (extra ranks/columns are dropped, missing ones stay empty), and the
// side-to-move field defaults to Red unless it is exactly "b".
func Decode(str string) (chesses [board.BoardHeight][board.BoardWidth]board.Chess, turn board.Color) {
	turn = board.Red

	fields := strings.Fields(str)
	var placement string
	if len(fields) > 0 {
		placement = fields[0]
	}

	for row, rank := range strings.Split(placement, "/") {
		if row >= board.BoardHeight {
			break
		}
		col := 0
		for _, r := range rank {
			if r >= '1' && r <= '9' {
				col += int(r - '0')
				continue
			}
			if kind, ok := board.ParseKind(r); ok && col < board.BoardWidth {
				color := board.Black
				if r >= 'A' && r <= 'Z' {
					color = board.Red
				}
				chesses[row][col] = board.Chess{Color: color, Kind: kind}
			}
			col++
		}
	}

	if len(fields) > 1 && fields[1] == "b" {
		turn = board.Black
	}
	return chesses, turn
}

// Encode renders piece placement and side to move as a FEN string.
func Encode(chesses [board.BoardHeight][board.BoardWidth]board.Chess, turn board.Color) string {
	var sb strings.Builder

	for row := 0; row < board.BoardHeight; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		run := 0
		for col := 0; col < board.BoardWidth; col++ {
			c := chesses[row][col]
			if c.IsEmpty() {
				run++
				continue
			}
			if run > 0 {
				sb.WriteString(strconv.Itoa(run))
				run = 0
			}
			sb.WriteString(c.String())
		}
		if run > 0 {
			sb.WriteString(strconv.Itoa(run))
		}
	}

	side := "w"
	if turn == board.Black {
		side = "b"
	}
	sb.WriteByte(' ')
	sb.WriteString(side)
	return sb.String()
}
