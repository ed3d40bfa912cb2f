package board

import "fmt"

// Move represents a not-necessarily legal move along with contextual metadata.
type Move struct {
	Color        Color
	From, To     Position
	Piece        Chess // the piece making the move. Piece.Color == Color.
	Capture      Chess // the piece captured at To, if any. Empty if none.
	RevealedFrom Kind  // true kind revealed at From for a Jieqi dark piece; nothing in this module sets it, so it is NoKind.
}

// IsCapture returns true iff the move captures a piece.
func (m Move) IsCapture() bool {
	return !m.Capture.IsEmpty()
}

// ParseMove parses a move in pure coordinate notation, such as "e3e4" or "h2e2".
func ParseMove(str string) (Move, error) {
	runes := []rune(str)
	if len(runes) != 4 {
		return Move{}, fmt.Errorf("invalid move: %q", str)
	}

	from, err := ParsePositionStr(string(runes[0:2]))
	if err != nil {
		return Move{}, fmt.Errorf("invalid from in move %q: %v", str, err)
	}
	to, err := ParsePositionStr(string(runes[2:4]))
	if err != nil {
		return Move{}, fmt.Errorf("invalid to in move %q: %v", str, err)
	}
	return Move{From: from, To: to}, nil
}

func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To
}

func (m Move) String() string {
	return fmt.Sprintf("%v%v", m.From, m.To)
}
