package board

import "strings"

// Kind represents a piece type with no color (King, Advisor, ...). 3 bits.
type Kind uint8

const (
	NoKind Kind = iota
	King
	Advisor
	Bishop
	Knight
	Rook
	Cannon
	Pawn
)

const (
	ZeroKind Kind = 0
	NumKinds Kind = 8
)

// ParseKind parses the FEN letter for a kind: k,a,b,n,r,c,p (case insensitive).
func ParseKind(r rune) (Kind, bool) {
	switch r {
	case 'k', 'K':
		return King, true
	case 'a', 'A':
		return Advisor, true
	case 'b', 'B':
		return Bishop, true
	case 'n', 'N':
		return Knight, true
	case 'r', 'R':
		return Rook, true
	case 'c', 'C':
		return Cannon, true
	case 'p', 'P':
		return Pawn, true
	default:
		return NoKind, false
	}
}

func (k Kind) IsValid() bool {
	return King <= k && k <= Pawn
}

func (k Kind) String() string {
	switch k {
	case NoKind:
		return "-"
	case King:
		return "k"
	case Advisor:
		return "a"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	case Rook:
		return "r"
	case Cannon:
		return "c"
	case Pawn:
		return "p"
	default:
		return "?"
	}
}

// TypeValue is the MVV-LVA ordering weight from spec: King 5, Rook 4, Knight/Cannon 3,
// Pawn 2, Advisor/Bishop 1. Distinct from IdentityValue below.
func (k Kind) TypeValue() int {
	switch k {
	case King:
		return 5
	case Rook:
		return 4
	case Knight, Cannon:
		return 3
	case Pawn:
		return 2
	case Advisor, Bishop:
		return 1
	default:
		return 0
	}
}

// IdentityValue is the original's secondary per-kind value, unused by search or
// evaluation but kept for UI-facing Jieqi reveal-order display.
func (k Kind) IdentityValue() int {
	switch k {
	case King:
		return 1
	case Advisor:
		return 2
	case Bishop:
		return 3
	case Knight:
		return 4
	case Rook:
		return 5
	case Cannon:
		return 6
	case Pawn:
		return 0
	default:
		return 0
	}
}

// Chess is a piece identity: a (Color, Kind) pair. The zero value is Empty.
type Chess struct {
	Color Color
	Kind  Kind
}

// Empty is the absence of a piece on a square.
var Empty = Chess{}

func (c Chess) IsEmpty() bool {
	return c.Kind == NoKind
}

// BelongsTo returns true iff the square holds a piece of the given color.
func (c Chess) BelongsTo(side Color) bool {
	return !c.IsEmpty() && c.Color == side
}

func (c Chess) String() string {
	if c.IsEmpty() {
		return "."
	}
	if c.Color == Red {
		return strings.ToUpper(c.Kind.String())
	}
	return c.Kind.String()
}
