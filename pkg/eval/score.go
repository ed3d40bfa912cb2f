package eval

import (
	"fmt"

	"github.com/herohde/jieqi/pkg/board"
)

// Score is a signed position or search score in centipawn-like units, from
// the perspective of the side it is computed for: positive favors that side.
type Score int32

const (
	// MinScore and MaxScore are the bounds Crop clamps a Score into.
	MinScore Score = -30000
	MaxScore Score = 30000

	// NegInf and Inf sit just outside [MinScore;MaxScore]. PVS.Search uses
	// them as the full window at the root, and NegInf as its re-search
	// sentinel.
	NegInf = MinScore - 1
	Inf    = MaxScore + 1

	// Kill is the base mate score. A position with no legal reply scores
	// Kill-depth: because depth counts down toward 0 as the search descends,
	// a mate found deeper in the tree (smaller remaining depth) scores less
	// negative than one found nearer the root.
	Kill Score = -20000
)

func (s Score) String() string {
	return fmt.Sprintf("%d", s)
}

// Unit returns the signed unit for the color: 1 for Red and -1 for Black.
// Evaluate already returns a side-relative score, so Unit is for callers
// that need to convert a side-relative score into a Red-relative one.
func Unit(c board.Color) Score {
	if c == board.Red {
		return 1
	}
	return -1
}

// Crop clamps a Score into [MinScore;MaxScore].
func Crop(s Score) Score {
	switch {
	case s > MaxScore:
		return MaxScore
	case s < MinScore:
		return MinScore
	default:
		return s
	}
}

// Max returns the largest of the given scores.
func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

// Min returns the smallest of the given scores.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}
