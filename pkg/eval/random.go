package eval

import (
	"context"
	"math/rand"

	"github.com/herohde/jieqi/pkg/board"
)

// Random is a randomized noise generator, added on top of a base evaluator
// to avoid always repeating the same line against a weaker opponent. The
// limit specifies how many centipawns to add/remove, in
// [-limit/2;limit-limit/2) (integer division).
// The zero value always returns zero.
type Random struct {
	rand  *rand.Rand
	limit int
}

func NewRandom(limit int, seed int64) Random {
	return Random{
		limit: limit,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

func (n Random) Evaluate(ctx context.Context, b *board.Board, side board.Color) Score {
	if n.limit <= 0 {
		return 0
	}
	return Score(n.rand.Intn(n.limit) - n.limit/2)
}
