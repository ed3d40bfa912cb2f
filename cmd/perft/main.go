// perft is a movegen debugging tool: it counts leaf nodes reachable from a
// position at a fixed depth, for cross-checking move generation against
// known-good counts. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/herohde/jieqi/pkg/board"
	"github.com/herohde/jieqi/pkg/board/fen"
)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	position = flag.String("fen", "", "Start position (default to standard opening)")
	jieqi    = flag.Bool("jieqi", false, "Use the Jieqi (dark-piece) variant for the default start position")
	divide   = flag.Bool("divide", false, "Print per-root-move counts at the deepest depth")
)

func main() {
	flag.Parse()

	zt := board.NewZobristTable(0)
	ztLock := board.NewZobristTable(1)

	var b *board.Board
	if *position == "" {
		b = board.NewInitial(zt, ztLock, *jieqi, false, 0)
	} else {
		chesses, turn := fen.Decode(*position)
		b = board.NewFromLayout(zt, ztLock, chesses, turn)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := perft(b, i, *divide && i == *depth)
		elapsed := time.Since(start)

		fmt.Printf("perft,%v,%v,%v\n", i, nodes, elapsed.Microseconds())
	}
}

// perft counts the leaf nodes of the legal move tree rooted at b, to the
// given depth. d requests a per-root-move breakdown, printed as it recurses
// into the first ply.
func perft(b *board.Board, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}

	var nodes int64
	for _, m := range b.GenerateMove(false) {
		b.DoMove(m, false) // exploring the tree, not playing it out
		if b.IsChecked(b.Turn.Opponent()) {
			b.UndoMove(m)
			continue
		}

		count := perft(b, depth-1, false)
		b.UndoMove(m)

		if d {
			fmt.Printf("%v: %v\n", m, count)
		}
		nodes += count
	}
	return nodes
}
