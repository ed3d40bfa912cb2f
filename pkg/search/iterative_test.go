package search_test

import (
	"context"
	"testing"

	"github.com/herohde/jieqi/pkg/search"
	"github.com/stretchr/testify/assert"
)

func TestIterativeDeepeningRunReturnsDeepestIteration(t *testing.T) {
	b := newBoard(t)
	d := search.IterativeDeepening{Search: newPVS()}

	pv := d.Run(context.Background(), b, 2)
	assert.Equal(t, 2, pv.Depth)
	assert.NotEmpty(t, pv.Moves)
}

func TestIterativeDeepeningShallowDepthSkipsLoop(t *testing.T) {
	b := newBoard(t)
	d := search.IterativeDeepening{Search: newPVS()}

	pv := d.Run(context.Background(), b, 1)
	assert.Equal(t, 1, pv.Depth)
}

func TestIterativeDeepeningLeavesFinalPVInBestMoveLast(t *testing.T) {
	b := newBoard(t)
	d := search.IterativeDeepening{Search: newPVS()}

	// At maxDepth == 4 the loop runs depths 3 and 4; BestMoveLast is reset to
	// nil after depth 3, and Run returns with the depth-4 line left in
	// BestMoveLast.
	d.Run(context.Background(), b, 4)
	assert.NotEmpty(t, b.BestMoveLast)
}

var _ search.Searcher = search.PVS{}
