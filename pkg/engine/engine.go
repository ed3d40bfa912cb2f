// Package engine wires the board, evaluation, and search packages into the
// click/robot-move surface a UI or text driver consumes.
package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/herohde/jieqi/pkg/board"
	"github.com/herohde/jieqi/pkg/board/fen"
	"github.com/herohde/jieqi/pkg/eval"
	"github.com/herohde/jieqi/pkg/search"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
)

var version = build.NewVersion(0, 1, 0)

// RobotSearchDepth is the fixed iterative-deepening depth used by RobotMove.
const RobotSearchDepth = 3

// Options are engine creation/runtime options.
type Options struct {
	// Depth is the search depth used by RobotMove. Zero defaults to
	// RobotSearchDepth.
	Depth uint
	// Noise adds evaluation randomness, in centipawn-like units.
	Noise uint
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v, noise=%v}", o.Depth, o.Noise)
}

// Engine encapsulates game state, evaluation, and search behind the
// click/robot-move surface.
type Engine struct {
	name, author string

	zt, ztLock *board.ZobristTable
	seed       int64
	opts       Options

	b     *board.Board
	noise eval.Random

	hasSelection bool
	selectPos    board.Position

	mu sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithOptions sets default runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// WithZobrist configures the engine to use the given random seed instead of
// the default seed of zero, for both the position hash and its independent
// verification lock.
func WithZobrist(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// New creates an engine for a new game. jieqi selects the dark-piece
// variant; robot selects whether RobotMove plays Black automatically.
func New(ctx context.Context, name, author string, jieqi, robot bool, opts ...Option) *Engine {
	e := &Engine{
		name:   name,
		author: author,
	}
	for _, fn := range opts {
		fn(e)
	}
	e.zt = board.NewZobristTable(e.seed)
	e.ztLock = board.NewZobristTable(e.seed + 1)

	e.reset(ctx, jieqi, robot)

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

// Reset starts a new game with the given mode flags.
func (e *Engine) Reset(ctx context.Context, jieqi, robot bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.reset(ctx, jieqi, robot)
}

func (e *Engine) reset(ctx context.Context, jieqi, robot bool) {
	e.b = board.NewInitial(e.zt, e.ztLock, jieqi, robot, e.seed)
	e.hasSelection = false

	e.noise = eval.Random{}
	if e.opts.Noise > 0 {
		e.noise = eval.NewRandom(int(e.opts.Noise), e.seed)
	}

	logw.Infof(ctx, "Reset: jieqi=%v robot=%v", jieqi, robot)
}

// FromFEN starts a game from a FEN position string. Mode flags (jieqi,
// robot) carry over from the current game, since FEN has no slot for them.
// Malformed fields are silently ignored rather than rejected, matching
// fen.Decode's laxity.
func (e *Engine) FromFEN(ctx context.Context, position string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	chesses, turn := fen.Decode(position)

	jieqi, robot := e.b.Jieqi, e.b.Robot
	e.b = board.NewFromLayout(e.zt, e.ztLock, chesses, turn)
	e.b.Jieqi = jieqi
	e.b.Robot = robot
	e.hasSelection = false

	logw.Infof(ctx, "Loaded FEN %v: %v", position, e.b)
}

// Position returns the current position in FEN format.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Encode(e.b.Chesses(), e.b.Turn)
}

// Board returns the engine's live board, for UI rendering. It is not a copy:
// callers must not mutate it. Board.Chesses returns an independent copy of
// the grid.
func (e *Engine) Board() *board.Board {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b
}

// Click implements the UI click contract: if the clicked square holds a
// piece of the side to move, it becomes the selection; else, if a
// selection exists and the click is a legal target for it, that move is
// applied. Returns true iff a move was applied. An illegal click is a
// silent no-op, per spec.
func (e *Engine) Click(ctx context.Context, col, row int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	pos := board.Position{Row: row, Col: col}
	if !pos.InBoard() {
		return false
	}

	if piece := e.b.ChessAt(pos); !piece.IsEmpty() && piece.Color == e.b.Turn {
		e.selectPos = pos
		e.hasSelection = true
		return false
	}

	if !e.hasSelection {
		return false
	}

	for _, m := range e.b.GenerateMove(false) {
		if m.From != e.selectPos || m.To != pos {
			continue
		}

		e.b.DoMove(m, e.b.Jieqi)
		if e.b.IsChecked(e.b.Turn.Opponent()) {
			e.b.UndoMove(m)
			continue
		}

		e.hasSelection = false
		logw.Infof(ctx, "Click %v: %v", m, e.b)
		return true
	}
	return false
}

// RobotMove runs a fixed-depth search and applies the best move found, for
// the engine's robot side (Black). Returns false if the robot is off or it
// is Red's turn to move, matching spec's UI contract; returns an error if
// the search finds no legal move, i.e. Black is checkmated or stalemated.
func (e *Engine) RobotMove(ctx context.Context) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.b.Robot || e.b.Turn == board.Red {
		return false, nil
	}

	depth := int(e.opts.Depth)
	if depth == 0 {
		depth = RobotSearchDepth
	}

	evaluator := eval.Evaluator(eval.PST{})
	if e.opts.Noise > 0 {
		evaluator = noisyEvaluator{base: eval.PST{}, noise: e.noise}
	}

	d := search.IterativeDeepening{
		Search: search.PVS{Quiescence: search.Quiescence{Eval: evaluator}},
	}
	pv := d.Run(ctx, e.b, depth)
	if len(pv.Moves) == 0 {
		return false, fmt.Errorf("robot move: search returned no legal move")
	}

	m := pv.Moves[0]
	e.b.DoMove(m, e.b.Jieqi)
	e.hasSelection = false

	logw.Infof(ctx, "RobotMove %v (depth=%v, score=%v, nodes=%v): %v", m, depth, pv.Score, pv.Nodes, e.b)
	logw.Debugf(ctx, "Material diff after %v: red=%v black=%v", m, e.b.MaterialDiff(board.Red), e.b.MaterialDiff(board.Black))
	return true, nil
}

// noisyEvaluator adds Random noise on top of a base Evaluator.
type noisyEvaluator struct {
	base  eval.Evaluator
	noise eval.Random
}

func (n noisyEvaluator) Evaluate(ctx context.Context, b *board.Board, side board.Color) eval.Score {
	return n.base.Evaluate(ctx, b, side) + n.noise.Evaluate(ctx, b, side)
}
