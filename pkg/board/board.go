// Package board contains the Xiangqi board representation: layout, move
// generation, legality, and the flat make/unmake discipline the search
// package builds on.
package board

import (
	"fmt"
	"math/rand"
)

// RecordSize is the number of slots in the direct-mapped best-move cache,
// indexed by the low bits of the Zobrist value hash.
const RecordSize = 1 << 16

// Record is a cached search result for a position, keyed by Zobrist hash and
// verified against the lock hash to guard against index collisions.
type Record struct {
	Value      int
	Depth      int
	BestMove   Move
	HasMove    bool
	ZobristKey ZobristHash
	Turn       Color
}

// Board is the mutable Xiangqi position: piece layout, whose turn it is, and
// enough history to make and unmake moves. Not thread-safe; callers share
// one Board per game in progress.
type Board struct {
	chesses       [BoardHeight][BoardWidth]Chess // true identity at each square
	chessesStatus [BoardHeight][BoardWidth]Chess // Jieqi cover identity; Empty once revealed

	zt               *ZobristTable // keys the primary hash
	ztLock           *ZobristTable // keys the independent verification lock
	zobristValue     ZobristHash
	zobristValueLock ZobristHash

	Turn     Color
	Jieqi    bool
	Robot    bool // whether the engine driver plays Black automatically; UI/driver flag, not consulted by board logic
	Distance int  // ply count since the search root, used by quiescence's depth guard

	MoveHistory  []Move
	BestMoveLast []Move // PV seed from the previous iterative-deepening pass

	Records []*Record
}

// New returns an empty board bound to the given Zobrist tables. zt and
// ztLock must be independently seeded: ztLock exists only to disambiguate
// RecordSize-indexed collisions and would be useless if derived from zt.
func New(zt, ztLock *ZobristTable, jieqi bool) *Board {
	return &Board{
		zt:      zt,
		ztLock:  ztLock,
		Turn:    Red,
		Jieqi:   jieqi,
		Records: make([]*Record, RecordSize),
	}
}

// NewInitial returns a board set up for a new game. If jieqi is set, every
// non-King piece's true kind is reassigned by a random permutation while the
// displayed cover identity keeps the standard opening layout; a piece moves
// according to its cover identity until it first moves, at which point it is
// revealed and thereafter moves, and is displayed, as its true kind.
func NewInitial(zt, ztLock *ZobristTable, jieqi, robot bool, seed int64) *Board {
	b := New(zt, ztLock, jieqi)
	b.Robot = robot

	standard := []Kind{Rook, Knight, Bishop, Advisor, Advisor, Bishop, Knight, Rook, Cannon, Cannon, Pawn, Pawn, Pawn, Pawn, Pawn}
	cols := []int{0, 1, 2, 3, 5, 6, 7, 8, 1, 7, 0, 2, 4, 6, 8}
	rows := []int{0, 0, 0, 0, 0, 0, 0, 0, 2, 2, 3, 3, 3, 3, 3}

	blackTrue, redTrue := standard, standard
	if jieqi {
		blackTrue = shuffledKinds(seed)
		redTrue = shuffledKinds(seed + 1)
	}

	for i := range standard {
		b.chesses[rows[i]][cols[i]] = Chess{Color: Black, Kind: blackTrue[i]}
		b.chesses[BoardHeight-1-rows[i]][cols[i]] = Chess{Color: Red, Kind: redTrue[i]}
		if jieqi {
			b.chessesStatus[rows[i]][cols[i]] = Chess{Color: Black, Kind: standard[i]}
			b.chessesStatus[BoardHeight-1-rows[i]][cols[i]] = Chess{Color: Red, Kind: standard[i]}
		}
	}
	b.chesses[0][4] = Chess{Color: Black, Kind: King}
	b.chesses[BoardHeight-1][4] = Chess{Color: Red, Kind: King}

	b.zobristValue = zt.Calc(b.chesses, b.Turn)
	b.zobristValueLock = ztLock.Calc(b.chesses, b.Turn)
	return b
}

// NewFromLayout returns a board with the given piece placement and side to
// move, and no Jieqi cover identities: used to load a FEN position, which
// carries only true identities.
func NewFromLayout(zt, ztLock *ZobristTable, chesses [BoardHeight][BoardWidth]Chess, turn Color) *Board {
	b := New(zt, ztLock, false)
	b.chesses = chesses
	b.Turn = turn
	b.zobristValue = zt.Calc(b.chesses, b.Turn)
	b.zobristValueLock = ztLock.Calc(b.chesses, b.Turn)
	return b
}

// shuffledKinds returns the 15 non-King piece kinds of one side in a
// deterministic random order, mirroring the original's rand_init.
func shuffledKinds(seed int64) []Kind {
	kinds := []Kind{
		Pawn, Pawn, Pawn, Pawn, Pawn,
		Advisor, Advisor,
		Bishop, Bishop,
		Knight, Knight,
		Rook, Rook,
		Cannon, Cannon,
	}
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(kinds), func(i, j int) { kinds[i], kinds[j] = kinds[j], kinds[i] })
	return kinds
}

// Chesses returns a copy of the true piece placement, for FEN encoding and
// display.
func (b *Board) Chesses() [BoardHeight][BoardWidth]Chess {
	return b.chesses
}

// ChessAt returns the true identity at pos, or Empty if off-board or vacant.
func (b *Board) ChessAt(pos Position) Chess {
	if !pos.InBoard() {
		return Empty
	}
	return b.chesses[pos.Row][pos.Col]
}

// ChessStatusAt returns the Jieqi cover identity still showing at pos, or
// Empty if off-board, vacant, or already revealed.
func (b *Board) ChessStatusAt(pos Position) Chess {
	if !pos.InBoard() {
		return Empty
	}
	return b.chessesStatus[pos.Row][pos.Col]
}

// movingKind returns the kind used for move generation at pos: the cover
// identity while unrevealed, else the true identity.
func (b *Board) movingKind(pos Position) Kind {
	if status := b.ChessStatusAt(pos); !status.IsEmpty() {
		return status.Kind
	}
	return b.ChessAt(pos).Kind
}

// setChess places chess at pos. If reveal is set, the cover identity at pos
// is cleared: a piece shows and moves as its true kind from then on.
func (b *Board) setChess(pos Position, chess Chess, reveal bool) {
	b.chesses[pos.Row][pos.Col] = chess
	if reveal {
		b.chessesStatus[pos.Row][pos.Col] = Empty
	}
}

// ApplyMove updates piece placement, hash, and turn for m, without recording
// history. reveal controls Jieqi reveal-on-move; callers pass b.Jieqi.
func (b *Board) ApplyMove(m Move, reveal bool) {
	chess := b.ChessAt(m.From)
	b.setChess(m.To, chess, reveal)
	b.setChess(m.From, Empty, reveal)
	b.zobristValue = b.zt.Apply(b.zobristValue, m)
	b.zobristValueLock = b.ztLock.Apply(b.zobristValueLock, m)
	b.Turn = b.Turn.Opponent()
}

// DoMove applies m and records it in history, for later UndoMove. reveal
// controls Jieqi reveal-on-move; real play passes b.Jieqi, but search
// exploration must pass false, since UndoMove never reverts a reveal and a
// move that is only tried and then undone must not permanently disclose a
// hidden piece's identity.
func (b *Board) DoMove(m Move, reveal bool) {
	b.ApplyMove(m, reveal)
	b.Distance++
	b.MoveHistory = append(b.MoveHistory, m)
}

// UndoMove reverses the most recently applied DoMove. The caller must pass
// the same move given to DoMove.
func (b *Board) UndoMove(m Move) {
	moved := b.ChessAt(m.To)
	b.setChess(m.From, moved, false)
	b.setChess(m.To, m.Capture, false)
	b.zobristValue = b.zt.Undo(b.zobristValue, m)
	b.zobristValueLock = b.ztLock.Undo(b.zobristValueLock, m)
	b.Turn = b.Turn.Opponent()
	b.Distance--
	if n := len(b.MoveHistory); n > 0 {
		b.MoveHistory = b.MoveHistory[:n-1]
	}
}

// HasChessBetween returns true iff some piece occupies a square strictly
// between a and b along a shared rank or file. Used by the Rook-line check
// for the King face-off rule; undefined (returns false) off a shared line.
func (b *Board) HasChessBetween(a, c Position) bool {
	if a.Row == c.Row {
		lo, hi := a.Col, c.Col
		if lo > hi {
			lo, hi = hi, lo
		}
		for col := lo + 1; col < hi; col++ {
			if !b.ChessAt(Position{Row: a.Row, Col: col}).IsEmpty() {
				return true
			}
		}
		return false
	}
	if a.Col == c.Col {
		lo, hi := a.Row, c.Row
		if lo > hi {
			lo, hi = hi, lo
		}
		for row := lo + 1; row < hi; row++ {
			if !b.ChessAt(Position{Row: row, Col: a.Col}).IsEmpty() {
				return true
			}
		}
		return false
	}
	return false
}

// KingPosition locates side's King, if on the board.
func (b *Board) KingPosition(side Color) (Position, bool) {
	rowStart, rowEnd := 7, BoardHeight
	if side == Black {
		rowStart, rowEnd = 0, 3
	}
	for row := rowStart; row < rowEnd; row++ {
		for col := 3; col < 6; col++ {
			pos := Position{Row: row, Col: col}
			if c := b.ChessAt(pos); c.Color == side && c.Kind == King {
				return pos, true
			}
		}
	}
	return Position{}, false
}

// KingEyeToEye returns true iff the two Kings face each other on an open
// file, the illegal "flying general" condition.
func (b *Board) KingEyeToEye() bool {
	red, ok := b.KingPosition(Red)
	if !ok {
		return false
	}
	black, ok := b.KingPosition(Black)
	if !ok {
		return false
	}
	return red.Col == black.Col && !b.HasChessBetween(red, black)
}

// IsChecked returns true iff side's King is attacked: by an enemy Cannon or
// Rook along its generated lines, by an enemy Knight whose leg is unblocked,
// by an enemy Pawn, or by the King face-off condition.
func (b *Board) IsChecked(side Color) bool {
	king, ok := b.KingPosition(side)
	if !ok {
		return false
	}
	enemy := side.Opponent()

	for _, pos := range b.generateMoveForKind(Cannon, king, side) {
		if c := b.ChessAt(pos); c.Color == enemy && c.Kind == Cannon {
			return true
		}
	}
	for _, pos := range b.generateMoveForKind(Rook, king, side) {
		if c := b.ChessAt(pos); c.Color == enemy && c.Kind == Rook {
			return true
		}
	}

	var knightTargets []Position
	if b.ChessAt(king.Up(1).Left(1)).IsEmpty() {
		knightTargets = append(knightTargets, king.Up(2).Left(1), king.Up(1).Left(2))
	}
	if b.ChessAt(king.Down(1).Left(1)).IsEmpty() {
		knightTargets = append(knightTargets, king.Down(2).Left(1), king.Down(1).Left(2))
	}
	if b.ChessAt(king.Up(1).Right(1)).IsEmpty() {
		knightTargets = append(knightTargets, king.Up(2).Right(1), king.Up(1).Right(2))
	}
	if b.ChessAt(king.Down(1).Right(1)).IsEmpty() {
		knightTargets = append(knightTargets, king.Down(2).Right(1), king.Down(1).Right(2))
	}
	for _, pos := range knightTargets {
		if c := b.ChessAt(pos); c.Color == enemy && c.Kind == Knight {
			return true
		}
	}

	pawnTargets := []Position{king.Left(1), king.Right(1)}
	if side == Red {
		pawnTargets = append(pawnTargets, king.Up(1))
	} else {
		pawnTargets = append(pawnTargets, king.Down(1))
	}
	for _, pos := range pawnTargets {
		if c := b.ChessAt(pos); c.Color == enemy && c.Kind == Pawn {
			return true
		}
	}

	return b.KingEyeToEye()
}

// generateMoveForKind returns the pseudo-legal (palace/river unfiltered)
// target squares for a piece of kind at pos, as if it were side to move.
// Board-edge, palace, and river constraints are applied by the caller.
func (b *Board) generateMoveForKind(kind Kind, pos Position, side Color) []Position {
	var targets []Position
	switch kind {
	case King:
		targets = append(targets, pos.Up(1), pos.Down(1), pos.Left(1), pos.Right(1))

	case Advisor:
		targets = append(targets, pos.Up(1).Left(1), pos.Up(1).Right(1), pos.Down(1).Left(1), pos.Down(1).Right(1))

	case Bishop:
		if b.ChessAt(pos.Up(1).Left(1)).IsEmpty() {
			targets = append(targets, pos.Up(2).Left(2))
		}
		if b.ChessAt(pos.Up(1).Right(1)).IsEmpty() {
			targets = append(targets, pos.Up(2).Right(2))
		}
		if b.ChessAt(pos.Down(1).Left(1)).IsEmpty() {
			targets = append(targets, pos.Down(2).Left(2))
		}
		if b.ChessAt(pos.Down(1).Right(1)).IsEmpty() {
			targets = append(targets, pos.Down(2).Right(2))
		}

	case Knight:
		if b.ChessAt(pos.Up(1)).IsEmpty() {
			targets = append(targets, pos.Up(2).Left(1), pos.Up(2).Right(1))
		}
		if b.ChessAt(pos.Down(1)).IsEmpty() {
			targets = append(targets, pos.Down(2).Left(1), pos.Down(2).Right(1))
		}
		if b.ChessAt(pos.Left(1)).IsEmpty() {
			targets = append(targets, pos.Up(1).Left(2), pos.Down(1).Left(2))
		}
		if b.ChessAt(pos.Right(1)).IsEmpty() {
			targets = append(targets, pos.Up(1).Right(2), pos.Down(1).Right(2))
		}

	case Rook:
		for _, step := range []func(int) Position{pos.Up, pos.Down, pos.Left, pos.Right} {
			for delta := 1; ; delta++ {
				target := step(delta)
				if !target.InBoard() {
					break
				}
				targets = append(targets, target)
				if !b.ChessAt(target).IsEmpty() {
					break
				}
			}
		}

	case Cannon:
		for _, step := range []func(int) Position{pos.Up, pos.Down, pos.Left, pos.Right} {
			jumped := false
			for delta := 1; ; delta++ {
				target := step(delta)
				if !target.InBoard() {
					break
				}
				if !jumped {
					if !b.ChessAt(target).IsEmpty() {
						jumped = true
					} else {
						targets = append(targets, target)
					}
				} else if !b.ChessAt(target).IsEmpty() {
					targets = append(targets, target)
					break
				}
			}
		}

	case Pawn:
		if !InCountry(pos.Row, side) {
			targets = append(targets, pos.Left(1), pos.Right(1))
		}
		if side == Black {
			targets = append(targets, pos.Down(1))
		} else {
			targets = append(targets, pos.Up(1))
		}
	}
	return targets
}

// GenerateMove returns pseudo-legal moves for the side to move: squares a
// King would pass through check on are not filtered here, only in the
// caller's self-check test. If captureOnly, quiet moves are omitted.
func (b *Board) GenerateMove(captureOnly bool) []Move {
	var moves []Move
	for row := 0; row < BoardHeight; row++ {
		for col := 0; col < BoardWidth; col++ {
			from := Position{Row: row, Col: col}
			piece := b.ChessAt(from)
			if piece.Color != b.Turn || piece.IsEmpty() {
				continue
			}
			kind := b.movingKind(from)
			targets := b.generateMoveForKind(kind, from, b.Turn)

			for _, to := range targets {
				var valid bool
				switch kind {
				case King, Advisor:
					valid = InPalace(to, b.Turn)
				case Bishop:
					valid = to.InBoard() && InCountry(to.Row, b.Turn)
				default:
					valid = to.InBoard()
				}
				if !valid {
					continue
				}

				capture := b.ChessAt(to)
				if capture.Color == b.Turn && !capture.IsEmpty() {
					continue
				}
				if captureOnly && capture.IsEmpty() {
					continue
				}

				moves = append(moves, Move{Color: b.Turn, From: from, To: to, Piece: piece, Capture: capture})
			}
		}
	}

	SortByPriority(moves, MVVLVA)
	return moves
}

// MaterialDiff returns the type-value material balance from side's
// perspective: positive means side is ahead on material. A diagnostic, not
// consulted by search or evaluation.
func (b *Board) MaterialDiff(side Color) int {
	var redTotal, blackTotal int
	for row := 0; row < BoardHeight; row++ {
		for col := 0; col < BoardWidth; col++ {
			c := b.chesses[row][col]
			if c.IsEmpty() {
				continue
			}
			if c.Color == Red {
				redTotal += c.Kind.TypeValue()
			} else {
				blackTotal += c.Kind.TypeValue()
			}
		}
	}
	if side == Red {
		return redTotal - blackTotal
	}
	return blackTotal - redTotal
}

// ZobristValue returns the current position's primary Zobrist hash.
func (b *Board) ZobristValue() ZobristHash { return b.zobristValue }

// ZobristValueLock returns the current position's lock Zobrist hash, used to
// disambiguate RecordSize-indexed collisions.
func (b *Board) ZobristValueLock() ZobristHash { return b.zobristValueLock }

// FindRecord returns the cached record for the current position and turn, if
// the slot is occupied and its lock matches.
func (b *Board) FindRecord() (*Record, bool) {
	slot := b.Records[uint64(b.zobristValue)&(RecordSize-1)]
	if slot != nil && slot.ZobristKey == b.zobristValueLock && slot.Turn == b.Turn {
		return slot, true
	}
	return nil, false
}

// AddRecord stores record for the current position, keeping the
// shallower-depth (and therefore deeper remaining search) entry on collision.
func (b *Board) AddRecord(record *Record) {
	idx := uint64(b.zobristValue) & (RecordSize - 1)
	if old := b.Records[idx]; old == nil || record.Depth < old.Depth {
		b.Records[idx] = record
	}
}

func (b *Board) String() string {
	return fmt.Sprintf("board{turn=%v, distance=%v, hash=%x}", b.Turn, b.Distance, b.zobristValue)
}
