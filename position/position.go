// Package position implements the full chess game state — piece placement
// plus side to move, en passant target, castling rights, and move
// counters — together with the reversible make/unmake transaction
// protocol described in §4.5 of the specification.
package position

import (
	"fmt"

	"chesscore/board"
	"chesscore/move"
	"chesscore/sq"
	"chesscore/zobrist"
)

// HistoryUnderflowError is returned by UnmakeMove when the history stack is
// empty, i.e. there is no move to undo.
type HistoryUnderflowError struct{ Field string }

func (e *HistoryUnderflowError) Error() string {
	return fmt.Sprintf("position: history underflow restoring %s", e.Field)
}

// StateMismatchError reports an invariant assumed by a transition that did
// not hold: a move whose origin square is empty, or a castle whose
// destination has no registered rook move.
type StateMismatchError struct{ Msg string }

func (e *StateMismatchError) Error() string {
	return "position: state mismatch: " + e.Msg
}

// Reversal captures everything a single make_move call loses, so that
// unmake_move can restore the position bit-for-bit without recomputing
// anything from scratch.
type Reversal struct {
	EnPassant      sq.Square
	CastlingRights sq.CastlingRights
	HalfmoveClock  int
	PositionKey    uint64
	CapturedPiece  sq.Piece // sq.NoPiece if the move was not a capture; recorded for assertion
}

// Position is a complete, mutable chess game state.
type Position struct {
	Board          board.Board
	SideToMove     sq.Color
	EnPassant      sq.Square // sq.NoSquare if none
	CastlingRights sq.CastlingRights
	HalfmoveClock  int // plies since the last capture or pawn push (50-move rule)
	FullmoveNumber int
	Ply            int
	PositionKey    uint64

	keys    *zobrist.Keys
	history []Reversal
}

// New builds an empty position bound to the given Zobrist key table. Use
// fen.Parse to populate it from a FEN string, or set up pieces directly via
// Position.Board for tests.
func New(keys *zobrist.Keys) *Position {
	return &Position{
		SideToMove: sq.White,
		EnPassant:  sq.NoSquare,
		keys:       keys,
		history:    make([]Reversal, 0, 64),
	}
}

// Keys returns the Zobrist key table this position hashes against.
func (p *Position) Keys() *zobrist.Keys { return p.keys }

// HistoryDepth returns the number of make_move calls since construction
// that have not yet been unmade.
func (p *Position) HistoryDepth() int { return len(p.history) }

// RecomputeKey rebuilds the position key from scratch, ignoring the
// incrementally maintained PositionKey. Used by property tests (P4) to
// check the incremental maintenance against a known-good computation, and
// once by New-from-FEN to seed PositionKey.
func (p *Position) RecomputeKey() uint64 {
	var key uint64
	for piece := sq.WhitePawn; piece <= sq.BlackKing; piece++ {
		bb := p.Board.Bitboard(piece)
		for bb != 0 {
			s := bb.LowestSetSquare()
			key ^= p.keys.Piece(piece, sq.Square(s))
			bb &^= 1 << uint(s)
		}
	}
	key ^= p.keys.Castling(p.CastlingRights)
	if p.EnPassant != sq.NoSquare {
		key ^= p.keys.EnPassant(p.EnPassant)
	}
	if p.SideToMove == sq.White {
		key ^= p.keys.SideToMove()
	}
	return key
}

// castlingRookSquares maps a castling move's destination square to the
// rook's (from, to) squares for that side.
var castlingRookSquares = map[sq.Square][2]sq.Square{
	sq.G1: {sq.H1, sq.F1},
	sq.C1: {sq.A1, sq.D1},
	sq.G8: {sq.H8, sq.F8},
	sq.C8: {sq.A8, sq.D8},
}

// castlingRightsClearedByKingMove maps the king's home square to the two
// rights that moving it strips.
var castlingRightsClearedByKingMove = map[sq.Square]sq.CastlingRights{
	sq.E1: sq.WhiteKingSide | sq.WhiteQueenSide,
	sq.E8: sq.BlackKingSide | sq.BlackQueenSide,
}

// rookHomeRight maps a rook's home square to the single right it guards.
var rookHomeRight = map[sq.Square]sq.CastlingRights{
	sq.H1: sq.WhiteKingSide,
	sq.A1: sq.WhiteQueenSide,
	sq.H8: sq.BlackKingSide,
	sq.A8: sq.BlackQueenSide,
}

// MakeMove applies m to the position in place, pushing a Reversal entry so
// a later UnmakeMove(m) restores the position bit-for-bit. It is the
// caller's responsibility to supply a (pseudo-)legal move; a Board
// precondition violation here is fatal per §7 and is returned as an error
// rather than silently corrupting state.
func (p *Position) MakeMove(m move.Move) error {
	rev := Reversal{
		EnPassant:      p.EnPassant,
		CastlingRights: p.CastlingRights,
		HalfmoveClock:  p.HalfmoveClock,
		PositionKey:    p.PositionKey,
		CapturedPiece:  m.CapturedPiece(),
	}

	from, to := m.From(), m.To()
	mover := p.Board.PieceAt(from)
	if mover == sq.NoPiece {
		return &StateMismatchError{Msg: fmt.Sprintf("no piece on origin square %s", from)}
	}

	key := p.PositionKey

	if m.IsEnPassant() {
		capSq := to - sq.Square(p.SideToMove.PushDirection())
		captured, err := p.Board.RemovePiece(capSq)
		if err != nil {
			return err
		}
		key ^= p.keys.Piece(captured, capSq)
	} else if m.IsCapture() {
		captured, err := p.Board.RemovePiece(to)
		if err != nil {
			return err
		}
		key ^= p.keys.Piece(captured, to)
	}

	if _, err := p.Board.MovePiece(from, to); err != nil {
		return err
	}
	key ^= p.keys.Piece(mover, from)
	key ^= p.keys.Piece(mover, to)

	if m.IsCastle() {
		rookMove, ok := castlingRookSquares[to]
		if !ok {
			return &StateMismatchError{Msg: fmt.Sprintf("no rook move registered for castle to %s", to)}
		}
		rook := p.Board.PieceAt(rookMove[0])
		if _, err := p.Board.MovePiece(rookMove[0], rookMove[1]); err != nil {
			return err
		}
		key ^= p.keys.Piece(rook, rookMove[0])
		key ^= p.keys.Piece(rook, rookMove[1])
	}

	if m.IsPromotion() {
		if _, err := p.Board.RemovePiece(to); err != nil {
			return err
		}
		promoted := m.PromotedPiece()
		if err := p.Board.AddPiece(promoted, to); err != nil {
			return err
		}
		key ^= p.keys.Piece(mover, to)
		key ^= p.keys.Piece(promoted, to)
	}

	// Castling rights: monotonically cleared, never re-set going forward.
	key ^= p.keys.Castling(p.CastlingRights)
	if right, ok := castlingRightsClearedByKingMove[from]; ok && mover.Kind() == sq.King {
		p.CastlingRights &^= right
	}
	if right, ok := rookHomeRight[from]; ok {
		p.CastlingRights &^= right
	}
	// A captured rook on its home corner forfeits that side's right too.
	if right, ok := rookHomeRight[to]; ok && rev.CapturedPiece != sq.NoPiece && rev.CapturedPiece.Kind() == sq.Rook {
		p.CastlingRights &^= right
	}
	key ^= p.keys.Castling(p.CastlingRights)

	// En passant target.
	if p.EnPassant != sq.NoSquare {
		key ^= p.keys.EnPassant(p.EnPassant)
	}
	if m.IsDoublePush() {
		p.EnPassant = to - sq.Square(p.SideToMove.PushDirection())
		key ^= p.keys.EnPassant(p.EnPassant)
	} else {
		p.EnPassant = sq.NoSquare
	}

	// Fifty-move clock.
	if mover.Kind() == sq.Pawn || m.IsCapture() {
		p.HalfmoveClock = 0
	} else {
		p.HalfmoveClock++
	}

	if p.SideToMove == sq.Black {
		p.FullmoveNumber++
	}

	key ^= p.keys.SideToMove()
	p.SideToMove = p.SideToMove.Opponent()
	p.Ply++

	p.PositionKey = key
	p.history = append(p.history, rev)
	return nil
}

// UnmakeMove reverses the effects of MakeMove(m), restoring the position to
// exactly what it was beforehand, including history depth and PositionKey.
// It must be called with the same move most recently passed to MakeMove.
func (p *Position) UnmakeMove(m move.Move) error {
	if len(p.history) == 0 {
		return &HistoryUnderflowError{Field: "history"}
	}
	rev := p.history[len(p.history)-1]
	p.history = p.history[:len(p.history)-1]

	p.Ply--
	if p.SideToMove == sq.White {
		p.FullmoveNumber--
	}
	p.SideToMove = p.SideToMove.Opponent()

	from, to := m.From(), m.To()

	if m.IsPromotion() {
		if _, err := p.Board.RemovePiece(to); err != nil {
			return err
		}
		pawn := sq.NewPiece(p.SideToMove, sq.Pawn)
		if err := p.Board.AddPiece(pawn, to); err != nil {
			return err
		}
	}

	if m.IsCastle() {
		rookMove, ok := castlingRookSquares[to]
		if !ok {
			return &StateMismatchError{Msg: fmt.Sprintf("no rook move registered for castle to %s", to)}
		}
		if _, err := p.Board.MovePiece(rookMove[1], rookMove[0]); err != nil {
			return err
		}
	}

	if _, err := p.Board.MovePiece(to, from); err != nil {
		return err
	}

	if rev.CapturedPiece != sq.NoPiece {
		if m.IsEnPassant() {
			capSq := to - sq.Square(p.SideToMove.PushDirection())
			if err := p.Board.AddPiece(rev.CapturedPiece, capSq); err != nil {
				return err
			}
		} else {
			if err := p.Board.AddPiece(rev.CapturedPiece, to); err != nil {
				return err
			}
		}
	}

	p.EnPassant = rev.EnPassant
	p.CastlingRights = rev.CastlingRights
	p.HalfmoveClock = rev.HalfmoveClock
	p.PositionKey = rev.PositionKey
	return nil
}

// Clone returns a deep copy of p, including its history stack, for tests
// that compare a position before and after a make/unmake round trip.
func (p *Position) Clone() *Position {
	c := *p
	c.history = append([]Reversal(nil), p.history...)
	return &c
}
