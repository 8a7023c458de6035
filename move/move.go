// Package move implements the packed Move record and the fixed-capacity
// MoveList used throughout generation, make/unmake, and perft.
package move

import "chesscore/sq"

// Move is a packed 32-bit move record:
//
//	bits 0-5:   from square (0..63)
//	bits 6-11:  to square (0..63)
//	bits 12-15: captured piece + 1 (0 = none)
//	bits 16-19: promoted-to piece + 1 (0 = none)
//	bit 20:     en passant capture flag
//	bit 21:     pawn double-push flag
//	bit 22:     castle flag
//	bits 24-31: signed score, for move ordering; not part of move identity
type Move uint32

const (
	fromShift     = 0
	toShift       = 6
	capturedShift = 12
	promotedShift = 16
	epBit         = 1 << 20
	doublePushBit = 1 << 21
	castleBit     = 1 << 22
	scoreShift    = 24

	squareMask = 0x3F
	pieceMask  = 0xF
	identityMask Move = 0x00FFFFFF // everything except the score field
)

// Flags configure the bits of a Move beyond its from and to squares at
// construction time.
type Flags struct {
	Captured   sq.Piece // sq.NoPiece if the move is not a capture
	Promoted   sq.Piece // sq.NoPiece if the move is not a promotion
	EnPassant  bool
	DoublePush bool
	Castle     bool
}

// New builds a Move from from/to squares and the supplied flags.
func New(from, to sq.Square, f Flags) Move {
	m := Move(from)<<fromShift | Move(to)<<toShift

	if f.Captured != sq.NoPiece {
		m |= Move(f.Captured+1) << capturedShift
	}
	if f.Promoted != sq.NoPiece {
		m |= Move(f.Promoted+1) << promotedShift
	}
	if f.EnPassant {
		m |= epBit
	}
	if f.DoublePush {
		m |= doublePushBit
	}
	if f.Castle {
		m |= castleBit
	}
	return m
}

// From returns the origin square.
func (m Move) From() sq.Square { return sq.Square(m >> fromShift & squareMask) }

// To returns the destination square.
func (m Move) To() sq.Square { return sq.Square(m >> toShift & squareMask) }

// CapturedPiece returns the captured piece, or sq.NoPiece if the move is not
// a capture.
func (m Move) CapturedPiece() sq.Piece {
	v := m >> capturedShift & pieceMask
	if v == 0 {
		return sq.NoPiece
	}
	return sq.Piece(v - 1)
}

// IsCapture reports whether the move captures a piece (including en passant).
func (m Move) IsCapture() bool { return m.CapturedPiece() != sq.NoPiece }

// PromotedPiece returns the piece the pawn promotes to, or sq.NoPiece if the
// move is not a promotion.
func (m Move) PromotedPiece() sq.Piece {
	v := m >> promotedShift & pieceMask
	if v == 0 {
		return sq.NoPiece
	}
	return sq.Piece(v - 1)
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.PromotedPiece() != sq.NoPiece }

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool { return m&epBit != 0 }

// IsDoublePush reports whether the move is a pawn double push.
func (m Move) IsDoublePush() bool { return m&doublePushBit != 0 }

// IsCastle reports whether the move is a castling move.
func (m Move) IsCastle() bool { return m&castleBit != 0 }

// Score returns the move-ordering score riding alongside the move identity.
func (m Move) Score() int8 { return int8(m >> scoreShift) }

// WithScore returns a copy of m carrying the given ordering score.
func (m Move) WithScore(score int8) Move {
	return m&identityMask | Move(uint8(score))<<scoreShift
}

// Equal reports whether m and other denote the same move, ignoring score.
func (m Move) Equal(other Move) bool {
	return m&identityMask == other&identityMask
}

// String renders m in long algebraic notation: <fromfile><fromrank>
// <tofile><torank>[<promo>], promo in {q,r,b,n}.
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	if m.IsPromotion() {
		s += string("nbrq"[m.PromotedPiece().Kind()-sq.Knight])
	}
	return s
}

// capacity is the number of moves a List can hold; it lies above the
// largest known number of legal moves in a chess position (218).
// See https://www.talkchess.com/forum/viewtopic.php?t=61792
const capacity = 255

// List is a bounded inline buffer of moves; it never allocates on the heap
// beyond its own storage, so a generation call can push moves without
// touching the allocator.
type List struct {
	moves [capacity]Move
	count int
}

// Push appends m to the list.
func (l *List) Push(m Move) {
	l.moves[l.count] = m
	l.count++
}

// Len returns the number of moves currently stored.
func (l *List) Len() int { return l.count }

// At returns the i-th move.
func (l *List) At(i int) Move { return l.moves[i] }

// Reset empties the list for reuse without reallocating.
func (l *List) Reset() { l.count = 0 }

// Slice returns the stored moves as a slice view over the inline buffer.
// The returned slice aliases List's storage and is invalidated by the next
// Push/Reset.
func (l *List) Slice() []Move { return l.moves[:l.count] }
