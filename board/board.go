// Package board implements the piece-placement layer: twelve per-piece
// bitboards with add/remove/move/query operations and the cross-set
// invariants required of a legal arrangement.
package board

import (
	"fmt"

	"chesscore/bitutil"
	"chesscore/sq"
)

// SquareOccupiedError is returned by AddPiece when the target square
// already holds a piece.
type SquareOccupiedError struct{ Square sq.Square }

func (e *SquareOccupiedError) Error() string {
	return fmt.Sprintf("board: square %s is already occupied", e.Square)
}

// NoPieceOnSquareError is returned by RemovePiece when the square is empty.
type NoPieceOnSquareError struct{ Square sq.Square }

func (e *NoPieceOnSquareError) Error() string {
	return fmt.Sprintf("board: no piece on square %s", e.Square)
}

// Board holds the twelve piece bitboards that make up a piece placement.
//
// Invariants:
//   - I1: no two of the twelve bitboards intersect.
//   - I2: each color has exactly one king (enforced by callers before move
//     generation; may be temporarily violated while a FEN is being parsed).
//   - I3: no pawn occupies rank 1 or rank 8.
type Board struct {
	bitboards [12]bitutil.Bitboard
}

// AddPiece places p on sq, failing if the square is already occupied.
func (b *Board) AddPiece(p sq.Piece, s sq.Square) error {
	if b.PieceAt(s) != sq.NoPiece {
		return &SquareOccupiedError{Square: s}
	}
	b.bitboards[p] |= 1 << uint(s)
	return nil
}

// RemovePiece removes and returns whatever piece stands on sq, failing if
// the square is empty.
func (b *Board) RemovePiece(s sq.Square) (sq.Piece, error) {
	p := b.PieceAt(s)
	if p == sq.NoPiece {
		return sq.NoPiece, &NoPieceOnSquareError{Square: s}
	}
	b.bitboards[p] &^= 1 << uint(s)
	return p, nil
}

// MovePiece relocates the piece on from to the (empty) square to. It is the
// composition of RemovePiece(from) followed by AddPiece(piece, to).
func (b *Board) MovePiece(from, to sq.Square) (sq.Piece, error) {
	p, err := b.RemovePiece(from)
	if err != nil {
		return sq.NoPiece, err
	}
	if err := b.AddPiece(p, to); err != nil {
		// Restore the board to its pre-call state: the move failed as a
		// whole, so the piece never left `from`.
		b.bitboards[p] |= 1 << uint(from)
		return sq.NoPiece, err
	}
	return p, nil
}

// PieceAt returns the piece standing on sq, testing the twelve bitboards in
// a fixed order, or sq.NoPiece if the square is empty.
func (b *Board) PieceAt(s sq.Square) sq.Piece {
	mask := bitutil.Bitboard(1) << uint(s)
	for p := sq.WhitePawn; p <= sq.BlackKing; p++ {
		if b.bitboards[p]&mask != 0 {
			return p
		}
	}
	return sq.NoPiece
}

// Bitboard returns the raw bitboard for a single piece.
func (b *Board) Bitboard(p sq.Piece) bitutil.Bitboard { return b.bitboards[p] }

// SetBitboard overwrites the raw bitboard for a single piece; used by FEN
// loading and tests that construct positions directly.
func (b *Board) SetBitboard(p sq.Piece, bb bitutil.Bitboard) { b.bitboards[p] = bb }

// PiecesOf returns the union of all pieces belonging to color c.
func (b *Board) PiecesOf(c sq.Color) bitutil.Bitboard {
	var out bitutil.Bitboard
	base := int(c) * 6
	for k := 0; k < 6; k++ {
		out |= b.bitboards[base+k]
	}
	return out
}

// Occupancy returns the union of all twelve piece bitboards.
func (b *Board) Occupancy() bitutil.Bitboard {
	return b.PiecesOf(sq.White) | b.PiecesOf(sq.Black)
}

// Material sums popcount(bitboard) * piece value over every piece kind of
// color c.
func (b *Board) Material(c sq.Color) int {
	var total int
	base := int(c) * 6
	for k := 0; k < 6; k++ {
		p := sq.Piece(base + k)
		total += b.bitboards[p].Popcount() * p.Value()
	}
	return total
}

// KingSquare returns the square holding color c's king, or sq.NoSquare if
// there isn't one (only possible mid-FEN-parse, per I2).
func (b *Board) KingSquare(c sq.Color) sq.Square {
	bb := b.bitboards[sq.NewPiece(c, sq.King)]
	lsb := bb.LowestSetSquare()
	if lsb < 0 {
		return sq.NoSquare
	}
	return sq.Square(lsb)
}

// Disjoint reports whether the twelve piece bitboards are pairwise
// disjoint (invariant I1). Intended for property tests.
func (b *Board) Disjoint() bool {
	var seen bitutil.Bitboard
	for _, bb := range b.bitboards {
		if seen&bb != 0 {
			return false
		}
		seen |= bb
	}
	return true
}

// String renders the board as an 8x8 ASCII diagram, rank 8 at the top.
func (b *Board) String() string {
	letters := [12]byte{'P', 'N', 'B', 'R', 'Q', 'K', 'p', 'n', 'b', 'r', 'q', 'k'}
	out := make([]byte, 0, 8*18)
	for rank := 7; rank >= 0; rank-- {
		out = append(out, byte('1'+rank), ' ', ' ')
		for file := 0; file < 8; file++ {
			s := sq.Square(rank*8 + file)
			p := b.PieceAt(s)
			ch := byte('.')
			if p != sq.NoPiece {
				ch = letters[p]
			}
			out = append(out, ch, ' ', ' ')
		}
		out = append(out, '\n')
	}
	out = append(out, "  a b c d e f g h\n"...)
	return string(out)
}
