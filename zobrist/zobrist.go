// Package zobrist implements the incremental position-hash scheme: a
// process-wide table of random keys, XOR-combined into a 64-bit key that
// can be updated in O(1) per make_move instead of rehashed from scratch.
package zobrist

import (
	"math/rand/v2"

	"chesscore/sq"
)

// Keys holds the process-wide random table used to hash a position. It is
// read-only once initialized and safe for concurrent readers (§5).
type Keys struct {
	piece    [12][64]uint64
	castling [16]uint64
	enPassant [64]uint64
	sideToMove uint64
}

// New generates a fresh table of pseudo-random keys. Call it once at
// process start and share the result; a value is immutable after
// construction, but no external synchronization is required for readers.
func New() *Keys {
	var k Keys
	for p := sq.WhitePawn; p <= sq.BlackKing; p++ {
		for s := 0; s < 64; s++ {
			k.piece[p][s] = rand.Uint64()
		}
	}
	for c := range k.castling {
		k.castling[c] = rand.Uint64()
	}
	for s := range k.enPassant {
		k.enPassant[s] = rand.Uint64()
	}
	k.sideToMove = rand.Uint64()
	return &k
}

// Piece returns the key XORed in for piece p standing on square s.
func (k *Keys) Piece(p sq.Piece, s sq.Square) uint64 { return k.piece[p][s] }

// Castling returns the key for a given castling-rights nibble.
func (k *Keys) Castling(rights sq.CastlingRights) uint64 { return k.castling[rights] }

// EnPassant returns the key for a given en passant target square.
func (k *Keys) EnPassant(s sq.Square) uint64 { return k.enPassant[s] }

// SideToMove returns the key XORed in while White is to move.
func (k *Keys) SideToMove() uint64 { return k.sideToMove }
