// Package sq declares the small value types shared across the engine:
// squares, files, ranks, colors, piece kinds, and castling rights. Keeping
// them in one leaf package avoids import cycles between board, attack,
// movegen, and position.
package sq

// Square is one of the 64 board squares, little-endian rank-file mapped:
// a1 = 0, h1 = 7, a8 = 56, h8 = 63.
type Square int

// NoSquare marks the absence of an optional square (e.g. no en passant
// target).
const NoSquare Square = -1

// File returns the file (0=a .. 7=h) of s.
func (s Square) File() int { return int(s) & 7 }

// Rank returns the rank (1..8) of s.
func (s Square) Rank() int { return int(s)>>3 + 1 }

// FromFileRank builds a Square from a zero-based file (0..7) and a
// one-based rank (1..8).
func FromFileRank(file, rank int) Square {
	return Square((rank-1)*8 + file)
}

// String renders s in long algebraic form, e.g. "e4".
func (s Square) String() string {
	if s < 0 || s > 63 {
		return "-"
	}
	return string([]byte{"abcdefgh"[s.File()], "12345678"[s.Rank()-1]})
}

// Named squares, used throughout tests and castling logic.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// Color identifies a chess side.
type Color int

const (
	White Color = iota
	Black
)

// Opponent returns the other color.
func (c Color) Opponent() Color { return c ^ 1 }

// String renders the color's lowercase name.
func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// PushDirection returns +8 for White (north) and -8 for Black (south): the
// square-index delta of a single pawn push for c.
func (c Color) PushDirection() int {
	if c == White {
		return 8
	}
	return -8
}

// PawnStartRank returns the rank a pawn of color c begins the game on.
func (c Color) PawnStartRank() int {
	if c == White {
		return 2
	}
	return 7
}

// PawnPromotionRank returns the rank a pawn of color c stands on
// immediately before promoting (the last rank before the back rank).
func (c Color) PawnPromotionRank() int {
	if c == White {
		return 7
	}
	return 2
}

// PieceKind is a chess piece type, independent of color.
type PieceKind int

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceKind PieceKind = -1
)

// IsSlider reports whether k moves along a ray until blocked.
func (k PieceKind) IsSlider() bool {
	return k == Bishop || k == Rook || k == Queen
}

// Piece is a (Color, PieceKind) pair, encoded 0..11 for direct use as an
// array index: White pieces 0..5, Black pieces 6..11, in PieceKind order.
type Piece int

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	NoPiece Piece = -1
)

// NewPiece builds the Piece ordinal for (c, k).
func NewPiece(c Color, k PieceKind) Piece {
	return Piece(int(c)*6 + int(k))
}

// Color returns the color of p.
func (p Piece) Color() Color { return Color(int(p) / 6) }

// Kind returns the piece kind of p.
func (p Piece) Kind() PieceKind { return PieceKind(int(p) % 6) }

// Value is the conventional material value of p's kind in centipawns.
func (p Piece) Value() int {
	return [6]int{100, 325, 325, 550, 1000, 50000}[p.Kind()]
}

var pieceLetters = [12]byte{'P', 'N', 'B', 'R', 'Q', 'K', 'p', 'n', 'b', 'r', 'q', 'k'}

// Letter returns the FEN character for p.
func (p Piece) Letter() byte { return pieceLetters[p] }

// CastlingRights packs the four independent castling privileges into one
// nibble.
type CastlingRights uint8

const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide

	AllCastlingRights = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

// Has reports whether all bits of mask are set in c.
func (c CastlingRights) Has(mask CastlingRights) bool { return c&mask == mask }

// PromotionPiece is the subset of PieceKind a pawn can promote to.
type PromotionPiece int

const (
	PromoteKnight PromotionPiece = iota
	PromoteBishop
	PromoteRook
	PromoteQueen
)

// Kind converts a PromotionPiece into the corresponding PieceKind.
func (p PromotionPiece) Kind() PieceKind {
	return [4]PieceKind{Knight, Bishop, Rook, Queen}[p]
}
