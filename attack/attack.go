// Package attack implements the attack oracle: given a square and a color,
// is that square attacked by a piece of that color. It uses the classic
// 10x12 "mailbox" padded board so that stepping in any of the eight ray
// directions needs no per-direction edge-wrap check — stepping off the
// board simply lands on a sentinel cell.
package attack

import (
	"chesscore/bitutil"
	"chesscore/board"
	"chesscore/sq"
)

// offBoard marks a mailbox cell outside the real 8x8 board.
const offBoard = -1

// squareToMailbox[s] is the index of square s within the 120-cell padded
// board; mailboxToSquare is its inverse (offBoard for border cells).
var (
	squareToMailbox [64]int
	mailboxToSquare [120]int
)

func init() {
	for i := range mailboxToSquare {
		mailboxToSquare[i] = offBoard
	}
	for s := 0; s < 64; s++ {
		file := sq.Square(s).File()
		rank := sq.Square(s).Rank()
		mi := 21 + 10*(rank-1) + file
		squareToMailbox[s] = mi
		mailboxToSquare[mi] = s
	}
}

// Direction offsets in mailbox space.
var (
	rookDirs   = [4]int{-1, 1, -10, 10}
	bishopDirs = [4]int{-9, 9, -11, 11}
	kingDirs   = [8]int{-1, 1, -10, 10, -9, 9, -11, 11}
	knightDirs = [8]int{-8, 8, -12, 12, -19, 19, -21, 21}
)

// pawnAttackDirs[color] gives the two mailbox capture-direction offsets for
// a pawn of that color.
var pawnAttackDirs = [2][2]int{
	sq.White: {9, 11},
	sq.Black: {-9, -11},
}

// step moves from mailbox index mi by offset d and reports the landing
// square, or (0, false) if the step leaves the board.
func step(mi, d int) (int, bool) {
	target := mailboxToSquare[mi+d]
	if target == offBoard {
		return 0, false
	}
	return target, true
}

// KnightAttacks returns the squares a knight on s attacks.
func KnightAttacks(s sq.Square) bitutil.Bitboard {
	return leap(s, knightDirs[:])
}

// KingAttacks returns the squares a king on s attacks.
func KingAttacks(s sq.Square) bitutil.Bitboard {
	return leap(s, kingDirs[:])
}

// PawnAttacks returns the squares a pawn of color c on s attacks (its two
// capture diagonals, not its push square).
func PawnAttacks(s sq.Square, c sq.Color) bitutil.Bitboard {
	return leap(s, pawnAttackDirs[c][:])
}

func leap(s sq.Square, dirs []int) bitutil.Bitboard {
	mi := squareToMailbox[s]
	var out bitutil.Bitboard
	for _, d := range dirs {
		if target, ok := step(mi, d); ok {
			out |= 1 << uint(target)
		}
	}
	return out
}

// SlidingAttacks returns the squares a slider on s attacks given the
// board's full occupancy, ray-walking each direction until it hits the
// board edge or an occupied square (inclusive of that blocking square).
func SlidingAttacks(s sq.Square, dirs []int, occupancy bitutil.Bitboard) bitutil.Bitboard {
	mi := squareToMailbox[s]
	var out bitutil.Bitboard
	for _, d := range dirs {
		cur := mi
		for {
			target, ok := step(cur, d)
			if !ok {
				break
			}
			out |= 1 << uint(target)
			if occupancy.Contains(target) {
				break
			}
			cur = squareToMailbox[target]
		}
	}
	return out
}

// BishopAttacks returns the diagonal slide attacks from s given occupancy.
func BishopAttacks(s sq.Square, occupancy bitutil.Bitboard) bitutil.Bitboard {
	return SlidingAttacks(s, bishopDirs[:], occupancy)
}

// RookAttacks returns the orthogonal slide attacks from s given occupancy.
func RookAttacks(s sq.Square, occupancy bitutil.Bitboard) bitutil.Bitboard {
	return SlidingAttacks(s, rookDirs[:], occupancy)
}

// QueenAttacks returns the combined diagonal and orthogonal attacks from s
// given occupancy.
func QueenAttacks(s sq.Square, occupancy bitutil.Bitboard) bitutil.Bitboard {
	return BishopAttacks(s, occupancy) | RookAttacks(s, occupancy)
}

// IsSquareAttacked reports whether s is attacked by any piece of color by,
// per §4.3: leapers are tested by stepping from s through their own
// attack-direction set, sliders by ray-walking from s until blocked.
//
// Note the pawn asymmetry: to ask whether White pawns attack s, the oracle
// steps from s using the reverse of White's capture offsets (Black's), since
// a White pawn on d4 attacks c5 and e5, so from c5 or e5 it sits one
// diagonal step back toward rank 1.
func IsSquareAttacked(b *board.Board, s sq.Square, by sq.Color) bool {
	occupancy := b.Occupancy()

	if b.Bitboard(sq.NewPiece(by, sq.Pawn))&PawnAttacks(s, by.Opponent()) != 0 {
		return true
	}
	if b.Bitboard(sq.NewPiece(by, sq.Knight))&KnightAttacks(s) != 0 {
		return true
	}
	if b.Bitboard(sq.NewPiece(by, sq.King))&KingAttacks(s) != 0 {
		return true
	}
	if b.Bitboard(sq.NewPiece(by, sq.Bishop))&BishopAttacks(s, occupancy) != 0 {
		return true
	}
	if b.Bitboard(sq.NewPiece(by, sq.Rook))&RookAttacks(s, occupancy) != 0 {
		return true
	}
	if b.Bitboard(sq.NewPiece(by, sq.Queen))&QueenAttacks(s, occupancy) != 0 {
		return true
	}
	return false
}
