// Package perft implements the move-generation correctness driver: counting
// the leaf nodes of the legal-move tree to a fixed depth and comparing the
// result against known-good node counts.
//
// See https://www.chessprogramming.org/Perft_Results
package perft

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"chesscore/move"
	"chesscore/movegen"
	"chesscore/position"
)

// Count walks the legal-move tree rooted at p to depth plies using true
// make/unmake (not copy-make), and returns the number of leaf nodes.
func Count(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var list move.List
	movegen.GenerateLegal(p, &list)

	if depth == 1 {
		return uint64(list.Len())
	}

	var nodes uint64
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if err := p.MakeMove(m); err != nil {
			panic(fmt.Sprintf("perft: make_move of a generated legal move failed: %v", err))
		}
		nodes += Count(p, depth-1)
		if err := p.UnmakeMove(m); err != nil {
			panic(fmt.Sprintf("perft: unmake_move failed: %v", err))
		}
	}
	return nodes
}

// Divide runs perft one ply at a time from the root, returning the node
// count contributed by each individual root move keyed by its long
// algebraic form — the standard debugging aid for isolating which root
// move's subtree diverges from a reference engine.
func Divide(p *position.Position, depth int) map[string]uint64 {
	results := make(map[string]uint64)
	if depth == 0 {
		return results
	}

	var list move.List
	movegen.GenerateLegal(p, &list)

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if err := p.MakeMove(m); err != nil {
			panic(fmt.Sprintf("perft: make_move of a generated legal move failed: %v", err))
		}
		results[m.String()] = Count(p, depth-1)
		if err := p.UnmakeMove(m); err != nil {
			panic(fmt.Sprintf("perft: unmake_move failed: %v", err))
		}
	}
	return results
}

// FormatDivide renders a Divide result as sorted "move: count" lines
// followed by the total node count, matching the conventional perft
// divide output shape that reference engines diff against.
func FormatDivide(results map[string]uint64) string {
	moves := make([]string, 0, len(results))
	for mv := range results {
		moves = append(moves, mv)
	}
	slices.Sort(moves)

	var b strings.Builder
	var total uint64
	for _, mv := range moves {
		n := results[mv]
		fmt.Fprintf(&b, "%s: %d\n", mv, n)
		total += n
	}
	fmt.Fprintf(&b, "\nNodes searched: %d\n", total)
	return b.String()
}
