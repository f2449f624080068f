//
// chesscore - a chess engine core written in Go
//

// Package moveslice provides a small growable container for Move values,
// used by the generator to build a legal-move list and by the search to
// reorder it in place before iterating.
package moveslice

import (
	"sort"

	. "github.com/ofalvai/chesscore/internal/types"
)

// MoveSlice is a thin wrapper around []Move giving the call sites used
// throughout generation and search a single, consistent API.
type MoveSlice []Move

// New returns an empty MoveSlice with capacity hinted by cap.
func New(cap int) MoveSlice {
	return make(MoveSlice, 0, cap)
}

// PushBack appends m.
func (ms *MoveSlice) PushBack(m Move) {
	*ms = append(*ms, m)
}

// Len returns the number of moves.
func (ms MoveSlice) Len() int { return len(ms) }

// At returns the i-th move; panics if i is out of range.
func (ms MoveSlice) At(i int) Move { return ms[i] }

// Set replaces the i-th move; panics if i is out of range.
func (ms MoveSlice) Set(i int, m Move) { ms[i] = m }

// Clear truncates to zero length, keeping the underlying array.
func (ms *MoveSlice) Clear() { *ms = (*ms)[:0] }

// SortBySortValue orders moves by descending Move.SortValue(), stable so
// equally scored moves keep their generation order.
func (ms MoveSlice) SortBySortValue() {
	sort.SliceStable(ms, func(i, j int) bool {
		return ms[i].SortValue() > ms[j].SortValue()
	})
}

// Contains reports whether m is present, used by tests comparing legal
// move sets against expectations.
func (ms MoveSlice) Contains(m Move) bool {
	for _, x := range ms {
		if x == m {
			return true
		}
	}
	return false
}
