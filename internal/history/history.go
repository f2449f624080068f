//
// chesscore - a chess engine core written in Go
//

// Package history holds the move-ordering aids the search accumulates as
// it runs: a two-slot killer table per ply, and a [side][from][to] history
// count used to break ties among quiet moves that never caused a cutoff
// themselves but resemble one that did.
package history

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/ofalvai/chesscore/internal/types"
)

var out = message.NewPrinter(language.German)

const maxPly = 128

// History is the per-search (not per-position) move-ordering state; it
// lives as long as the Search that owns it and is not shared between
// Searches. FindBest does not clear it between calls.
type History struct {
	killers [maxPly][2]Move
	counts  [SideLength][SqLength][SqLength]int
}

// New returns an empty History.
func New() *History {
	return &History{}
}

// Killers returns the (up to two) killer moves recorded for ply.
func (h *History) Killers(ply int) [2]Move {
	if ply < 0 || ply >= maxPly {
		return [2]Move{}
	}
	return h.killers[ply]
}

// IsKiller reports whether m is one of ply's recorded killers.
func (h *History) IsKiller(ply int, m Move) bool {
	if ply < 0 || ply >= maxPly {
		return false
	}
	return h.killers[ply][0] == m || h.killers[ply][1] == m
}

// StoreKiller records m as causing a cutoff at ply, shifting the previous
// first slot down. A killer equal to m already is left alone rather than
// duplicated into both slots.
func (h *History) StoreKiller(ply int, m Move) {
	if ply < 0 || ply >= maxPly {
		return
	}
	if h.killers[ply][0] == m {
		return
	}
	h.killers[ply][1] = h.killers[ply][0]
	h.killers[ply][0] = m
}

// AddCutoff bumps the history count for a quiet move that caused a cutoff,
// weighted by depth so cutoffs deep in the tree count for more.
func (h *History) AddCutoff(s Side, m Move, depth int) {
	h.counts[s][m.From()][m.To()] += depth * depth
}

// Score returns the accumulated history count for a quiet move.
func (h *History) Score(s Side, m Move) int {
	return h.counts[s][m.From()][m.To()]
}

func (h *History) String() string {
	return out.Sprintf("history: %d killer slots", 2*maxPly)
}
