//
// chesscore - a chess engine core written in Go
//

// Package evaluator implements the one pure function the search treats as
// a black box: Eval(position) -> Value, positive favouring White. Weights
// and tables here are policy, not part of the core's contract — the
// search only relies on Eval being pure, deterministic and bounded on
// non-terminal positions.
package evaluator

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ofalvai/chesscore/internal/config"
	"github.com/ofalvai/chesscore/internal/position"
	. "github.com/ofalvai/chesscore/internal/types"
)

var out = message.NewPrinter(language.German)

// gamePhaseInc is the phase weight of each piece type, used to blend
// midgame and endgame piece-square tables; a full board is phase 24,
// bare kings phase 0.
var gamePhaseInc = [PieceTypeLength]int{0, 1, 1, 2, 4, 0}

// Eval scores pos from White's perspective. Pure: it never mutates pos.
func Eval(pos *position.Position) Value {
	var mg, eg Value
	phase := 0

	for s := White; s <= Black; s++ {
		sign := Value(1)
		if s == Black {
			sign = -1
		}
		for pt := Pawn; pt < PieceTypeNone; pt++ {
			bb := pos.PieceBb(s, pt)
			bb.ForEach(func(sq Square) {
				phase += gamePhaseInc[pt]
				mg += sign * (PieceValue[pt] + pstValue(pt, sq, s, false))
				eg += sign * (PieceValue[pt] + pstValue(pt, sq, s, true))
			})
		}
	}

	score := mg
	if config.Config.Eval.UseTaperedEval {
		if phase > 24 {
			phase = 24
		}
		score = (mg*Value(phase) + eg*Value(24-phase)) / 24
	}

	if config.Config.Eval.UsePawnStructure {
		score += pawnStructure(pos, White) - pawnStructure(pos, Black)
	}

	return score
}

// pstValue looks up a piece-square bonus, mirroring Black's table vertically
// so both sides are scored from their own perspective before the sign flip
// above puts everything back into White's frame.
func pstValue(pt PieceType, sq Square, s Side, endgame bool) Value {
	if !config.Config.Eval.UsePieceSquareTables {
		return 0
	}
	idx := sq
	if s == White {
		idx = Square(int(sq) ^ 56) // flip rank: tables are written rank-8-first
	} else {
		idx = Square(int(sq))
	}
	if endgame {
		return Value(endgameTables[pt][idx])
	}
	return Value(midgameTables[pt][idx])
}

// pawnStructure penalises doubled and isolated pawns for side s.
func pawnStructure(pos *position.Position, s Side) Value {
	pawns := pos.PieceBb(s, Pawn)
	var penalty Value
	for f := FileA; f < FileLength; f++ {
		fileBb := FileBb(f)
		count := (pawns & fileBb).PopCount()
		if count > 1 {
			penalty -= Value(count-1) * 12 // doubled pawns
		}
		if count > 0 {
			isolated := true
			if f > FileA && (pawns&FileBb(f-1)) != 0 {
				isolated = false
			}
			if f < FileH && (pawns&FileBb(f+1)) != 0 {
				isolated = false
			}
			if isolated {
				penalty -= 10
			}
		}
	}
	return penalty
}

// Describe renders a human-readable breakdown, used by debug tooling, not
// by the search itself.
func Describe(pos *position.Position) string {
	return out.Sprintf("eval=%d", Eval(pos))
}
