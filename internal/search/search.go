//
// chesscore - a chess engine core written in Go
//

// Package search implements negamax with alpha-beta pruning, quiescence
// search, a transposition table, and MVV-LVA + killer-move ordering, with
// an optional parallel-root mode. The parallel variant runs the exact same
// per-worker algorithm as the sequential one — TT, killers and quiescence
// all included — rather than a stripped-down version; only the TT and
// killer table are per-worker instead of shared.
package search

import (
	"context"

	"github.com/op/go-logging"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/ofalvai/chesscore/internal/chesslog"
	"github.com/ofalvai/chesscore/internal/config"
	"github.com/ofalvai/chesscore/internal/evaluator"
	"github.com/ofalvai/chesscore/internal/history"
	"github.com/ofalvai/chesscore/internal/movegen"
	. "github.com/ofalvai/chesscore/internal/moveslice"
	"github.com/ofalvai/chesscore/internal/position"
	"github.com/ofalvai/chesscore/internal/transpositiontable"
	. "github.com/ofalvai/chesscore/internal/types"
)

var log *logging.Logger

func init() {
	log = chesslog.GetLog("search")
}

// Result is what a root search hands back to its driver.
type Result struct {
	Score Value
	Move  Move
	PV    []Move
	Nodes int64
}

// Search owns the per-call mutable state (TT, killer/history table, node
// counter) of a single find-best invocation. Not reused across positions
// with unrelated histories — the design note about not letting mate
// distances leak across roots means a fresh Search (or at least a fresh
// ply origin) per call.
type Search struct {
	tt      *transpositiontable.Table
	history *history.History
	nodes   int64
}

// New creates a Search with its own transposition table sized per config.
func New() *Search {
	return &Search{
		tt:      transpositiontable.New(config.Config.Search.TtSizeMb),
		history: history.New(),
	}
}

// FindBest searches pos to depth plies and returns the best move, its
// score (from White's perspective) and principal variation. pos is not
// mutated across the call boundary: every make is paired with an undo.
func (s *Search) FindBest(pos *position.Position, depth int) Result {
	s.nodes = 0
	var pv []Move
	sideMult := Value(1)
	if pos.SideToMove() == Black {
		sideMult = -1
	}
	score := s.negamax(pos, depth, 0, -ValueInf, ValueInf, &pv)
	best := MoveNone
	if len(pv) > 0 {
		best = pv[0]
	}
	return Result{Score: sideMult * score, Move: best, PV: pv, Nodes: s.nodes}
}

// FindBestParallel distributes the root's legal moves across up to
// config.Config.Search.MaxRootWorkers goroutines, each owning a full
// position clone and its own Search (TT + killers). Results are collapsed
// deterministically: highest score wins, ties broken by first-seen (input)
// order, matching the ordering guarantee for root workers.
func FindBestParallel(pos *position.Position, depth int) Result {
	moves, _ := movegen.Generate(pos)
	if moves.Len() == 0 {
		return Result{}
	}
	workers := config.Config.Search.MaxRootWorkers
	if workers < 1 {
		workers = 1
	}
	if workers > moves.Len() {
		workers = moves.Len()
	}

	type rootResult struct {
		idx   int
		score Value
		pv    []Move
		nodes int64
	}
	results := make([]rootResult, moves.Len())

	sem := semaphore.NewWeighted(int64(workers))
	g, ctx := errgroup.WithContext(context.Background())

	for i := 0; i < moves.Len(); i++ {
		i := i
		m := moves.At(i)
		g.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			worker := New()
			clone := pos.Clone()
			clone.MakeMove(m)
			var childPv []Move
			score := -worker.negamax(clone, depth-1, 1, -ValueInf, ValueInf, &childPv)
			clone.UndoMove()

			results[i] = rootResult{idx: i, score: score, pv: append([]Move{m}, childPv...), nodes: worker.nodes}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error(err)
	}

	sideMult := Value(1)
	if pos.SideToMove() == Black {
		sideMult = -1
	}

	best := results[0]
	var totalNodes int64
	for _, r := range results {
		totalNodes += r.nodes
		if r.score > best.score {
			best = r
		}
	}
	return Result{Score: sideMult * best.score, Move: best.pv[0], PV: best.pv, Nodes: totalNodes}
}

// negamax returns the score of pos, depth_remaining plies deep, from the
// perspective of the side to move (sign flips every recursive call).
func (s *Search) negamax(pos *position.Position, depthRemaining, ply int, alpha, beta Value, pvOut *[]Move) Value {
	s.nodes++

	moves, inCheck := movegen.Generate(pos)

	if moves.Len() == 0 {
		if inCheck {
			return -ValueMate + Value(ply)
		}
		return ValueDraw
	}
	if pos.ThreefoldRepetition() || pos.HalfMoveClock() >= 100 || pos.InsufficientMaterial() {
		return ValueDraw
	}

	if config.Config.Search.UseCheckExtension && (inCheck || moves.Len() == 1) {
		depthRemaining++
	}

	if depthRemaining <= 0 {
		return s.qsearch(pos, ply, 0, alpha, beta, pvOut)
	}

	origAlpha := alpha

	if config.Config.Search.UseMateDistancePruning {
		matingValue := ValueMate - Value(ply)
		if matingValue < beta {
			beta = matingValue
			if alpha >= matingValue {
				return matingValue
			}
		}
		matedValue := -ValueMate + Value(ply)
		if matedValue > alpha {
			alpha = matedValue
			if beta <= matedValue {
				return matedValue
			}
		}
	}

	var ttMove Move
	if config.Config.Search.UseTranspositionTable {
		if e := s.tt.Probe(pos.Key()); e != nil {
			ttMove = e.Move()
			if int(e.Depth()) >= depthRemaining {
				switch e.ValueType() {
				case Exact:
					return e.Value()
				case LowerBound:
					if e.Value() >= beta {
						return e.Value()
					}
				case UpperBound:
					if e.Value() <= alpha {
						return e.Value()
					}
				}
			}
		}
	}

	s.orderMoves(pos, moves, ply, ttMove)

	var best Move
	bestScore := -ValueInf
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		var childPv []Move
		pos.MakeMove(m)
		score := -s.negamax(pos, depthRemaining-1, ply+1, -beta, -alpha, &childPv)
		pos.UndoMove()

		if score > bestScore {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
			*pvOut = append([]Move{m}, childPv...)
		}
		if alpha >= beta {
			if config.Config.Search.UseKillerMoves && m.Type() == Normal && pos.PieceAt(m.To()) == PieceNone {
				s.history.StoreKiller(ply, m.SetSortValue(0))
				s.history.AddCutoff(pos.SideToMove(), m, depthRemaining)
			}
			bestScore = beta // fail-hard
			break
		}
	}

	if config.Config.Search.UseTranspositionTable {
		vt := Exact
		if bestScore <= origAlpha {
			vt = UpperBound
		} else if bestScore >= beta {
			vt = LowerBound
		}
		s.tt.Put(pos.Key(), best.SetSortValue(0), int8(depthRemaining), vt, bestScore, bestScore)
	}

	return bestScore
}

// qsearch extends the search beyond the horizon through captures,
// promotions and check evasions only. qDepth counts plies spent inside quiescence itself
// (separate from ply, the absolute ply from the root) and is compared
// against the configured quiescence horizon.
func (s *Search) qsearch(pos *position.Position, ply, qDepth int, alpha, beta Value, pvOut *[]Move) Value {
	s.nodes++

	sideMult := Value(1)
	if pos.SideToMove() == Black {
		sideMult = -1
	}
	standPat := sideMult * evaluator.Eval(pos)

	moves, inCheck := movegen.Generate(pos)
	if moves.Len() == 0 {
		if inCheck {
			return -ValueMate + Value(ply)
		}
		return ValueDraw
	}

	if !config.Config.Search.UseQuiescence || qDepth >= config.Config.Search.QuiescenceMaxPly {
		return standPat
	}

	if !inCheck {
		if standPat >= beta {
			return beta
		}
		if standPat > alpha {
			alpha = standPat
		}
	}

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if !inCheck && !isNoisy(pos, m) {
			continue
		}
		var childPv []Move
		pos.MakeMove(m)
		score := -s.qsearch(pos, ply+1, qDepth+1, -beta, -alpha, &childPv)
		pos.UndoMove()

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
			*pvOut = append([]Move{m}, childPv...)
		}
	}
	return alpha
}

// isNoisy reports whether m is a capture or promotion, the move classes
// quiescence search explores when not evading check.
func isNoisy(pos *position.Position, m Move) bool {
	if m.Type() == Promotion || m.Type() == EnPassant {
		return true
	}
	return pos.PieceAt(m.To()) != PieceNone
}

// orderMoves assigns each move a sort value — MVV-LVA for captures and
// promotions, killer-table membership for quiet moves, history count as
// the final tie-break — then sorts the slice in place.
func (s *Search) orderMoves(pos *position.Position, moves MoveSlice, ply int, ttMove Move) {
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		var v int16
		switch {
		case m == ttMove:
			v = 30000
		case isNoisy(pos, m):
			victim := pos.PieceAt(m.To())
			victimRank := 5
			if victim != PieceNone {
				victimRank = int(victim.TypeOf())
			}
			attacker := pos.PieceAt(m.From()).TypeOf()
			v = int16(10*victimRank + (5 - int(attacker)) + 10000)
			if m.Type() == Promotion {
				v += int16(PieceValue[m.PromotionType()])
			}
		case config.Config.Search.UseKillerMoves && s.history.IsKiller(ply, m):
			v = 9000
		default:
			v = int16(s.history.Score(pos.SideToMove(), m))
		}
		moves.Set(i, m.SetSortValue(v))
	}
	moves.SortBySortValue()
}
