//
// chesscore - a chess engine core written in Go
//

// Package movegen computes the exact legal-move set of a position without
// ever generating a pseudo-legal move and verifying it by make/undo.
// Instead it derives, up front, the enemy attack bitboard, the current
// checkers, and a per-square pin mask by walking rays from the king — the
// same approach dragontoothmg's generator uses, and the one the rest of
// this engine's own search assumes (there is no "is this move legal?"
// check anywhere in the search loop; every move this package returns is
// trusted as-is).
package movegen

import (
	"github.com/op/go-logging"

	"github.com/ofalvai/chesscore/internal/attacks"
	"github.com/ofalvai/chesscore/internal/chesslog"
	. "github.com/ofalvai/chesscore/internal/moveslice"
	"github.com/ofalvai/chesscore/internal/position"
	. "github.com/ofalvai/chesscore/internal/types"
)

var log *logging.Logger

func init() {
	log = chesslog.GetLog("movegen")
}

var promotionPieces = [4]PieceType{Knight, Bishop, Rook, Queen}

// Generate returns every legal move for the side to move in pos, and
// whether that side is currently in check.
func Generate(pos *position.Position) (MoveSlice, bool) {
	us := pos.SideToMove()
	them := us.Opposite()
	kingSq := pos.KingSquare(us)

	enemyAttacks, checkers := attackInfo(pos, us, them, kingSq)
	inCheck := checkers != 0
	numCheckers := checkers.PopCount()

	moves := New(48)

	if numCheckers > 1 {
		log.Debugf("double check on %s, king moves only", kingSq)
		genKingMoves(pos, us, kingSq, enemyAttacks, &moves)
		return moves, inCheck
	}

	pinMasks := pinMasksFor(pos, us, them, kingSq)

	// the legal destination set every non-king piece is restricted to when
	// in single check: capture the checker, or block it if it's a slider.
	checkMask := Bitboard(BbAll)
	if numCheckers == 1 {
		checkerSq := checkers.LSB()
		checkMask = checkerSq.Bb()
		checkerType := pos.PieceAt(checkerSq).TypeOf()
		if checkerType.IsSlider() {
			checkMask |= attacks.Between(checkerSq, kingSq)
		}
	}

	genPawnMoves(pos, us, them, pinMasks, checkMask, &moves)
	genLeaperOrSliderMoves(pos, us, Knight, pinMasks, checkMask, &moves)
	genLeaperOrSliderMoves(pos, us, Bishop, pinMasks, checkMask, &moves)
	genLeaperOrSliderMoves(pos, us, Rook, pinMasks, checkMask, &moves)
	genLeaperOrSliderMoves(pos, us, Queen, pinMasks, checkMask, &moves)
	genKingMoves(pos, us, kingSq, enemyAttacks, &moves)
	if numCheckers == 0 {
		genCastling(pos, us, enemyAttacks, &moves)
	}

	return moves, inCheck
}

// attackInfo returns the union of every square `them` attacks, and the
// bitboard of `them`'s pieces currently attacking `us`'s king. The king is
// removed from the occupancy used for the attack union — otherwise a king
// retreating straight back along a checking ray would still be "blocked"
// by its own presence and wrongly considered safe on the square behind it.
func attackInfo(pos *position.Position, us, them Side, kingSq Square) (Bitboard, Bitboard) {
	occNoKing := pos.Occupied() &^ kingSq.Bb()

	var attacked Bitboard
	pos.PieceBb(them, Pawn).ForEach(func(sq Square) {
		attacked |= attacks.PawnCaptures(them, sq)
	})
	pos.PieceBb(them, Knight).ForEach(func(sq Square) {
		attacked |= attacks.KnightAttacks(sq)
	})
	pos.PieceBb(them, King).ForEach(func(sq Square) {
		attacked |= attacks.KingAttacks(sq)
	})
	bq := pos.PieceBb(them, Bishop) | pos.PieceBb(them, Queen)
	bq.ForEach(func(sq Square) {
		attacked |= attacks.BishopAttacks(sq, occNoKing)
	})
	rq := pos.PieceBb(them, Rook) | pos.PieceBb(them, Queen)
	rq.ForEach(func(sq Square) {
		attacked |= attacks.RookAttacks(sq, occNoKing)
	})

	var checkers Bitboard
	checkers |= attacks.PawnCaptures(us, kingSq) & pos.PieceBb(them, Pawn)
	checkers |= attacks.KnightAttacks(kingSq) & pos.PieceBb(them, Knight)
	checkers |= attacks.BishopAttacks(kingSq, pos.Occupied()) & bq
	checkers |= attacks.RookAttacks(kingSq, pos.Occupied()) & rq

	return attacked, checkers
}

// pinMasksFor returns, per square, the destination mask a piece standing
// there is restricted to: BbAll if it isn't pinned, otherwise the ray from
// the pinning slider up to and including the king (so capturing the pinner
// is still legal; anything else along the pin line isn't).
func pinMasksFor(pos *position.Position, us, them Side, kingSq Square) [SqLength]Bitboard {
	var masks [SqLength]Bitboard
	for sq := SqA1; sq < SqLength; sq++ {
		masks[sq] = BbAll
	}

	bq := pos.PieceBb(them, Bishop) | pos.PieceBb(them, Queen)
	rq := pos.PieceBb(them, Rook) | pos.PieceBb(them, Queen)

	ownOcc := pos.OccupiedBy(us)
	enemyOcc := pos.OccupiedBy(them)

	checkDir := func(sliders Bitboard, dirs []Direction) {
		for _, d := range dirs {
			ray := attacks.Ray(kingSq, d)
			slidersOnRay := ray & sliders
			if slidersOnRay == 0 {
				continue
			}
			sliderSq := nearestOnRay(kingSq, d, slidersOnRay)
			if sliderSq == SqNone {
				continue
			}
			between := attacks.Between(kingSq, sliderSq)
			blockers := between & pos.Occupied()
			if blockers.PopCount() != 1 {
				continue
			}
			if blockers&enemyOcc != 0 {
				continue // the blocker is an enemy piece, not a pin on us
			}
			pinnedSq := blockers.LSB()
			if blockers&ownOcc == 0 {
				continue
			}
			masks[pinnedSq] = between | sliderSq.Bb() | kingSq.Bb()
		}
	}

	checkDir(rq, []Direction{North, South, East, West})
	checkDir(bq, []Direction{NorthEast, SouthEast, SouthWest, NorthWest})

	return masks
}

// nearestOnRay returns the square on ray (in direction d from origin)
// closest to origin among candidates, or SqNone if candidates is empty.
func nearestOnRay(origin Square, d Direction, candidates Bitboard) Square {
	s := origin
	for {
		n := s.To(d)
		if n == SqNone {
			return SqNone
		}
		if candidates.Has(n) {
			return n
		}
		s = n
	}
}

func genLeaperOrSliderMoves(pos *position.Position, us Side, pt PieceType, pins [SqLength]Bitboard, checkMask Bitboard, moves *MoveSlice) {
	own := pos.OccupiedBy(us)
	occ := pos.Occupied()
	pos.PieceBb(us, pt).ForEach(func(from Square) {
		targets := attacks.AttacksFor(pt, from, occ) &^ own & pins[from] & checkMask
		targets.ForEach(func(to Square) {
			moves.PushBack(NewMove(from, to, Normal))
		})
	})
}

func genKingMoves(pos *position.Position, us Side, kingSq Square, enemyAttacks Bitboard, moves *MoveSlice) {
	own := pos.OccupiedBy(us)
	targets := attacks.KingAttacks(kingSq) &^ own &^ enemyAttacks
	targets.ForEach(func(to Square) {
		moves.PushBack(NewMove(kingSq, to, Normal))
	})
}

func genCastling(pos *position.Position, us Side, enemyAttacks Bitboard, moves *MoveSlice) {
	kingSq := pos.KingSquare(us)
	rank := Rank1
	if us == Black {
		rank = Rank8
	}
	if kingSq != SquareOf(FileE, rank) {
		return
	}
	if enemyAttacks.Has(kingSq) {
		return
	}
	occ := pos.Occupied()

	if pos.CastlingRights().Has(KingsideFor(us)) {
		f1, g1 := SquareOf(FileF, rank), SquareOf(FileG, rank)
		h1 := SquareOf(FileH, rank)
		if pos.PieceAt(h1) == MakePiece(us, Rook) &&
			!occ.Has(f1) && !occ.Has(g1) &&
			!enemyAttacks.Has(f1) && !enemyAttacks.Has(g1) {
			moves.PushBack(NewMove(kingSq, g1, Castling))
		}
	}
	if pos.CastlingRights().Has(QueensideFor(us)) {
		d1, c1, b1 := SquareOf(FileD, rank), SquareOf(FileC, rank), SquareOf(FileB, rank)
		a1 := SquareOf(FileA, rank)
		if pos.PieceAt(a1) == MakePiece(us, Rook) &&
			!occ.Has(d1) && !occ.Has(c1) && !occ.Has(b1) &&
			!enemyAttacks.Has(d1) && !enemyAttacks.Has(c1) {
			moves.PushBack(NewMove(kingSq, c1, Castling))
		}
	}
}

func genPawnMoves(pos *position.Position, us, them Side, pins [SqLength]Bitboard, checkMask Bitboard, moves *MoveSlice) {
	occ := pos.Occupied()
	enemy := pos.OccupiedBy(them)
	startRank, promoRank := Rank2, Rank8
	if us == Black {
		startRank, promoRank = Rank7, Rank1
	}

	pos.PieceBb(us, Pawn).ForEach(func(from Square) {
		pinMask := pins[from]

		// single/double push
		push1 := pawnAdvance(from, us)
		if push1 != SqNone && !occ.Has(push1) {
			if pinMask.Has(push1) && checkMask.Has(push1) {
				emitPawnMove(from, push1, promoRank, moves)
			}
			if from.Rank() == startRank {
				push2 := pawnAdvance(push1, us)
				if push2 != SqNone && !occ.Has(push2) && pinMask.Has(push2) && checkMask.Has(push2) {
					moves.PushBack(NewMove(from, push2, Normal))
				}
			}
		}

		// captures
		captures := attacks.PawnCaptures(us, from) & enemy & pinMask & checkMask
		captures.ForEach(func(to Square) {
			emitPawnMove(from, to, promoRank, moves)
		})

		// en passant
		ep := pos.EpSquare()
		if ep != SqNone && attacks.PawnCaptures(us, from).Has(ep) {
			capSq := SquareOf(ep.File(), from.Rank())
			epCheckOk := checkMask.Has(ep) || checkMask.Has(capSq)
			if pinMask.Has(ep) && epCheckOk && !epExposesKing(pos, us, them, from, capSq) {
				moves.PushBack(NewMove(from, ep, EnPassant))
			}
		}
	})
}

func pawnAdvance(sq Square, s Side) Square {
	if s == White {
		return sq.To(North)
	}
	return sq.To(South)
}

func emitPawnMove(from, to Square, promoRank Rank, moves *MoveSlice) {
	if to.Rank() == promoRank {
		for _, pt := range promotionPieces {
			moves.PushBack(NewPromotionMove(from, to, pt))
		}
		return
	}
	moves.PushBack(NewMove(from, to, Normal))
}

// epExposesKing answers Open Question 2: capturing en passant removes both
// the capturing pawn (from) and the captured pawn (capSq) from the rank in
// one move, which can uncover a horizontal rook/queen attack on the king
// that neither pawn's own departure square would reveal on its own. Check
// for that directly against a hypothetical occupancy with both pawns gone,
// rather than leaving it untested.
func epExposesKing(pos *position.Position, us, them Side, from, capSq Square) bool {
	kingSq := pos.KingSquare(us)
	if kingSq.Rank() != from.Rank() {
		return false
	}
	hypOcc := pos.Occupied() &^ from.Bb() &^ capSq.Bb()
	rq := pos.PieceBb(them, Rook) | pos.PieceBb(them, Queen)
	return attacks.RookAttacks(kingSq, hypOcc)&rq != 0
}
