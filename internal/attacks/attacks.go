//
// chesscore - a chess engine core written in Go
//

// Package attacks precomputes the non-slider attack tables (knight, king,
// pawn) and ray/between tables, and exposes the slider lookups backed by
// internal/magic.
package attacks

import (
	"github.com/ofalvai/chesscore/internal/magic"
	. "github.com/ofalvai/chesscore/internal/types"
)

var (
	knightAttacks [SqLength]Bitboard
	kingAttacks   [SqLength]Bitboard
	// pawnCaptures[side][sq] is the diagonal capture mask; pawns never
	// capture along their quiet-move direction so this is kept separate
	// from the push masks below.
	pawnCaptures [SideLength][SqLength]Bitboard
	pawnPushes   [SideLength][SqLength]Bitboard

	// rays[sq][dir] is the open-ended ray from sq in direction dir,
	// including the edge square, excluding sq itself.
	rays [SqLength][8]Bitboard
	// between[from][to] is the set of squares strictly between from and to
	// when they share a rank, file or diagonal; empty otherwise. Used by
	// pin detection and check-evasion destination restriction.
	between [SqLength][SqLength]Bitboard
)

var knightDeltas = [8][2]int8{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
var kingDeltas = [8][2]int8{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}

// Init builds every precomputed table and the magic oracle. Must run once
// at process start before any lookup function is called.
func Init(mode magic.Mode) {
	magic.Init(mode)
	initLeapers()
	initPawns()
	initRays()
	initBetween()
}

func offsetSquare(sq Square, df, dr int8) Square {
	f := int8(sq.File()) + df
	r := int8(sq.Rank()) + dr
	if f < 0 || f > 7 || r < 0 || r > 7 {
		return SqNone
	}
	return SquareOf(File(f), Rank(r))
}

func initLeapers() {
	for sq := SqA1; sq < SqLength; sq++ {
		var kn, ki Bitboard
		for _, d := range knightDeltas {
			if n := offsetSquare(sq, d[0], d[1]); n != SqNone {
				kn |= n.Bb()
			}
		}
		for _, d := range kingDeltas {
			if n := offsetSquare(sq, d[0], d[1]); n != SqNone {
				ki |= n.Bb()
			}
		}
		knightAttacks[sq] = kn
		kingAttacks[sq] = ki
	}
}

func initPawns() {
	for sq := SqA1; sq < SqLength; sq++ {
		// White
		if c := offsetSquare(sq, -1, 1); c != SqNone {
			pawnCaptures[White][sq] |= c.Bb()
		}
		if c := offsetSquare(sq, 1, 1); c != SqNone {
			pawnCaptures[White][sq] |= c.Bb()
		}
		if p := offsetSquare(sq, 0, 1); p != SqNone {
			pawnPushes[White][sq] |= p.Bb()
			if sq.Rank() == Rank2 {
				if p2 := offsetSquare(sq, 0, 2); p2 != SqNone {
					pawnPushes[White][sq] |= p2.Bb()
				}
			}
		}
		// Black
		if c := offsetSquare(sq, -1, -1); c != SqNone {
			pawnCaptures[Black][sq] |= c.Bb()
		}
		if c := offsetSquare(sq, 1, -1); c != SqNone {
			pawnCaptures[Black][sq] |= c.Bb()
		}
		if p := offsetSquare(sq, 0, -1); p != SqNone {
			pawnPushes[Black][sq] |= p.Bb()
			if sq.Rank() == Rank7 {
				if p2 := offsetSquare(sq, 0, -2); p2 != SqNone {
					pawnPushes[Black][sq] |= p2.Bb()
				}
			}
		}
	}
}

func initRays() {
	for sq := SqA1; sq < SqLength; sq++ {
		for _, d := range Directions {
			var b Bitboard
			s := sq
			for {
				n := s.To(d)
				if n == SqNone {
					break
				}
				b |= n.Bb()
				s = n
			}
			rays[sq][d] = b
		}
	}
}

func initBetween() {
	for from := SqA1; from < SqLength; from++ {
		for _, d := range Directions {
			s := from
			var acc Bitboard
			for {
				n := s.To(d)
				if n == SqNone {
					break
				}
				between[from][n] = acc
				acc |= n.Bb()
				s = n
			}
		}
	}
}

// KnightAttacks returns the knight attack set from sq.
func KnightAttacks(sq Square) Bitboard { return knightAttacks[sq] }

// KingAttacks returns the king attack set from sq.
func KingAttacks(sq Square) Bitboard { return kingAttacks[sq] }

// PawnCaptures returns the diagonal capture mask for a side's pawn on sq.
func PawnCaptures(side Side, sq Square) Bitboard { return pawnCaptures[side][sq] }

// PawnPushes returns the quiet push mask (single, plus double from the
// starting rank) for a side's pawn on sq. Blocking is the caller's job:
// this mask alone doesn't know whether the square in between is occupied.
func PawnPushes(side Side, sq Square) Bitboard { return pawnPushes[side][sq] }

// Ray returns the open-ended ray from sq in direction d.
func Ray(sq Square, d Direction) Bitboard { return rays[sq][d] }

// Between returns the squares strictly between a and b if they are
// aligned (rank, file or diagonal); BbZero otherwise.
func Between(a, b Square) Bitboard { return between[a][b] }

// BishopAttacks returns the bishop attack set from sq given occupancy occ.
func BishopAttacks(sq Square, occ Bitboard) Bitboard {
	return magic.BishopTable[sq].AttacksFor(occ)
}

// RookAttacks returns the rook attack set from sq given occupancy occ.
func RookAttacks(sq Square, occ Bitboard) Bitboard {
	return magic.RookTable[sq].AttacksFor(occ)
}

// QueenAttacks is the union of bishop and rook attacks from sq.
func QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return BishopAttacks(sq, occ) | RookAttacks(sq, occ)
}

// AttacksFor returns the attack set of pt from sq given occupancy occ; pt
// must not be Pawn (pawn attacks are side-dependent, see PawnCaptures).
func AttacksFor(pt PieceType, sq Square, occ Bitboard) Bitboard {
	switch pt {
	case Knight:
		return KnightAttacks(sq)
	case King:
		return KingAttacks(sq)
	case Bishop:
		return BishopAttacks(sq, occ)
	case Rook:
		return RookAttacks(sq, occ)
	case Queen:
		return QueenAttacks(sq, occ)
	default:
		return BbZero
	}
}
