//
// chesscore - a chess engine core written in Go
//

// Package zobrist holds the random tables used to map a position to a
// 64-bit key, and the incremental XOR helpers make/undo uses to keep a
// position's key in sync without rehashing from scratch.
package zobrist

import (
	"math/rand"

	. "github.com/ofalvai/chesscore/internal/types"
)

var (
	pieceSquare [SideLength][PieceTypeLength][SqLength]Key
	blackToMove Key
	// castling is indexed by the full 4-bit composite CastlingRights value,
	// not by the number of rights set: two positions that differ only in
	// *which* rights remain must hash differently, and indexing by popcount
	// collapses exactly that distinction.
	castling [16]Key
	epFile   [FileLength]Key
)

// Init seeds every table from a fixed seed, so two runs of the engine
// agree on what a given position hashes to. Re-running Init would change
// every key in the process — it is meant to run exactly once at startup.
func Init() {
	rng := rand.New(rand.NewSource(1070372))
	next := func() Key { return Key(rng.Uint64()) }

	for s := White; s <= Black; s++ {
		for pt := Pawn; pt < PieceTypeNone; pt++ {
			for sq := SqA1; sq < SqLength; sq++ {
				pieceSquare[s][pt][sq] = next()
			}
		}
	}
	blackToMove = next()
	for i := range castling {
		castling[i] = next()
	}
	for f := range epFile {
		epFile[f] = next()
	}
}

// PieceSquare returns the key contribution of a piece of type pt and side
// s standing on sq.
func PieceSquare(s Side, pt PieceType, sq Square) Key {
	return pieceSquare[s][pt][sq]
}

// BlackToMove returns the key contribution XOR'd in whenever it is Black's
// turn to move.
func BlackToMove() Key { return blackToMove }

// Castling returns the key contribution for exactly this combination of
// remaining castling rights.
func Castling(cr CastlingRights) Key { return castling[cr&15] }

// EpFile returns the key contribution for an en-passant target on file f.
func EpFile(f File) Key { return epFile[f] }

// Compute hashes a position from scratch given its full state. Used to
// build a position's initial key and in tests; make/undo never call this
// in the hot path.
func Compute(board [SqLength]Piece, side Side, cr CastlingRights, ep Square) Key {
	var key Key
	for sq := SqA1; sq < SqLength; sq++ {
		p := board[sq]
		if p == PieceNone {
			continue
		}
		key ^= PieceSquare(p.SideOf(), p.TypeOf(), sq)
	}
	if side == Black {
		key ^= BlackToMove()
	}
	key ^= Castling(cr)
	if ep != SqNone {
		key ^= EpFile(ep.File())
	}
	return key
}
