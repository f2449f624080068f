package zobrist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/ofalvai/chesscore/internal/types"
	"github.com/ofalvai/chesscore/internal/zobrist"
)

func TestCastlingIndexedByCompositeNotPopcount(t *testing.T) {
	zobrist.Init()
	// Two different 2-right combinations must hash differently; a
	// popcount-indexed table would collapse them to the same entry.
	a := zobrist.Castling(CastleWhiteKingside | CastleBlackQueenside)
	b := zobrist.Castling(CastleWhiteKingside | CastleWhiteQueenside)
	assert.NotEqual(t, a, b)
}

func TestComputeIsDeterministic(t *testing.T) {
	zobrist.Init()
	var board [SqLength]Piece
	for i := range board {
		board[i] = PieceNone
	}
	board[SqE1] = MakePiece(White, King)
	board[SqE8] = MakePiece(Black, King)

	k1 := zobrist.Compute(board, White, CastleAll, SqNone)
	k2 := zobrist.Compute(board, White, CastleAll, SqNone)
	assert.Equal(t, k1, k2)

	k3 := zobrist.Compute(board, Black, CastleAll, SqNone)
	assert.NotEqual(t, k1, k3)
}
