package movegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ofalvai/chesscore/internal/attacks"
	"github.com/ofalvai/chesscore/internal/magic"
	"github.com/ofalvai/chesscore/internal/movegen"
	"github.com/ofalvai/chesscore/internal/position"
	"github.com/ofalvai/chesscore/internal/zobrist"
)

func TestMain(m *testing.M) {
	attacks.Init(magic.ModeBaked)
	zobrist.Init()
	m.Run()
}

func perft(pos *position.Position, depth int) int64 {
	if depth == 0 {
		return 1
	}
	moves, _ := movegen.Generate(pos)
	var nodes int64
	for i := 0; i < moves.Len(); i++ {
		pos.MakeMove(moves.At(i))
		nodes += perft(pos, depth-1)
		pos.UndoMove()
	}
	return nodes
}

func TestPerftStandardOpening(t *testing.T) {
	expected := []int64{1, 20, 400, 8902, 197281, 4865609}
	pos := position.NewStandard()
	for depth, want := range expected {
		got := perft(pos, depth)
		assert.Equal(t, want, got, "perft(%d)", depth)
	}
}

func TestE1StartPositionDepth1(t *testing.T) {
	pos := position.NewStandard()
	moves, inCheck := movegen.Generate(pos)
	assert.False(t, inCheck)
	assert.Equal(t, 20, moves.Len())

	pawnMoves, knightMoves := 0, 0
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		switch pos.PieceAt(m.From()).TypeOf().String() {
		case "p":
			pawnMoves++
		case "n":
			knightMoves++
		}
	}
	assert.Equal(t, 16, pawnMoves)
	assert.Equal(t, 4, knightMoves)
}
