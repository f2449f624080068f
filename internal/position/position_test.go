package position_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

// Make/undo round-trip: applying and reversing every legal move from a set
// of positions must restore the position bitwise, including the Zobrist
// key and occurrence counter.
func TestMakeUndoRoundTrip(t *testing.T) {
	fens := []string{
		position.StartFen,
		"r3k2r/pppq1ppp/2np1n2/1B2p3/1b2P3/2NP1N2/PPPQ1PPP/R3K2R w KQkq - 0 8",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
	}
	for _, fen := range fens {
		pos, err := position.NewFromFen(fen)
		require.NoError(t, err)
		before := pos.String()
		beforeKey := pos.Key()
		beforeCount := pos.OccurrenceCount()

		moves, _ := movegen.Generate(pos)
		for i := 0; i < moves.Len(); i++ {
			m := moves.At(i)
			pos.MakeMove(m)
			pos.UndoMove()
			assert.Equal(t, before, pos.String(), "round trip for move %s changed board", m)
			assert.Equal(t, beforeKey, pos.Key(), "round trip for move %s changed key", m)
			assert.Equal(t, beforeCount, pos.OccurrenceCount())
		}
	}
}

// Hash determinism: two positions with identical pieces/side/castling/EP
// hash identically regardless of how they were reached.
func TestHashDeterminism(t *testing.T) {
	a, err := position.NewFromFen(position.StartFen)
	require.NoError(t, err)

	b := position.NewStandard()
	moves, _ := movegen.Generate(b)
	m := moves.At(0)
	b.MakeMove(m)
	b.UndoMove()

	assert.Equal(t, a.Key(), b.Key())
}

func TestInsufficientMaterial(t *testing.T) {
	pos, err := position.NewFromFen("8/8/8/4k3/8/8/4K3/8 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, pos.InsufficientMaterial())

	pos2, err := position.NewFromFen("8/8/8/4k3/8/8/4KN2/8 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, pos2.InsufficientMaterial())

	pos3, err := position.NewFromFen(position.StartFen)
	require.NoError(t, err)
	assert.False(t, pos3.InsufficientMaterial())
}
