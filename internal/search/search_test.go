package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ofalvai/chesscore/internal/attacks"
	"github.com/ofalvai/chesscore/internal/magic"
	"github.com/ofalvai/chesscore/internal/position"
	"github.com/ofalvai/chesscore/internal/search"
	. "github.com/ofalvai/chesscore/internal/types"
	"github.com/ofalvai/chesscore/internal/zobrist"
)

func TestMain(m *testing.M) {
	attacks.Init(magic.ModeBaked)
	zobrist.Init()
	m.Run()
}

// E6: from a position with exactly one legal reply, the search extends
// depth by one ply; verified indirectly by checking it still returns a
// legal, sensible move rather than failing at depth 0.
func TestForcedMoveExtensionFindsTheOnlyReply(t *testing.T) {
	// White king on h1 in check from the rook on a1; the rook on g8 covers
	// g1 and g2, leaving exactly one reply: Kh2.
	pos, err := position.NewFromFen("6rk/8/8/8/8/8/8/r6K w - - 0 1")
	require.NoError(t, err)

	s := search.New()
	result := s.FindBest(pos, 1)
	assert.NotEqual(t, MoveNone, result.Move)
	assert.Equal(t, SqH1, result.Move.From())
	assert.Equal(t, SqH2, result.Move.To())
}

func TestFindBestReturnsLegalMoveAtShallowDepth(t *testing.T) {
	pos := position.NewStandard()
	s := search.New()
	result := s.FindBest(pos, 2)
	assert.NotEqual(t, MoveNone, result.Move)
}
