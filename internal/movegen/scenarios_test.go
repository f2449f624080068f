package movegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ofalvai/chesscore/internal/movegen"
	"github.com/ofalvai/chesscore/internal/position"
	. "github.com/ofalvai/chesscore/internal/types"
)

// E2: a lone White king on e1 in check along the e-file from a Black rook
// on e8 must leave that file: it may neither stay on it nor step further
// up it into the rook's attack.
func TestE2CheckRestrictsKingToOffFileMoves(t *testing.T) {
	pos, err := position.NewFromFen("4r3/8/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	moves, inCheck := movegen.Generate(pos)
	assert.True(t, inCheck)

	for i := 0; i < moves.Len(); i++ {
		to := moves.At(i).To()
		assert.NotEqual(t, FileE, to.File(), "king must not stay on the checking rook's file")
	}
}

// E4: a White pawn on a7 capturing a Black bishop on b8 emits exactly the
// four CapturePromotion variants, plus four more if the square directly
// ahead is empty.
func TestE4PromotionEmitsFourVariants(t *testing.T) {
	pos, err := position.NewFromFen("1b6/P7/8/8/8/8/8/4K2k w - - 0 1")
	require.NoError(t, err)

	moves, _ := movegen.Generate(pos)

	var fromA7 []Move
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i).From() == SqA7 {
			fromA7 = append(fromA7, moves.At(i))
		}
	}
	// 4 capture-promotions to b8 + 4 push-promotions to a8
	assert.Len(t, fromA7, 8)

	seenPromoTypes := map[PieceType]int{}
	for _, m := range fromA7 {
		assert.Equal(t, Promotion, m.Type())
		seenPromoTypes[m.PromotionType()]++
	}
	assert.Equal(t, 2, seenPromoTypes[Knight])
	assert.Equal(t, 2, seenPromoTypes[Bishop])
	assert.Equal(t, 2, seenPromoTypes[Rook])
	assert.Equal(t, 2, seenPromoTypes[Queen])
}

// E5: repeating the same position three times via legal knight shuffles
// raises ThreeFoldRepetition on the third occurrence, and only then.
func TestE5ThreefoldRepetition(t *testing.T) {
	pos := position.NewStandard()
	seq := []struct{ from, to Square }{
		{SqG1, SqF3}, {SqB8, SqC6}, {SqF3, SqG1}, {SqC6, SqB8},
	}
	for rep := 0; rep < 3; rep++ {
		for _, mv := range seq {
			moves, _ := movegen.Generate(pos)
			var found Move
			for i := 0; i < moves.Len(); i++ {
				if moves.At(i).From() == mv.from && moves.At(i).To() == mv.to {
					found = moves.At(i)
				}
			}
			require.NotEqual(t, MoveNone, found, "expected %s-%s to be legal", mv.from, mv.to)
			pos.MakeMove(found)
			if rep < 2 {
				assert.False(t, pos.ThreefoldRepetition())
			}
		}
	}
	assert.True(t, pos.ThreefoldRepetition())
	assert.Equal(t, 3, pos.OccurrenceCount())
}
