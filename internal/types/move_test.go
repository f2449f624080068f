package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/ofalvai/chesscore/internal/types"
)

func TestMoveEncodingRoundTrips(t *testing.T) {
	m := NewMove(SqE2, SqE4, Normal)
	assert.Equal(t, SqE2, m.From())
	assert.Equal(t, SqE4, m.To())
	assert.Equal(t, Normal, m.Type())

	promo := NewPromotionMove(SqA7, SqA8, Queen)
	assert.Equal(t, Promotion, promo.Type())
	assert.Equal(t, Queen, promo.PromotionType())

	withSort := m.SetSortValue(-123)
	assert.Equal(t, int16(-123), withSort.SortValue())
	assert.Equal(t, SqE2, withSort.From())
	assert.Equal(t, SqE4, withSort.To())
}

func TestBitboardPopCountAndLSB(t *testing.T) {
	b := SqA1.Bb() | SqH8.Bb() | SqD4.Bb()
	assert.Equal(t, 3, b.PopCount())
	assert.Equal(t, SqA1, b.LSB())

	sq, rest := b.PopLSB()
	assert.Equal(t, SqA1, sq)
	assert.Equal(t, 2, rest.PopCount())
}

func TestCastlingRightsCompositeIndexing(t *testing.T) {
	cr := CastleWhiteKingside | CastleBlackQueenside
	assert.True(t, cr.Has(CastleWhiteKingside))
	assert.False(t, cr.Has(CastleWhiteQueenside))

	cleared := cr.Clear(CastleWhiteKingside)
	assert.False(t, cleared.Has(CastleWhiteKingside))
	assert.True(t, cleared.Has(CastleBlackQueenside))
}
