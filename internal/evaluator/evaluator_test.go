package evaluator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ofalvai/chesscore/internal/evaluator"
	"github.com/ofalvai/chesscore/internal/position"
)

func TestStartPositionIsBalanced(t *testing.T) {
	pos := position.NewStandard()
	assert.Equal(t, evaluator.Eval(pos) == 0, true)
}

func TestExtraQueenFavoursThatSide(t *testing.T) {
	pos, err := position.NewFromFen("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	assert.NoError(t, err)
	assert.Greater(t, int(evaluator.Eval(pos)), 0)
}
