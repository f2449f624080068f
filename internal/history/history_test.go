package history_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ofalvai/chesscore/internal/history"
	. "github.com/ofalvai/chesscore/internal/types"
)

func TestStoreKillerShiftsPreviousIntoSecondSlot(t *testing.T) {
	h := history.New()
	m1 := NewMove(SqE2, SqE4, Normal)
	m2 := NewMove(SqG1, SqF3, Normal)

	h.StoreKiller(3, m1)
	h.StoreKiller(3, m2)

	killers := h.Killers(3)
	assert.Equal(t, m2, killers[0])
	assert.Equal(t, m1, killers[1])
	assert.True(t, h.IsKiller(3, m1))
	assert.True(t, h.IsKiller(3, m2))
}

func TestStoreKillerIgnoresDuplicate(t *testing.T) {
	h := history.New()
	m := NewMove(SqE2, SqE4, Normal)
	h.StoreKiller(1, m)
	h.StoreKiller(1, m)

	killers := h.Killers(1)
	assert.Equal(t, m, killers[0])
	assert.Equal(t, MoveNone, killers[1])
}

func TestAddCutoffAccumulatesByDepthSquared(t *testing.T) {
	h := history.New()
	m := NewMove(SqD2, SqD4, Normal)
	h.AddCutoff(White, m, 3)
	h.AddCutoff(White, m, 2)
	assert.Equal(t, 9+4, h.Score(White, m))
}

func TestKillersOutOfRangeIsSafe(t *testing.T) {
	h := history.New()
	assert.Equal(t, [2]Move{}, h.Killers(-1))
	assert.Equal(t, [2]Move{}, h.Killers(1000))
	assert.False(t, h.IsKiller(-1, MoveNone))
}
