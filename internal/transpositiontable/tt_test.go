package transpositiontable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ofalvai/chesscore/internal/transpositiontable"
	. "github.com/ofalvai/chesscore/internal/types"
)

func TestPutThenProbeRoundTrips(t *testing.T) {
	tt := transpositiontable.New(1)
	key := Key(0xdeadbeef)
	tt.Put(key, NewMove(SqE2, SqE4, Normal), 4, Exact, 120, 100)

	e := tt.Probe(key)
	assert.NotNil(t, e)
	assert.Equal(t, Value(120), e.Value())
	assert.Equal(t, int8(4), e.Depth())
	assert.Equal(t, Exact, e.ValueType())
}

func TestProbeMissReturnsNil(t *testing.T) {
	tt := transpositiontable.New(1)
	assert.Nil(t, tt.Probe(Key(12345)))
}

func TestResizeToZeroDisablesStorage(t *testing.T) {
	tt := transpositiontable.New(0)
	tt.Put(Key(1), MoveNone, 1, Exact, 0, 0)
	assert.Nil(t, tt.Probe(Key(1)))
}
