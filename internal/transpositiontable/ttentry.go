package transpositiontable

import . "github.com/ofalvai/chesscore/internal/types"

// TtEntrySize is the in-memory footprint of one entry, used by Resize to
// compute how many entries fit in a byte budget.
const TtEntrySize = 24

// Entry is one transposition-table slot: a key (for collision detection),
// the best move found, its search value and static eval, and depth/type/
// age packed into one field.
type Entry struct {
	key   Key
	move  uint32
	value int32
	eval  int32
	meta  uint32 // depth(8) | valueType(2) | age(6)
}

const (
	depthShift = 0
	vtypeShift = 8
	ageShift   = 10
)

// Depth returns the search depth this entry was stored at.
func (e *Entry) Depth() int8 { return int8(e.meta >> depthShift & 0xFF) }

// ValueType returns how Value() bounds the true score.
func (e *Entry) ValueType() ValueType { return ValueType(e.meta >> vtypeShift & 0x3) }

// Age returns the entry's age counter; freshly stored entries start at 1
// and decrease every time they're found again via Probe.
func (e *Entry) Age() uint32 { return e.meta >> ageShift }

// Move returns the best move recorded for this position.
func (e *Entry) Move() Move { return Move(e.move) }

// Value returns the stored search score.
func (e *Entry) Value() Value { return Value(e.value) }

// Eval returns the stored static evaluation.
func (e *Entry) Eval() Value { return Value(e.eval) }

func (e *Entry) increaseAge() {
	age := e.Age() + 1
	e.meta = e.meta&^(0x3F<<ageShift) | (age&0x3F)<<ageShift
}

func (e *Entry) decreaseAge() {
	age := e.Age()
	if age > 0 {
		age--
	}
	e.meta = e.meta&^(0x3F<<ageShift) | (age&0x3F)<<ageShift
}
