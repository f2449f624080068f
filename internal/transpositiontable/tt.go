//
// chesscore - a chess engine core written in Go
//

// Package transpositiontable implements a fixed-size, hash-indexed cache
// of prior search results. Not thread safe; a root search running workers
// in parallel gives each its own table (see internal/search), matching the
// design note that TT sharing across workers is not required.
package transpositiontable

import (
	"math"
	"sync"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ofalvai/chesscore/internal/chesslog"
	. "github.com/ofalvai/chesscore/internal/types"
	"github.com/ofalvai/chesscore/internal/util"
)

var out = message.NewPrinter(language.German)

// MaxSizeInMB bounds how large a single table is allowed to grow.
const MaxSizeInMB = 65_536

// Table is a power-of-two sized, mask-indexed transposition table.
type Table struct {
	log             *logging.Logger
	data            []Entry
	sizeInByte      uint64
	hashKeyMask     uint64
	maxEntries      uint64
	numberOfEntries uint64
	Stats           Stats
}

// Stats tracks table usage for diagnostics.
type Stats struct {
	Puts       uint64
	Collisions uint64
	Overwrites uint64
	Updates    uint64
	Probes     uint64
	Hits       uint64
	Misses     uint64
}

// New creates a Table sized to at most sizeInMByte of memory.
func New(sizeInMByte int) *Table {
	t := &Table{log: chesslog.GetLog("tt")}
	t.Resize(sizeInMByte)
	return t
}

// Resize discards all entries and rebuilds the table at a new size.
func (t *Table) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		t.log.Warning(out.Sprintf("requested TT size %d MB reduced to max %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}
	t.sizeInByte = uint64(sizeInMByte) * 1024 * 1024
	if t.sizeInByte == 0 {
		t.maxEntries = 0
	} else {
		t.maxEntries = 1 << uint64(math.Floor(math.Log2(float64(t.sizeInByte/TtEntrySize))))
	}
	t.hashKeyMask = t.maxEntries - 1
	t.sizeInByte = t.maxEntries * TtEntrySize
	t.data = make([]Entry, t.maxEntries)
	t.numberOfEntries = 0
	t.log.Info(out.Sprintf("TT resized to %d MB, %d entries", t.sizeInByte/(1024*1024), t.maxEntries))
	t.log.Debug(util.MemStat())
}

func (t *Table) hash(key Key) uint64 {
	return uint64(key) & t.hashKeyMask
}

// Probe looks up key, returning nil on a miss. A hit decreases the entry's
// age, so entries still being found stay "fresh" against the replacement
// policy in Put.
func (t *Table) Probe(key Key) *Entry {
	if t.maxEntries == 0 {
		return nil
	}
	t.Stats.Probes++
	e := &t.data[t.hash(key)]
	if e.key == key {
		e.decreaseAge()
		t.Stats.Hits++
		return e
	}
	t.Stats.Misses++
	return nil
}

// Put stores (or updates) a search result. Replacement favours deeper
// searches, and among equal depths favours overwriting stale (aged)
// entries over fresh ones found again this search.
func (t *Table) Put(key Key, move Move, depth int8, value ValueType, score Value, eval Value) {
	if t.maxEntries == 0 {
		return
	}
	t.Stats.Puts++
	e := &t.data[t.hash(key)]

	if e.key == 0 {
		t.numberOfEntries++
		t.store(e, key, move, depth, value, score, eval)
		return
	}
	if e.key != key {
		t.Stats.Collisions++
		if depth > e.Depth() || (depth == e.Depth() && e.Age() > 1) {
			t.Stats.Overwrites++
			t.store(e, key, move, depth, value, score, eval)
		}
		return
	}
	// same position: refresh, preserving a previously stored move if the
	// new store doesn't supply one.
	t.Stats.Updates++
	if move != MoveNone {
		e.move = uint32(move)
	}
	e.value = int32(score)
	e.eval = int32(eval)
	e.meta = uint32(depth)<<depthShift | uint32(value)<<vtypeShift | 1<<ageShift
}

func (t *Table) store(e *Entry, key Key, move Move, depth int8, vt ValueType, score, eval Value) {
	e.key = key
	e.move = uint32(move)
	e.value = int32(score)
	e.eval = int32(eval)
	e.meta = uint32(depth)<<depthShift | uint32(vt)<<vtypeShift | 1<<ageShift
}

// Clear empties the table without changing its size.
func (t *Table) Clear() {
	t.data = make([]Entry, t.maxEntries)
	t.numberOfEntries = 0
	t.Stats = Stats{}
}

// Hashfull returns fullness in permille, as UCI's "hashfull" field does.
func (t *Table) Hashfull() int {
	if t.maxEntries == 0 {
		return 0
	}
	return int(1000 * t.numberOfEntries / t.maxEntries)
}

// AgeEntries increments every live entry's age, fanning the work out
// across goroutines since a large table can hold tens of millions of
// entries.
func (t *Table) AgeEntries() {
	start := time.Now()
	if t.numberOfEntries == 0 {
		return
	}
	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	chunk := t.maxEntries / workers
	for i := 0; i < workers; i++ {
		go func(i uint64) {
			defer wg.Done()
			from := i * chunk
			to := from + chunk
			if i == workers-1 {
				to = t.maxEntries
			}
			for n := from; n < to; n++ {
				if t.data[n].key != 0 {
					t.data[n].increaseAge()
				}
			}
		}(uint64(i))
	}
	wg.Wait()
	t.log.Debug(out.Sprintf("aged %d entries in %d ms", t.numberOfEntries, time.Since(start).Milliseconds()))
}

func (t *Table) String() string {
	return out.Sprintf("TT: %d MB, %d/%d entries (%d%%), puts %d updates %d collisions %d overwrites %d probes %d hits %d misses %d",
		t.sizeInByte/(1024*1024), t.numberOfEntries, t.maxEntries, t.Hashfull()/10,
		t.Stats.Puts, t.Stats.Updates, t.Stats.Collisions, t.Stats.Overwrites,
		t.Stats.Probes, t.Stats.Hits, t.Stats.Misses)
}
