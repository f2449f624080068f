//
// chesscore - a chess engine core written in Go
//

// Package util holds small helpers shared across packages that don't
// belong to any one domain concern.
package util

import (
	"fmt"
	"runtime"
)

// MemStat returns a one-line summary of current heap usage, used in debug
// logging around operations that allocate large tables (TT resize, magic
// table construction).
func MemStat() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return fmt.Sprintf("alloc=%d MB sys=%d MB numGC=%d", m.Alloc/1024/1024, m.Sys/1024/1024, m.NumGC)
}
