// +build chessdebug

package assert

import "fmt"

// Assert panics with the formatted message if cond is false. No package of
// the engine calls it: an illegal move passed to MakeMove, a position with
// the wrong number of kings, or a castling right with no rook in the
// corner are not checked anywhere.
func Assert(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
