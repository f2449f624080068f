// +build !chessdebug

//
// chesscore - a chess engine core written in Go
//

// Package assert gates invariant checks behind a build tag so release
// builds pay nothing for them. Build with the chessdebug tag to enable
// Assert during development; it is a no-op otherwise.
package assert

// Assert is a no-op in release builds.
func Assert(cond bool, format string, args ...interface{}) {}
