//
// chesscore - a chess engine core written in Go
//

// Package chesslog wires every package's logger to a single leveled,
// timestamped backend.
package chesslog

import (
	"os"

	"github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortfunc} [%{level:.4s}] %{message}`,
)

var backend = func() logging.Backend {
	b := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(b, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	return leveled
}()

// GetLog returns a named logger backed by the shared formatted backend.
func GetLog(name string) *logging.Logger {
	l := logging.MustGetLogger(name)
	l.SetBackend(backend)
	return l
}
