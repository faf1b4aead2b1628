// Package debug provides optional file-based debug logging.
//
// When the CARTON_DEBUG environment variable is set to a file path,
// debug messages are appended to that file. Otherwise, logging is a
// no-op. The engine routes ignored non-fatal errors (spurious drag
// events, unknown identifiers) through here so they stay observable
// without ever reaching the UI thread's output.
package debug

import (
	"log"
	"os"
	"sync"
)

var (
	initOnce sync.Once
	logger   *log.Logger
)

// Logf writes a formatted message to the debug file, if enabled.
func Logf(format string, args ...any) {
	initOnce.Do(initLogger)
	if logger == nil {
		return
	}
	logger.Printf(format, args...)
}

func initLogger() {
	path := os.Getenv("CARTON_DEBUG")
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	logger = log.New(f, "carton ", log.LstdFlags|log.Lmicroseconds)
}
