package testutil

import (
	"io"
	"log"
)

// Logger returns a quiet logger for tests.
func Logger() *log.Logger { return log.New(io.Discard, "[TEST] ", 0) }
