package main

import (
	"strings"

	"github.com/davidmz/debug-log"
)

// logWriter routes a standard log.Logger (e.g. http.Server.ErrorLog) into a
// debug logger.
type logWriter struct {
	log debug.Logger
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.log.Print(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
