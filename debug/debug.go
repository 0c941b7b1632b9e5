// Package debug provides the gated stderr logger used across the tool.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Enabled controls whether debug logging is emitted.
//
// When enabled, logs are written to stderr by default.
var Enabled bool

var (
	mu     sync.Mutex
	writer io.Writer = os.Stderr
)

// SetWriter overrides the destination for debug logs.
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	writer = w
}

// Log writes a formatted debug line when debug is enabled.
func Log(format string, args ...any) {
	if !Enabled {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(writer, "[DEBUG %s] ", timestamp)
	fmt.Fprintf(writer, format, args...)
	fmt.Fprintln(writer)
}

// LogJSON writes a multi-line JSON debug payload when debug is enabled.
func LogJSON(label string, payload string) {
	if !Enabled {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(writer, "[DEBUG JSON %s %s]\n%s\n", label, timestamp, payload)
}
