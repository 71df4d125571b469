package debug

import (
	"fmt"
	"io"
	"log"
	"time"
)

// Header writes the BEGIN banner for label if debugging is enabled
func Header(w io.Writer, enabled bool, label string) {
	if enabled {
		fmt.Fprintf(w, "=== %s BEGIN ===\n", label)
	}
}

// Footer writes the END banner for label if debugging is enabled
func Footer(w io.Writer, enabled bool, label string) {
	if enabled {
		fmt.Fprintf(w, "=== %s END ===\n", label)
	}
}

// Block writes body framed by BEGIN/END banners if debugging is enabled
func Block(w io.Writer, enabled bool, label, body string) {
	if !enabled {
		return
	}
	Header(w, enabled, label)
	fmt.Fprintln(w, body)
	Footer(w, enabled, label)
}

// Output logs a timestamped message to w if debugging is enabled
func Output(w io.Writer, enabled bool, format string, args ...interface{}) {
	if enabled {
		timestamp := time.Now().Format("15:04:05.000")
		message := fmt.Sprintf(format, args...)
		log.New(w, "", 0).Printf("[%s] %s", timestamp, message)
	}
}

// Timing measures and logs execution time to w if debugging is enabled
func Timing(w io.Writer, enabled bool, operation string) func() {
	if !enabled {
		return func() {}
	}

	start := time.Now()
	Output(w, enabled, "Starting: %s", operation)

	return func() {
		duration := time.Since(start)
		Output(w, enabled, "Completed: %s (took %v)", operation, duration)
	}
}
