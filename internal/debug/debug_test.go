package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestBlock(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		want    string
	}{
		{
			name:    "enabled",
			enabled: true,
			want:    "=== RAW BEGIN ===\n<a/>\n=== RAW END ===\n",
		},
		{
			name:    "disabled",
			enabled: false,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Block(&buf, tt.enabled, "RAW", "<a/>")
			if buf.String() != tt.want {
				t.Errorf("Block() wrote %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestTiming(t *testing.T) {
	var buf bytes.Buffer
	Timing(&buf, true, "lookup")()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Timing() wrote %q, want two lines", buf.String())
	}
	if !strings.Contains(lines[0], "Starting: lookup") {
		t.Errorf("first line = %q, want start message", lines[0])
	}
	if !strings.Contains(lines[1], "Completed: lookup (took ") {
		t.Errorf("second line = %q, want completion message", lines[1])
	}
}

func TestOutputDisabled(t *testing.T) {
	var buf bytes.Buffer
	Output(&buf, false, "hello %s", "world")
	Timing(&buf, false, "lookup")()
	if buf.Len() != 0 {
		t.Errorf("disabled helpers wrote %q, want nothing", buf.String())
	}
}

func TestOutputFormat(t *testing.T) {
	var buf bytes.Buffer
	Output(&buf, true, "hello %s", "world")
	got := buf.String()
	if !strings.HasPrefix(got, "[") || !strings.HasSuffix(got, "] hello world\n") {
		t.Errorf("Output() wrote %q, want \"[<time>] hello world\\n\"", got)
	}
}
