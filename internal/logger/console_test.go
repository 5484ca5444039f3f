package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestNormalizeLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"debug", "debug"},
		{"DEBUG", "debug"},
		{"  Warn ", "warn"},
		{"", "info"},
		{"verbose", "info"},
	}

	for _, tt := range tests {
		if got := normalizeLogLevel(tt.input); got != tt.want {
			t.Errorf("normalizeLogLevel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "warn")

	cl.Debugf("hidden debug")
	cl.Infof("hidden info")
	cl.Warnf("visible warn")
	cl.Errorf("visible error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered messages:\n%s", out)
	}
	if !strings.Contains(out, "visible warn") || !strings.Contains(out, "visible error") {
		t.Errorf("output missing expected messages:\n%s", out)
	}
}

func TestTimestampPrefix(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "info")

	cl.Infof("hello")

	out := buf.String()
	if !strings.HasPrefix(out, "[") || !strings.Contains(out, "] hello") {
		t.Errorf("output missing [HH:MM:SS] prefix: %q", out)
	}
}

func TestNilWriterDiscards(t *testing.T) {
	cl := NewConsoleLogger(nil, "trace")
	// Must not panic.
	cl.Infof("into the void")
	cl.Errorf("also discarded")
}

func TestNoColorForNonTerminalWriter(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "info")

	cl.Successf("plain")

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("non-terminal output contains ANSI escapes: %q", buf.String())
	}
}

func TestConcurrentLogging(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "info")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				cl.Infof("goroutine %d message %d", n, j)
			}
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 200 {
		t.Errorf("line count = %d, want 200", len(lines))
	}
}
