package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestNamedLoggerOutput(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)

	logger := New("translate")
	logger.Infof("wrote %d datasets", 3)
	if !strings.Contains(buf.String(), "[translate] [INFO] wrote 3 datasets") {
		t.Fatalf("unexpected log line: %s", buf.String())
	}
}

func TestSetLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stdout)

	logger := New("export")
	logger.Debug("hidden")
	SetLevel(Debug)
	logger.Debug("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected debug lines to be filtered at the default level: %s", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("expected debug lines after raising verbosity: %s", out)
	}
}
