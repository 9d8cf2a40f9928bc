package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestSeveritiesGoToDiagWriter(t *testing.T) {
	var diag, out bytes.Buffer
	l := NewWithWriters(&diag, &out)

	l.Infof("count=%d", 3)
	l.Warnf("almost full")
	l.Errorf("bad thing")

	got := diag.String()
	for _, want := range []string{"[INFO] count=3", "[WARNING] almost full", "[ERROR] bad thing"} {
		if !strings.Contains(got, want) {
			t.Fatalf("diag missing %q: %q", want, got)
		}
	}
	if out.Len() != 0 {
		t.Fatalf("protocol stream polluted: %q", out.String())
	}
}

func TestProtocolLinesGoToOutWriter(t *testing.T) {
	var diag, out bytes.Buffer
	l := NewWithWriters(&diag, &out)

	l.Term("GPS ok")
	l.Logf("raw %s", "$GPGGA")
	l.Print("IMG: /tmp/capture.png")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	want := []string{"TERM: GPS ok", "LOG: raw $GPGGA", "IMG: /tmp/capture.png"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if diag.Len() != 0 {
		t.Fatalf("diag polluted: %q", diag.String())
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Infof("still works")
	l.Term("still works")
}
