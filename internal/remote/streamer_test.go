package remote

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"pacrf/internal/logging"
)

func quietLogger() *logging.Logger {
	return logging.NewWithWriters(io.Discard, io.Discard)
}

func fakeSSH(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake ssh script requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "fake-ssh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestSSHArgs_DefaultsAndComposition(t *testing.T) {
	args := sshArgs(Options{}.withDefaults(), []string{"--gps"})

	joined := strings.Join(args, " ")
	for _, opt := range []string{
		"BatchMode=yes",
		"ConnectTimeout=10",
		"ServerAliveInterval=5",
		"ServerAliveCountMax=2",
		"StrictHostKeyChecking=accept-new",
	} {
		if !strings.Contains(joined, opt) {
			t.Fatalf("missing option %s in %q", opt, joined)
		}
	}
	if strings.Contains(joined, "-i ") {
		t.Fatalf("unexpected identity file in %q", joined)
	}
	if args[len(args)-2] != "root@pacrf" {
		t.Fatalf("target = %q, want root@pacrf", args[len(args)-2])
	}
	if args[len(args)-1] != DefaultPath+" --gps" {
		t.Fatalf("remote command = %q", args[len(args)-1])
	}
}

func TestSSHArgs_ExplicitKeyAndEndpoint(t *testing.T) {
	opts := Options{Host: "pacrf2", User: "pi", Path: "/opt/pacrf", KeyFile: "/home/pi/.ssh/id"}
	args := sshArgs(opts.withDefaults(), nil)

	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "-i /home/pi/.ssh/id") {
		t.Fatalf("identity file missing in %q", joined)
	}
	if args[len(args)-2] != "pi@pacrf2" {
		t.Fatalf("target = %q", args[len(args)-2])
	}
	if args[len(args)-1] != "/opt/pacrf" {
		t.Fatalf("remote command = %q", args[len(args)-1])
	}
}

func TestRun_MergesStreamsAndReturnsExitStatus(t *testing.T) {
	s := &Streamer{
		Log: quietLogger(),
		command: fakeSSH(t, strings.Join([]string{
			`echo "TERM: hello"`,
			`echo "LOG: oops" 1>&2`,
			`exit 3`,
		}, "\n")),
	}

	var lines []string
	status := s.Run(context.Background(), []string{"--gps"}, func(line string) {
		lines = append(lines, line)
	})

	if status != 3 {
		t.Fatalf("status = %d, want 3", status)
	}
	want := []string{"TERM: hello", "LOG: oops", "LOG: Subprocess exited with status 3"}
	if len(lines) != len(want) {
		t.Fatalf("lines = %v", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRun_ZeroExit(t *testing.T) {
	s := &Streamer{
		Log:     quietLogger(),
		command: fakeSSH(t, `echo "TERM: done"`),
	}

	var lines []string
	status := s.Run(context.Background(), nil, func(line string) {
		lines = append(lines, line)
	})

	if status != 0 {
		t.Fatalf("status = %d, want 0", status)
	}
	if len(lines) != 1 || lines[0] != "TERM: done" {
		t.Fatalf("lines = %v", lines)
	}
}

func TestRun_SpawnFailure(t *testing.T) {
	s := &Streamer{
		Log:     quietLogger(),
		command: "/nonexistent/pacrf-fake-ssh",
	}

	var lines []string
	status := s.Run(context.Background(), nil, func(line string) {
		lines = append(lines, line)
	})

	if status != -1 {
		t.Fatalf("status = %d, want -1", status)
	}
	if len(lines) != 1 || !strings.Contains(lines[0], "LOG: ERROR - failed to start subprocess") {
		t.Fatalf("lines = %v", lines)
	}
}

func TestRun_PassthroughEchoesAndLogsCommand(t *testing.T) {
	var diag, out bytes.Buffer
	s := &Streamer{
		Log:     logging.NewWithWriters(&diag, &out),
		command: fakeSSH(t, `echo "TERM: via passthrough"`),
	}

	if status := s.Run(context.Background(), []string{"--capture"}, nil); status != 0 {
		t.Fatalf("status = %d", status)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("stdout = %q", out.String())
	}
	if !strings.HasPrefix(lines[0], "LOG: Executing remote: ") {
		t.Fatalf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[0], "--capture") {
		t.Fatalf("composed command missing args: %q", lines[0])
	}
	if lines[1] != "TERM: via passthrough" {
		t.Fatalf("second line = %q", lines[1])
	}
}
