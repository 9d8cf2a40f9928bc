// Package remote runs the PAC-RF executable on the device over ssh and
// streams its merged output back line by line.
//
// Standard error is merged into standard output by sharing the stdout pipe,
// so remote failures stay visible to the caller in arrival order. Lines go
// either straight to stdout (passthrough, CLI usage) or to a per-line
// callback (UI usage). One call is one attempt; retries belong to the caller.
package remote

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"pacrf/internal/logging"
)

const (
	DefaultHost = "pacrf"
	DefaultUser = "root"
	DefaultPath = "/root/pac_rf_project/bin/pac_rf_exec"
)

// Options selects the remote endpoint. Zero fields fall back to the
// defaults; KeyFile is optional and normally left to the ssh config.
type Options struct {
	Host    string
	User    string
	Path    string
	KeyFile string
}

func (o Options) withDefaults() Options {
	if o.Host == "" {
		o.Host = DefaultHost
	}
	if o.User == "" {
		o.User = DefaultUser
	}
	if o.Path == "" {
		o.Path = DefaultPath
	}
	return o
}

// LineFunc receives one output line per call, prefix included.
type LineFunc func(line string)

// Streamer owns the subprocess handle for the duration of one Run call.
type Streamer struct {
	Opts Options
	Log  *logging.Logger

	// command overrides the ssh client binary; tests point it at a script.
	command string
}

func (s *Streamer) clientCommand() string {
	if s.command != "" {
		return s.command
	}
	return "ssh"
}

// Run spawns the ssh client and forwards every merged output line. With a
// nil callback lines are echoed to stdout and the composed command is first
// surfaced as a LOG: line for debuggability.
//
// The return value is the remote exit status: 0 on success, the verbatim
// non-zero status of the subprocess, or -1 when spawning or draining the
// subprocess failed.
func (s *Streamer) Run(ctx context.Context, args []string, onLine LineFunc) int {
	opts := s.Opts.withDefaults()
	argv := sshArgs(opts, args)
	passthrough := onLine == nil

	if passthrough {
		s.Log.Logf("Executing remote: %s %s", s.clientCommand(), strings.Join(argv, " "))
	}

	cmd := exec.CommandContext(ctx, s.clientCommand(), argv...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		s.emitError(onLine, "failed to start subprocess", err)
		return -1
	}
	// Merge stderr into the stdout pipe so both streams arrive in order.
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		s.emitError(onLine, "failed to start subprocess", err)
		return -1
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 4096), 64*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if passthrough {
			s.Log.Print(line)
		} else {
			onLine(line)
		}
	}
	scanErr := scanner.Err()
	waitErr := cmd.Wait()

	if scanErr != nil {
		s.emitError(onLine, "command close failed", scanErr)
		return -1
	}
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) && exitErr.ExitCode() > 0 {
			status := exitErr.ExitCode()
			line := fmt.Sprintf("Subprocess exited with status %d", status)
			if passthrough {
				s.Log.Log(line)
			} else {
				onLine(logging.LogPrefix + line)
			}
			return status
		}
		s.emitError(onLine, "command close failed", waitErr)
		return -1
	}
	return 0
}

// emitError surfaces one failure line: TERM: in passthrough mode so the
// terminal pane sees it, LOG: through the callback so it lands in a log pane.
func (s *Streamer) emitError(onLine LineFunc, what string, err error) {
	msg := fmt.Sprintf("ERROR - %s (%v)", what, err)
	if onLine == nil {
		s.Log.Term(msg)
	} else {
		onLine(logging.LogPrefix + msg)
	}
}

// sshArgs composes the ssh invocation: resilient client options, optional
// identity file, then user@host and the remote command string.
func sshArgs(o Options, args []string) []string {
	out := []string{
		"-o", "BatchMode=yes",
		"-o", "ConnectTimeout=10",
		"-o", "ServerAliveInterval=5",
		"-o", "ServerAliveCountMax=2",
		"-o", "StrictHostKeyChecking=accept-new",
	}
	if o.KeyFile != "" {
		out = append(out, "-i", o.KeyFile)
	}
	out = append(out, o.User+"@"+o.Host, remoteCommand(o.Path, args))
	return out
}

func remoteCommand(path string, args []string) string {
	if len(args) == 0 {
		return path
	}
	return path + " " + strings.Join(args, " ")
}
