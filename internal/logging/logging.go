// Package logging provides the PAC-RF log sinks and the prefixed line
// protocol used to route handler output into consumer panes.
//
// Diagnostic messages ([INFO]/[WARNING]/[ERROR]) go to stderr so they never
// pollute the stdout line protocol. Handler lines (TERM:/LOG:) go to stdout;
// IMG: is reserved and consumers must route unknown prefixes to their log pane.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

const (
	TermPrefix = "TERM: "
	LogPrefix  = "LOG: "
	ImgPrefix  = "IMG: "
)

type Logger struct {
	diag *log.Logger
	out  io.Writer
}

var std = New()

func New() *Logger {
	return NewWithWriters(os.Stderr, os.Stdout)
}

// NewWithWriters builds a logger with explicit sinks: diag receives the
// [INFO]/[WARNING]/[ERROR] stream, out receives protocol lines.
func NewWithWriters(diag, out io.Writer) *Logger {
	return &Logger{
		diag: log.New(diag, "", log.LstdFlags),
		out:  out,
	}
}

func (l *Logger) orStd() *Logger {
	if l == nil {
		return std
	}
	return l
}

func (l *Logger) Infof(format string, v ...interface{}) {
	l = l.orStd()
	l.diag.Printf("[INFO] "+format, v...)
}

func (l *Logger) Warnf(format string, v ...interface{}) {
	l = l.orStd()
	l.diag.Printf("[WARNING] "+format, v...)
}

func (l *Logger) Errorf(format string, v ...interface{}) {
	l = l.orStd()
	l.diag.Printf("[ERROR] "+format, v...)
}

// Term emits one TERM: line, the concise human summary for a terminal pane.
func (l *Logger) Term(line string) {
	l.Print(TermPrefix + line)
}

func (l *Logger) Termf(format string, v ...interface{}) {
	l.Term(fmt.Sprintf(format, v...))
}

// Log emits one LOG: line, raw/debug output for a log pane.
func (l *Logger) Log(line string) {
	l.Print(LogPrefix + line)
}

func (l *Logger) Logf(format string, v ...interface{}) {
	l.Log(fmt.Sprintf(format, v...))
}

// Print writes one unprefixed line to the protocol stream. Used for the
// usage banner and for passthrough of lines that already carry a prefix.
func (l *Logger) Print(line string) {
	l = l.orStd()
	fmt.Fprintln(l.out, line)
}
