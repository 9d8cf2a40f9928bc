// Package command maps verbs to handlers. The table is an immutable value
// handed to the dispatcher, so tests can supply their own without touching
// process-wide state.
package command

import (
	"fmt"

	"pacrf/internal/logging"
)

// Handler runs one verb with its residual arguments.
type Handler func(args []string)

// Command pairs a verb with its handler and help text. Run may be nil for
// entries handled by the dispatcher itself (--help).
type Command struct {
	Name string
	Run  Handler
	Desc string
}

// Table lists every recognised verb, in the order the usage banner shows them.
type Table []Command

// Dispatch finds the verb in the table by exact match and runs its handler.
// --help always prints the usage banner, even though its entry has no handler.
// An unknown verb warns and prints the banner. Dispatch reports false only
// when no verb was given; unknown verbs still count as a handled dispatch.
func Dispatch(t Table, verb string, args []string, log *logging.Logger) bool {
	if verb == "" {
		log.Warnf("no command provided")
		PrintUsage(t, log)
		return false
	}
	if verb == "--help" {
		PrintUsage(t, log)
		return true
	}

	for _, c := range t {
		if c.Name != verb {
			continue
		}
		if c.Run == nil {
			PrintUsage(t, log)
			return true
		}
		log.Infof("dispatching command %s", verb)
		c.Run(args)
		return true
	}

	log.Warnf("unknown command received: %s", verb)
	PrintUsage(t, log)
	return true
}

// PrintUsage writes the help banner generated from the table: one line per
// entry, verb left-padded to a fixed column followed by its description.
func PrintUsage(t Table, log *logging.Logger) {
	log.Print("")
	log.Print("PAC-RF Application Usage:")
	log.Print("  pacrf <command> [options]")
	log.Print("")
	log.Print("Available commands:")
	for _, c := range t {
		log.Print(fmt.Sprintf("  %-16s - %s", c.Name, c.Desc))
	}
	log.Print("")
	log.Print("Examples:")
	log.Print("  pacrf --gps")
	log.Print("  pacrf --capture --bitwidth 8")
	log.Print("")
}
