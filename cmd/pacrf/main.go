// pacrf is the PAC-RF command-line front end: it takes one verb, dispatches
// to the matching handler, and emits TERM:/LOG: protocol lines on stdout.
package main

import (
	"os"

	"pacrf/internal/command"
	"pacrf/internal/config"
	"pacrf/internal/fifo"
	"pacrf/internal/handlers"
	"pacrf/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	log := logging.New()
	log.Infof("PAC-RF application starting")

	cfg, err := config.Load()
	if err != nil {
		log.Errorf("config load failed: %v", err)
		return 1
	}

	queue, ok := fifo.New(10, log)
	if !ok {
		log.Errorf("failed to initialize queue, exiting")
		return 1
	}
	defer queue.Destroy()

	set := handlers.New(log, handlers.Config{
		Device: cfg.GPS.Device,
		Bauds:  cfg.GPS.Bauds,
		Window: cfg.GPS.Window,
	})
	table := set.Table()

	if len(args) == 0 {
		command.Dispatch(table, "", nil, log)
		return 1
	}
	command.Dispatch(table, args[0], args[1:], log)

	// Queue round-trip, exercised on every invocation.
	if queue.Enqueue(fifo.NewItem([]byte("SampleData"))) {
		queue.LogStatus()
	}
	if _, ok := queue.Dequeue(); ok {
		log.Infof("dequeued item successfully")
		queue.LogStatus()
	}

	log.Infof("PAC-RF application exiting cleanly")
	return 0
}
