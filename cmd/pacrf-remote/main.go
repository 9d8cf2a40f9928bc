// pacrf-remote runs the PAC-RF executable on the device over ssh and echoes
// every merged output line to stdout, so a UI (or a shell pipe) can route the
// TERM:/LOG:/IMG: lines into panes.
package main

import (
	"context"
	"os"

	"pacrf/internal/config"
	"pacrf/internal/logging"
	"pacrf/internal/remote"
)

func main() {
	log := logging.New()

	cfg, err := config.Load()
	if err != nil {
		log.Errorf("config load failed: %v", err)
		os.Exit(1)
	}

	s := remote.Streamer{
		Opts: remote.Options{
			Host:    cfg.Remote.Host,
			User:    cfg.Remote.User,
			Path:    cfg.Remote.Path,
			KeyFile: cfg.Remote.KeyFile,
		},
		Log: log,
	}

	status := s.Run(context.Background(), os.Args[1:], nil)
	if status != 0 {
		os.Exit(1)
	}
}
