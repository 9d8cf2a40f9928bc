// Package handlers implements one handler per verb. Handlers emit lines on
// the TERM:/LOG: protocol; everything except the GPS handler is a stub that
// keeps the consumer contract alive.
package handlers

import (
	"time"

	"pacrf/internal/command"
	"pacrf/internal/logging"
)

// Config carries the GPS handler settings.
type Config struct {
	// Device is the UART device path.
	Device string
	// Bauds are tried in order until raw configuration succeeds.
	Bauds []int
	// Window bounds the read loop by wall clock.
	Window time.Duration
}

// Set binds the handlers to a logger and configuration.
type Set struct {
	log *logging.Logger
	cfg Config
}

func New(log *logging.Logger, cfg Config) *Set {
	if cfg.Device == "" {
		cfg.Device = "/dev/ttyPS1"
	}
	if len(cfg.Bauds) == 0 {
		cfg.Bauds = []int{9600, 115200}
	}
	if cfg.Window <= 0 {
		cfg.Window = 2 * time.Second
	}
	return &Set{log: log, cfg: cfg}
}

// Table returns the command table. Adding a verb only requires a new entry
// here; the usage banner is generated from it.
func (h *Set) Table() command.Table {
	return command.Table{
		{Name: "--capture", Run: h.Capture, Desc: "Simulate or trigger a capture sequence"},
		{Name: "--gps", Run: h.GPS, Desc: "Retrieve GPS coordinates"},
		{Name: "--stream-start", Run: h.StreamStart, Desc: "Start simulated streaming"},
		{Name: "--stream-stop", Run: h.StreamStop, Desc: "Stop simulated streaming"},
		{Name: "--spectrum-start", Run: h.SpectrumStart, Desc: "Start simulated spectrum sweep"},
		{Name: "--spectrum-stop", Run: h.SpectrumStop, Desc: "Stop simulated spectrum sweep"},
		{Name: "--tone-send", Run: h.ToneSend, Desc: "Send a test tone"},
		{Name: "--help", Run: nil, Desc: "Show this help menu"},
	}
}

func (h *Set) Capture(args []string) {
	h.log.Infof("capture command received (stub)")
	h.log.Log("Capture request received (stub)")
	h.log.Term("Simulated capture complete. (stub)")
}

func (h *Set) ToneSend(args []string) {
	h.log.Infof("tone send command received (stub)")
	h.log.Log("Tone send request received (stub)")
	h.log.Term("Simulated tone transmitted. (stub)")
}

func (h *Set) StreamStart(args []string) {
	h.log.Infof("stream start (stub)")
	h.log.Log("Stream start requested (stub)")
	h.log.Term("Stream started (stub)")
}

func (h *Set) StreamStop(args []string) {
	h.log.Infof("stream stop (stub)")
	h.log.Log("Stream stop requested (stub)")
	h.log.Term("Stream stopped (stub)")
}

func (h *Set) SpectrumStart(args []string) {
	h.log.Infof("spectrum start (stub)")
	h.log.Log("Spectrum start requested (stub)")
	h.log.Term("Spectrum started (stub)")
}

func (h *Set) SpectrumStop(args []string) {
	h.log.Infof("spectrum stop (stub)")
	h.log.Log("Spectrum stop requested (stub)")
	h.log.Term("Spectrum stopped (stub)")
}
