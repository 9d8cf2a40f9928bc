package handlers

import (
	"fmt"
	"time"

	"pacrf/internal/nmea"
	"pacrf/internal/uart"
)

const (
	readChunk    = 512
	lineMax      = 256
	tailLines    = 5
	tailLineMax  = 128
	idleInterval = 50 * time.Millisecond
)

// GPS opens the UART, reads NMEA for roughly the configured window, and
// emits one TERM: summary line followed by a LOG: tail of the most recent
// raw sentences. The TERM: line always precedes the tail.
func (h *Set) GPS(args []string) {
	dev := h.cfg.Device
	h.log.Infof("gps command received device=%s", dev)

	port, err := uart.Open(dev)
	if err != nil {
		h.log.Infof("gps open failed device=%s: %v", dev, err)
		h.log.Termf("GPS ERROR - open failed (%v)", err)
		return
	}
	defer port.Close()

	baud, ok := configureWithFallback(port, h.cfg.Bauds)
	if !ok {
		h.log.Infof("gps uart config failed device=%s", dev)
		h.log.Term("GPS ERROR - UART config failed")
		return
	}
	h.log.Infof("gps uart configured baud=%d", baud)

	col := newCollector()
	readWindow(port, h.cfg.Window, idleInterval, col)

	h.log.Term(summaryLine(baud, col.info))
	for _, line := range col.tail.lines() {
		h.log.Log(line)
	}
}

func configureWithFallback(port *uart.Port, bauds []int) (int, bool) {
	for _, b := range bauds {
		if err := port.ConfigureRaw(b); err == nil {
			return b, true
		}
	}
	return 0, false
}

type byteReader interface {
	Read(p []byte) (int, error)
}

// readWindow pulls bytes into the collector until the wall-clock window
// expires, sleeping between empty reads. The deadline is checked per
// iteration; nothing interrupts a read in flight.
func readWindow(r byteReader, window, idle time.Duration, col *collector) {
	buf := make([]byte, readChunk)
	deadline := time.Now().Add(window)
	for time.Now().Before(deadline) {
		n, err := r.Read(buf)
		if n <= 0 || err != nil {
			time.Sleep(idle)
			continue
		}
		col.feed(buf[:n])
	}
}

// collector assembles raw bytes into lines, keeps a short tail of recent
// sentences, and folds each complete line into the running NMEA summary.
type collector struct {
	info nmea.Info
	tail *tailRing
	line []byte
}

func newCollector() *collector {
	return &collector{
		tail: newTailRing(tailLines, tailLineMax),
		line: make([]byte, 0, lineMax),
	}
}

func (c *collector) feed(p []byte) {
	for _, b := range p {
		switch b {
		case '\r':
			// Dropped; sentences are newline-terminated.
		case '\n':
			if len(c.line) > 0 {
				s := string(c.line)
				c.tail.add(s)
				nmea.ParseLine(s, &c.info)
				c.line = c.line[:0]
			}
		default:
			if len(c.line)+1 < lineMax {
				c.line = append(c.line, b)
			} else {
				// Overflow guard: reset the accumulator to keep the parser stable.
				c.line = c.line[:0]
			}
		}
	}
}

func summaryLine(baud int, info nmea.Info) string {
	t := info.TimeUTC
	if t == "" {
		t = "unknown"
	}
	if info.HasFix || info.FixQuality > 0 {
		return fmt.Sprintf("GPS ok baud=%d fix=VALID quality=%d sats=%d time=%s lat=%.6f lon=%.6f",
			baud, info.FixQuality, info.Sats, t, info.LatDeg, info.LonDeg)
	}
	return fmt.Sprintf("GPS no-fix baud=%d quality=%d sats=%d time=%s (likely indoors)",
		baud, info.FixQuality, info.Sats, t)
}
