// Package uart opens a serial device and puts it into raw mode for NMEA
// ingest: no line discipline, receiver enabled, VMIN=0 with a short VTIME so
// reads return promptly even when the line is quiet.
package uart

// readTimeoutDeciseconds is the VTIME applied by ConfigureRaw.
const readTimeoutDeciseconds = 2
