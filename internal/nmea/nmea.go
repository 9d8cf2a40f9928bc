// Package nmea validates NMEA 0183 sentences and extracts a running fix
// summary from GGA/RMC in the GP and GN talker families.
//
// Parsing is opportunistic: a sentence only overwrites the fields it carries,
// so a summary accumulated over several sentences keeps earlier values.
package nmea

import (
	"strconv"
	"strings"
)

const (
	// timeUTCMax bounds the stored UTC time-of-day string (HHMMSS or HHMMSS.sss).
	timeUTCMax = 15
	// maxFields caps the comma split of a sentence payload.
	maxFields = 16
)

// Info is the summary record filled from GGA/RMC sentences. Latitude and
// longitude are signed decimal degrees, north and east positive.
type Info struct {
	HasFix     bool
	FixQuality int
	Sats       int
	LatDeg     float64
	LonDeg     float64
	TimeUTC    string
}

// ParseLine validates the checksum of one sentence and, for GGA/RMC, applies
// its fields to out. It returns false on malformed framing or a checksum
// mismatch, leaving out untouched. Any other sentence with a valid checksum
// (GSA, GSV, ...) returns true without updating the record.
func ParseLine(line string, out *Info) bool {
	if out == nil {
		return false
	}
	payload, ok := checksumPayload(line)
	if !ok {
		return false
	}

	fields := strings.SplitN(payload, ",", maxFields)
	typ := fields[0]
	switch {
	case strings.HasPrefix(typ, "GPGGA"), strings.HasPrefix(typ, "GNGGA"):
		applyGGA(fields, out)
	case strings.HasPrefix(typ, "GPRMC"), strings.HasPrefix(typ, "GNRMC"):
		applyRMC(fields, out)
	}
	// GSA/GSV and friends are ignored for the summary; the checksum pass
	// still counts as acceptance.
	return true
}

// checksumPayload verifies the $...*HH framing and XOR checksum and returns
// the interior payload between '$' and '*'.
func checksumPayload(line string) (string, bool) {
	if len(line) == 0 || line[0] != '$' {
		return "", false
	}
	star := strings.IndexByte(line, '*')
	if star == -1 || star+3 > len(line) {
		return "", false
	}
	payload := line[1:star]
	var sum byte
	for i := 0; i < len(payload); i++ {
		sum ^= payload[i]
	}
	hi, okHi := hexVal(line[star+1])
	lo, okLo := hexVal(line[star+2])
	if !okHi || !okLo {
		return "", false
	}
	if sum != hi<<4|lo {
		return "", false
	}
	return payload, true
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

// GGA fields: 1 time, 2-5 lat/lon, 6 fix quality, 7 satellites.
func applyGGA(f []string, out *Info) {
	if v := field(f, 1); v != "" {
		out.TimeUTC = clampTime(v)
	}
	if v := field(f, 6); v != "" {
		out.FixQuality = atoi(v)
		out.HasFix = out.FixQuality > 0
	}
	if v := field(f, 7); v != "" {
		out.Sats = atoi(v)
	}
	if lat, hemi := field(f, 2), field(f, 3); lat != "" && hemi != "" {
		out.LatDeg = DegreesFromDDMM(lat, hemi)
	}
	if lon, hemi := field(f, 4), field(f, 5); lon != "" && hemi != "" {
		out.LonDeg = DegreesFromDDMM(lon, hemi)
	}
}

// RMC fields: 1 time, 2 status (A=active, V=void), 3-6 lat/lon.
// A void status never clears a fix reported by an earlier sentence.
func applyRMC(f []string, out *Info) {
	if v := field(f, 1); v != "" {
		out.TimeUTC = clampTime(v)
	}
	if v := field(f, 2); v != "" && v[0] == 'A' {
		out.HasFix = true
	}
	if lat, hemi := field(f, 3), field(f, 4); lat != "" && hemi != "" {
		out.LatDeg = DegreesFromDDMM(lat, hemi)
	}
	if lon, hemi := field(f, 5), field(f, 6); lon != "" && hemi != "" {
		out.LonDeg = DegreesFromDDMM(lon, hemi)
	}
}

// DegreesFromDDMM converts an NMEA ddmm.mmmm (or dddmm.mmmm) coordinate plus
// hemisphere into signed decimal degrees. Degenerate fields convert to zero.
func DegreesFromDDMM(v, hemi string) float64 {
	intLen := len(v)
	if dot := strings.IndexByte(v, '.'); dot != -1 {
		intLen = dot
	}
	degLen := intLen - 2
	if degLen <= 0 || degLen > 3 {
		return 0
	}
	deg := atof(v[:degLen])
	min := atof(v[degLen:])
	val := deg + min/60.0
	if hemi != "" && (hemi[0] == 'S' || hemi[0] == 'W') {
		val = -val
	}
	return val
}

func field(f []string, i int) string {
	if i >= len(f) {
		return ""
	}
	return f[i]
}

func clampTime(v string) string {
	if len(v) > timeUTCMax {
		return v[:timeUTCMax]
	}
	return v
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func atof(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
