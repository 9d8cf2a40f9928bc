// Package bitstream extracts unsigned integer fields from a byte buffer
// interpreted as a big-endian bit stream, MSB-first within each byte and
// across consecutive bytes.
package bitstream

import "pacrf/internal/logging"

// Reader walks a borrowed byte buffer bit by bit. The buffer is never
// mutated; the position always stays within [0, total].
type Reader struct {
	data  []byte
	total int
	pos   int
	log   *logging.Logger
}

// New builds a reader over data holding totalBits valid bits. totalBits need
// not be a multiple of eight but may not exceed the buffer; it is clamped if
// it does.
func New(data []byte, totalBits int, log *logging.Logger) *Reader {
	if totalBits < 0 {
		totalBits = 0
	}
	if max := len(data) * 8; totalBits > max {
		log.Warnf("bitstream: total %d bits exceeds buffer, clamped to %d", totalBits, max)
		totalBits = max
	}
	log.Infof("bitstream: reader initialized, %d bits total", totalBits)
	return &Reader{data: data, total: totalBits, log: log}
}

// Read consumes n bits (1..32) at the current position and returns them
// right-aligned in a uint32. Invalid widths and reads past the end return 0
// with a warning and leave the position unchanged.
func (r *Reader) Read(n int) uint32 {
	if n <= 0 || n > 32 {
		r.log.Warnf("bitstream: invalid bit request width=%d", n)
		return 0
	}
	if r.pos+n > r.total {
		r.log.Warnf("bitstream: read beyond stream pos=%d requested=%d total=%d", r.pos, n, r.total)
		return 0
	}

	var value uint32
	for i := 0; i < n; i++ {
		byteIdx := (r.pos + i) / 8
		bitIdx := 7 - (r.pos+i)%8
		bit := (r.data[byteIdx] >> uint(bitIdx)) & 0x01
		value = value<<1 | uint32(bit)
	}
	r.pos += n
	return value
}

// Skip advances the position by n bits, clamped at the end of the stream.
func (r *Reader) Skip(n int) {
	if n < 0 {
		r.log.Warnf("bitstream: invalid skip width=%d", n)
		return
	}
	if r.pos+n <= r.total {
		r.pos += n
		return
	}
	r.log.Warnf("bitstream: skip past end pos=%d skip=%d total=%d", r.pos, n, r.total)
	r.pos = r.total
}

// Reset moves the position back to the start of the stream.
func (r *Reader) Reset() {
	r.pos = 0
}

// Pos reports the current bit position.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining reports how many bits are left to read.
func (r *Reader) Remaining() int {
	return r.total - r.pos
}
