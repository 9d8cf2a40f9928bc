package handlers

// tailRing keeps the most recent lines in arrival order. It is used by a
// single goroutine and needs no locking.
type tailRing struct {
	maxLines     int
	maxLineBytes int
	buf          []string
}

func newTailRing(maxLines, maxLineBytes int) *tailRing {
	if maxLines < 1 {
		maxLines = 1
	}
	if maxLineBytes <= 0 {
		maxLineBytes = 128
	}
	return &tailRing{maxLines: maxLines, maxLineBytes: maxLineBytes, buf: make([]string, 0, maxLines)}
}

func (t *tailRing) add(line string) {
	if len(line) > t.maxLineBytes {
		line = line[:t.maxLineBytes]
	}
	if len(t.buf) < t.maxLines {
		t.buf = append(t.buf, line)
		return
	}
	copy(t.buf, t.buf[1:])
	t.buf[len(t.buf)-1] = line
}

// lines returns the tail oldest-first.
func (t *tailRing) lines() []string {
	out := make([]string, 0, len(t.buf))
	out = append(out, t.buf...)
	return out
}
