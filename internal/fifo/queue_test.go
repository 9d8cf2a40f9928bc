package fifo

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"pacrf/internal/logging"
)

func quietLogger() *logging.Logger {
	return logging.NewWithWriters(io.Discard, io.Discard)
}

func TestNew_RejectsNonPositiveCapacity(t *testing.T) {
	if _, ok := New(0, quietLogger()); ok {
		t.Fatalf("expected init failure for capacity 0")
	}
	if _, ok := New(-3, quietLogger()); ok {
		t.Fatalf("expected init failure for negative capacity")
	}
}

func TestQueue_FIFOAndBackPressure(t *testing.T) {
	q, ok := New(2, quietLogger())
	if !ok {
		t.Fatalf("init failed")
	}
	defer q.Destroy()

	a := NewItem([]byte("A"))
	b := NewItem([]byte("B"))
	c := NewItem([]byte("C"))

	if !q.Enqueue(a) || !q.Enqueue(b) {
		t.Fatalf("expected first two enqueues to succeed")
	}
	if q.Enqueue(c) {
		t.Fatalf("expected enqueue on full queue to fail")
	}
	if !q.IsFull() {
		t.Fatalf("expected full")
	}

	got, ok := q.Dequeue()
	if !ok || string(got.Bytes()) != "A" {
		t.Fatalf("dequeue = %q ok=%v, want A", got.Bytes(), ok)
	}
	if !q.Enqueue(c) {
		t.Fatalf("expected enqueue after dequeue to succeed")
	}

	for _, want := range []string{"B", "C"} {
		got, ok := q.Dequeue()
		if !ok || string(got.Bytes()) != want {
			t.Fatalf("dequeue = %q ok=%v, want %s", got.Bytes(), ok, want)
		}
	}
	if _, ok := q.Dequeue(); ok {
		t.Fatalf("expected dequeue on empty queue to fail")
	}
	if !q.IsEmpty() {
		t.Fatalf("expected empty")
	}
}

func TestQueue_CountInvariant(t *testing.T) {
	q, ok := New(3, quietLogger())
	if !ok {
		t.Fatalf("init failed")
	}
	defer q.Destroy()

	accepted, removed := 0, 0
	ops := []byte("eeededeeeedddde")
	for _, op := range ops {
		if op == 'e' {
			if q.Enqueue(NewItem([]byte{byte(accepted)})) {
				accepted++
			}
		} else {
			if _, ok := q.Dequeue(); ok {
				removed++
			}
		}
		if q.Len() != accepted-removed {
			t.Fatalf("count = %d, want %d", q.Len(), accepted-removed)
		}
		if q.Len() < 0 || q.Len() > q.Cap() {
			t.Fatalf("count %d outside [0,%d]", q.Len(), q.Cap())
		}
	}
}

func TestQueue_WraparoundKeepsOrder(t *testing.T) {
	q, _ := New(3, quietLogger())
	defer q.Destroy()

	for i := 0; i < 10; i++ {
		if !q.Enqueue(NewItem([]byte{byte(i)})) {
			t.Fatalf("enqueue %d failed", i)
		}
		got, ok := q.Dequeue()
		if !ok || got.Bytes()[0] != byte(i) {
			t.Fatalf("round %d: got %v", i, got.Bytes())
		}
	}
}

func TestDestroy_Idempotent(t *testing.T) {
	q, _ := New(2, quietLogger())
	q.Destroy()
	q.Destroy()
	if q.Enqueue(NewItem([]byte("x"))) {
		t.Fatalf("enqueue after destroy must fail")
	}
}

func TestNewItem_TruncatesAtItemSize(t *testing.T) {
	big := make([]byte, ItemSize+100)
	it := NewItem(big)
	if it.Len() != ItemSize {
		t.Fatalf("len = %d, want %d", it.Len(), ItemSize)
	}
}

func TestEnqueue_FullLogsWarning(t *testing.T) {
	var diag bytes.Buffer
	q, _ := New(1, logging.NewWithWriters(&diag, io.Discard))
	defer q.Destroy()

	q.Enqueue(NewItem([]byte("x")))
	q.Enqueue(NewItem([]byte("y")))
	if !strings.Contains(diag.String(), "[WARNING]") {
		t.Fatalf("expected warning on full enqueue, got %q", diag.String())
	}
}
