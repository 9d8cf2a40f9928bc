// Package fifo implements a bounded fixed-capacity ring queue of fixed-size
// payloads, used as a back-pressure buffer between a producer and a consumer.
//
// The queue is not internally synchronised; callers sharing one between
// goroutines must serialise access externally.
package fifo

import "pacrf/internal/logging"

// ItemSize is the fixed payload size of a queue slot.
const ItemSize = 256

// Item is one queue payload: a fixed-size byte array plus a length counter
// bounded by ItemSize. Items are copied by value in and out of the queue.
type Item struct {
	data [ItemSize]byte
	n    int
}

// NewItem copies p into an Item, truncating at ItemSize.
func NewItem(p []byte) Item {
	var it Item
	it.n = copy(it.data[:], p)
	return it
}

// Bytes returns a copy of the payload.
func (it Item) Bytes() []byte {
	out := make([]byte, it.n)
	copy(out, it.data[:it.n])
	return out
}

// Len reports the payload length.
func (it Item) Len() int {
	return it.n
}

// Queue is a ring buffer of Items. Full and empty are distinguished by the
// live count, never by comparing head and tail.
type Queue struct {
	items    []Item
	capacity int
	head     int
	tail     int
	count    int
	log      *logging.Logger
}

// New allocates a queue of the given capacity. It reports false when the
// capacity is not positive.
func New(capacity int, log *logging.Logger) (*Queue, bool) {
	if capacity <= 0 {
		return nil, false
	}
	q := &Queue{
		items:    make([]Item, capacity),
		capacity: capacity,
		log:      log,
	}
	log.Infof("queue initialized capacity=%d", capacity)
	return q, true
}

// Destroy releases the payload array. Safe to call more than once.
func (q *Queue) Destroy() {
	if q == nil || q.items == nil {
		return
	}
	q.items = nil
	q.capacity = 0
	q.head = 0
	q.tail = 0
	q.count = 0
	q.log.Infof("queue destroyed")
}

// Enqueue copies item into the tail slot. It reports false with a warning
// when the queue is full.
func (q *Queue) Enqueue(item Item) bool {
	if q == nil || q.items == nil {
		return false
	}
	if q.IsFull() {
		q.log.Warnf("queue full, cannot enqueue")
		return false
	}
	q.items[q.tail] = item
	q.tail = (q.tail + 1) % q.capacity
	q.count++
	return true
}

// Dequeue copies the head slot out. It reports false with a warning when the
// queue is empty.
func (q *Queue) Dequeue() (Item, bool) {
	if q == nil || q.items == nil {
		return Item{}, false
	}
	if q.IsEmpty() {
		q.log.Warnf("queue empty, cannot dequeue")
		return Item{}, false
	}
	item := q.items[q.head]
	q.head = (q.head + 1) % q.capacity
	q.count--
	return item, true
}

func (q *Queue) IsFull() bool {
	return q != nil && q.count == q.capacity
}

func (q *Queue) IsEmpty() bool {
	return q == nil || q.count == 0
}

// Len reports the live item count.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return q.count
}

// Cap reports the queue capacity.
func (q *Queue) Cap() int {
	if q == nil {
		return 0
	}
	return q.capacity
}

// LogStatus emits one info line describing the queue state.
func (q *Queue) LogStatus() {
	if q == nil {
		return
	}
	q.log.Infof("queue status count=%d/%d head=%d tail=%d", q.count, q.capacity, q.head, q.tail)
}
