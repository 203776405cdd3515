// internal/container/queue.go
//
// Fixed-capacity circular FIFO queue.
// Responsibilities:
//   - Enqueue at the tail, dequeue from the head, both wrapping modulo capacity.
//   - Expose the logical contents (front first) for rendering and swaps.
//
// Notes:
//   - count is the only source of truth for full/empty; head == tail is
//     ambiguous between the two.
//   - A full queue rejects Enqueue with ErrContainerFull and stays unchanged.
//   - Not safe for concurrent use.

package container

// Queue is a bounded circular queue of values of type T.
type Queue[T any] struct {
	buf   []T
	head  int // index of the front element
	tail  int // index of the next free slot
	count int // occupied slots, 0..len(buf)
}

// NewQueue constructs an empty queue holding at most capacity elements.
// A non-positive capacity is treated as 1.
func NewQueue[T any](capacity int) *Queue[T] {
	if capacity <= 0 {
		capacity = 1
	}
	return &Queue[T]{buf: make([]T, capacity)}
}

// IsFull reports whether the queue is at capacity.
func (q *Queue[T]) IsFull() bool { return q.count == len(q.buf) }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.count == 0 }

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.count }

// Cap returns the fixed capacity.
func (q *Queue[T]) Cap() int { return len(q.buf) }

// Enqueue appends v at the tail.
// Returns ErrContainerFull (and leaves the queue untouched) when full.
func (q *Queue[T]) Enqueue(v T) error {
	if q.IsFull() {
		return ErrContainerFull
	}
	q.buf[q.tail] = v
	q.tail = q.wrap(q.tail + 1)
	q.count++
	return nil
}

// Dequeue removes and returns the front element.
// Returns the zero value and ErrEmptyContainer when empty.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.IsEmpty() {
		return zero, ErrEmptyContainer
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = q.wrap(q.head + 1)
	q.count--
	return v, nil
}

// At returns the i-th element in FIFO order (0 = front).
func (q *Queue[T]) At(i int) (T, bool) {
	var zero T
	if i < 0 || i >= q.count {
		return zero, false
	}
	return q.buf[q.wrap(q.head+i)], true
}

// Set replaces the i-th element in FIFO order in place.
// Out-of-range indexes are ignored and reported as false.
func (q *Queue[T]) Set(i int, v T) bool {
	if i < 0 || i >= q.count {
		return false
	}
	q.buf[q.wrap(q.head+i)] = v
	return true
}

// Items returns a copy of the contents, front first.
func (q *Queue[T]) Items() []T {
	out := make([]T, q.count)
	for i := range out {
		out[i] = q.buf[q.wrap(q.head+i)]
	}
	return out
}

// wrap maps a raw index back into the backing slice.
func (q *Queue[T]) wrap(i int) int { return i % len(q.buf) }
