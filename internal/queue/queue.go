// Package queue provides a non-blocking FIFO handoff between one producer
// and one consumer.
//
// Send never blocks and never fails: the producer is a host computation that
// must not stall on the display. Once the consumer side is closed, sends are
// silently discarded. The consumer polls with TryReceive or Drain and never
// blocks either.
//
// A Queue is unbounded unless a limit is configured. With a limit, a full
// queue drops its oldest entry to make room and counts the drop.
package queue

import "sync"

// Option configures a Queue.
type Option func(*settings)

type settings struct {
	initialCap int
	limit      int
}

// WithInitialCap sets the starting size of the backing slice.
func WithInitialCap(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.initialCap = n
		}
	}
}

// WithLimit caps the number of queued items. Zero or negative means unbounded.
func WithLimit(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.limit = n
		} else {
			s.limit = 0
		}
	}
}

// Queue is a mutex-guarded FIFO. The zero value is not usable; call New.
type Queue[T any] struct {
	mu      sync.Mutex
	items   []T
	head    int // index of the oldest queued item
	limit   int
	dropped uint64
	closed  bool
}

// New creates an empty queue.
func New[T any](opts ...Option) *Queue[T] {
	s := settings{initialCap: 64}
	for _, opt := range opts {
		opt(&s)
	}
	return &Queue[T]{
		items: make([]T, 0, s.initialCap),
		limit: s.limit,
	}
}

// Send appends v. It never blocks. After Close it is a no-op.
func (q *Queue[T]) Send(v T) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	if q.limit > 0 && len(q.items)-q.head >= q.limit {
		q.popLocked()
		q.dropped++
	}
	q.appendLocked(v)
}

// Force appends v without applying the limit, so nothing queued is dropped
// to make room. Control messages use it. After Close it is a no-op.
func (q *Queue[T]) Force(v T) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.appendLocked(v)
}

func (q *Queue[T]) appendLocked(v T) {
	// Reclaim the consumed prefix before the slice grows again.
	if q.head > 0 && len(q.items) == cap(q.items) {
		n := copy(q.items, q.items[q.head:])
		clear(q.items[n:])
		q.items = q.items[:n]
		q.head = 0
	}

	q.items = append(q.items, v)
}

// TryReceive returns the oldest queued item, or false if the queue is empty.
// It never blocks.
func (q *Queue[T]) TryReceive() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.popLocked()
}

// Drain hands queued items to fn in send order until the queue is empty or
// fn returns false. Only items present when Drain starts are delivered, so a
// producer that keeps sending cannot keep the consumer in Drain forever.
// Items not delivered stay queued. Drain returns the number delivered.
func (q *Queue[T]) Drain(fn func(T) bool) int {
	n := q.Len()
	delivered := 0
	for delivered < n {
		v, ok := q.TryReceive()
		if !ok {
			break
		}
		delivered++
		if !fn(v) {
			break
		}
	}
	return delivered
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}

// Dropped returns how many items were discarded because the queue was at its limit.
func (q *Queue[T]) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}

// Close discards anything still queued and turns later sends into no-ops.
// Closing twice is harmless.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	clear(q.items)
	q.items = q.items[:0]
	q.head = 0
}

// Closed reports whether Close has been called.
func (q *Queue[T]) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// popLocked removes the oldest item. Must be called with q.mu held.
func (q *Queue[T]) popLocked() (T, bool) {
	var zero T
	if q.head >= len(q.items) {
		return zero, false
	}
	v := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return v, true
}
