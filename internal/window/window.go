// Package window holds the most recent samples of a metric stream in a
// fixed-size ring buffer.
//
// Every accepted value gets the next step number. The step counter counts
// values ever accepted, so it keeps rising after old samples are evicted.
// A Window is not safe for concurrent use; it belongs to the render loop.
package window

// DefaultCapacity is the number of samples kept when no capacity is configured.
const DefaultCapacity = 30

// Sample is one accepted observation.
type Sample struct {
	Step  uint64
	Value float64
}

// Window is a capacity-bounded, step-ordered sequence of samples with FIFO eviction.
type Window struct {
	data  []Sample
	head  int // next write position
	count int
	size  int
	next  uint64 // step assigned to the next pushed value
}

// New creates a window holding at most capacity samples.
// A non-positive capacity uses DefaultCapacity.
func New(capacity int) *Window {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Window{
		data: make([]Sample, capacity),
		size: capacity,
	}
}

// Push records value under the next step, evicting the oldest sample when full.
func (w *Window) Push(value float64) Sample {
	s := Sample{Step: w.next, Value: value}
	w.next++

	w.data[w.head] = s
	w.head = (w.head + 1) % w.size
	if w.count < w.size {
		w.count++
	}
	return s
}

// Len returns the number of samples currently held.
func (w *Window) Len() int {
	return w.count
}

// Cap returns the maximum number of samples held.
func (w *Window) Cap() int {
	return w.size
}

// Accepted returns how many values have ever been pushed.
func (w *Window) Accepted() uint64 {
	return w.next
}

// Samples returns the held samples oldest first.
func (w *Window) Samples() []Sample {
	return w.Last(w.count)
}

// Last returns up to n of the most recent samples, oldest first.
func (w *Window) Last(n int) []Sample {
	if n <= 0 || w.count == 0 {
		return nil
	}
	if n > w.count {
		n = w.count
	}

	result := make([]Sample, n)

	// head points at the next write slot, so the newest sample sits at head-1.
	start := (w.head - n + w.size) % w.size
	for i := 0; i < n; i++ {
		result[i] = w.data[(start+i)%w.size]
	}
	return result
}

// Values returns the held values oldest first.
func (w *Window) Values() []float64 {
	samples := w.Samples()
	if samples == nil {
		return nil
	}
	values := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = s.Value
	}
	return values
}
