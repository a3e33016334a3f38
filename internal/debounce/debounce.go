// Package debounce delays a rapidly changing value until it settles.
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is how long a value must stay unchanged before it is delivered.
const DefaultDelay = 500 * time.Millisecond

// Debouncer delivers only the last value of a burst, once no new value has
// arrived for the configured delay. Intermediate values are never delivered.
type Debouncer[T any] struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func(T)
	timer   *time.Timer
	gen     uint64
	stopped bool
}

// New returns a Debouncer calling fn with settled values. A non-positive
// delay uses DefaultDelay.
func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer[T]{delay: delay, fn: fn}
}

// Push records a new value, cancelling any pending delivery and restarting the delay.
func (d *Debouncer[T]) Push(value T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen, value) })
}

// Stop cancels the pending delivery. Later pushes are ignored.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Delay returns the settle interval.
func (d *Debouncer[T]) Delay() time.Duration {
	return d.delay
}

func (d *Debouncer[T]) fire(gen uint64, value T) {
	d.mu.Lock()
	// A timer that could not be stopped in time still sees the newer generation.
	current := gen == d.gen && !d.stopped
	if current {
		d.timer = nil
	}
	d.mu.Unlock()
	if current {
		d.fn(value)
	}
}
