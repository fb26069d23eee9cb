// Package latency provides a scheduled-delivery queue used to simulate
// network delay on both directions of a connection.
package latency

import (
	"time"
)

type entry[T any] struct {
	value T
	due   time.Time
}

// Gate delays every value pushed into it by a fixed interval before
// handing it to its output channel. Order is preserved within a gate:
// the delay is constant, so the pending queue is already sorted by due
// time. Each connection direction gets its own gate, which keeps a slow
// consumer from stalling anything but its own connection.
type Gate[T any] struct {
	delay time.Duration
	in    chan T
	out   chan<- T
	done  chan struct{}
}

// NewGate starts a gate delivering into out after the given delay.
func NewGate[T any](delay time.Duration, out chan<- T) *Gate[T] {
	g := &Gate[T]{
		delay: delay,
		in:    make(chan T, 64),
		out:   out,
		done:  make(chan struct{}),
	}
	go g.run()
	return g
}

// Send schedules v for delivery after the configured delay. It never
// blocks: when the gate is closed or its buffer is full the value is
// dropped and Send reports false.
func (g *Gate[T]) Send(v T) bool {
	select {
	case g.in <- v:
		return true
	case <-g.done:
		return false
	default:
		return false
	}
}

// Close stops the gate. Pending values are discarded.
func (g *Gate[T]) Close() {
	close(g.done)
}

func (g *Gate[T]) run() {
	var pending []entry[T]

	for {
		if len(pending) == 0 {
			select {
			case v := <-g.in:
				pending = append(pending, entry[T]{v, time.Now().Add(g.delay)})
			case <-g.done:
				return
			}
			continue
		}

		wait := time.Until(pending[0].due)
		if wait <= 0 {
			select {
			case g.out <- pending[0].value:
				pending = pending[1:]
			case <-g.done:
				return
			}
			continue
		}

		timer := time.NewTimer(wait)
		select {
		case v := <-g.in:
			timer.Stop()
			pending = append(pending, entry[T]{v, time.Now().Add(g.delay)})
		case <-timer.C:
		case <-g.done:
			timer.Stop()
			return
		}
	}
}
