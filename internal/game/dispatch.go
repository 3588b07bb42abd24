package game

import (
	"context"
	"sync"
	"time"
)

// Event is something the game loop must apply to the scene.
type Event interface {
	event()
}

// ControlEvent carries a new slider value in hours.
type ControlEvent struct {
	Hours float64
}

// TickEvent asks for one step of the signal animation.
type TickEvent struct{}

func (ControlEvent) event() {}
func (TickEvent) event() {}

// Dispatcher queues events from the slider and the ticker goroutine and hands
// them to the game loop one at a time, in arrival order. Only the goroutine
// calling Drain touches scene state.
type Dispatcher struct {
	mu          sync.Mutex
	queue       []Event
	tickPending bool
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Post enqueues ev. A tick posted while another is still queued is dropped.
func (d *Dispatcher) Post(ev Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := ev.(TickEvent); ok {
		if d.tickPending {
			return
		}
		d.tickPending = true
	}
	d.queue = append(d.queue, ev)
}

// Drain applies every queued event in order and returns how many ran.
func (d *Dispatcher) Drain(apply func(Event)) int {
	d.mu.Lock()
	events := d.queue
	d.queue = nil
	d.tickPending = false
	d.mu.Unlock()

	for _, ev := range events {
		apply(ev)
	}
	return len(events)
}

// RunTicker posts a TickEvent every interval until ctx is done.
func (d *Dispatcher) RunTicker(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			d.Post(TickEvent{})
		}
	}
}
