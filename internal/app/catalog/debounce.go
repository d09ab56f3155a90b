package catalog

import (
	"sync"
	"time"
)

// DefaultPriceDebounce is the trailing-edge delay applied to continuous slider input.
const DefaultPriceDebounce = 150 * time.Millisecond

// Scheduler runs f once after d. It is swapped in tests to fire timers by hand.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type Timer interface {
	Stop() bool
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// debouncer keeps only the last trigger within the delay window.
type debouncer struct {
	mu    sync.Mutex
	sched Scheduler
	delay time.Duration
	timer Timer
	seq   uint64
}

func newDebouncer(sched Scheduler, delay time.Duration) *debouncer {
	if sched == nil {
		sched = realScheduler{}
	}
	if delay <= 0 {
		delay = DefaultPriceDebounce
	}
	return &debouncer{sched: sched, delay: delay}
}

func (d *debouncer) trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.seq++
	seq := d.seq
	d.timer = d.sched.AfterFunc(d.delay, func() {
		d.mu.Lock()
		current := seq == d.seq
		if current {
			d.timer = nil
		}
		d.mu.Unlock()
		if current {
			fn()
		}
	})
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.seq++
}
