// Package clock provides cancellable repeating tasks. Production code uses
// Real; tests drive a Manual clock so tick ordering is deterministic.
package clock

import (
	"sync"
	"time"
)

// Handle is a live scheduled task. Cancel stops future invocations and is
// safe to call more than once.
type Handle interface {
	Cancel()
}

// Scheduler runs fn every d until the returned Handle is cancelled.
type Scheduler interface {
	Every(d time.Duration, fn func()) Handle
}

// Real schedules tasks on time.Ticker goroutines.
type Real struct{}

// Every starts a ticker goroutine that invokes fn on each tick.
func (Real) Every(d time.Duration, fn func()) Handle {
	h := &realHandle{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}

	go func() {
		for {
			select {
			case <-h.done:
				return
			case <-h.ticker.C:
				fn()
			}
		}
	}()

	return h
}

type realHandle struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (h *realHandle) Cancel() {
	h.once.Do(func() {
		h.ticker.Stop()
		close(h.done)
	})
}
