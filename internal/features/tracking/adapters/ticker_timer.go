package adapter

import (
	"sync"
	"time"

	"gotur/internal/features/tracking/ports"
)

// TickerTimer implements ports.Timer on top of time.Ticker.
type TickerTimer struct{}

// NewTickerTimer creates a new TickerTimer.
func NewTickerTimer() *TickerTimer {
	return &TickerTimer{}
}

// StartInterval calls onTick every period from a dedicated goroutine until
// the returned handle is cancelled.
func (t *TickerTimer) StartInterval(period time.Duration, onTick func()) ports.TimerHandle {
	h := &tickerHandle{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	go func() {
		defer close(h.done)
		ticker := time.NewTicker(period)
		defer ticker.Stop()

		for {
			select {
			case <-h.stop:
				return
			case <-ticker.C:
				select {
				case <-h.stop:
					return
				default:
				}
				onTick()
			}
		}
	}()

	return h
}

type tickerHandle struct {
	once sync.Once
	stop chan struct{}
	done chan struct{}
}

// Cancel stops the ticker and waits for an in-flight onTick to return.
func (h *tickerHandle) Cancel() {
	h.once.Do(func() { close(h.stop) })
	<-h.done
}
