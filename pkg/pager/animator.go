package pager

import (
	"math"
	"sync"
	"time"
)

const (
	DefaultAnimationDuration = 180 * time.Millisecond
	DefaultAnimationInterval = 16 * time.Millisecond
)

// TickerAnimator scrolls linearly towards the target on a ticker. Each frame
// is delivered through Post. Starting a new animation stops the running one.
type TickerAnimator struct {
	Duration time.Duration
	Interval time.Duration
	Post     func(fn func())

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

func NewTickerAnimator(post func(fn func())) *TickerAnimator {
	return &TickerAnimator{
		Duration: DefaultAnimationDuration,
		Interval: DefaultAnimationInterval,
		Post:     post,
	}
}

func (a *TickerAnimator) Animate(s Surface, from, to int) {
	a.Stop()

	post := a.Post
	if post == nil {
		post = func(fn func()) { fn() }
	}
	if from == to || a.Duration <= 0 || a.Interval <= 0 {
		post(func() { s.ScrollTo(to) })
		return
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	a.mu.Lock()
	a.stop, a.done = stop, done
	a.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(a.Interval)
		defer ticker.Stop()

		start := time.Now()
		for {
			select {
			case <-stop:
				return
			case now := <-ticker.C:
				progress := math.Min(float64(now.Sub(start))/float64(a.Duration), 1)
				row := from + int(math.Round(float64(to-from)*progress))
				post(func() {
					// A frame queued before Stop must not overwrite a newer position.
					select {
					case <-stop:
					default:
						s.ScrollTo(row)
					}
				})
				if progress >= 1 {
					return
				}
			}
		}
	}()
}

// Stop cancels a running animation and waits for its goroutine to exit.
func (a *TickerAnimator) Stop() {
	a.mu.Lock()
	stop, done := a.stop, a.done
	a.stop, a.done = nil, nil
	a.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}
