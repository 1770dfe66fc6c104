// Package counter animates a statistic counting up from zero to its target.
package counter

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultDuration is the total length of one count-up.
	DefaultDuration = 2000 * time.Millisecond
	// DefaultTick is the interval between displayed updates.
	DefaultTick = 16 * time.Millisecond
)

var (
	ErrNegativeTarget = errors.New("counter: target must be non-negative")
	ErrInvalidTiming  = errors.New("counter: duration and tick must be positive")
	ErrStarted        = errors.New("counter: animator already started")
)

// Animator produces the displayed values of one count-up. The accumulator
// after n ticks is n*target*tick/duration; it is evaluated on the reduced
// fraction tick/duration so the tick on which the target is reached does
// not depend on floating-point rounding.
type Animator struct {
	target int
	tick   time.Duration

	// tick/duration reduced to lowest terms.
	num, den int64

	mu      sync.Mutex
	ticks   int
	value   int
	done    bool
	started bool
}

// New creates an Animator for target over duration, updated every tick.
func New(target int, duration, tick time.Duration) (*Animator, error) {
	if target < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeTarget, target)
	}
	if duration <= 0 || tick <= 0 {
		return nil, fmt.Errorf("%w: duration=%s tick=%s", ErrInvalidTiming, duration, tick)
	}
	g := gcd(int64(tick), int64(duration))
	return &Animator{
		target: target,
		tick:   tick,
		num:    int64(tick) / g,
		den:    int64(duration) / g,
		done:   target == 0,
	}, nil
}

// Target returns the final value.
func (a *Animator) Target() int { return a.target }

// Value returns the currently displayed value.
func (a *Animator) Value() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.value
}

// Done reports whether the target has been reached.
func (a *Animator) Done() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.done
}

// Ticks returns how many ticks have been applied.
func (a *Animator) Ticks() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.ticks
}

// TotalTicks returns how many ticks the animation takes to reach its target.
func (a *Animator) TotalTicks() int {
	if a.target == 0 {
		return 0
	}
	return int((a.den + a.num - 1) / a.num)
}

// Step applies one tick and returns the displayed value and whether the
// target has been reached. Once done, Step is a no-op.
func (a *Animator) Step() (int, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.done {
		return a.value, true
	}
	a.ticks++
	n := int64(a.ticks)
	if n*a.num >= a.den {
		a.value = a.target
		a.done = true
		return a.value, true
	}
	v := int(n * int64(a.target) * a.num / a.den)
	if v > a.target {
		v = a.target
	}
	a.value = v
	return v, false
}

// Start runs the animation on a ticker, calling onUpdate after every tick
// from a separate goroutine. The returned stop function releases the ticker
// early; it is idempotent and, once it returns, onUpdate is not called
// again. The ticker is also released when the target is reached. For a zero
// target onUpdate is called once, synchronously, and no ticker is acquired.
//
// onUpdate must not call stop.
func (a *Animator) Start(onUpdate func(value int, done bool)) (stop func(), err error) {
	a.mu.Lock()
	if a.started {
		a.mu.Unlock()
		return nil, ErrStarted
	}
	a.started = true
	finished := a.done
	a.mu.Unlock()

	if finished {
		if onUpdate != nil {
			onUpdate(a.target, true)
		}
		return func() {}, nil
	}

	quit := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		ticker := time.NewTicker(a.tick)
		defer ticker.Stop()
		for {
			select {
			case <-quit:
				return
			case <-ticker.C:
				v, done := a.Step()
				if onUpdate != nil {
					onUpdate(v, done)
				}
				if done {
					return
				}
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(quit) })
		<-exited
	}, nil
}

// Sequence returns every displayed value of a count-up, one per tick.
func Sequence(target int, duration, tick time.Duration) ([]int, error) {
	a, err := New(target, duration, tick)
	if err != nil {
		return nil, err
	}
	var out []int
	for !a.Done() {
		v, _ := a.Step()
		out = append(out, v)
	}
	return out, nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
