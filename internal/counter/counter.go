// Package counter runs the free-running reaction needle.
//
// A Counter owns its state in a single goroutine. The caller can observe the
// state only through Stop, which signals the goroutine, joins it, and returns
// the final snapshot. When a tick and the stop signal are ready at the same
// time the stop signal wins, so no tick is applied after stop is observed.
package counter

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/verte-zerg/reflexduel/internal/model"
	"github.com/verte-zerg/reflexduel/internal/scoring"
)

var (
	// ErrAlreadyStopped is returned when Stop is called more than once.
	ErrAlreadyStopped = errors.New("counter already stopped")
	// ErrTickPanic wraps a panic raised inside the tick goroutine.
	ErrTickPanic = errors.New("counter tick loop panicked")
)

// Renderer displays the running counter. It is called from the tick
// goroutine and must not be used for control flow.
type Renderer interface {
	Render(target, missCount, value int)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(target, missCount, value int)

// Render implements Renderer.
func (f RendererFunc) Render(target, missCount, value int) {
	f(target, missCount, value)
}

// Options configures a counter run.
type Options struct {
	// CycleLength defaults to scoring.DefaultCycleLength.
	CycleLength int
	Target      int
	Renderer    Renderer
}

type result struct {
	state model.CounterState
	err   error
}

// Counter is a handle to one running counter.
type Counter struct {
	tickRate time.Duration
	opts     Options

	stop    chan struct{}
	done    chan result
	stopped atomic.Bool
}

// Start launches the tick goroutine.
func Start(tickRate time.Duration, opts Options) (*Counter, error) {
	if tickRate <= 0 {
		return nil, fmt.Errorf("tick rate must be > 0, got %s", tickRate)
	}
	if opts.CycleLength == 0 {
		opts.CycleLength = scoring.DefaultCycleLength
	}
	if opts.CycleLength < 0 {
		return nil, fmt.Errorf("cycle length must be > 0, got %d", opts.CycleLength)
	}
	c := &Counter{
		tickRate: tickRate,
		opts:     opts,
		stop:     make(chan struct{}),
		done:     make(chan result, 1),
	}
	go c.run()
	return c, nil
}

// Stop signals the goroutine, waits for it to exit and returns its final
// state.
func (c *Counter) Stop() (model.CounterState, error) {
	if !c.stopped.CompareAndSwap(false, true) {
		return model.CounterState{}, ErrAlreadyStopped
	}
	close(c.stop)
	res := <-c.done
	return res.state, res.err
}

func (c *Counter) run() {
	var state model.CounterState
	defer func() {
		if r := recover(); r != nil {
			c.done <- result{err: fmt.Errorf("%w: %v", ErrTickPanic, r)}
			return
		}
		c.done <- result{state: state}
	}()

	ticker := time.NewTicker(c.tickRate)
	defer ticker.Stop()

	for {
		c.render(state)
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			select {
			case <-c.stop:
				return
			default:
			}
			state = advance(state, c.opts.CycleLength)
		}
	}
}

func (c *Counter) render(state model.CounterState) {
	if c.opts.Renderer == nil {
		return
	}
	c.opts.Renderer.Render(c.opts.Target, state.MissCount, state.Value)
}

func advance(state model.CounterState, cycleLength int) model.CounterState {
	state.Ticks++
	state.Value = (state.Value + 1) % cycleLength
	if state.Value == 0 {
		state.MissCount++
	}
	return state
}
