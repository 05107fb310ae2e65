// Package turn runs a player's turn over a sequence of targets.
package turn

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/verte-zerg/reflexduel/internal/counter"
	"github.com/verte-zerg/reflexduel/internal/model"
	"github.com/verte-zerg/reflexduel/internal/scoring"
)

// ErrNoTargets is returned when a turn has nothing to play.
var ErrNoTargets = errors.New("turn has no targets")

// StopTrigger blocks until the player asks to stop the counter.
type StopTrigger interface {
	Wait(ctx context.Context) error
}

// Executor plays targets one at a time against a reaction counter.
type Executor struct {
	Trigger     StopTrigger
	Renderer    counter.Renderer
	CycleLength int
}

// RunTurn plays every target in order and returns the per-target scores and
// their rounded-up average.
func (e *Executor) RunTurn(ctx context.Context, targets []int, tickRate time.Duration, strength int) (model.TurnResult, error) {
	if len(targets) == 0 {
		return model.TurnResult{}, ErrNoTargets
	}
	cycle := e.CycleLength
	if cycle == 0 {
		cycle = scoring.DefaultCycleLength
	}

	scores := make([]int, 0, len(targets))
	for i, target := range targets {
		state, err := e.playTarget(ctx, target, tickRate, cycle)
		if err != nil {
			return model.TurnResult{}, fmt.Errorf("target %d (%d): %w", i+1, target, err)
		}
		scores = append(scores, scoring.ScoreOnCycle(target, state.Value, state.MissCount, strength, cycle))
	}

	avg, err := scoring.Average(scores)
	if err != nil {
		return model.TurnResult{}, err
	}
	return model.TurnResult{Scores: scores, Average: avg}, nil
}

func (e *Executor) playTarget(ctx context.Context, target int, tickRate time.Duration, cycle int) (model.CounterState, error) {
	c, err := counter.Start(tickRate, counter.Options{
		CycleLength: cycle,
		Target:      target,
		Renderer:    e.Renderer,
	})
	if err != nil {
		return model.CounterState{}, fmt.Errorf("failed to start counter: %w", err)
	}

	waitErr := e.Trigger.Wait(ctx)
	state, stopErr := c.Stop()
	if waitErr != nil {
		return model.CounterState{}, fmt.Errorf("failed waiting for stop: %w", waitErr)
	}
	if stopErr != nil {
		return model.CounterState{}, stopErr
	}
	return state, nil
}
