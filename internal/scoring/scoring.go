// Package scoring computes per-target scores and turn averages.
package scoring

import (
	"errors"
	"fmt"
)

// DefaultCycleLength is the number of distinct counter values before a wrap.
const DefaultCycleLength = 100

// ErrNoScores is returned when averaging an empty score list.
var ErrNoScores = errors.New("no scores to average")

type tier struct {
	maxDistance int
	base        int
}

// Tiers are ordered by increasing distance; anything past the last is worth 0.
var tiers = []tier{
	{maxDistance: 0, base: 100},
	{maxDistance: 5, base: 80},
	{maxDistance: 10, base: 60},
	{maxDistance: 20, base: 40},
	{maxDistance: 50, base: 20},
}

// WrapDistance returns the shortest distance between target and value on a
// circular range of cycleLength values.
func WrapDistance(target, value, cycleLength int) int {
	diff := value - target
	if diff < 0 {
		diff = -diff
	}
	if cycleLength > 0 {
		diff %= cycleLength
		if wrapped := cycleLength - diff; wrapped < diff {
			return wrapped
		}
	}
	return diff
}

// TierBase maps a distance to its base score.
func TierBase(distance int) int {
	if distance < 0 {
		panic(fmt.Sprintf("scoring: negative distance %d", distance))
	}
	for _, t := range tiers {
		if distance <= t.maxDistance {
			return t.base
		}
	}
	return 0
}

// Score computes the score for one target on the default cycle.
func Score(target, value, missCount, strength int) int {
	return ScoreOnCycle(target, value, missCount, strength, DefaultCycleLength)
}

// ScoreOnCycle computes (base + strength) / (missCount + 1). Division
// truncates toward zero, so negative totals round up toward 0.
func ScoreOnCycle(target, value, missCount, strength, cycleLength int) int {
	if missCount < 0 {
		panic(fmt.Sprintf("scoring: negative miss count %d", missCount))
	}
	base := TierBase(WrapDistance(target, value, cycleLength))
	return (base + strength) / (missCount + 1)
}

// Average returns the ceiling of the arithmetic mean of scores.
func Average(scores []int) (int, error) {
	if len(scores) == 0 {
		return 0, ErrNoScores
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	n := len(scores)
	avg := sum / n
	if sum%n != 0 && sum > 0 {
		avg++
	}
	return avg, nil
}
