// Package model defines shared data structures.
package model

import "time"

// Config defines match settings.
type Config struct {
	Name1       string
	Name2       string
	Vitality    int
	Targets     int
	Speed       int
	Strength    int
	CycleLength int
	Plain       bool
}

// Player holds the stats a player carries between rounds.
type Player struct {
	Name     string
	Vitality int
	Speed    int
	Strength int
}

// TickRate converts the speed stat into the counter tick interval.
// Speed is milliseconds per tick; a zero speed is clamped to 1ms.
func (p Player) TickRate() time.Duration {
	if p.Speed < 1 {
		return time.Millisecond
	}
	return time.Duration(p.Speed) * time.Millisecond
}

// Alive reports whether the player still has vitality left.
func (p Player) Alive() bool {
	return p.Vitality > 0
}

// CounterState is the snapshot returned when a reaction counter stops.
type CounterState struct {
	Value     int
	MissCount int
	Ticks     int
}

// TurnResult captures one player's scores for a turn.
type TurnResult struct {
	Scores  []int
	Average int
}

// PoisonType identifies the debuff applied to a round loser.
type PoisonType int

const (
	PoisonNone PoisonType = iota
	PoisonSpeed
	PoisonStrength
)

// String implements fmt.Stringer.
func (p PoisonType) String() string {
	switch p {
	case PoisonSpeed:
		return "speed"
	case PoisonStrength:
		return "strength"
	default:
		return "none"
	}
}

// RoundDecision is the arbiter verdict for a round.
type RoundDecision struct {
	Tie    bool
	Winner int
	Loser  int
	Delta  int
}

// RoundOutcome records a completed round.
type RoundOutcome struct {
	Round    int
	Players  [2]string
	Averages [2]int
	Decision RoundDecision
	Poison   PoisonType
	Vitality [2]int
}

// MatchResult summarizes a finished match.
type MatchResult struct {
	Players [2]Player
	Rounds  []RoundOutcome
	Winner  int
}
