// Package arbiter decides rounds and applies their penalties.
package arbiter

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/reflexduel/internal/model"
)

// PoisonAmount is the stat reduction applied by a poison.
const PoisonAmount = 5

// Decide compares two turn averages. The higher average wins and the loser
// takes the difference as vitality damage.
func Decide(a, b model.TurnResult) model.RoundDecision {
	switch {
	case a.Average == b.Average:
		return model.RoundDecision{Tie: true}
	case a.Average > b.Average:
		return model.RoundDecision{Winner: 0, Loser: 1, Delta: a.Average - b.Average}
	default:
		return model.RoundDecision{Winner: 1, Loser: 0, Delta: b.Average - a.Average}
	}
}

// ApplyVitality subtracts delta from the player's vitality, saturating at 0.
func ApplyVitality(p *model.Player, delta int) {
	p.Vitality = saturatingSub(p.Vitality, delta)
}

// ApplyPoison lowers the stat targeted by poison.
func ApplyPoison(p *model.Player, poison model.PoisonType) error {
	switch poison {
	case model.PoisonSpeed:
		p.Speed = saturatingSub(p.Speed, PoisonAmount)
	case model.PoisonStrength:
		p.Strength = saturatingSub(p.Strength, PoisonAmount)
	default:
		return fmt.Errorf("unknown poison %q", poison)
	}
	return nil
}

// ParsePoison maps a menu choice to a poison.
func ParsePoison(choice string) (model.PoisonType, error) {
	switch strings.TrimSpace(choice) {
	case "1":
		return model.PoisonSpeed, nil
	case "2":
		return model.PoisonStrength, nil
	default:
		return model.PoisonNone, fmt.Errorf("invalid poison choice %q", choice)
	}
}

func saturatingSub(v, delta int) int {
	if delta >= v {
		return 0
	}
	return v - delta
}
