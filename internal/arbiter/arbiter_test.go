package arbiter

import (
	"testing"

	"github.com/verte-zerg/reflexduel/internal/model"
)

func TestDecide(t *testing.T) {
	d := Decide(model.TurnResult{Average: 90}, model.TurnResult{Average: 70})
	if d.Tie || d.Winner != 0 || d.Loser != 1 || d.Delta != 20 {
		t.Fatalf("unexpected decision: %+v", d)
	}
	d = Decide(model.TurnResult{Average: 40}, model.TurnResult{Average: 85})
	if d.Tie || d.Winner != 1 || d.Loser != 0 || d.Delta != 45 {
		t.Fatalf("unexpected decision: %+v", d)
	}
	d = Decide(model.TurnResult{Average: 60}, model.TurnResult{Average: 60})
	if !d.Tie || d.Delta != 0 {
		t.Fatalf("expected tie, got %+v", d)
	}
}

func TestApplyVitalitySaturates(t *testing.T) {
	p := model.Player{Vitality: 50}
	ApplyVitality(&p, 20)
	if p.Vitality != 30 {
		t.Fatalf("expected 30, got %d", p.Vitality)
	}
	ApplyVitality(&p, 45)
	if p.Vitality != 0 {
		t.Fatalf("expected 0, got %d", p.Vitality)
	}
}

func TestApplyPoison(t *testing.T) {
	p := model.Player{Speed: 50, Strength: 3}
	if err := ApplyPoison(&p, model.PoisonSpeed); err != nil {
		t.Fatalf("apply speed poison: %v", err)
	}
	if p.Speed != 45 {
		t.Fatalf("expected speed 45, got %d", p.Speed)
	}
	if err := ApplyPoison(&p, model.PoisonStrength); err != nil {
		t.Fatalf("apply strength poison: %v", err)
	}
	if p.Strength != 0 {
		t.Fatalf("expected strength 0, got %d", p.Strength)
	}
	if err := ApplyPoison(&p, model.PoisonNone); err == nil {
		t.Fatalf("expected error for unknown poison")
	}
}

func TestParsePoison(t *testing.T) {
	if p, err := ParsePoison(" 1\n"); err != nil || p != model.PoisonSpeed {
		t.Fatalf("expected speed poison, got %v %v", p, err)
	}
	if p, err := ParsePoison("2"); err != nil || p != model.PoisonStrength {
		t.Fatalf("expected strength poison, got %v %v", p, err)
	}
	for _, in := range []string{"", "3", "speed"} {
		if _, err := ParsePoison(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}
