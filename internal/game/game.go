// Package game orchestrates a two-player reflex match.
package game

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/verte-zerg/reflexduel/internal/arbiter"
	"github.com/verte-zerg/reflexduel/internal/model"
)

// TurnRunner plays one player's turn.
type TurnRunner interface {
	RunTurn(ctx context.Context, targets []int, tickRate time.Duration, strength int) (model.TurnResult, error)
}

// TargetSource produces the targets for a turn.
type TargetSource interface {
	Generate(count int) []int
}

// Game runs rounds until one player runs out of vitality.
type Game struct {
	players [2]model.Player
	targets int

	in     LineReader
	out    *printer
	turns  TurnRunner
	source TargetSource

	// OnRound, when set, is called after every completed round.
	OnRound func(model.RoundOutcome)
}

// New builds a game from the match config.
func New(cfg model.Config, in LineReader, out io.Writer, turns TurnRunner, targets TargetSource) *Game {
	return &Game{
		players: [2]model.Player{
			{Name: cfg.Name1, Vitality: cfg.Vitality, Speed: cfg.Speed, Strength: cfg.Strength},
			{Name: cfg.Name2, Vitality: cfg.Vitality, Speed: cfg.Speed, Strength: cfg.Strength},
		},
		targets: cfg.Targets,
		in:      in,
		out:     &printer{w: out},
		turns:   turns,
		source:  targets,
	}
}

// Run plays the match to completion.
func (g *Game) Run(ctx context.Context) (model.MatchResult, error) {
	result := model.MatchResult{Winner: -1}
	g.out.println("##### Match start #####")

	for round := 1; g.players[0].Alive() && g.players[1].Alive(); round++ {
		outcome, err := g.playRound(ctx, round)
		if err != nil {
			return result, err
		}
		result.Rounds = append(result.Rounds, outcome)
		if g.OnRound != nil {
			g.OnRound(outcome)
		}
		if err := g.out.err; err != nil {
			return result, fmt.Errorf("failed to write output: %w", err)
		}
	}

	result.Players = g.players
	for i, p := range g.players {
		if p.Alive() {
			result.Winner = i
		}
	}
	g.out.println("\n##### Match over #####")
	if result.Winner >= 0 {
		g.out.printf("%s wins the match.\n", g.players[result.Winner].Name)
	}
	if err := g.out.err; err != nil {
		return result, fmt.Errorf("failed to write output: %w", err)
	}
	return result, nil
}

func (g *Game) playRound(ctx context.Context, round int) (model.RoundOutcome, error) {
	g.out.printf("\n## Round %d ##\n", round)

	var turns [2]model.TurnResult
	for i := range g.players {
		if i > 0 {
			g.out.println()
		}
		res, err := g.playTurn(ctx, g.players[i])
		if err != nil {
			return model.RoundOutcome{}, fmt.Errorf("round %d, %s: %w", round, g.players[i].Name, err)
		}
		turns[i] = res
	}

	outcome := model.RoundOutcome{
		Round:    round,
		Players:  [2]string{g.players[0].Name, g.players[1].Name},
		Averages: [2]int{turns[0].Average, turns[1].Average},
		Decision: arbiter.Decide(turns[0], turns[1]),
	}

	d := outcome.Decision
	if d.Tie {
		g.out.println("\nTie, no penalty.")
	} else {
		winner, loser := &g.players[d.Winner], &g.players[d.Loser]
		g.out.printf("\n%s wins the round. %s loses %d vitality.\n", winner.Name, loser.Name, d.Delta)
		arbiter.ApplyVitality(loser, d.Delta)
		if loser.Alive() {
			poison, err := g.choosePoison(ctx, winner.Name, loser.Name)
			if err != nil {
				return model.RoundOutcome{}, err
			}
			if err := arbiter.ApplyPoison(loser, poison); err != nil {
				return model.RoundOutcome{}, err
			}
			outcome.Poison = poison
		}
	}
	outcome.Vitality = [2]int{g.players[0].Vitality, g.players[1].Vitality}
	g.out.printf("## END Round %d ##\n", round)
	return outcome, nil
}

func (g *Game) playTurn(ctx context.Context, p model.Player) (model.TurnResult, error) {
	g.out.printf("%s's turn (Vitality=%d, Speed=%d, Strength=%d)\n", p.Name, p.Vitality, p.Speed, p.Strength)
	targets := g.source.Generate(g.targets)
	g.out.printf("→ Targets: %s\n", formatTargets(targets))
	g.out.println("→ Press ENTER to start the turn..")
	if _, err := g.in.ReadLine(ctx); err != nil {
		return model.TurnResult{}, err
	}

	res, err := g.turns.RunTurn(ctx, targets, p.TickRate(), p.Strength)
	if err != nil {
		return model.TurnResult{}, err
	}
	g.out.println("\n# End of turn #")
	g.out.printf("→ Scores: %s\n", formatTargets(res.Scores))
	g.out.printf("→ Average score: %d\n", res.Average)
	return res, nil
}

func (g *Game) choosePoison(ctx context.Context, winner, loser string) (model.PoisonType, error) {
	g.out.printf("%s, choose a poison for %s:\n", winner, loser)
	g.out.printf("→ 1: -%d speed\n", arbiter.PoisonAmount)
	g.out.printf("→ 2: -%d strength\n", arbiter.PoisonAmount)
	for {
		g.out.printf("> ")
		line, err := g.in.ReadLine(ctx)
		if err != nil {
			return model.PoisonNone, err
		}
		poison, err := arbiter.ParsePoison(line)
		if err == nil {
			return poison, nil
		}
		g.out.println("Invalid input, enter 1 or 2.")
	}
}

// AskReplay prompts until the player answers Y or N.
func AskReplay(ctx context.Context, in LineReader, out io.Writer) (bool, error) {
	p := &printer{w: out}
	p.println("\nPlay again? [Y/N]")
	for {
		p.printf("> ")
		if p.err != nil {
			return false, p.err
		}
		line, err := in.ReadLine(ctx)
		if err != nil {
			return false, err
		}
		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "Y":
			return true, nil
		case "N":
			return false, nil
		}
		p.println("Invalid input, enter Y or N.")
	}
}

func formatTargets(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// printer keeps the first write error so call sites stay linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, args...)
}
