// Package main provides the CLI entrypoint for reflexduel.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/reflexduel/internal/config"
	"github.com/verte-zerg/reflexduel/internal/game"
	"github.com/verte-zerg/reflexduel/internal/model"
	"github.com/verte-zerg/reflexduel/internal/objectives"
	"github.com/verte-zerg/reflexduel/internal/scoring"
	"github.com/verte-zerg/reflexduel/internal/stats"
	"github.com/verte-zerg/reflexduel/internal/tui"
	"github.com/verte-zerg/reflexduel/internal/turn"
)

const (
	defaultVitality = 50
	defaultTargets  = 5
	defaultSpeed    = 75
	defaultStrength = 50
	maxCycleLength  = 101
)

var (
	playName1    string
	playName2    string
	playVitality int
	playTargets  int
	playSpeed    int
	playStrength int
	playCycle    int
	playPlain    bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "reflexduel",
		Short:         "Two-player terminal reflex duel",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playName1, "name1", "", "name of the first player")
	rootCmd.Flags().StringVar(&playName2, "name2", "", "name of the second player")
	rootCmd.Flags().IntVar(&playVitality, "vitality", defaultVitality, "starting vitality of both players")
	rootCmd.Flags().IntVar(&playTargets, "targets", defaultTargets, "targets per turn")
	rootCmd.Flags().IntVar(&playSpeed, "speed", defaultSpeed, "starting speed (milliseconds per counter tick)")
	rootCmd.Flags().IntVar(&playStrength, "strength", defaultStrength, "starting strength added to every score")
	rootCmd.Flags().IntVar(&playCycle, "cycle", scoring.DefaultCycleLength, "counter cycle length (100 or 101)")
	rootCmd.Flags().BoolVar(&playPlain, "plain", false, "use line-based output instead of the full-screen UI")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "name1", &playName1, fileCfg.Game.Name1)
	applyStringConfig(cmd, "name2", &playName2, fileCfg.Game.Name2)
	applyIntConfig(cmd, "vitality", &playVitality, fileCfg.Game.Vitality)
	applyIntConfig(cmd, "targets", &playTargets, fileCfg.Game.Targets)
	applyIntConfig(cmd, "speed", &playSpeed, fileCfg.Game.Speed)
	applyIntConfig(cmd, "strength", &playStrength, fileCfg.Game.Strength)
	applyIntConfig(cmd, "cycle", &playCycle, fileCfg.Game.CycleLength)
	applyBoolConfig(cmd, "plain", &playPlain, fileCfg.Game.Plain)

	cfg := model.Config{
		Name1:       strings.TrimSpace(playName1),
		Name2:       strings.TrimSpace(playName2),
		Vitality:    playVitality,
		Targets:     playTargets,
		Speed:       playSpeed,
		Strength:    playStrength,
		CycleLength: playCycle,
		Plain:       playPlain,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	if !cfg.Plain && !isInteractive() {
		logErrln("stdin or stdout is not a terminal; using plain mode")
		cfg.Plain = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Plain {
		err = runPlain(ctx, cfg)
	} else {
		err = runTUI(ctx, cfg)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runPlain(ctx context.Context, cfg model.Config) error {
	in := game.NewStreamReader(os.Stdin)
	executor := &turn.Executor{
		Trigger:     game.LineTrigger{Reader: in},
		Renderer:    game.LineRenderer{W: os.Stdout},
		CycleLength: cfg.CycleLength,
	}
	return playSession(ctx, cfg, in, os.Stdout, executor, nil)
}

func runTUI(ctx context.Context, cfg model.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string, 1)
	m := tui.NewModel(lines, [2]string{cfg.Name1, cfg.Name2}, cfg.CycleLength, cancel)
	program := tea.NewProgram(m, tea.WithAltScreen())
	bridge := tui.NewBridge(program)

	in := game.NewChanReader(lines)
	executor := &turn.Executor{
		Trigger:     game.LineTrigger{Reader: in},
		Renderer:    bridge,
		CycleLength: cfg.CycleLength,
	}
	go func() {
		bridge.Done(playSession(ctx, cfg, in, bridge, executor, bridge.Round))
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return m.Err()
}

// playSession plays matches until the players decline a rematch. Every
// match starts from the configured stats.
func playSession(ctx context.Context, cfg model.Config, in game.LineReader, out io.Writer, runner game.TurnRunner, onRound func(model.RoundOutcome)) error {
	targets := objectives.New()
	for {
		g := game.New(cfg, in, out, runner, targets)
		g.OnRound = onRound
		result, err := g.Run(ctx)
		if err != nil {
			return fmt.Errorf("match aborted: %w", err)
		}
		if err := stats.RenderMatchSummary(out, result); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
		again, err := game.AskReplay(ctx, in, out)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# reflexduel configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# name1 = "Alice"          # First player
# name2 = "Bob"            # Second player
# vitality = %d            # Starting vitality
# targets = %d              # Targets per turn
# speed = %d               # Milliseconds per counter tick
# strength = %d            # Added to every score
# cycle = %d              # Counter cycle length (100 or 101)
# plain = false            # Line-based output instead of the full-screen UI
`,
		defaultVitality,
		defaultTargets,
		defaultSpeed,
		defaultStrength,
		scoring.DefaultCycleLength,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Name1 == "" {
		return fmt.Errorf("--name1 must not be empty")
	}
	if cfg.Name2 == "" {
		return fmt.Errorf("--name2 must not be empty")
	}
	if cfg.Vitality <= 0 {
		return fmt.Errorf("--vitality must be > 0")
	}
	if cfg.Targets <= 0 {
		return fmt.Errorf("--targets must be > 0")
	}
	if cfg.Speed < 0 {
		return fmt.Errorf("--speed must be >= 0")
	}
	if cfg.Strength < 0 {
		return fmt.Errorf("--strength must be >= 0")
	}
	if cfg.CycleLength <= 0 || cfg.CycleLength > maxCycleLength {
		return fmt.Errorf("--cycle must be between 1 and %d", maxCycleLength)
	}
	return nil
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
