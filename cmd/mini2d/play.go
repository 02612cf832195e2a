package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mini2d/internal/platform/tui"
	"github.com/vovakirdan/mini2d/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <demo>",
	Short: "Run a demo",
	Long: `Start the specified demo.

Controls:
  Arrows/WASD  - Move, aim
  Z/X, [/]     - Rotate
  Space        - Fire
  Tab/T        - Cycle shape, toggle revive
  Enter        - Toggle anchor
  P            - Pause
  R            - Restart
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options (balls):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  mini2d play balls
  mini2d play balls --difficulty hard
  mini2d play particles --config ./burst.yaml
  mini2d play shapes --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom demo config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	demoID := args[0]
	if !registry.Exists(demoID) {
		return fmt.Errorf("unknown demo %q, run 'mini2d list' to see available demos", demoID)
	}

	demo, err := registry.Create(demoID, registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
	})
	if err != nil {
		return fmt.Errorf("creating demo: %w", err)
	}

	logger, closeLog, err := newLogger("mini2d", nil)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	deps := tui.Deps{Store: store, Logger: logger}
	if err := tui.Run(demo, deps, runtimeConfig()); err != nil {
		return fmt.Errorf("running demo: %w", err)
	}
	return nil
}
