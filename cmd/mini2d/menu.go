package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mini2d/internal/platform/tui"
	"github.com/vovakirdan/mini2d/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start mini2d with a demo picker menu",
	Long: `Start mini2d in interactive menu mode.

Use arrow keys or j/k to navigate, left/right to pick a difficulty and
Enter to start a demo. Press B or Esc in a demo to return to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Start demo
  Tab             - Scoreboard
  Q               - Quit

Examples:
  mini2d menu
  mini2d menu --fps 30
  mini2d menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom demo config YAML")
}

func runMenu(_ *cobra.Command, _ []string) error {
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
	opts := registry.Options{ConfigPath: flagConfig}
	if err := tui.RunSession(deps, opts, runtimeConfig(), os.Getenv("USER")); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
