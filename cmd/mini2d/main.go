// mini2d is a terminal playground for the 2D collision library: cannon
// balls, particle bursts and a shape inspector.
//
// Usage:
//
//	mini2d list              - List available demos
//	mini2d play <demo>       - Run a demo
//	mini2d menu              - Start menu to pick demos interactively
//	mini2d serve             - Start SSH server for remote play
//	mini2d scores <demo>     - Show high scores for a demo
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: ~/.mini2d/scores.db)
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mini2d/internal/core"
	"github.com/vovakirdan/mini2d/internal/logging"
	"github.com/vovakirdan/mini2d/internal/storage"

	// Import demos to register them
	_ "github.com/vovakirdan/mini2d/internal/demos/balls"
	_ "github.com/vovakirdan/mini2d/internal/demos/particles"
	_ "github.com/vovakirdan/mini2d/internal/demos/shapes"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mini2d",
	Short: "mini2d - 2D collision demos in your terminal",
	Long: `mini2d runs small interactive simulations built on a 2D geometry
and collision library: a cannon firing bouncing balls, particle bursts,
and an inspector for shape intersections.

Available commands:
  list     - Show all available demos
  play     - Run a specific demo directly
  menu     - Interactive demo picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  mini2d list
  mini2d play balls
  mini2d menu
  mini2d serve --ssh :2222 --metrics :9090
  mini2d scores balls`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mini2d/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the process logger. Logs go to --log-file when set and
// to fallback otherwise; a nil fallback discards them. The returned close
// function must be called on exit.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := logging.OpenFile(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = func() { f.Close() }
	}
	if w == nil {
		w = io.Discard
	}

	logger, err := logging.New(w, logging.Options{Level: flagLogLevel, Prefix: prefix})
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return logger, closeFn, nil
}

// openStore opens the scores database. A failure is logged and play
// continues without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the screen from the controlling terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
