// runner is Smile Runner: a two-lane runner for the terminal steered by
// facial expressions.
//
// Usage:
//
//	runner list              - List available variants
//	runner play [variant]    - Play a variant (default: runner)
//	runner menu              - Pick a variant interactively
//	runner serve             - Start SSH server for remote play
//	runner emit              - Send one detector sample to a running feed
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible cake placement
//	--config <path>    - Use a custom runner config YAML
//	--log-file <path>  - Write logs to a file (play and menu log nowhere otherwise)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/smile-runner/internal/config"
	"github.com/vovakirdan/smile-runner/internal/games/runner"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Smile Runner - catch cakes with your face",
	Long: `Smile Runner is a two-lane runner played in the terminal.
Smile to jump to the upper lane, relax to drop to the lower one.
Catch the cake with both eyes open for 1 point, or wink for 2.

Without a camera the face is simulated with the keyboard; with --feed an
external face detector can stream expressions over HTTP or WebSocket.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  emit     - Push a detector sample to a running feed

Examples:
  runner list
  runner play
  runner play runner-rects --fps 30
  runner play --feed
  runner serve --ssh :2222
  runner emit --smile 0.9 --left 0.2`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagConfig != "" {
			if _, err := config.LoadRunner(flagConfig); err != nil {
				return err
			}
		}
		runner.SetConfigPath(flagConfig)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(emitCmd)
}

// openLogger returns a logger writing to --log-file, or to fallback when no
// file is set. The returned close func must be called on exit.
func openLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagLogFile != "" {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
