package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/smile-runner/internal/config"
	"github.com/vovakirdan/smile-runner/internal/core"
	"github.com/vovakirdan/smile-runner/internal/emotion"
	"github.com/vovakirdan/smile-runner/internal/platform/tui"
	"github.com/vovakirdan/smile-runner/internal/registry"
)

// feedFromConfig is the --feed value used when the flag is given bare.
const feedFromConfig = "config"

var flagFeed string

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: runner).

Controls:
  Space      - Toggle smile (switches lanes)
  [ / ]      - Toggle left / right eye
  P          - Pause
  R          - Restart
  ?          - Show all keys
  Q/Ctrl+C   - Quit

Detector feed:
  --feed           listen on the address from the config (feed.address)
  --feed=:7788     listen on the given address
The feed and the keyboard drive the same face; the newest input wins.

Examples:
  runner play
  runner play runner-rects
  runner play --feed=0.0.0.0:7788 --log-file runner.log
  runner play --config ./my-runner.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFeed, "feed", "", "Start the detector feed on this address")
	playCmd.Flags().Lookup("feed").NoOptDefVal = feedFromConfig
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "runner"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'runner list' to see available variants", gameID)
	}

	logger, closeLog, err := openLogger("runner", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	return playVariant(gameID, terminalConfig(), logger)
}

// playVariant runs one variant until the player quits.
func playVariant(gameID string, cfg core.RuntimeConfig, logger *log.Logger) error {
	sig := emotion.NewSignal()
	keyboard := emotion.NewKeyboard(sig)
	keyboard.Publish() // start with a neutral face, eyes open

	game, err := registry.Create(gameID, sig)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if flagFeed != "" {
		addr, err := feedAddress(flagFeed)
		if err != nil {
			return err
		}
		feed := emotion.NewFeed(sig, logger.WithPrefix("feed"))
		go func() {
			if err := feed.ListenAndServe(ctx, addr); err != nil {
				logger.Error("emotion feed stopped", "address", addr, "error", err)
			}
		}()
	}

	logger.Info("starting game", "id", gameID, "width", cfg.ScreenW, "height", cfg.ScreenH, "fps", cfg.TickRate)
	if err := tui.Run(game, keyboard, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// feedAddress resolves the --feed value, reading the config for a bare flag.
func feedAddress(flag string) (string, error) {
	if flag != feedFromConfig {
		return flag, nil
	}
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return "", err
	}
	return cfg.Feed.Address, nil
}

// terminalConfig builds the runtime config from the terminal size and the
// global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
