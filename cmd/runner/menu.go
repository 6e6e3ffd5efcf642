package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/smile-runner/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant interactively",
	Long: `Shows the variant picker and starts the chosen variant.
Returns to the picker when the game ends.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := openLogger("runner", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := terminalConfig()
	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		if result.Quit {
			return nil
		}
		cfg = result.Config

		if err := playVariant(result.GameID, cfg, logger); err != nil {
			return err
		}
	}
}
