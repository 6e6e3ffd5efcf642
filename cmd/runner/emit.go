package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/smile-runner/internal/emotion"
)

var (
	flagEmitURL     string
	flagEmitSmile   float64
	flagEmitLeft    float64
	flagEmitRight   float64
	flagEmitMsgpack bool
	flagEmitTimeout time.Duration
)

var emitCmd = &cobra.Command{
	Use:   "emit",
	Short: "Send one detector sample to a running feed",
	Long: `Connects to the WebSocket stream of a running feed (runner play --feed)
and sends one sample of raw detector probabilities. Each channel is a value
in [0, 1]; above 0.5 counts as smiling / eye open.

Examples:
  runner emit --smile 0.9                      # smile, eyes open
  runner emit --smile 0.1 --left 0.2           # wink with the left eye
  runner emit --url ws://host:7788/v1/emotion/ws --msgpack`,
	Args: cobra.NoArgs,
	RunE: runEmit,
}

func init() {
	emitCmd.Flags().StringVar(&flagEmitURL, "url", "ws://127.0.0.1:7788/v1/emotion/ws", "Feed stream URL")
	emitCmd.Flags().Float64Var(&flagEmitSmile, "smile", 0, "Smile probability")
	emitCmd.Flags().Float64Var(&flagEmitLeft, "left", 1, "Left eye open probability")
	emitCmd.Flags().Float64Var(&flagEmitRight, "right", 1, "Right eye open probability")
	emitCmd.Flags().BoolVar(&flagEmitMsgpack, "msgpack", false, "Send a binary msgpack frame instead of JSON")
	emitCmd.Flags().DurationVar(&flagEmitTimeout, "timeout", 5*time.Second, "Connection timeout")
}

func runEmit(cmd *cobra.Command, _ []string) error {
	sample := emotion.Probabilities{
		Smile:        flagEmitSmile,
		LeftEyeOpen:  flagEmitLeft,
		RightEyeOpen: flagEmitRight,
	}
	if err := sample.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), flagEmitTimeout)
	defer cancel()

	client, err := emotion.Dial(ctx, flagEmitURL, flagEmitMsgpack)
	if err != nil {
		return fmt.Errorf("connect to feed: %w", err)
	}
	defer client.Close()

	if err := client.Send(sample); err != nil {
		return fmt.Errorf("send sample: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "sent %s\n", emotion.Estimate(sample))
	return nil
}
