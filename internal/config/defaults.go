package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the hardcoded runner configuration.
// It mirrors defaults/runner.yaml and is used if the embedded file fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Motion: MotionConfig{
			CrossingMs: 5000,
		},
		Sizes: SizesConfig{
			PlayerDivisor: 4,
			CakeDivisor:   8,
		},
		Lanes: LanesConfig{
			Basis: LaneBasisWidth,
		},
		Scoring: ScoringConfig{
			CatchPoints: 1,
			BonusPoints: 2,
		},
		Animation: AnimationConfig{
			PlayerCycleMs: 1000,
		},
		HUD: HUDConfig{
			ScoreMargin: 1,
			ScoreColor:  "green",
		},
		Feed: FeedConfig{
			Address: "127.0.0.1:7788",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
