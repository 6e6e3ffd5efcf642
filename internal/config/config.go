// Package config provides YAML-based configuration loading for the runner.
package config

import (
	"errors"
	"fmt"
)

// Lane basis values. The original game measured lane centers along the
// viewport width; "height" measures them along the height instead.
const (
	LaneBasisWidth  = "width"
	LaneBasisHeight = "height"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// RunnerConfig contains all configuration for the Smile Runner game.
type RunnerConfig struct {
	Motion    MotionConfig    `yaml:"motion"`
	Sizes     SizesConfig     `yaml:"sizes"`
	Lanes     LanesConfig     `yaml:"lanes"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Animation AnimationConfig `yaml:"animation"`
	HUD       HUDConfig       `yaml:"hud"`
	Feed      FeedConfig      `yaml:"feed"`
}

// MotionConfig defines how fast the cake travels.
type MotionConfig struct {
	// CrossingMs is the time the cake needs to cross one viewport width.
	CrossingMs int64 `yaml:"crossing_ms"`
}

// SizesConfig derives entity sizes from the viewport height.
type SizesConfig struct {
	PlayerDivisor int `yaml:"player_divisor"` // player side = height / PlayerDivisor
	CakeDivisor   int `yaml:"cake_divisor"`   // cake side = height / CakeDivisor
}

// LanesConfig selects the axis the two lane centers are measured on.
type LanesConfig struct {
	Basis string `yaml:"basis"`
}

// ScoringConfig defines points per catch.
type ScoringConfig struct {
	CatchPoints int `yaml:"catch_points"` // both eyes open
	BonusPoints int `yaml:"bonus_points"` // at least one eye closed
}

// AnimationConfig defines the player run cycle.
type AnimationConfig struct {
	PlayerCycleMs int64 `yaml:"player_cycle_ms"`
}

// HUDConfig defines where and how the score is drawn.
type HUDConfig struct {
	ScoreMargin int    `yaml:"score_margin"` // rows above the score text
	ScoreColor  string `yaml:"score_color"`
}

// FeedConfig defines the emotion detector feed endpoint.
type FeedConfig struct {
	Address string `yaml:"address"`
}

// Validate checks that the config can drive a simulation.
func (c RunnerConfig) Validate() error {
	if c.Motion.CrossingMs <= 0 {
		return fmt.Errorf("%w: motion.crossing_ms must be positive, got %d", ErrInvalidConfig, c.Motion.CrossingMs)
	}
	if c.Sizes.PlayerDivisor <= 0 || c.Sizes.CakeDivisor <= 0 {
		return fmt.Errorf("%w: sizes divisors must be positive", ErrInvalidConfig)
	}
	if c.Lanes.Basis != LaneBasisWidth && c.Lanes.Basis != LaneBasisHeight {
		return fmt.Errorf("%w: lanes.basis must be %q or %q, got %q", ErrInvalidConfig, LaneBasisWidth, LaneBasisHeight, c.Lanes.Basis)
	}
	if c.Scoring.CatchPoints < 0 || c.Scoring.BonusPoints < 0 {
		return fmt.Errorf("%w: scoring points must not be negative", ErrInvalidConfig)
	}
	if c.Animation.PlayerCycleMs <= 0 {
		return fmt.Errorf("%w: animation.player_cycle_ms must be positive", ErrInvalidConfig)
	}
	return nil
}
