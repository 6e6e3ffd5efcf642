// Package runner implements Smile Runner: the player stands in one of two
// lanes chosen by their smile and catches a cake that scrolls in from the
// right. Closing an eye while catching doubles the reward.
package runner

import (
	"math"

	"github.com/vovakirdan/smile-runner/internal/config"
	"github.com/vovakirdan/smile-runner/internal/core"
	"github.com/vovakirdan/smile-runner/internal/emotion"
)

// Simulation owns all mutable game state. It is not safe for concurrent use;
// the host calls Initialize, Advance and Snapshot from its render loop only.
// Emotion flags arrive through the Source, which may be written concurrently.
type Simulation struct {
	cfg   config.RunnerConfig
	clock Clock
	rnd   Random
	flags emotion.Source

	viewport    Viewport
	initialized bool

	playerSize int
	cakeSize   int
	player     core.RectF
	cake       core.RectF

	score   int
	catches int
	current emotion.Flags

	previousTimestamp int64   // clock cursor, ms
	travelled         float64 // total cake displacement since initialization
}

// NewSimulation creates an uninitialized simulation. Call Initialize with a
// valid viewport before advancing it.
func NewSimulation(cfg config.RunnerConfig, clock Clock, rnd Random, flags emotion.Source) *Simulation {
	return &Simulation{
		cfg:   cfg,
		clock: clock,
		rnd:   rnd,
		flags: flags,
	}
}

// Initialize (re)creates every entity for vp and resets score and clock.
// A zero-sized viewport leaves the simulation suspended.
func (s *Simulation) Initialize(vp Viewport) {
	s.viewport = vp
	if !vp.Valid() {
		s.initialized = false
		return
	}

	s.playerSize = vp.Height / s.cfg.Sizes.PlayerDivisor
	s.cakeSize = vp.Height / s.cfg.Sizes.CakeDivisor

	s.current = s.flags.Load()
	left := float64(s.playerSize) / 2
	s.player = core.NewRectF(left, 0, float64(s.playerSize), float64(s.playerSize))
	s.movePlayer()

	s.respawnCake()

	s.score = 0
	s.catches = 0
	s.travelled = 0
	s.previousTimestamp = s.clock.NowMillis()
	s.initialized = true
}

// Advance moves the game forward to now (ms). It is a no-op while the
// simulation is suspended or uninitialized.
func (s *Simulation) Advance(now int64) Outcome {
	var out Outcome
	if !s.initialized || !s.viewport.Valid() {
		return out
	}

	// Lane follows the latest expression immediately
	s.current = s.flags.Load()
	s.movePlayer()

	delta := now - s.previousTimestamp
	s.previousTimestamp = now
	if delta < 0 {
		// Clock went backwards: hold still rather than move the cake right
		delta = 0
	}

	speed := 1 / float64(s.cfg.Motion.CrossingMs) // viewport widths per ms
	deltaX := speed * float64(s.viewport.Width) * float64(delta)
	s.cake.Left -= deltaX
	s.cake.Right = s.cake.Left + float64(s.cakeSize)
	s.travelled += deltaX

	if s.player.Intersects(s.cake) {
		out.Caught = true
		out.Points = s.catchPoints()
		s.score += out.Points
		s.catches++
		s.respawnCake()
		out.Respawned = true
	}

	// Collision already moved the cake back to the right
	if !out.Respawned && s.cake.Right < 0 {
		s.respawnCake()
		out.Respawned = true
	}

	return out
}

// Rebase moves the clock cursor to now without moving anything, so time
// spent paused is not integrated on the next Advance.
func (s *Simulation) Rebase(now int64) {
	s.previousTimestamp = now
}

// Snapshot returns a copy of the current state.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Viewport:    s.viewport,
		Initialized: s.initialized,
		Player:      s.player,
		Cake:        s.cake,
		Score:       s.score,
		Catches:     s.catches,
		Flags:       s.current,
	}
	if s.viewport.Width > 0 {
		snap.BackgroundOffset = -math.Mod(s.travelled, float64(s.viewport.Width))
	}
	return snap
}

// Viewport returns the viewport of the last Initialize call.
func (s *Simulation) Viewport() Viewport {
	return s.viewport
}

// PlayerSize returns the side of the player square in cells.
func (s *Simulation) PlayerSize() int {
	return s.playerSize
}

// CakeSize returns the side of the cake square in cells.
func (s *Simulation) CakeSize() int {
	return s.cakeSize
}

// catchPoints rewards a closed eye: either eye closed earns the bonus.
func (s *Simulation) catchPoints() int {
	if s.current.BothEyesOpen() {
		return s.cfg.Scoring.CatchPoints
	}
	return s.cfg.Scoring.BonusPoints
}

// movePlayer puts the player in the top lane while smiling.
func (s *Simulation) movePlayer() {
	top := float64(s.laneTop(s.playerSize, s.current.Smile))
	s.player.Top = top
	s.player.Bottom = top + float64(s.playerSize)
}

// respawnCake places the cake off-screen right, between one and two
// viewport widths from the left edge, in a random lane.
func (s *Simulation) respawnCake() {
	w := float64(s.viewport.Width)
	s.cake.Left = w + w*s.rnd.Float64()
	s.cake.Right = s.cake.Left + float64(s.cakeSize)

	isTopLane := s.rnd.Intn(2) == 0
	s.cake.Top = float64(s.laneTop(s.cakeSize, isTopLane))
	s.cake.Bottom = s.cake.Top + float64(s.cakeSize)
}

// laneTop returns the top edge that centers an object of size in a lane.
func (s *Simulation) laneTop(size int, isTopLane bool) int {
	top, bottom := LaneCenters(s.cfg, s.viewport)
	if isTopLane {
		return top - size/2
	}
	return bottom - size/2
}

// LaneCenters returns the vertical centers of the top and bottom lanes.
// They sit a quarter of the basis dimension either side of its middle; the
// basis is the viewport width unless configured otherwise.
func LaneCenters(cfg config.RunnerConfig, vp Viewport) (top, bottom int) {
	basis := vp.Width
	if cfg.Lanes.Basis == config.LaneBasisHeight {
		basis = vp.Height
	}
	return basis/2 - basis/4, basis/2 + basis/4
}
