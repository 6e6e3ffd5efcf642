package runner

import (
	"github.com/vovakirdan/smile-runner/internal/core"
	"github.com/vovakirdan/smile-runner/internal/emotion"
)

// Viewport is the drawable area in cells.
type Viewport struct {
	Width  int
	Height int
}

// Valid reports whether the viewport has area. A zero-sized viewport
// suspends the simulation.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// Snapshot is a read-only copy of the simulation state for drawing.
// It is returned by value; changing it does not affect the simulation.
type Snapshot struct {
	Viewport    Viewport
	Initialized bool
	Player      core.RectF
	Cake        core.RectF
	Score       int
	Catches     int
	Flags       emotion.Flags

	// BackgroundOffset is where the first background copy starts, in
	// (-Width, 0]. A second copy follows at BackgroundOffset+Width.
	BackgroundOffset float64
}

// Outcome reports what happened during one Advance call.
type Outcome struct {
	Caught    bool // player caught the cake this tick
	Points    int  // points awarded for the catch
	Respawned bool // cake was moved back off-screen right
}
