package runner

import (
	"math"
	"strconv"

	"github.com/vovakirdan/smile-runner/internal/assets"
	"github.com/vovakirdan/smile-runner/internal/core"
)

// Visual characters for the rect renderer
const (
	PlayerChar = '█'
	CakeChar   = '▓'
	LaneChar   = '·'
)

// Scene is everything a renderer needs for one frame.
type Scene struct {
	Snapshot   Snapshot
	Assets     *assets.Bundle // nil until loaded
	Now        int64          // wall clock ms, drives the run cycle
	Lanes      [2]int         // top and bottom lane centers
	ScoreRow   int
	ScoreColor core.Color
}

// Renderer paints a scene. Renderers that need images report it through
// NeedsAssets; the host loads a bundle for them on every resize.
type Renderer interface {
	NeedsAssets() bool
	Draw(dst *core.Screen, scene Scene)
}

// RectRenderer draws the player and cake as solid blocks. It needs no assets.
type RectRenderer struct{}

// NeedsAssets implements Renderer.
func (RectRenderer) NeedsAssets() bool { return false }

// Draw implements Renderer.
func (RectRenderer) Draw(dst *core.Screen, scene Scene) {
	snap := scene.Snapshot
	dst.Clear()

	// Faint lane guides, useful when the lane basis puts lanes off-screen
	for _, y := range scene.Lanes {
		dst.DrawHLine(0, y, dst.Width(), LaneChar, core.ColorGray)
	}

	dst.DrawRect(snap.Player.Cells(), PlayerChar, core.ColorBrightYellow)
	dst.DrawRect(snap.Cake.Cells(), CakeChar, core.ColorMagenta)

	drawScore(dst, scene)
}

// SpriteRenderer draws the scrolling background, the animated player and
// the cake image. Nothing is drawn until assets arrive.
type SpriteRenderer struct{}

// NeedsAssets implements Renderer.
func (SpriteRenderer) NeedsAssets() bool { return true }

// Draw implements Renderer.
func (SpriteRenderer) Draw(dst *core.Screen, scene Scene) {
	b := scene.Assets
	if b == nil {
		return
	}
	snap := scene.Snapshot
	dst.Clear()

	// Two copies of the background make a seamless loop
	offset := int(math.Floor(snap.BackgroundOffset))
	assets.Draw(dst, b.Background, offset, 0)
	assets.Draw(dst, b.Background, offset+snap.Viewport.Width, 0)

	player := snap.Player.Cells()
	assets.Draw(dst, b.Player.Frame(scene.Now), player.X, player.Y)

	cake := snap.Cake.Cells()
	assets.Draw(dst, b.Cake, cake.X, cake.Y)

	drawScore(dst, scene)
}

// drawScore writes the score centered on the anchor row.
func drawScore(dst *core.Screen, scene Scene) {
	dst.DrawTextCentered(scene.ScoreRow, strconv.Itoa(scene.Snapshot.Score), scene.ScoreColor)
}
