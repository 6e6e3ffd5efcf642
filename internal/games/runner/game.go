package runner

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/smile-runner/internal/assets"
	"github.com/vovakirdan/smile-runner/internal/config"
	"github.com/vovakirdan/smile-runner/internal/core"
	"github.com/vovakirdan/smile-runner/internal/emotion"
	"github.com/vovakirdan/smile-runner/internal/registry"
)

// Game adapts a Simulation to the platform: it owns pause and restart,
// picks a renderer and holds the asset bundle for the current viewport.
type Game struct {
	id       string
	title    string
	renderer Renderer
	source   emotion.Source
	clock    Clock
	newSeed  func() int64 // seeds every Reset when RuntimeConfig.Seed is 0

	runtime    core.RuntimeConfig
	cfg        config.RunnerConfig
	sim        *Simulation
	bundle     *assets.Bundle
	scoreColor core.Color
	paused     bool
	now        int64 // wall clock of the last Step, ms
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a runner variant drawing with r and reading flags from src.
func New(id, title string, r Renderer, src emotion.Source) *Game {
	return &Game{
		id:       id,
		title:    title,
		renderer: r,
		source:   src,
		clock:    SystemClock{},
		newSeed:  func() int64 { return time.Now().UnixNano() },
	}
}

// ID returns the unique identifier for this variant.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	return g.title
}

// Reset initializes or restarts the game for the screen in runtime.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		cfg = config.DefaultRunnerConfig()
	}
	g.cfg = cfg

	g.scoreColor = core.ColorGreen
	if c, ok := core.ParseColor(cfg.HUD.ScoreColor); ok {
		g.scoreColor = c
	}

	// A fixed seed replays the same cakes; otherwise every restart is new
	seed := runtime.Seed
	if seed == 0 {
		seed = g.newSeed()
	}
	g.sim = NewSimulation(cfg, g.clock, rand.New(rand.NewSource(seed)), g.source)
	g.sim.Initialize(Viewport{Width: runtime.ScreenW, Height: runtime.ScreenH})
	g.paused = false
	g.now = g.clock.NowMillis()

	// A bundle built for another size is useless now
	if g.bundle != nil {
		if req, ok := g.AssetRequest(); !ok || req != g.bundle.Request {
			g.bundle = nil
		}
	}
}

// Step advances the game to now.
func (g *Game) Step(now time.Time, in core.InputFrame) core.StepResult {
	if g.sim == nil {
		return core.StepResult{State: g.State()}
	}
	g.now = now.UnixMilli()

	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		g.sim.Rebase(g.now)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		if !g.paused {
			g.sim.Rebase(g.now)
		}
	}

	// Hold the cake while paused or while the images it is drawn with load
	if g.paused || g.AssetsPending() {
		g.sim.Rebase(g.now)
		return core.StepResult{State: g.State()}
	}

	g.sim.Advance(g.now)
	return core.StepResult{State: g.State()}
}

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	if g.sim == nil {
		return
	}
	snap := g.sim.Snapshot()
	if !snap.Initialized {
		dst.Clear()
		return
	}

	top, bottom := LaneCenters(g.cfg, snap.Viewport)
	g.renderer.Draw(dst, Scene{
		Snapshot:   snap,
		Assets:     g.bundle,
		Now:        g.now,
		Lanes:      [2]int{top, bottom},
		ScoreRow:   g.cfg.HUD.ScoreMargin,
		ScoreColor: g.scoreColor,
	})

	if dst.Height() > 1 {
		status := fmt.Sprintf("%s  caught %d", snap.Flags, snap.Catches)
		dst.DrawTextColored(0, dst.Height()-1, status, core.ColorGray)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to continue")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{Suspended: true}
	}
	snap := g.sim.Snapshot()
	return core.GameState{
		Score:     snap.Score,
		Paused:    g.paused,
		Suspended: !snap.Initialized,
	}
}

// NeedsAssets reports whether the renderer draws images.
func (g *Game) NeedsAssets() bool {
	return g.renderer.NeedsAssets()
}

// AssetRequest returns the image sizes for the current viewport. It reports
// false when the renderer draws without images or the game is suspended.
func (g *Game) AssetRequest() (assets.Request, bool) {
	if !g.renderer.NeedsAssets() || g.sim == nil {
		return assets.Request{}, false
	}
	vp := g.sim.Viewport()
	if !vp.Valid() {
		return assets.Request{}, false
	}
	return assets.Request{
		PlayerSize:  g.sim.PlayerSize(),
		CakeSize:    g.sim.CakeSize(),
		ViewportW:   vp.Width,
		ViewportH:   vp.Height,
		PlayerCycle: time.Duration(g.cfg.Animation.PlayerCycleMs) * time.Millisecond,
	}, true
}

// SetAssets installs b if it was built for the current viewport.
func (g *Game) SetAssets(b *assets.Bundle) bool {
	req, ok := g.AssetRequest()
	if !ok || b == nil || b.Request != req {
		return false
	}
	g.bundle = b
	return true
}

// AssetsPending reports whether the renderer is still waiting for images.
func (g *Game) AssetsPending() bool {
	_, ok := g.AssetRequest()
	return ok && g.bundle == nil
}

// Register both variants with the registry
func init() {
	registry.Register("runner", func(src emotion.Source) registry.Game {
		return New("runner", "Smile Runner", SpriteRenderer{}, src)
	})
	registry.Register("runner-rects", func(src emotion.Source) registry.Game {
		return New("runner-rects", "Smile Runner (blocks)", RectRenderer{}, src)
	})
}

var (
	_ registry.Game      = (*Game)(nil)
	_ registry.AssetUser = (*Game)(nil)
)
