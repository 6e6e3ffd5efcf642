package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/smile-runner/internal/assets"
	"github.com/vovakirdan/smile-runner/internal/core"
	"github.com/vovakirdan/smile-runner/internal/emotion"
	"github.com/vovakirdan/smile-runner/internal/registry"
)

// assetsLoadedMsg carries the result of one asset load. Gen identifies the
// load so results from superseded loads can be dropped.
type assetsLoadedMsg struct {
	gen    uint64
	bundle *assets.Bundle
	err    error
}

// loadAssetsCmd loads a bundle off the UI goroutine.
func loadAssetsCmd(ctx context.Context, fsys fs.FS, req assets.Request, gen uint64) tea.Cmd {
	return func() tea.Msg {
		b, err := assets.Load(ctx, fsys, req)
		return assetsLoadedMsg{gen: gen, bundle: b, err: err}
	}
}

// Model is the Bubble Tea model that runs one game variant.
type Model struct {
	game       registry.Game
	keyboard   *emotion.Keyboard
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	help       help.Model
	spinner    spinner.Model
	logger     *log.Logger
	assetsFS   fs.FS

	loadGen    uint64             // generation of the newest load
	cancelLoad context.CancelFunc // cancels the newest load, nil when idle
	firstLoad  tea.Cmd            // load started by NewModel, returned from Init
	assetErr   error

	embedded   bool // running inside a session; Back returns to the menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a model for game. Key presses on the face keys are
// published through keyboard. A nil logger discards log output.
func NewModel(game registry.Game, keyboard *emotion.Keyboard, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Seed stays 0 unless pinned by the user so each Reset reseeds
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:       game,
		keyboard:   keyboard,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       h,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(loadingStyle)),
		logger:     logger,
		assetsFS:   assets.DefaultFS(),
	}

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.firstLoad = m.startAssetLoad()
	return m
}

// Init starts the tick loop and the first asset load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), m.firstLoad, m.spinner.Tick)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case assetsLoadedMsg:
		return m.handleAssets(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.stopAssetLoad()
		return m, tea.Quit

	case core.ActionBack:
		if m.embedded {
			m.backToMenu = true
			m.stopAssetLoad()
		}

	case core.ActionToggleSmile:
		m.logger.Debug("keyboard", "flags", m.keyboard.ToggleSmile())
	case core.ActionToggleLeftEye:
		m.logger.Debug("keyboard", "flags", m.keyboard.ToggleLeftEye())
	case core.ActionToggleRightEye:
		m.logger.Debug("keyboard", "flags", m.keyboard.ToggleRightEye())

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionPause, core.ActionRestart:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The game restarts at the new
// size and any images for the old size are discarded.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.logger.Debug("resize", "width", msg.Width, "height", msg.Height, "suspended", m.gameState.Suspended)

	return m, m.startAssetLoad()
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(now, m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// handleAssets installs a finished load unless a newer one superseded it.
func (m Model) handleAssets(msg assetsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.loadGen {
		m.logger.Debug("dropping stale assets", "gen", msg.gen, "current", m.loadGen)
		return m, nil
	}
	m.cancelLoad = nil

	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			return m, nil
		}
		m.assetErr = msg.err
		m.logger.Error("asset load failed", "error", msg.err)
		return m, nil
	}

	au, ok := m.game.(registry.AssetUser)
	if !ok || !au.SetAssets(msg.bundle) {
		m.logger.Debug("assets do not match the current viewport", "gen", msg.gen)
		return m, nil
	}
	m.assetErr = nil
	m.logger.Debug("assets loaded", "gen", msg.gen)
	return m, nil
}

// startAssetLoad cancels the running load and starts one for the current
// viewport. Returns nil when the game needs no images.
func (m *Model) startAssetLoad() tea.Cmd {
	m.stopAssetLoad()
	m.loadGen++
	m.assetErr = nil

	au, ok := m.game.(registry.AssetUser)
	if !ok {
		return nil
	}
	req, ok := au.AssetRequest()
	if !ok || !au.AssetsPending() {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelLoad = cancel
	return loadAssetsCmd(ctx, m.assetsFS, req, m.loadGen)
}

// stopAssetLoad cancels the running load, if any.
func (m *Model) stopAssetLoad() {
	if m.cancelLoad != nil {
		m.cancelLoad()
		m.cancelLoad = nil
	}
}

// waitingForAssets reports whether the game cannot draw yet.
func (m Model) waitingForAssets() bool {
	au, ok := m.game.(registry.AssetUser)
	return ok && au.AssetsPending()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.gameState.Suspended {
		return ""
	}

	if m.waitingForAssets() {
		return placeCenter(m.config.ScreenW, m.config.ScreenH, m.statusView())
	}

	m.game.Render(m.screen)
	view := RenderScreen(m.screen)
	if m.help.ShowAll {
		view = overlayBottom(view, m.help.View(m.keys))
	}
	return view
}

// statusView is shown while images load or after loading failed.
func (m Model) statusView() string {
	title := titleStyle.Render(m.game.Title())
	if m.assetErr != nil {
		return fmt.Sprintf("%s\n\n%s\n%s", title,
			errorStyle.Render("could not load sprites: "+m.assetErr.Error()),
			hintStyle.Render("resize the window to retry, q to quit"))
	}
	return fmt.Sprintf("%s\n\n%s %s", title, m.spinner.View(), loadingStyle.Render("loading sprites..."))
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for game. The keyboard publishes into
// the same signal the game reads.
func Run(game registry.Game, keyboard *emotion.Keyboard, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, keyboard, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
