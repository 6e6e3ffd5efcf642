package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/smile-runner/internal/core"
	"github.com/vovakirdan/smile-runner/internal/emotion"
	"github.com/vovakirdan/smile-runner/internal/registry"
)

func init() {
	registry.Register("stub-menu", func(emotion.Source) registry.Game {
		return &stubGame{needsAssets: true}
	})
}

func TestMenuListsVariants(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	view := m.View()
	for _, want := range []string{"stub-menu", "Stub", "sprites"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if m.Selected() != "stub-menu" {
		t.Errorf("Selected = %q, expected stub-menu", m.Selected())
	}
	if cmd == nil {
		t.Error("selecting should end the menu program")
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	next, _ := m.Update(runeKey('q'))
	m = next.(MenuModel)
	if !m.IsQuitting() || m.Selected() != "" {
		t.Error("q should quit without a selection")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(MenuModel)
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config = %dx%d, expected 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	s := NewSessionModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30, Seed: 1}, nil)

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.gameModel == nil {
		t.Fatal("selecting a variant should start a game")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.gameModel != nil {
		t.Error("esc in game should return to the menu")
	}
	if s.quitting {
		t.Error("session should keep running")
	}
}
