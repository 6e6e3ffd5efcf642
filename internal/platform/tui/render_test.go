package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/smile-runner/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColored(2, 0, "cd", core.ColorGreen)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	for _, want := range []string{"ab", "cd"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("line 0 %q missing %q", lines[0], want)
		}
	}
	if !strings.Contains(lines[1], "xyz") {
		t.Errorf("line 1 %q missing text", lines[1])
	}
}

func TestOverlayBottom(t *testing.T) {
	tests := []struct {
		name  string
		view  string
		panel string
		want  string
	}{
		{"empty panel", "a\nb\nc", "", "a\nb\nc"},
		{"one line", "a\nb\nc", "X", "a\nb\nX"},
		{"two lines", "a\nb\nc", "X\nY", "a\nX\nY"},
		{"panel taller than view", "a\nb", "X\nY\nZ", "Y\nZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := overlayBottom(tt.view, tt.panel); got != tt.want {
				t.Errorf("overlayBottom = %q, expected %q", got, tt.want)
			}
		})
	}
}
