package assets

import (
	"errors"
	"testing"

	"github.com/vovakirdan/smile-runner/internal/core"
)

func TestParseArt(t *testing.T) {
	palette := map[rune]core.Color{'o': core.ColorYellow}
	img, err := parseArt("#o\n.#.\n", '.', core.ColorGreen, palette)
	if err != nil {
		t.Fatalf("parseArt() failed: %v", err)
	}

	if img.W != 3 || img.H != 2 {
		t.Fatalf("size = %dx%d, expected 3x2", img.W, img.H)
	}
	if c := img.At(0, 0); c.Rune != '#' || c.Color != core.ColorGreen {
		t.Errorf("At(0, 0) = %+v, expected green '#'", c)
	}
	if c := img.At(1, 0); c.Rune != 'o' || c.Color != core.ColorYellow {
		t.Errorf("At(1, 0) = %+v, expected yellow 'o'", c)
	}
	// Padding and transparent glyphs are both empty cells
	if c := img.At(2, 0); c.Rune != 0 {
		t.Errorf("At(2, 0) = %+v, expected transparent padding", c)
	}
	if c := img.At(0, 1); c.Rune != 0 {
		t.Errorf("At(0, 1) = %+v, expected transparent", c)
	}
}

func TestParseArtEmpty(t *testing.T) {
	_, err := parseArt("\n", '.', core.ColorDefault, nil)
	if !errors.Is(err, ErrDecode) {
		t.Errorf("parseArt(empty) = %v, expected ErrDecode", err)
	}
}

func TestScale(t *testing.T) {
	src, err := parseArt("ab\ncd", '.', core.ColorDefault, nil)
	if err != nil {
		t.Fatalf("parseArt() failed: %v", err)
	}

	up := Scale(src, 4, 4)
	if up.W != 4 || up.H != 4 || len(up.Cells) != 16 {
		t.Fatalf("Scale up size = %dx%d (%d cells), expected 4x4", up.W, up.H, len(up.Cells))
	}
	expected := []string{"aabb", "aabb", "ccdd", "ccdd"}
	for y, row := range expected {
		for x, r := range row {
			if got := up.At(x, y).Rune; got != r {
				t.Errorf("Scale up At(%d, %d) = %q, expected %q", x, y, got, r)
			}
		}
	}

	down := Scale(up, 1, 1)
	if down.W != 1 || down.H != 1 || down.At(0, 0).Rune != 'a' {
		t.Errorf("Scale down = %+v, expected single 'a'", down)
	}

	if !Scale(src, 0, 5).Empty() {
		t.Error("Scale to zero width should be empty")
	}
}

func TestDraw(t *testing.T) {
	img, err := parseArt("x.\n.y", '.', core.ColorRed, nil)
	if err != nil {
		t.Fatalf("parseArt() failed: %v", err)
	}

	s := core.NewScreen(5, 5)
	s.Fill('-')
	Draw(s, img, 1, 1)

	if s.Get(1, 1) != 'x' || s.Get(2, 2) != 'y' {
		t.Error("opaque cells should be drawn")
	}
	if s.Get(2, 1) != '-' || s.Get(1, 2) != '-' {
		t.Error("transparent cells should leave the screen untouched")
	}
	if s.GetCell(1, 1).Color != core.ColorRed {
		t.Error("drawn cells should keep their color")
	}

	// Partially off-screen draws are clipped without panicking
	Draw(s, img, -1, 4)
}
