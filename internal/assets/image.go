// Package assets loads the glyph images the sprite renderer draws: the
// player run cycle, the cake and the scrolling background.
package assets

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/smile-runner/internal/core"
)

// Image is a rectangular grid of colored glyphs. Cells holding the zero rune
// are transparent.
type Image struct {
	W, H  int
	Cells []core.Cell // row-major, len == W*H
}

// At returns the cell at (x, y), or a transparent cell when out of range.
func (img Image) At(x, y int) core.Cell {
	if x < 0 || x >= img.W || y < 0 || y >= img.H {
		return core.Cell{}
	}
	return img.Cells[y*img.W+x]
}

// Empty reports whether the image has no area.
func (img Image) Empty() bool {
	return img.W == 0 || img.H == 0
}

// Scale resizes the image to w x h cells with nearest-neighbour sampling.
func Scale(img Image, w, h int) Image {
	if w <= 0 || h <= 0 || img.Empty() {
		return Image{}
	}
	if w == img.W && h == img.H {
		return img
	}

	out := Image{W: w, H: h, Cells: make([]core.Cell, w*h)}
	for y := 0; y < h; y++ {
		sy := y * img.H / h
		for x := 0; x < w; x++ {
			sx := x * img.W / w
			out.Cells[y*w+x] = img.Cells[sy*img.W+sx]
		}
	}
	return out
}

// Draw paints the opaque cells of img with its top-left corner at (x, y).
func Draw(dst *core.Screen, img Image, x, y int) {
	for iy := 0; iy < img.H; iy++ {
		for ix := 0; ix < img.W; ix++ {
			c := img.Cells[iy*img.W+ix]
			if c.Rune == 0 {
				continue
			}
			dst.SetCell(x+ix, y+iy, c)
		}
	}
}

// parseArt turns a block of glyph art into an image. Short rows are padded
// with transparent cells.
func parseArt(text string, transparent rune, base core.Color, palette map[rune]core.Color) (Image, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	w := 0
	for _, line := range lines {
		w = core.Max(w, utf8.RuneCountInString(line))
	}
	if w == 0 {
		return Image{}, fmt.Errorf("%w: empty art", ErrDecode)
	}

	img := Image{W: w, H: len(lines), Cells: make([]core.Cell, w*len(lines))}
	for y, line := range lines {
		x := 0
		for _, r := range line {
			if r != transparent {
				color := base
				if c, ok := palette[r]; ok {
					color = c
				}
				img.Cells[y*w+x] = core.Cell{Rune: r, Color: color}
			}
			x++
		}
	}
	return img, nil
}
