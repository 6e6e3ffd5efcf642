package assets

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/smile-runner/internal/core"
	"github.com/vovakirdan/smile-runner/internal/sprite"
)

// SheetName is the sprite sheet file looked up in the asset filesystem.
const SheetName = "sprites.yaml"

// ErrDecode is wrapped by every error caused by malformed sheet content.
var ErrDecode = errors.New("assets: decode")

//go:embed sheets/sprites.yaml
var embedded embed.FS

// DefaultFS returns the sprite sheets bundled with the binary.
func DefaultFS() fs.FS {
	sub, err := fs.Sub(embedded, "sheets")
	if err != nil {
		panic(fmt.Sprintf("assets: embedded sheets: %v", err)) // unreachable with a valid embed pattern
	}
	return sub
}

// Request describes the cell sizes the images are scaled to.
type Request struct {
	PlayerSize  int           // side of the square player sprite
	CakeSize    int           // side of the square cake sprite
	ViewportW   int           // background width
	ViewportH   int           // background height
	PlayerCycle time.Duration // length of one run cycle
}

// Bundle holds the scaled images for one viewport size.
type Bundle struct {
	Request    Request
	Player     *sprite.Animation[Image]
	Cake       Image
	Background Image
}

// sheet is the YAML layout of a sprite sheet.
type sheet struct {
	Transparent string `yaml:"transparent"`
	Player      art    `yaml:"player"`
	Cake        art    `yaml:"cake"`
	Background  art    `yaml:"background"`
}

type art struct {
	Color   string            `yaml:"color"`
	Palette map[string]string `yaml:"palette"`
	Frames  []string          `yaml:"frames"`
}

// Load reads the sprite sheet from fsys and scales every image to req.
// Cancellation is checked between images; a cancelled load returns
// ctx.Err() and no bundle.
func Load(ctx context.Context, fsys fs.FS, req Request) (*Bundle, error) {
	data, err := fs.ReadFile(fsys, SheetName)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", SheetName, err)
	}

	var sh sheet
	if err := yaml.Unmarshal(data, &sh); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, SheetName, err)
	}

	transparent := '.'
	if sh.Transparent != "" {
		r, size := utf8.DecodeRuneInString(sh.Transparent)
		if size != len(sh.Transparent) {
			return nil, fmt.Errorf("%w: transparent must be a single glyph, got %q", ErrDecode, sh.Transparent)
		}
		transparent = r
	}

	if len(sh.Player.Frames) == 0 {
		return nil, fmt.Errorf("%w: player has no frames", ErrDecode)
	}
	frames := make([]Image, 0, len(sh.Player.Frames))
	for i := range sh.Player.Frames {
		img, err := decodeFrame(ctx, sh.Player, i, transparent, req.PlayerSize, req.PlayerSize)
		if err != nil {
			return nil, fmt.Errorf("player frame %d: %w", i+1, err)
		}
		frames = append(frames, img)
	}

	cake, err := decodeFrame(ctx, sh.Cake, 0, transparent, req.CakeSize, req.CakeSize)
	if err != nil {
		return nil, fmt.Errorf("cake: %w", err)
	}

	background, err := decodeFrame(ctx, sh.Background, 0, transparent, req.ViewportW, req.ViewportH)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	return &Bundle{
		Request:    req,
		Player:     sprite.New(frames, req.PlayerCycle),
		Cake:       cake,
		Background: background,
	}, nil
}

// decodeFrame parses frame i of a and scales it to w x h.
func decodeFrame(ctx context.Context, a art, i int, transparent rune, w, h int) (Image, error) {
	if err := ctx.Err(); err != nil {
		return Image{}, err
	}
	if i >= len(a.Frames) {
		return Image{}, fmt.Errorf("%w: missing frame %d", ErrDecode, i+1)
	}

	base, ok := core.ParseColor(a.Color)
	if !ok {
		return Image{}, fmt.Errorf("%w: unknown color %q", ErrDecode, a.Color)
	}
	palette := make(map[rune]core.Color, len(a.Palette))
	for glyph, name := range a.Palette {
		r, size := utf8.DecodeRuneInString(glyph)
		if size == 0 || size != len(glyph) {
			return Image{}, fmt.Errorf("%w: palette key %q must be a single glyph", ErrDecode, glyph)
		}
		c, ok := core.ParseColor(name)
		if !ok {
			return Image{}, fmt.Errorf("%w: unknown color %q", ErrDecode, name)
		}
		palette[r] = c
	}

	img, err := parseArt(a.Frames[i], transparent, base, palette)
	if err != nil {
		return Image{}, err
	}
	return Scale(img, w, h), nil
}
