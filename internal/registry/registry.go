// Package registry provides a global registry for game variants.
// Variants register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/smile-runner/internal/assets"
	"github.com/vovakirdan/smile-runner/internal/core"
	"github.com/vovakirdan/smile-runner/internal/emotion"
)

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the interface the platform drives once per display tick.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this variant (e.g., "runner").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset (re)initializes the game for the screen size in cfg.
	// Called at start, on every resize and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game to the wall-clock time now.
	Step(now time.Time, in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// AssetUser is implemented by games that draw images. The platform loads a
// bundle matching AssetRequest after every Reset and hands it to SetAssets.
type AssetUser interface {
	// NeedsAssets reports whether this variant draws images at all.
	NeedsAssets() bool

	// AssetRequest returns the sizes to load, or false if no assets are needed
	// for the current viewport.
	AssetRequest() (assets.Request, bool)

	// SetAssets installs a bundle. Bundles built for another request are
	// rejected and SetAssets reports false.
	SetAssets(b *assets.Bundle) bool

	// AssetsPending reports whether the game is waiting for a bundle.
	AssetsPending() bool
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	NeedsAssets bool
}

// Factory creates a new game reading its emotion flags from src.
type Factory func(src emotion.Source) Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get metadata by creating a temporary instance
	g := f(emotion.NewSignal())
	info := GameInfo{ID: id, Title: g.Title()}
	if au, ok := g.(AssetUser); ok {
		info.NeedsAssets = au.NeedsAssets()
	}
	infos[id] = info
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string, src emotion.Source) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}

	return f(src), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
