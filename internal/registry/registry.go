// Package registry holds the games the player can launch. Games register a
// factory from init(), so the Games menu lists them without importing them.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/vovakirdan/clickwheel/internal/core"
)

// Game is the core interface that all click-wheel games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "breakout").
	// Used for CLI commands.
	ID() string

	// Title returns a human-readable name for the Games menu.
	Title() string

	// Reset starts a new session sized to the screen pane.
	Reset(cfg core.RuntimeConfig)

	// Resize tells the game the screen pane changed size.
	Resize(cfg core.RuntimeConfig)

	// Step applies one frame of input and advances the simulation by dt.
	Step(in core.InputFrame, dt time.Duration) core.StepResult

	// Render draws the current state in world pixels.
	Render(dst core.Canvas)

	// Size returns the world size the game renders in.
	Size() (w, h float64)

	// PaddleX, PaddleRange and SetPaddleX expose the wheel-driven control.
	// SetPaddleX clamps to PaddleRange.
	PaddleX() float64
	PaddleRange() (min, max float64)
	SetPaddleX(x float64)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo describes a registered game for the Games list.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory under id, usually from the game's init().
// Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered game ordered by ID, which is the order of
// the Games list.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	games := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		games = append(games, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(games, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return games
}

// Create starts a new, not yet reset, instance of the game id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
