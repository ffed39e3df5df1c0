// Package registry holds the host contract for games and the table the
// command layer builds them from. Games register a Factory in init().
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/pixel-dash/internal/core"
)

// Game is what the terminal host drives. Implementations hold pure logic;
// input mapping, timing and drawing belong to the platform layer.
type Game interface {
	// ID is the stable identifier used for score storage.
	ID() string
	Title() string

	// Reset rebuilds the game for a new session. The host calls it once
	// before the first Step.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the actions held this frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// Factory builds a fresh game. Each SSH session gets its own instance.
type Factory func() Game

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

var (
	mu        sync.RWMutex
	factories = map[string]Factory{}
)

// Register makes a factory available under id. Registering the same id
// twice is a programming error and panics.
func Register(id string, f Factory) {
	if f == nil {
		panic(fmt.Sprintf("registry: nil factory for %q", id))
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := factories[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// Exists reports whether id has a factory.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := factories[id]
	return ok
}

// Create builds a new instance of the game registered under id. The
// factory runs outside the lock so it may itself consult the registry.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}

	g := f()
	if g.ID() != id {
		return nil, fmt.Errorf("registry: factory for %q built %q", id, g.ID())
	}
	return g, nil
}
