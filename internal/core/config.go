package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the host has frozen the simulation
	InMenu   bool // Whether the game is idling on its title screen
}

// EventKind identifies an outward notification produced during a step.
type EventKind int

const (
	EventScore   EventKind = iota // Periodic score snapshot
	EventRunOver                  // Run ended; Reason is set
)

// RunStats are the counters of a finished run.
type RunStats struct {
	Frames    int
	Obstacles int
	PowerUps  int
}

// Event is a notification the game hands to the platform after a step.
type Event struct {
	Kind   EventKind
	Score  int
	Reason string
	Stats  RunStats // Set for EventRunOver
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// RunOver returns the run-ended event of this step, if one fired.
func (r StepResult) RunOver() (Event, bool) {
	for _, e := range r.Events {
		if e.Kind == EventRunOver {
			return e, true
		}
	}
	return Event{}, false
}
