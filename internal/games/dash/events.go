package dash

// RunResult summarizes a finished run.
type RunResult struct {
	Score            int
	Reason           string
	Frames           int
	ObstaclesCleared int
	PowerUps         int
}

// Listener receives score and lifecycle events from the simulation.
type Listener interface {
	ScoreChanged(score int)
	RunEnded(result RunResult)
}

// Notifier receives fire-and-forget audio cues.
// Implementations must not block the caller.
type Notifier interface {
	Jump()
	Collect(kind PowerUpKind)
	Crash()
	ModeChanged(phase Phase)
}

// NopListener discards every event.
type NopListener struct{}

func (NopListener) ScoreChanged(int)   {}
func (NopListener) RunEnded(RunResult) {}

// NopNotifier discards every cue.
type NopNotifier struct{}

func (NopNotifier) Jump()               {}
func (NopNotifier) Collect(PowerUpKind) {}
func (NopNotifier) Crash()              {}
func (NopNotifier) ModeChanged(Phase)   {}

// Listeners fans events out to several listeners in order.
type Listeners []Listener

func (ls Listeners) ScoreChanged(score int) {
	for _, l := range ls {
		l.ScoreChanged(score)
	}
}

func (ls Listeners) RunEnded(result RunResult) {
	for _, l := range ls {
		l.RunEnded(result)
	}
}

// Notifiers fans cues out to several notifiers in order.
type Notifiers []Notifier

func (ns Notifiers) Jump() {
	for _, n := range ns {
		n.Jump()
	}
}

func (ns Notifiers) Collect(kind PowerUpKind) {
	for _, n := range ns {
		n.Collect(kind)
	}
}

func (ns Notifiers) Crash() {
	for _, n := range ns {
		n.Crash()
	}
}

func (ns Notifiers) ModeChanged(phase Phase) {
	for _, n := range ns {
		n.ModeChanged(phase)
	}
}
