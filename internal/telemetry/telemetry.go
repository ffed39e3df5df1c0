// Package telemetry counts gameplay events on OpenTelemetry instruments.
// The binary installs no meter provider: counts are recorded only when an
// embedding host calls otel.SetMeterProvider before New.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/vovakirdan/pixel-dash/internal/games/dash"
)

const instrumentationName = "github.com/vovakirdan/pixel-dash/internal/telemetry"

// Recorder implements dash.Listener and dash.Notifier.
type Recorder struct {
	runs     metric.Int64Counter
	deaths   metric.Int64Counter
	jumps    metric.Int64Counter
	powerUps metric.Int64Counter
	crashes  metric.Int64Counter
	scores   metric.Int64Histogram
}

var (
	_ dash.Listener = (*Recorder)(nil)
	_ dash.Notifier = (*Recorder)(nil)
)

// New creates the instruments on m, or on the global meter when m is nil.
func New(m metric.Meter) (*Recorder, error) {
	if m == nil {
		m = otel.Meter(instrumentationName)
	}

	r := &Recorder{}
	var err error

	if r.runs, err = m.Int64Counter("pixeldash.runs",
		metric.WithDescription("Runs started"),
	); err != nil {
		return nil, fmt.Errorf("telemetry: create runs counter: %w", err)
	}
	if r.deaths, err = m.Int64Counter("pixeldash.deaths",
		metric.WithDescription("Runs ended, by cause"),
	); err != nil {
		return nil, fmt.Errorf("telemetry: create deaths counter: %w", err)
	}
	if r.jumps, err = m.Int64Counter("pixeldash.jumps",
		metric.WithDescription("Jumps performed"),
	); err != nil {
		return nil, fmt.Errorf("telemetry: create jumps counter: %w", err)
	}
	if r.powerUps, err = m.Int64Counter("pixeldash.powerups",
		metric.WithDescription("Power-ups collected, by kind"),
	); err != nil {
		return nil, fmt.Errorf("telemetry: create powerups counter: %w", err)
	}
	if r.crashes, err = m.Int64Counter("pixeldash.crashes",
		metric.WithDescription("Obstacle contacts, including shield absorbs"),
	); err != nil {
		return nil, fmt.Errorf("telemetry: create crashes counter: %w", err)
	}
	if r.scores, err = m.Int64Histogram("pixeldash.score",
		metric.WithDescription("Final score of finished runs"),
	); err != nil {
		return nil, fmt.Errorf("telemetry: create score histogram: %w", err)
	}

	return r, nil
}

func (r *Recorder) ScoreChanged(int) {}

func (r *Recorder) RunEnded(result dash.RunResult) {
	ctx := context.Background()
	r.deaths.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", result.Reason)))
	r.scores.Record(ctx, int64(result.Score))
}

func (r *Recorder) Jump() {
	r.jumps.Add(context.Background(), 1)
}

func (r *Recorder) Collect(kind dash.PowerUpKind) {
	r.powerUps.Add(context.Background(), 1, metric.WithAttributes(attribute.String("kind", kind.String())))
}

func (r *Recorder) Crash() {
	r.crashes.Add(context.Background(), 1)
}

func (r *Recorder) ModeChanged(phase dash.Phase) {
	if phase == dash.PhaseRunning {
		r.runs.Add(context.Background(), 1)
	}
}
