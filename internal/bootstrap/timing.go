package bootstrap

import (
	"context"
	"time"

	"github.com/bnema/chordbar/internal/logging"
)

// StartupTimer tracks how long each step before the first draw takes.
// Steps run one after another, so it is not safe for concurrent use.
type StartupTimer struct {
	start  time.Time
	last   time.Time
	phases []phase
}

type phase struct {
	name string
	dur  time.Duration
}

// NewStartupTimer creates a new timer starting from now.
func NewStartupTimer() *StartupTimer {
	now := time.Now()
	return &StartupTimer{start: now, last: now}
}

// Mark records the duration since the last mark (or start) for the given phase.
func (t *StartupTimer) Mark(name string) {
	now := time.Now()
	t.phases = append(t.phases, phase{name: name, dur: now.Sub(t.last)})
	t.last = now
}

// Phases returns the recorded phase names in order.
func (t *StartupTimer) Phases() []string {
	names := make([]string, len(t.phases))
	for i, p := range t.phases {
		names[i] = p.name
	}
	return names
}

// Total returns the total elapsed time since timer creation.
func (t *StartupTimer) Total() time.Duration {
	return time.Since(t.start)
}

// LogDebug outputs all phases as one debug line.
func (t *StartupTimer) LogDebug(ctx context.Context) {
	event := logging.FromContext(ctx).Debug().Dur("total", t.Total())
	for _, p := range t.phases {
		event = event.Dur(p.name, p.dur)
	}
	event.Msg("startup timing")
}
