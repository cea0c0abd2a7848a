package timer

import (
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"stagetimer/internal/models"
)

// Slot describes one configured timer position.
type Slot struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// DefaultSlots returns the standard two-timer configuration.
func DefaultSlots() []Slot {
	return []Slot{
		{ID: "1", Label: "Timer 1"},
		{ID: "2", Label: "Timer 2"},
	}
}

// Registry owns the fixed set of timers and serializes all mutations behind a
// single lock. Timers are process-lifetime only; nothing here is persisted.
type Registry struct {
	mu     sync.Mutex
	clock  clockwork.Clock
	timers map[string]*models.Timer
	order  []string
}

// NewRegistry creates a registry with one stopped, disabled timer per slot.
func NewRegistry(clock clockwork.Clock, slots []Slot) *Registry {
	r := &Registry{
		clock:  clock,
		timers: make(map[string]*models.Timer, len(slots)),
		order:  make([]string, 0, len(slots)),
	}
	for _, s := range slots {
		r.timers[s.ID] = &models.Timer{
			ID:       s.ID,
			Label:    s.Label,
			RunState: models.RunStateStopped,
		}
		r.order = append(r.order, s.ID)
	}
	return r
}

// Snapshot returns a copy of one timer.
func (r *Registry) Snapshot(id string) (models.Timer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.timers[id]
	if !ok {
		return models.Timer{}, ErrUnknownTimer
	}
	return *t, nil
}

// StatusAll projects every timer against the registry clock, in slot order.
func (r *Registry) StatusAll() map[string]models.TimerStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	out := make(map[string]models.TimerStatus, len(r.order))
	for _, id := range r.order {
		out[id] = Project(*r.timers[id], now)
	}
	return out
}

// SetEnabled enables or disables a timer. Disabling is a hard reset: all
// progress fields and the logo are cleared. Enabling leaves other fields
// untouched so a duration configured while disabled survives.
func (r *Registry) SetEnabled(id string, enabled bool) (models.Timer, error) {
	return r.mutate(id, "toggle_enable", func(t *models.Timer) {
		t.Enabled = enabled
		if !enabled {
			zero := 0
			t.RunState = models.RunStateStopped
			t.InitialDurationSeconds = 0
			t.PausedRemainingSeconds = &zero
			t.EndTime = nil
			t.LogoFilename = nil
		}
	})
}

// SetDuration sets a new countdown duration. This always stops the timer,
// whatever state it was in.
func (r *Registry) SetDuration(id string, hours, minutes, seconds int) (models.Timer, error) {
	if hours < 0 || minutes < 0 || seconds < 0 {
		return models.Timer{}, ErrInvalidParameters
	}
	total := hours*3600 + minutes*60 + seconds
	return r.mutate(id, "set_time", func(t *models.Timer) {
		remaining := total
		t.InitialDurationSeconds = total
		t.PausedRemainingSeconds = &remaining
		t.RunState = models.RunStateStopped
		t.EndTime = nil
	})
}

// Start begins the countdown. It is a no-op for disabled timers, for timers
// already running, and when the effective duration is zero. The paused
// remaining value, when recorded, takes precedence over the initial duration
// even if it is zero.
func (r *Registry) Start(id string) (models.Timer, error) {
	return r.mutate(id, "start", func(t *models.Timer) {
		if !t.Enabled || t.RunState == models.RunStateRunning {
			return
		}
		duration := t.InitialDurationSeconds
		if t.PausedRemainingSeconds != nil {
			duration = *t.PausedRemainingSeconds
		}
		if duration <= 0 {
			return
		}
		end := r.clock.Now().Add(secondsToDuration(duration))
		t.EndTime = &end
		t.RunState = models.RunStateRunning
		t.PausedRemainingSeconds = nil
	})
}

// Pause freezes a running timer, recording the remaining whole seconds
// clamped to zero.
func (r *Registry) Pause(id string) (models.Timer, error) {
	return r.mutate(id, "pause", func(t *models.Timer) {
		if t.RunState != models.RunStateRunning || t.EndTime == nil {
			return
		}
		remaining := remainingSeconds(*t.EndTime, r.clock.Now())
		t.PausedRemainingSeconds = &remaining
		t.RunState = models.RunStatePaused
		t.EndTime = nil
	})
}

// Resume restarts a paused timer from its recorded remaining duration.
func (r *Registry) Resume(id string) (models.Timer, error) {
	return r.mutate(id, "resume", func(t *models.Timer) {
		if t.RunState != models.RunStatePaused || t.PausedRemainingSeconds == nil || *t.PausedRemainingSeconds <= 0 {
			return
		}
		end := r.clock.Now().Add(secondsToDuration(*t.PausedRemainingSeconds))
		t.EndTime = &end
		t.RunState = models.RunStateRunning
		t.PausedRemainingSeconds = nil
	})
}

// Reset stops the timer and restores the initial duration. Enabled state and
// logo are untouched.
func (r *Registry) Reset(id string) (models.Timer, error) {
	return r.mutate(id, "reset", func(t *models.Timer) {
		remaining := t.InitialDurationSeconds
		t.PausedRemainingSeconds = &remaining
		t.RunState = models.RunStateStopped
		t.EndTime = nil
	})
}

// SetLogo sets or clears the timer's logo filename. An empty string clears.
func (r *Registry) SetLogo(id string, filename *string) (models.Timer, error) {
	return r.mutate(id, "set_logo", func(t *models.Timer) {
		if filename == nil || *filename == "" {
			t.LogoFilename = nil
			return
		}
		name := *filename
		t.LogoFilename = &name
	})
}

// mutate runs fn on the timer under the registry lock and returns the
// post-mutation snapshot.
func (r *Registry) mutate(id, action string, fn func(*models.Timer)) (models.Timer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.timers[id]
	if !ok {
		return models.Timer{}, ErrUnknownTimer
	}
	fn(t)
	log.Info().
		Str("timer_id", id).
		Str("action", action).
		Str("run_state", string(t.RunState)).
		Msg("timer mutated")
	return *t, nil
}
