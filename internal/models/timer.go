package models

import "time"

// RunState is the lifecycle state of a countdown timer.
type RunState string

const (
	// RunStateStopped means the timer was never started or was explicitly reset.
	RunStateStopped RunState = "stopped"
	// RunStateRunning means the timer is counting down toward EndTime.
	RunStateRunning RunState = "running"
	// RunStatePaused means the timer is frozen with a remembered remaining duration.
	RunStatePaused RunState = "paused"
)

// Timer represents one independently controllable countdown slot.
//
// Exactly one of EndTime / PausedRemainingSeconds carries meaning at any
// moment, governed by RunState: while running EndTime is authoritative,
// otherwise PausedRemainingSeconds is (when it has ever been recorded).
type Timer struct {
	ID                     string     `json:"id"`
	Label                  string     `json:"label"`
	Enabled                bool       `json:"enabled"`
	InitialDurationSeconds int        `json:"initial_duration_seconds"`
	RunState               RunState   `json:"run_state"`
	EndTime                *time.Time `json:"end_time,omitempty"`
	PausedRemainingSeconds *int       `json:"paused_time_remaining_seconds,omitempty"`
	LogoFilename           *string    `json:"logo_filename"`
}

// TimerStatus is the point-in-time display projection of a Timer.
type TimerStatus struct {
	TimeRemainingSeconds int     `json:"time_remaining_seconds"`
	IsRunning            bool    `json:"is_running"`
	TimesUp              bool    `json:"times_up"`
	Enabled              bool    `json:"enabled"`
	LogoFilename         *string `json:"logo_filename"`
}
