package timer

import (
	"time"

	"stagetimer/internal/models"
)

// Project derives the display status of a timer at the given instant. It is
// pure: callable at any polling frequency without drift or double-counting.
//
// An expired running timer stays running until an explicit pause or reset;
// expiry is a derived display fact, not a state transition. Viewers rely on
// this to keep firing the times-up alert.
func Project(t models.Timer, now time.Time) models.TimerStatus {
	if !t.Enabled {
		return models.TimerStatus{LogoFilename: t.LogoFilename}
	}

	st := models.TimerStatus{
		Enabled:      true,
		LogoFilename: t.LogoFilename,
	}

	switch {
	case t.RunState == models.RunStateRunning && t.EndTime != nil:
		st.TimeRemainingSeconds = remainingSeconds(*t.EndTime, now)
		st.IsRunning = true
	case t.PausedRemainingSeconds != nil:
		st.TimeRemainingSeconds = *t.PausedRemainingSeconds
	case t.RunState == models.RunStateStopped:
		st.TimeRemainingSeconds = t.InitialDurationSeconds
	}

	st.TimesUp = st.TimeRemainingSeconds == 0
	return st
}

// remainingSeconds reports whole seconds until end, clamped to zero.
func remainingSeconds(end, now time.Time) int {
	remaining := int(end.Sub(now) / time.Second)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func secondsToDuration(s int) time.Duration {
	return time.Duration(s) * time.Second
}
