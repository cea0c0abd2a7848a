package timer

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stagetimer/internal/models"
)

func TestProject_DisabledTimerIsInert(t *testing.T) {
	logo := "kept.png"
	end := time.Now().Add(time.Hour)
	remaining := 42
	tm := models.Timer{
		ID:                     "1",
		Enabled:                false,
		RunState:               models.RunStateRunning,
		InitialDurationSeconds: 600,
		EndTime:                &end,
		PausedRemainingSeconds: &remaining,
		LogoFilename:           &logo,
	}

	st := Project(tm, time.Now())
	assert.Equal(t, 0, st.TimeRemainingSeconds)
	assert.False(t, st.IsRunning)
	assert.False(t, st.TimesUp)
	assert.False(t, st.Enabled)
	// Logo is still reported for UI convenience.
	assert.Equal(t, &logo, st.LogoFilename)
}

func TestProject_RunningTimer(t *testing.T) {
	now := time.Now()
	end := now.Add(90 * time.Second)
	tm := models.Timer{Enabled: true, RunState: models.RunStateRunning, EndTime: &end}

	st := Project(tm, now)
	assert.Equal(t, 90, st.TimeRemainingSeconds)
	assert.True(t, st.IsRunning)
	assert.False(t, st.TimesUp)
}

func TestProject_RemainingNeverNegative(t *testing.T) {
	now := time.Now()
	end := now.Add(-30 * time.Second)
	tm := models.Timer{Enabled: true, RunState: models.RunStateRunning, EndTime: &end}

	st := Project(tm, now)
	assert.Equal(t, 0, st.TimeRemainingSeconds)
	assert.True(t, st.TimesUp)
	// Expiry is a display fact, not a state change.
	assert.True(t, st.IsRunning)
}

func TestProject_PausedUsesRecordedRemaining(t *testing.T) {
	remaining := 25
	tm := models.Timer{Enabled: true, RunState: models.RunStatePaused, PausedRemainingSeconds: &remaining}

	st := Project(tm, time.Now())
	assert.Equal(t, 25, st.TimeRemainingSeconds)
	assert.False(t, st.IsRunning)
	assert.False(t, st.TimesUp)
}

func TestProject_PausedAtZeroIsTimesUp(t *testing.T) {
	zero := 0
	tm := models.Timer{Enabled: true, RunState: models.RunStatePaused, PausedRemainingSeconds: &zero}

	st := Project(tm, time.Now())
	assert.Equal(t, 0, st.TimeRemainingSeconds)
	assert.True(t, st.TimesUp)
}

func TestProject_StoppedWithoutPausedValueShowsInitial(t *testing.T) {
	tm := models.Timer{Enabled: true, RunState: models.RunStateStopped, InitialDurationSeconds: 300}

	st := Project(tm, time.Now())
	assert.Equal(t, 300, st.TimeRemainingSeconds)
	assert.False(t, st.IsRunning)
}

func TestProject_IsPure(t *testing.T) {
	now := time.Now()
	end := now.Add(10 * time.Second)
	tm := models.Timer{Enabled: true, RunState: models.RunStateRunning, EndTime: &end}

	first := Project(tm, now)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Project(tm, now))
	}
	assert.Equal(t, end, *tm.EndTime)
}

// Full scenario from the service's point of view: a five second timer left
// to expire keeps reporting running and times-up until explicitly reset.
func TestScenario_ExpiredTimerStaysRunning(t *testing.T) {
	clock := clockwork.NewFakeClock()
	r := NewRegistry(clock, DefaultSlots())

	_, err := r.SetEnabled("1", true)
	require.NoError(t, err)
	_, err = r.SetDuration("1", 0, 0, 5)
	require.NoError(t, err)
	_, err = r.Start("1")
	require.NoError(t, err)

	clock.Advance(6 * time.Second)
	st := r.StatusAll()["1"]
	assert.Equal(t, 0, st.TimeRemainingSeconds)
	assert.True(t, st.TimesUp)
	assert.True(t, st.IsRunning)

	clock.Advance(time.Hour)
	st = r.StatusAll()["1"]
	assert.True(t, st.IsRunning, "no auto-stop, ever")
}

func TestScenario_PauseAfterTenSeconds(t *testing.T) {
	clock := clockwork.NewFakeClock()
	r := NewRegistry(clock, DefaultSlots())

	_, err := r.SetEnabled("1", true)
	require.NoError(t, err)
	_, err = r.SetDuration("1", 0, 1, 0)
	require.NoError(t, err)
	_, err = r.Start("1")
	require.NoError(t, err)

	clock.Advance(10 * time.Second)
	_, err = r.Pause("1")
	require.NoError(t, err)

	st := r.StatusAll()["1"]
	assert.Equal(t, 50, st.TimeRemainingSeconds)
	assert.False(t, st.IsRunning)
}
