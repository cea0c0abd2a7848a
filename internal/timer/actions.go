package timer

import (
	"fmt"

	"stagetimer/internal/models"
)

// Control action names accepted by Apply.
const (
	ActionToggleEnable = "toggle_enable"
	ActionSetTime      = "set_time"
	ActionStart        = "start"
	ActionPause        = "pause"
	ActionResume       = "resume"
	ActionReset        = "reset"
	ActionSetLogo      = "set_logo"
)

// ControlRequest is one admin control action addressed to a single timer.
// Only the parameters relevant to the action are consulted.
type ControlRequest struct {
	Action       string  `json:"action"`
	Enabled      *bool   `json:"enabled,omitempty"`
	Hours        *int    `json:"hours,omitempty"`
	Minutes      *int    `json:"minutes,omitempty"`
	Seconds      *int    `json:"seconds,omitempty"`
	LogoFilename *string `json:"logo_filename,omitempty"`
}

// Apply dispatches a control request to the matching registry operation and
// returns the post-mutation snapshot. The registry is unchanged on any
// validation error.
func (r *Registry) Apply(id string, req ControlRequest) (models.Timer, error) {
	switch req.Action {
	case ActionToggleEnable:
		enabled := false
		if req.Enabled != nil {
			enabled = *req.Enabled
		}
		return r.SetEnabled(id, enabled)
	case ActionSetTime:
		return r.SetDuration(id, intOrZero(req.Hours), intOrZero(req.Minutes), intOrZero(req.Seconds))
	case ActionStart:
		return r.Start(id)
	case ActionPause:
		return r.Pause(id)
	case ActionResume:
		return r.Resume(id)
	case ActionReset:
		return r.Reset(id)
	case ActionSetLogo:
		return r.SetLogo(id, req.LogoFilename)
	case "":
		return models.Timer{}, fmt.Errorf("%w: missing action", ErrInvalidAction)
	default:
		return models.Timer{}, fmt.Errorf("%w: %q", ErrInvalidAction, req.Action)
	}
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
