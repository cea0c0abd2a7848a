package timer

import "errors"

// ErrUnknownTimer is returned when an action addresses a timer id that is not
// in the registry.
var ErrUnknownTimer = errors.New("unknown timer")

// ErrInvalidAction is returned for an unrecognized control action name.
var ErrInvalidAction = errors.New("invalid action")

// ErrInvalidParameters is returned for malformed control action parameters.
var ErrInvalidParameters = errors.New("invalid parameters")
