package legend

import (
	"errors"
	"fmt"

	"chartc/internal/vl"
)

// ErrMissingScale indicates a legend refers to a scale that was not allocated.
var ErrMissingScale = errors.New("scale not allocated")

// ErrNotLegendChannel indicates a legend was requested for a channel that
// cannot carry one.
var ErrNotLegendChannel = errors.New("channel cannot carry a legend")

// ErrUnboundChannel indicates a legend was requested for a channel that is
// not bound to a field.
var ErrUnboundChannel = errors.New("channel is not bound to a field")

// Error represents a failure compiling the legend of one channel.
type Error struct {
	Channel vl.Channel
	// Scale is the scale role that was looked up, if any.
	Scale vl.Channel
	Err   error
}

func (e *Error) Error() string {
	if e.Scale != "" {
		return fmt.Sprintf("legend %q: %v: %q", e.Channel, e.Err, e.Scale)
	}

	return fmt.Sprintf("legend %q: %v", e.Channel, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// scaleName looks up the scale allocated to role for the legend of ch.
func scaleName(m Model, ch, role vl.Channel) (string, error) {
	name, ok := m.ScaleName(role)
	if !ok {
		return "", &Error{Channel: ch, Scale: role, Err: ErrMissingScale}
	}

	return name, nil
}
