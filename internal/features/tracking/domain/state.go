package domain

import "fmt"

// TrackingState is the lifecycle status of a tracking session.
type TrackingState int

const (
	// StateIdle means no session is running. It is the initial state.
	StateIdle TrackingState = iota
	// StateActive means samples and ticks are being accumulated.
	StateActive
	// StatePaused means accumulation is suspended but totals are kept.
	StatePaused
)

func (s TrackingState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	default:
		return fmt.Sprintf("TrackingState(%d)", int(s))
	}
}

// ParseTrackingState is the inverse of TrackingState.String.
func ParseTrackingState(s string) (TrackingState, error) {
	switch s {
	case "idle":
		return StateIdle, nil
	case "active":
		return StateActive, nil
	case "paused":
		return StatePaused, nil
	}
	return StateIdle, fmt.Errorf("unknown tracking state %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (s TrackingState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *TrackingState) UnmarshalText(text []byte) error {
	parsed, err := ParseTrackingState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
