package domain

// TrackSession is the mutable aggregate owned by the tracking controller.
// It is not safe for concurrent use; the controller confines it to one
// goroutine.
type TrackSession struct {
	// Status is the current lifecycle state.
	Status TrackingState
	// Path holds every sample accepted while active, in arrival order.
	Path []Coordinate
	// LastSample is the reference point for the next distance increment.
	// It survives pause/resume and is cleared only by Reset.
	LastSample *Coordinate
	// TotalDistanceMeters only grows until the next Reset.
	TotalDistanceMeters float64
	// ElapsedSeconds counts timer ticks while active.
	ElapsedSeconds int
}

// NewTrackSession returns an idle, empty session.
func NewTrackSession() *TrackSession {
	return &TrackSession{Status: StateIdle}
}

// ApplySample adds the distance from the previous sample to the total and
// appends c to the path. It returns the distance increment.
func (s *TrackSession) ApplySample(c Coordinate) float64 {
	var delta float64
	if s.LastSample != nil {
		delta = DistanceMeters(*s.LastSample, c)
		s.TotalDistanceMeters += delta
	}
	s.Path = append(s.Path, c)
	last := c
	s.LastSample = &last
	return delta
}

// Tick advances the elapsed time by exactly one second.
func (s *TrackSession) Tick() {
	s.ElapsedSeconds++
}

// Reset returns the session to its initial idle, empty values.
func (s *TrackSession) Reset() {
	*s = TrackSession{Status: StateIdle}
}

// PathCopy returns a copy of the path that callers may keep.
func (s *TrackSession) PathCopy() []Coordinate {
	out := make([]Coordinate, len(s.Path))
	copy(out, s.Path)
	return out
}
