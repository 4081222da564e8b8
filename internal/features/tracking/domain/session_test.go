package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackSession_ApplySample(t *testing.T) {
	s := NewTrackSession()

	delta := s.ApplySample(Coordinate{0, 0})
	assert.Equal(t, 0.0, delta, "first sample has no reference point")
	require.NotNil(t, s.LastSample)
	assert.Equal(t, Coordinate{0, 0}, *s.LastSample)

	s.ApplySample(Coordinate{0, 0.001})
	s.ApplySample(Coordinate{0, 0.002})

	assert.Len(t, s.Path, 3)
	assert.InEpsilon(t, 222.4, s.TotalDistanceMeters, 0.05)
	assert.Equal(t, s.Path[len(s.Path)-1], *s.LastSample)
}

func TestTrackSession_LastSampleIsNotAliased(t *testing.T) {
	s := NewTrackSession()
	s.ApplySample(Coordinate{1, 1})

	s.Path[0] = Coordinate{2, 2}

	assert.Equal(t, Coordinate{1, 1}, *s.LastSample)
}

func TestTrackSession_DistanceNeverDecreases(t *testing.T) {
	s := NewTrackSession()
	points := []Coordinate{{0, 0}, {0, 0.01}, {0, 0}, {0.01, 0}, {0.01, 0}, {-0.02, 0.3}}

	prev := 0.0
	for _, p := range points {
		s.ApplySample(p)
		assert.GreaterOrEqual(t, s.TotalDistanceMeters, prev)
		prev = s.TotalDistanceMeters
	}
}

func TestTrackSession_TickAndReset(t *testing.T) {
	s := NewTrackSession()
	s.Status = StateActive
	s.ApplySample(Coordinate{10, 10})
	s.ApplySample(Coordinate{10, 10.1})
	s.Tick()
	s.Tick()

	assert.Equal(t, 2, s.ElapsedSeconds)

	s.Reset()

	assert.Equal(t, StateIdle, s.Status)
	assert.Empty(t, s.Path)
	assert.Nil(t, s.LastSample)
	assert.Zero(t, s.TotalDistanceMeters)
	assert.Zero(t, s.ElapsedSeconds)
}

func TestTrackSession_PathCopy(t *testing.T) {
	s := NewTrackSession()
	s.ApplySample(Coordinate{1, 2})

	p := s.PathCopy()
	p[0] = Coordinate{9, 9}

	assert.Equal(t, Coordinate{1, 2}, s.Path[0])
}
