package domain

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func randomCoordinate(r *rand.Rand) Coordinate {
	return Coordinate{
		Latitude:  r.Float64()*180 - 90,
		Longitude: r.Float64()*360 - 180,
	}
}

// TestDistanceMeters_KnownDistances checks the engine against reference values.
func TestDistanceMeters_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Coordinate
		want      float64
		tolerance float64
	}{
		{
			name:      "one degree of longitude at the equator",
			a:         Coordinate{0, 0},
			b:         Coordinate{0, 1},
			want:      111195,
			tolerance: 50,
		},
		{
			name:      "one millidegree of longitude at the equator",
			a:         Coordinate{0, 0},
			b:         Coordinate{0, 0.001},
			want:      111.195,
			tolerance: 0.05,
		},
		{
			name:      "Copenhagen to Aarhus",
			a:         Coordinate{55.6761, 12.5683},
			b:         Coordinate{56.1629, 10.2039},
			want:      157000,
			tolerance: 3000,
		},
		{
			name:      "New York to Los Angeles",
			a:         Coordinate{40.7128, -74.0060},
			b:         Coordinate{34.0522, -118.2437},
			want:      3944000,
			tolerance: 50000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistanceMeters(tt.a, tt.b)
			assert.InDelta(t, tt.want, got, tt.tolerance)
		})
	}
}

func TestDistanceMeters_SamePointIsZero(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		c := randomCoordinate(r)
		assert.Equal(t, 0.0, DistanceMeters(c, c), "point %v", c)
	}
}

func TestDistanceMeters_SymmetricAndNonNegative(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		a, b := randomCoordinate(r), randomCoordinate(r)
		ab := DistanceMeters(a, b)
		ba := DistanceMeters(b, a)

		assert.GreaterOrEqual(t, ab, 0.0)
		assert.InDelta(t, ab, ba, 1e-6, "a=%v b=%v", a, b)
		assert.LessOrEqual(t, ab, math.Pi*EarthRadiusMeters+1e-6)
	}
}

func TestCoordinate_Valid(t *testing.T) {
	assert.True(t, Coordinate{90, 180}.Valid())
	assert.True(t, Coordinate{-90, -180}.Valid())
	assert.False(t, Coordinate{90.1, 0}.Valid())
	assert.False(t, Coordinate{0, -180.5}.Valid())
}
