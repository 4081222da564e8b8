package adapter

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gotur/internal/features/tracking/domain"
	"gotur/internal/features/tracking/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const sampleGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="gotur" xmlns="http://www.topografix.com/GPX/1/1">
  <trk>
    <name>Morning ride</name>
    <trkseg>
      <trkpt lat="41.0082" lon="28.9784"><ele>39</ele></trkpt>
      <trkpt lat="41.0090" lon="28.9790"><ele>40</ele></trkpt>
    </trkseg>
    <trkseg>
      <trkpt lat="41.0101" lon="28.9802"></trkpt>
    </trkseg>
  </trk>
</gpx>`

type collector struct {
	mu      sync.Mutex
	samples []domain.Coordinate
}

func (c *collector) add(s domain.Coordinate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.samples = append(c.samples, s)
}

func (c *collector) get() []domain.Coordinate {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Coordinate(nil), c.samples...)
}

func line(n int) []domain.Coordinate {
	route := make([]domain.Coordinate, n)
	for i := range route {
		route[i] = domain.Coordinate{Latitude: 0, Longitude: float64(i) * 0.001}
	}
	return route
}

func TestParseGPX_TrackPoints(t *testing.T) {
	route, err := ParseGPX(strings.NewReader(sampleGPX))
	require.NoError(t, err)

	assert.Equal(t, []domain.Coordinate{
		{Latitude: 41.0082, Longitude: 28.9784},
		{Latitude: 41.0090, Longitude: 28.9790},
		{Latitude: 41.0101, Longitude: 28.9802},
	}, route)
}

func TestParseGPX_RoutePointsFallback(t *testing.T) {
	doc := `<gpx><rte><name>plan</name><rtept lat="1" lon="2"/><rtept lat="1.5" lon="2.5"/></rte></gpx>`

	route, err := ParseGPX(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []domain.Coordinate{{Latitude: 1, Longitude: 2}, {Latitude: 1.5, Longitude: 2.5}}, route)
}

func TestParseGPX_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{name: "Empty", doc: `<gpx><trk><trkseg></trkseg></trk></gpx>`, wantErr: ErrEmptyRoute.Error()},
		{name: "OutOfRange", doc: `<gpx><trk><trkseg><trkpt lat="91" lon="0"/></trkseg></trk></gpx>`, wantErr: "point 0 out of range"},
		{name: "Malformed", doc: `<gpx><trk>`, wantErr: "failed to decode GPX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGPX(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadGPX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ride.gpx")
	require.NoError(t, os.WriteFile(path, []byte(sampleGPX), 0o644))

	route, err := LoadGPX(path)
	require.NoError(t, err)
	assert.Len(t, route, 3)

	_, err = LoadGPX(filepath.Join(t.TempDir(), "missing.gpx"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSimulatedStream_EmptyRoute(t *testing.T) {
	_, err := NewSimulatedStream(nil, zap.NewNop())
	assert.ErrorIs(t, err, ErrEmptyRoute)
}

func TestSimulatedStream_ReplaysWholeRoute(t *testing.T) {
	route := line(5)
	stream, err := NewSimulatedStream(route, zap.NewNop())
	require.NoError(t, err)

	var got collector
	opts := domain.WatchOptions{Accuracy: domain.AccuracyHigh, MinTimeInterval: time.Millisecond}
	sub, err := stream.Watch(context.Background(), opts, got.add)
	require.NoError(t, err)
	defer sub.Cancel()

	select {
	case <-stream.Exhausted():
	case <-time.After(2 * time.Second):
		t.Fatal("route was not exhausted")
	}

	sub.Cancel()
	assert.Equal(t, route, got.get())
	assert.Zero(t, stream.Remaining())

	pos, err := stream.CurrentPosition(context.Background())
	require.NoError(t, err)
	assert.Equal(t, route[4], pos)
}

func TestSimulatedStream_MinDistanceFilter(t *testing.T) {
	route := []domain.Coordinate{
		{Latitude: 0, Longitude: 0},
		{Latitude: 0, Longitude: 0.000001},
		{Latitude: 0, Longitude: 0.001},
	}
	stream, err := NewSimulatedStream(route, zap.NewNop())
	require.NoError(t, err)

	var got collector
	opts := domain.WatchOptions{MinTimeInterval: time.Millisecond, MinDistanceMeters: 1}
	sub, err := stream.Watch(context.Background(), opts, got.add)
	require.NoError(t, err)
	defer sub.Cancel()

	<-stream.Exhausted()
	sub.Cancel()

	assert.Equal(t, []domain.Coordinate{route[0], route[2]}, got.get())
}

func TestSimulatedStream_ResumesWhereItStopped(t *testing.T) {
	route := line(4)
	stream, err := NewSimulatedStream(route, zap.NewNop())
	require.NoError(t, err)

	pos, err := stream.CurrentPosition(context.Background())
	require.NoError(t, err)
	assert.Equal(t, route[0], pos)

	// A long interval means each watch delivers exactly its immediate sample.
	opts := domain.WatchOptions{MinTimeInterval: time.Hour}

	var first collector
	sub, err := stream.Watch(context.Background(), opts, first.add)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return len(first.get()) == 1 }, time.Second, time.Millisecond)

	_, err = stream.Watch(context.Background(), opts, first.add)
	assert.ErrorIs(t, err, ErrWatchActive)

	sub.Cancel()

	var second collector
	sub, err = stream.Watch(context.Background(), opts, second.add)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return len(second.get()) == 1 }, time.Second, time.Millisecond)
	sub.Cancel()

	assert.Equal(t, []domain.Coordinate{route[0]}, first.get())
	assert.Equal(t, []domain.Coordinate{route[1]}, second.get())
	assert.Equal(t, 2, stream.Remaining())
}

func TestSimulatedStream_StopsOnContextCancel(t *testing.T) {
	stream, err := NewSimulatedStream(line(100), zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	var got collector
	sub, err := stream.Watch(ctx, domain.WatchOptions{MinTimeInterval: time.Hour}, got.add)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return len(got.get()) == 1 }, time.Second, time.Millisecond)

	cancel()
	sub.Cancel()

	assert.Len(t, got.get(), 1)
	_, err = stream.CurrentPosition(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTickerTimer(t *testing.T) {
	var ticks atomic.Int32
	h := NewTickerTimer().StartInterval(time.Millisecond, func() { ticks.Add(1) })

	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, time.Millisecond)

	h.Cancel()
	after := ticks.Load()
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, after, ticks.Load())

	// A second cancel is a no-op.
	h.Cancel()
}

func TestStaticPermission(t *testing.T) {
	tests := []struct {
		in   string
		want ports.PermissionStatus
	}{
		{in: "granted", want: ports.PermissionGranted},
		{in: " DENIED ", want: ports.PermissionDenied},
	}
	for _, tt := range tests {
		p, err := NewStaticPermission(tt.in)
		require.NoError(t, err)

		got, err := p.RequestForegroundPermission(context.Background())
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := NewStaticPermission("maybe")
	assert.Error(t, err)
}

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	n := NewLogNotifier(zap.New(core))

	n.Notify(context.Background(), domain.PermissionDeniedNotice)
	n.Notify(context.Background(), domain.RouteSavedNotice)

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, domain.PermissionDeniedNotice.Message, entries[0].Message)
	assert.Equal(t, "ROUTE_SAVED", entries[1].ContextMap()["kind"])
}
