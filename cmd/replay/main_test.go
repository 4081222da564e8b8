package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const equatorGPX = `<gpx version="1.1"><trk><trkseg>
<trkpt lat="0" lon="0"/>
<trkpt lat="0" lon="0.001"/>
<trkpt lat="0" lon="0.002"/>
</trkseg></trk></gpx>`

func writeGPX(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "route.gpx")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestRun_PrintsSummary(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var out bytes.Buffer
	err := run(ctx, options{
		GPXFile:     writeGPX(t, equatorGPX),
		Interval:    5 * time.Millisecond,
		MinDistance: 1,
	}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "distance  0.22 km\n")
	assert.Contains(t, out.String(), "points    3\n")
	assert.NotContains(t, out.String(), "saved")
}

func TestRun_SavesToRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var out bytes.Buffer
	err := run(ctx, options{
		GPXFile:  writeGPX(t, equatorGPX),
		Interval: 5 * time.Millisecond,
		RedisURL: "redis://" + mr.Addr(),
	}, &out)
	require.NoError(t, err)

	var id string
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.HasPrefix(line, "saved") {
			id = strings.TrimSpace(strings.TrimPrefix(line, "saved"))
		}
	}
	require.NotEmpty(t, id)
	assert.True(t, mr.Exists("route:"+id))
}

func TestRun_MissingFile(t *testing.T) {
	err := run(context.Background(), options{GPXFile: filepath.Join(t.TempDir(), "none.gpx")}, &bytes.Buffer{})
	assert.Error(t, err)
}
