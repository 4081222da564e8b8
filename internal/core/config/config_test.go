package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("APP_ENV")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("SERVER_PORT")
	t.Setenv("SIM_ROUTE_FILE", "testdata/route.gpx")

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, 7*24*time.Hour, cfg.Routes.RouteTTL())
	assert.Empty(t, cfg.Routes.WebhookURL)
	assert.Equal(t, time.Second, cfg.Tracking.TickPeriod())
	assert.Equal(t, time.Second, cfg.Tracking.MinTimeInterval())
	assert.Equal(t, 1.0, cfg.Tracking.MinDistanceMeters)
	assert.Equal(t, "high", cfg.Tracking.Accuracy)
	assert.Equal(t, "granted", cfg.Tracking.Permission)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REDIS_URL", "redis://cache:6380/2")
	t.Setenv("SAVE_WEBHOOK_URL", "https://hooks.example.com/routes")
	t.Setenv("TICK_PERIOD_MS", "250")
	t.Setenv("LOCATION_ACCURACY", "best_for_navigation")
	t.Setenv("LOCATION_MIN_DISTANCE_M", "2.5")
	t.Setenv("LOCATION_PERMISSION", "denied")
	t.Setenv("SIM_ROUTE_FILE", "/data/ride.gpx")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "redis://cache:6380/2", cfg.Redis.URL)
	assert.Equal(t, "https://hooks.example.com/routes", cfg.Routes.WebhookURL)
	assert.Equal(t, 250*time.Millisecond, cfg.Tracking.TickPeriod())
	assert.Equal(t, "best_for_navigation", cfg.Tracking.Accuracy)
	assert.Equal(t, 2.5, cfg.Tracking.MinDistanceMeters)
	assert.Equal(t, "denied", cfg.Tracking.Permission)
	assert.Equal(t, "/data/ride.gpx", cfg.Tracking.RouteFile)
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
ROUTE_TTL_SECONDS=60
SIM_ROUTE_FILE=routes/loop.gpx
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, time.Minute, cfg.Routes.RouteTTL())
	assert.Equal(t, "routes/loop.gpx", cfg.Tracking.RouteFile)
}

// TestLoad_ValidationFailure verifies that missing required fields return an error.
func TestLoad_ValidationFailure(t *testing.T) {
	os.Unsetenv("SIM_ROUTE_FILE")

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "missing required configuration: SIM_ROUTE_FILE")
}

// TestValidateRequired verifies nested structs and non-string required fields.
func TestValidateRequired(t *testing.T) {
	type sample struct {
		Name  string
		Count int
		Ratio float64
		On    bool
		Tags  []string
	}

	var s sample
	err := validateRequired(&struct {
		Inner sample
		Key   string `mapstructure:"KEY" required:"true"`
	}{Inner: s, Key: "set"})
	assert.NoError(t, err)

	err = validateRequired(&struct {
		Ratio float64 `mapstructure:"RATIO" required:"true"`
	}{})
	assert.EqualError(t, err, "missing required configuration: RATIO")
}
