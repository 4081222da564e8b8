package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Redis holds the saved routes store configuration.
	Redis RedisConfig `mapstructure:",squash"`

	// Routes holds the save destination configuration.
	Routes RoutesConfig `mapstructure:",squash"`

	// Tracking holds the tracker and location source configuration.
	Tracking TrackingConfig `mapstructure:",squash"`
}

// RedisConfig holds the Redis connection details.
type RedisConfig struct {
	// URL is the connection string, redis://[:password@]host[:port][/database].
	URL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`
}

// RoutesConfig controls where saved routes go.
type RoutesConfig struct {
	// TTLSeconds is how long a saved route is kept in Redis. 0 keeps it forever.
	TTLSeconds int `mapstructure:"ROUTE_TTL_SECONDS" default:"604800"`
	// WebhookURL, when set, receives saved routes instead of Redis.
	WebhookURL string `mapstructure:"SAVE_WEBHOOK_URL"`
}

// TrackingConfig holds the tick period and the location watch options.
type TrackingConfig struct {
	// TickPeriodMS is the elapsed-time timer period in milliseconds.
	TickPeriodMS int `mapstructure:"TICK_PERIOD_MS" default:"1000"`
	// Accuracy is the requested location accuracy level.
	Accuracy string `mapstructure:"LOCATION_ACCURACY" default:"high"`
	// MinTimeMS is the minimum interval between delivered samples.
	MinTimeMS int `mapstructure:"LOCATION_MIN_TIME_MS" default:"1000"`
	// MinDistanceMeters is the minimum movement between delivered samples.
	MinDistanceMeters float64 `mapstructure:"LOCATION_MIN_DISTANCE_M" default:"1"`
	// Permission is the answer of the simulated permission prompt: granted or denied.
	Permission string `mapstructure:"LOCATION_PERMISSION" default:"granted"`
	// RouteFile is the GPX file replayed as the location source.
	RouteFile string `mapstructure:"SIM_ROUTE_FILE" required:"true"`
}

// TickPeriod returns the timer period as a duration.
func (t TrackingConfig) TickPeriod() time.Duration {
	return time.Duration(t.TickPeriodMS) * time.Millisecond
}

// MinTimeInterval returns the minimum sample interval as a duration.
func (t TrackingConfig) MinTimeInterval() time.Duration {
	return time.Duration(t.MinTimeMS) * time.Millisecond
}

// RouteTTL returns the saved route lifetime as a duration.
func (r RoutesConfig) RouteTTL() time.Duration {
	return time.Duration(r.TTLSeconds) * time.Second
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		required := field.Tag.Get("required")
		if required == "true" {
			value := val.Field(i)
			if isZero(value) {
				key := field.Tag.Get("mapstructure")
				return fmt.Errorf("missing required configuration: %s", key)
			}
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
