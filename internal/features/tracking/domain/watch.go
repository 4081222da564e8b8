package domain

import (
	"fmt"
	"strings"
	"time"
)

// Accuracy is the requested precision of location samples.
type Accuracy string

const (
	AccuracyLowest            Accuracy = "lowest"
	AccuracyLow               Accuracy = "low"
	AccuracyBalanced          Accuracy = "balanced"
	AccuracyHigh              Accuracy = "high"
	AccuracyHighest           Accuracy = "highest"
	AccuracyBestForNavigation Accuracy = "best_for_navigation"
)

// ParseAccuracy validates a configured accuracy name.
func ParseAccuracy(s string) (Accuracy, error) {
	a := Accuracy(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case AccuracyLowest, AccuracyLow, AccuracyBalanced, AccuracyHigh, AccuracyHighest, AccuracyBestForNavigation:
		return a, nil
	}
	return "", fmt.Errorf("unknown location accuracy %q", s)
}

// WatchOptions configure a location watch.
type WatchOptions struct {
	// Accuracy is the requested sample precision.
	Accuracy Accuracy `json:"accuracy"`
	// MinTimeInterval is the minimum time between two samples.
	MinTimeInterval time.Duration `json:"min_time_interval"`
	// MinDistanceMeters is the minimum movement between two samples.
	MinDistanceMeters float64 `json:"min_distance_m"`
}

// DefaultWatchOptions asks for high accuracy samples at most once a second
// and at least one meter apart.
func DefaultWatchOptions() WatchOptions {
	return WatchOptions{
		Accuracy:          AccuracyHigh,
		MinTimeInterval:   time.Second,
		MinDistanceMeters: 1,
	}
}
