package domain

import "fmt"

// Snapshot is a read-only view of a session for presentation and saving.
type Snapshot struct {
	// Status is the tracking state at the time of the snapshot.
	Status TrackingState `json:"status"`
	// ElapsedSeconds is the tracked time in whole seconds.
	ElapsedSeconds int `json:"elapsed_seconds"`
	// Elapsed is ElapsedSeconds formatted as [H:]MM:SS.
	Elapsed string `json:"elapsed"`
	// TotalDistanceMeters is the accumulated distance.
	TotalDistanceMeters float64 `json:"total_distance_m"`
	// DistanceKm is the accumulated distance in kilometres, two decimals.
	DistanceKm string `json:"distance_km"`
	// Path is the recorded route, used for polyline rendering.
	Path []Coordinate `json:"path"`
	// Position is the latest known position, used for the map marker.
	Position *Coordinate `json:"position,omitempty"`
	// CanSave reports whether a save is currently allowed.
	CanSave bool `json:"can_save"`
	// PermissionGranted is false once location permission was refused.
	PermissionGranted bool `json:"permission_granted"`
	// SubscriptionActive reports whether a location watch is live.
	SubscriptionActive bool `json:"subscription_active"`
}

// NewSnapshot copies the session into a Snapshot.
func NewSnapshot(s *TrackSession, position *Coordinate) Snapshot {
	snap := Snapshot{
		Status:              s.Status,
		ElapsedSeconds:      s.ElapsedSeconds,
		Elapsed:             FormatElapsed(s.ElapsedSeconds),
		TotalDistanceMeters: s.TotalDistanceMeters,
		DistanceKm:          FormatDistanceKm(s.TotalDistanceMeters),
		Path:                s.PathCopy(),
		CanSave:             s.Status != StateActive,
		PermissionGranted:   true,
	}
	if position != nil {
		p := *position
		snap.Position = &p
	}
	return snap
}

// FormatElapsed renders seconds as H:MM:SS, dropping the hours and their
// colon when there are none.
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hrs := seconds / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60
	if hrs > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hrs, mins, secs)
	}
	return fmt.Sprintf("%02d:%02d", mins, secs)
}

// FormatDistanceKm renders meters as kilometres with two decimals.
func FormatDistanceKm(meters float64) string {
	return fmt.Sprintf("%.2f", meters/1000)
}
