package domain

import (
	"errors"
	"time"

	tracking "gotur/internal/features/tracking/domain"
)

var (
	ErrRouteNotFound = errors.New("route not found")
	ErrNotSupported  = errors.New("operation not supported by this route store")
)

// SavedRoute is a tracking session handed to the save destination.
type SavedRoute struct {
	ID                  string                `json:"id"`
	SavedAt             time.Time             `json:"saved_at"`
	ElapsedSeconds      int                   `json:"elapsed_seconds"`
	Elapsed             string                `json:"elapsed"`
	TotalDistanceMeters float64               `json:"total_distance_m"`
	DistanceKm          string                `json:"distance_km"`
	Path                []tracking.Coordinate `json:"path"`
}

// NewSavedRoute builds a SavedRoute from a snapshot. A route with no
// points is still a valid route.
func NewSavedRoute(id string, snap tracking.Snapshot, savedAt time.Time) *SavedRoute {
	path := make([]tracking.Coordinate, len(snap.Path))
	copy(path, snap.Path)

	return &SavedRoute{
		ID:                  id,
		SavedAt:             savedAt.UTC(),
		ElapsedSeconds:      snap.ElapsedSeconds,
		Elapsed:             tracking.FormatElapsed(snap.ElapsedSeconds),
		TotalDistanceMeters: snap.TotalDistanceMeters,
		DistanceKm:          tracking.FormatDistanceKm(snap.TotalDistanceMeters),
		Path:                path,
	}
}

// Snapshot returns the route as an idle tracking snapshot, for rendering.
func (r *SavedRoute) Snapshot() tracking.Snapshot {
	return tracking.Snapshot{
		Status:              tracking.StateIdle,
		ElapsedSeconds:      r.ElapsedSeconds,
		Elapsed:             r.Elapsed,
		TotalDistanceMeters: r.TotalDistanceMeters,
		DistanceKm:          r.DistanceKm,
		Path:                r.Path,
		CanSave:             true,
	}
}
