package ports

import (
	"context"
	"time"

	"gotur/internal/features/tracking/domain"
)

// PermissionStatus is the answer to a location permission request.
type PermissionStatus string

const (
	PermissionGranted PermissionStatus = "granted"
	PermissionDenied  PermissionStatus = "denied"
)

// PermissionProvider asks the platform for foreground location access.
// This is a Secondary Port (Driven Port).
type PermissionProvider interface {
	RequestForegroundPermission(ctx context.Context) (PermissionStatus, error)
}

// Subscription is a live location watch.
type Subscription interface {
	// Cancel stops delivery. No callback runs after Cancel returns.
	Cancel()
}

// LocationStream delivers position samples.
// This is a Secondary Port (Driven Port).
type LocationStream interface {
	// CurrentPosition returns a one-shot position fix.
	CurrentPosition(ctx context.Context) (domain.Coordinate, error)
	// Watch starts delivering samples to onSample until the subscription is
	// cancelled or ctx is done. Samples are delivered one at a time.
	Watch(ctx context.Context, opts domain.WatchOptions, onSample func(domain.Coordinate)) (Subscription, error)
}

// TimerHandle is a running interval timer.
type TimerHandle interface {
	// Cancel stops the timer. No tick runs after Cancel returns.
	Cancel()
}

// Timer starts fixed-interval timers.
type Timer interface {
	StartInterval(period time.Duration, onTick func()) TimerHandle
}

// Confirmer asks the user to confirm a command.
type Confirmer interface {
	Confirm(ctx context.Context, prompt domain.Prompt) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, prompt domain.Prompt) bool

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(ctx context.Context, prompt domain.Prompt) bool {
	return f(ctx, prompt)
}

// AlwaysConfirm accepts every prompt. Used by headless runs.
var AlwaysConfirm Confirmer = ConfirmFunc(func(context.Context, domain.Prompt) bool { return true })

// SaveDestination persists a finished or paused route.
type SaveDestination interface {
	// Save stores the snapshot and returns the id it was stored under.
	Save(ctx context.Context, snapshot domain.Snapshot) (string, error)
}

// Notifier surfaces one-time notices to the user.
type Notifier interface {
	Notify(ctx context.Context, notice domain.Notice)
}

// TrackingController is the primary port driven by the presentation layer.
type TrackingController interface {
	Start(ctx context.Context, confirmer Confirmer) error
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error
	Stop(ctx context.Context) error
	Save(ctx context.Context) (string, error)
	Snapshot(ctx context.Context) (domain.Snapshot, error)
	// Subscribe returns a stream of snapshots and a function that ends it.
	Subscribe(ctx context.Context) (<-chan domain.Snapshot, func(), error)
}
