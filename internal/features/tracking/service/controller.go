package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"gotur/internal/core/logger"
	"gotur/internal/features/tracking/domain"
	"gotur/internal/features/tracking/ports"

	"go.uber.org/zap"
)

var (
	// ErrInvalidTransition is returned when a command does not apply to the current state.
	ErrInvalidTransition = errors.New("invalid tracking transition")
	// ErrStartDeclined is returned when the user does not confirm the start.
	ErrStartDeclined = errors.New("start declined")
	// ErrSaveWhileActive is returned when saving during active tracking.
	ErrSaveWhileActive = errors.New("cannot save while tracking is active")
	// ErrSubscriptionFailed is returned when the location watch cannot be established.
	ErrSubscriptionFailed = errors.New("location subscription failed")
	// ErrControllerClosed is returned once the event loop has stopped.
	ErrControllerClosed = errors.New("tracking controller closed")
	// ErrNoDestination is returned by Save when no save destination is wired.
	ErrNoDestination = errors.New("no save destination configured")
)

const (
	defaultQueueSize     = 128
	subscriberBufferSize = 16
	defaultTickPeriod    = time.Second
)

// Deps are the collaborators of the controller.
type Deps struct {
	Permission  ports.PermissionProvider
	Stream      ports.LocationStream
	Timer       ports.Timer
	Destination ports.SaveDestination
	Notifier    ports.Notifier
}

// Options tune the controller.
type Options struct {
	// TickPeriod is the wall-clock period of one elapsed-time tick.
	TickPeriod time.Duration
	// Watch is passed to every location subscription.
	Watch domain.WatchOptions
	// QueueSize bounds the command/event queue.
	QueueSize int
}

// run holds the handles of one Active stretch. Each Start or Resume gets a
// new generation; events tagged with an older generation are dropped.
type run struct {
	generation   uint64
	stop         chan struct{}
	subscription ports.Subscription
	timer        ports.TimerHandle
}

// Controller is the tracking state machine. All session state is confined to
// the goroutine executing Run; commands and provider callbacks reach it
// through a single FIFO queue.
type Controller struct {
	deps Deps
	opts Options
	log  *zap.Logger

	queue     chan func()
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	running   atomic.Bool

	// Owned by the loop goroutine.
	runCtx           context.Context
	session          *domain.TrackSession
	position         *domain.Coordinate
	permissionDenied bool
	current          *run
	generation       uint64
	subscribers      map[int]chan domain.Snapshot
	nextSubscriber   int
}

// NewController creates an idle controller. Call Run to start processing.
func NewController(deps Deps, opts Options) *Controller {
	if opts.TickPeriod <= 0 {
		opts.TickPeriod = defaultTickPeriod
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = defaultQueueSize
	}
	if opts.Watch == (domain.WatchOptions{}) {
		opts.Watch = domain.DefaultWatchOptions()
	}

	return &Controller{
		deps:        deps,
		opts:        opts,
		log:         logger.Named("tracking"),
		queue:       make(chan func(), opts.QueueSize),
		quit:        make(chan struct{}),
		done:        make(chan struct{}),
		runCtx:      context.Background(),
		session:     domain.NewTrackSession(),
		subscribers: make(map[int]chan domain.Snapshot),
	}
}

// Run processes commands and events until ctx is done or Close is called.
// On return every subscription and timer has been cancelled.
func (c *Controller) Run(ctx context.Context) error {
	c.running.Store(true)
	c.runCtx = ctx
	defer close(c.done)
	defer c.shutdown()

	for {
		select {
		case op := <-c.queue:
			op()
		case <-ctx.Done():
			return ctx.Err()
		case <-c.quit:
			return nil
		}
	}
}

// Close stops the event loop and waits for it to release its handles.
func (c *Controller) Close() {
	c.closeOnce.Do(func() { close(c.quit) })
	if c.running.Load() {
		<-c.done
	}
}

// Mount requests location permission and fetches the initial position.
// A refusal is not an error: the user is notified and later sessions run
// without a location watch.
func (c *Controller) Mount(ctx context.Context) error {
	status, err := c.deps.Permission.RequestForegroundPermission(ctx)
	if err != nil {
		status = ports.PermissionDenied
		c.log.Warn("Location permission request failed", zap.Error(err))
	}

	if status != ports.PermissionGranted {
		if err := c.exec(ctx, func() error {
			c.permissionDenied = true
			c.publish()
			return nil
		}); err != nil {
			return err
		}
		c.notify(ctx, domain.PermissionDeniedNotice)
		return nil
	}

	pos, err := c.deps.Stream.CurrentPosition(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current position: %w", err)
	}

	return c.exec(ctx, func() error {
		c.position = &pos
		c.publish()
		return nil
	})
}

// Start asks for confirmation and begins a fresh session. The confirmation
// runs outside the event loop so samples and ticks keep flowing while the
// user decides. A nil confirmer declines.
func (c *Controller) Start(ctx context.Context, confirmer ports.Confirmer) error {
	if err := c.exec(ctx, func() error {
		return c.require(domain.StateIdle)
	}); err != nil {
		return err
	}

	if confirmer == nil || !confirmer.Confirm(ctx, domain.StartPrompt) {
		c.log.Info("Start declined")
		return ErrStartDeclined
	}

	return c.exec(ctx, func() error {
		if err := c.require(domain.StateIdle); err != nil {
			return err
		}
		c.session.Reset()
		if err := c.begin(); err != nil {
			return err
		}
		c.transition(domain.StateActive)
		return nil
	})
}

// Pause suspends an active session, releasing the watch and the timer.
func (c *Controller) Pause(ctx context.Context) error {
	return c.exec(ctx, func() error {
		if err := c.require(domain.StateActive); err != nil {
			return err
		}
		c.halt()
		c.transition(domain.StatePaused)
		return nil
	})
}

// Resume continues a paused session with fresh handles. Elapsed time and
// distance carry on from their paused values.
func (c *Controller) Resume(ctx context.Context) error {
	return c.exec(ctx, func() error {
		if err := c.require(domain.StatePaused); err != nil {
			return err
		}
		if err := c.begin(); err != nil {
			return err
		}
		c.transition(domain.StateActive)
		return nil
	})
}

// Stop ends an active or paused session and resets it.
func (c *Controller) Stop(ctx context.Context) error {
	return c.exec(ctx, func() error {
		if c.session.Status == domain.StateIdle {
			return c.require(domain.StateActive)
		}
		c.halt()
		from := c.session.Status
		c.session.Reset()
		c.log.Info("Tracking transition",
			zap.Stringer("from", from),
			zap.Stringer("to", domain.StateIdle),
		)
		c.publish()
		return nil
	})
}

// Save hands the current snapshot to the save destination. It is refused
// while tracking is active and never changes the session.
func (c *Controller) Save(ctx context.Context) (string, error) {
	if c.deps.Destination == nil {
		return "", ErrNoDestination
	}

	var snap domain.Snapshot
	if err := c.exec(ctx, func() error {
		if c.session.Status == domain.StateActive {
			return ErrSaveWhileActive
		}
		snap = c.snapshot()
		return nil
	}); err != nil {
		return "", err
	}

	id, err := c.deps.Destination.Save(ctx, snap)
	if err != nil {
		return "", fmt.Errorf("failed to save route: %w", err)
	}

	c.log.Info("Route saved",
		zap.String("route_id", id),
		zap.Int("points", len(snap.Path)),
		zap.Float64("distance_m", snap.TotalDistanceMeters),
	)
	c.notify(ctx, domain.RouteSavedNotice)
	return id, nil
}

// Snapshot returns the presentation view of the session.
func (c *Controller) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	var snap domain.Snapshot
	err := c.exec(ctx, func() error {
		snap = c.snapshot()
		return nil
	})
	return snap, err
}

// Subscribe returns a channel receiving a snapshot after every change.
// Slow receivers miss intermediate snapshots. The channel is closed by the
// returned cancel function or when the controller stops.
func (c *Controller) Subscribe(ctx context.Context) (<-chan domain.Snapshot, func(), error) {
	ch := make(chan domain.Snapshot, subscriberBufferSize)
	var id int
	if err := c.exec(ctx, func() error {
		id = c.nextSubscriber
		c.nextSubscriber++
		c.subscribers[id] = ch
		return nil
	}); err != nil {
		return nil, nil, err
	}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			_ = c.exec(context.Background(), func() error {
				if sub, ok := c.subscribers[id]; ok {
					delete(c.subscribers, id)
					close(sub)
				}
				return nil
			})
		})
	}
	return ch, cancel, nil
}

// exec runs fn on the loop goroutine and waits for its result.
func (c *Controller) exec(ctx context.Context, fn func() error) error {
	reply := make(chan error, 1)
	op := func() { reply <- fn() }

	select {
	case c.queue <- op:
	case <-c.quit:
		return ErrControllerClosed
	case <-c.done:
		return ErrControllerClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-reply:
		return err
	case <-c.done:
		return ErrControllerClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// post enqueues an event from a provider callback. It gives up once the
// originating run is stopped so a blocked callback never holds up Cancel.
func (c *Controller) post(stop <-chan struct{}, ev func()) {
	select {
	case c.queue <- ev:
	case <-stop:
	case <-c.quit:
	case <-c.done:
	}
}

func (c *Controller) require(state domain.TrackingState) error {
	if c.session.Status != state {
		return fmt.Errorf("%w: %s requires %s", ErrInvalidTransition, c.session.Status, state)
	}
	return nil
}

func (c *Controller) transition(to domain.TrackingState) {
	from := c.session.Status
	c.session.Status = to
	c.log.Info("Tracking transition",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
	)
	c.publish()
}

// begin starts the timer and, unless permission was refused, the location
// watch. On failure nothing is left running.
func (c *Controller) begin() error {
	c.generation++
	r := &run{
		generation: c.generation,
		stop:       make(chan struct{}),
	}
	gen, stop := r.generation, r.stop

	r.timer = c.deps.Timer.StartInterval(c.opts.TickPeriod, func() {
		c.post(stop, func() { c.handleTick(gen) })
	})

	if !c.permissionDenied {
		sub, err := c.deps.Stream.Watch(c.runCtx, c.opts.Watch, func(coord domain.Coordinate) {
			c.post(stop, func() { c.handleSample(gen, coord) })
		})
		if err != nil {
			close(r.stop)
			r.timer.Cancel()
			c.log.Error("Location watch failed", zap.Error(err))
			return fmt.Errorf("%w: %v", ErrSubscriptionFailed, err)
		}
		r.subscription = sub
	}

	c.current = r
	return nil
}

// halt releases the current handles. Closing stop first unblocks any
// callback waiting to enqueue, so the cancels below cannot deadlock.
func (c *Controller) halt() {
	r := c.current
	if r == nil {
		return
	}
	c.current = nil
	close(r.stop)
	if r.subscription != nil {
		r.subscription.Cancel()
	}
	if r.timer != nil {
		r.timer.Cancel()
	}
}

func (c *Controller) live(gen uint64) bool {
	return c.current != nil && c.current.generation == gen && c.session.Status == domain.StateActive
}

func (c *Controller) handleSample(gen uint64, coord domain.Coordinate) {
	if !c.live(gen) {
		c.log.Debug("Dropped stale sample", zap.Uint64("generation", gen), zap.Stringer("sample", coord))
		return
	}
	delta := c.session.ApplySample(coord)
	pos := coord
	c.position = &pos
	c.log.Debug("Sample accepted",
		zap.Stringer("sample", coord),
		zap.Float64("delta_m", delta),
		zap.Float64("total_m", c.session.TotalDistanceMeters),
	)
	c.publish()
}

func (c *Controller) handleTick(gen uint64) {
	if !c.live(gen) {
		c.log.Debug("Dropped stale tick", zap.Uint64("generation", gen))
		return
	}
	c.session.Tick()
	c.publish()
}

func (c *Controller) snapshot() domain.Snapshot {
	snap := domain.NewSnapshot(c.session, c.position)
	snap.PermissionGranted = !c.permissionDenied
	snap.SubscriptionActive = c.current != nil && c.current.subscription != nil
	return snap
}

func (c *Controller) publish() {
	if len(c.subscribers) == 0 {
		return
	}
	snap := c.snapshot()
	for _, ch := range c.subscribers {
		select {
		case ch <- snap:
		default:
		}
	}
}

func (c *Controller) notify(ctx context.Context, notice domain.Notice) {
	if c.deps.Notifier != nil {
		c.deps.Notifier.Notify(ctx, notice)
	}
}

func (c *Controller) shutdown() {
	c.halt()
	for id, ch := range c.subscribers {
		delete(c.subscribers, id)
		close(ch)
	}
}
