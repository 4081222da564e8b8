package adapter

import (
	"context"
	"errors"
	"sync"
	"time"

	"gotur/internal/features/tracking/domain"
	"gotur/internal/features/tracking/ports"

	"go.uber.org/zap"
)

// ErrEmptyRoute is returned when a route has no points to replay.
var ErrEmptyRoute = errors.New("route has no points")

// ErrWatchActive is returned when Watch is called while another watch runs.
var ErrWatchActive = errors.New("location watch already active")

// SimulatedStream replays a fixed route as a location source.
//
// Samples are emitted one per MinTimeInterval. Points closer than
// MinDistanceMeters to the previously emitted sample are consumed without
// being delivered. The replay position survives cancellation, so a new
// watch continues where the previous one stopped.
type SimulatedStream struct {
	route  []domain.Coordinate
	logger *zap.Logger

	mu        sync.Mutex
	cursor    int
	watching  bool
	exhausted chan struct{}
	once      sync.Once
}

// NewSimulatedStream creates a stream over route.
func NewSimulatedStream(route []domain.Coordinate, logger *zap.Logger) (*SimulatedStream, error) {
	if len(route) == 0 {
		return nil, ErrEmptyRoute
	}
	return &SimulatedStream{
		route:     append([]domain.Coordinate(nil), route...),
		logger:    logger,
		exhausted: make(chan struct{}),
	}, nil
}

// CurrentPosition returns the point the replay is positioned at, or the
// final point once the route is exhausted.
func (s *SimulatedStream) CurrentPosition(ctx context.Context) (domain.Coordinate, error) {
	if err := ctx.Err(); err != nil {
		return domain.Coordinate{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor >= len(s.route) {
		return s.route[len(s.route)-1], nil
	}
	return s.route[s.cursor], nil
}

// Exhausted is closed once every point of the route has been consumed.
func (s *SimulatedStream) Exhausted() <-chan struct{} {
	return s.exhausted
}

// Remaining returns how many points have not been consumed yet.
func (s *SimulatedStream) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.route) - s.cursor
}

// Watch implements ports.LocationStream. The first sample is delivered
// immediately.
func (s *SimulatedStream) Watch(ctx context.Context, opts domain.WatchOptions, onSample func(domain.Coordinate)) (ports.Subscription, error) {
	s.mu.Lock()
	if s.watching {
		s.mu.Unlock()
		return nil, ErrWatchActive
	}
	s.watching = true
	s.mu.Unlock()

	interval := opts.MinTimeInterval
	if interval <= 0 {
		interval = domain.DefaultWatchOptions().MinTimeInterval
	}

	sub := &replaySubscription{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	s.logger.Debug("Location watch started",
		zap.String("accuracy", string(opts.Accuracy)),
		zap.Duration("interval", interval),
		zap.Float64("min_distance_m", opts.MinDistanceMeters),
	)

	go s.replay(ctx, sub, interval, opts.MinDistanceMeters, onSample)

	return sub, nil
}

func (s *SimulatedStream) replay(ctx context.Context, sub *replaySubscription, interval time.Duration, minDistance float64, onSample func(domain.Coordinate)) {
	defer close(sub.done)
	defer func() {
		s.mu.Lock()
		s.watching = false
		s.mu.Unlock()
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last *domain.Coordinate
	for {
		c, ok := s.peek()
		if !ok {
			s.once.Do(func() { close(s.exhausted) })
			s.logger.Info("Simulated route exhausted")
			return
		}

		if last == nil || domain.DistanceMeters(*last, c) >= minDistance {
			select {
			case <-sub.stop:
				return
			case <-ctx.Done():
				return
			default:
			}
			onSample(c)
			last = &c
		}
		s.advance()

		select {
		case <-sub.stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *SimulatedStream) peek() (domain.Coordinate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor >= len(s.route) {
		return domain.Coordinate{}, false
	}
	return s.route[s.cursor], true
}

func (s *SimulatedStream) advance() {
	s.mu.Lock()
	s.cursor++
	s.mu.Unlock()
}

type replaySubscription struct {
	once sync.Once
	stop chan struct{}
	done chan struct{}
}

// Cancel stops the replay and waits for an in-flight delivery to return.
func (r *replaySubscription) Cancel() {
	r.once.Do(func() { close(r.stop) })
	<-r.done
}
