package service

import (
	"context"
	"fmt"
	"time"

	"gotur/internal/features/routes/domain"
	"gotur/internal/features/routes/ports"
	tracking "gotur/internal/features/tracking/domain"

	"github.com/google/uuid"
)

// RouteServiceImpl implements ports.RouteService. It is also the tracking
// controller's save destination.
type RouteServiceImpl struct {
	repo  ports.RouteRepository
	newID func() string
	now   func() time.Time
}

// NewRouteService creates a new RouteServiceImpl.
func NewRouteService(repo ports.RouteRepository) *RouteServiceImpl {
	return &RouteServiceImpl{
		repo:  repo,
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// SaveSnapshot stores the snapshot under a new id.
func (s *RouteServiceImpl) SaveSnapshot(ctx context.Context, snap tracking.Snapshot) (*domain.SavedRoute, error) {
	route := domain.NewSavedRoute(s.newID(), snap, s.now())

	if err := s.repo.Save(ctx, route); err != nil {
		return nil, fmt.Errorf("service: failed to save route: %w", err)
	}

	return route, nil
}

// Save implements the tracking save destination.
func (s *RouteServiceImpl) Save(ctx context.Context, snap tracking.Snapshot) (string, error) {
	route, err := s.SaveSnapshot(ctx, snap)
	if err != nil {
		return "", err
	}
	return route.ID, nil
}

// GetRoute retrieves a saved route by id.
func (s *RouteServiceImpl) GetRoute(ctx context.Context, id string) (*domain.SavedRoute, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrRouteNotFound
	}

	route, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get route: %w", err)
	}

	return route, nil
}
