package ports

import (
	"context"

	"gotur/internal/features/routes/domain"
	tracking "gotur/internal/features/tracking/domain"
)

// RouteService defines the primary port for saved route operations.
type RouteService interface {
	SaveSnapshot(ctx context.Context, snap tracking.Snapshot) (*domain.SavedRoute, error)
	GetRoute(ctx context.Context, id string) (*domain.SavedRoute, error)
}

// RouteRepository defines the secondary port for saved route storage.
type RouteRepository interface {
	Save(ctx context.Context, route *domain.SavedRoute) error
	// Get returns domain.ErrRouteNotFound when no route has the id.
	Get(ctx context.Context, id string) (*domain.SavedRoute, error)
}
