package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gotur/internal/core/cache"
	"gotur/internal/features/routes/domain"
)

const routeKeyPrefix = "route:"

// RedisRouteRepository implements ports.RouteRepository on the cache port.
type RedisRouteRepository struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisRouteRepository creates a new RedisRouteRepository. A ttl of 0
// keeps routes until they are deleted.
func NewRedisRouteRepository(c cache.Cache, ttl time.Duration) *RedisRouteRepository {
	return &RedisRouteRepository{
		cache: c,
		ttl:   ttl,
	}
}

// Save stores the route under route:<id>.
func (r *RedisRouteRepository) Save(ctx context.Context, route *domain.SavedRoute) error {
	data, err := json.Marshal(route)
	if err != nil {
		return fmt.Errorf("failed to marshal route: %w", err)
	}

	if err := r.cache.Set(ctx, routeKey(route.ID), data, r.ttl); err != nil {
		return fmt.Errorf("failed to save route to cache: %w", err)
	}

	return nil
}

// Get retrieves a route from the cache.
func (r *RedisRouteRepository) Get(ctx context.Context, id string) (*domain.SavedRoute, error) {
	data, err := r.cache.Get(ctx, routeKey(id))
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return nil, domain.ErrRouteNotFound
		}
		return nil, fmt.Errorf("failed to get route from cache: %w", err)
	}

	var route domain.SavedRoute
	if err := json.Unmarshal(data, &route); err != nil {
		return nil, fmt.Errorf("failed to unmarshal route: %w", err)
	}

	return &route, nil
}

func routeKey(id string) string {
	return routeKeyPrefix + id
}
