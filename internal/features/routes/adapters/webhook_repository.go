package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"gotur/internal/features/routes/domain"
)

// WebhookRouteRepository forwards saved routes to an HTTP endpoint.
// It cannot read routes back.
type WebhookRouteRepository struct {
	client *http.Client
	url    string
}

// NewWebhookRouteRepository creates a new WebhookRouteRepository.
func NewWebhookRouteRepository(client *http.Client, url string) *WebhookRouteRepository {
	return &WebhookRouteRepository{
		client: client,
		url:    url,
	}
}

// Save POSTs the route as JSON. Any 2xx response counts as stored.
func (w *WebhookRouteRepository) Save(ctx context.Context, route *domain.SavedRoute) error {
	body, err := json.Marshal(route)
	if err != nil {
		return fmt.Errorf("failed to marshal route: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", route.ID)

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	return nil
}

// Get always fails with domain.ErrNotSupported.
func (w *WebhookRouteRepository) Get(ctx context.Context, id string) (*domain.SavedRoute, error) {
	return nil, domain.ErrNotSupported
}
