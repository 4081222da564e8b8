package adapter

import (
	"context"
	"fmt"
	"strings"

	"gotur/internal/features/tracking/ports"
)

// StaticPermission answers every permission request with a fixed status.
// It stands in for the device prompt on headless deployments.
type StaticPermission struct {
	status ports.PermissionStatus
}

// NewStaticPermission parses "granted" or "denied".
func NewStaticPermission(status string) (*StaticPermission, error) {
	switch ports.PermissionStatus(strings.ToLower(strings.TrimSpace(status))) {
	case ports.PermissionGranted:
		return &StaticPermission{status: ports.PermissionGranted}, nil
	case ports.PermissionDenied:
		return &StaticPermission{status: ports.PermissionDenied}, nil
	default:
		return nil, fmt.Errorf("unknown location permission %q", status)
	}
}

// RequestForegroundPermission returns the configured status.
func (p *StaticPermission) RequestForegroundPermission(ctx context.Context) (ports.PermissionStatus, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return p.status, nil
}
