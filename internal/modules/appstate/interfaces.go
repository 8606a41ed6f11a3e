package appstate

import (
	"context"

	"inspectbook/internal/domain"
)

// SnapshotStore is the durable single-key snapshot area the manager syncs to.
// Load returns (nil, nil) when no snapshot exists.
type SnapshotStore interface {
	Load(ctx context.Context) (*domain.AppState, error)
	Save(ctx context.Context, state *domain.AppState) error
	Clear(ctx context.Context) error
}
