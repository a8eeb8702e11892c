package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/mosg85/Angeln-Eventplaner/internal/domain"
	"github.com/mosg85/Angeln-Eventplaner/internal/service/ports"
)

// Guard serializes all access to a SnapshotStore. Every mutation runs as one
// load-full / mutate / save-full unit under a single writer, so concurrent
// requests cannot interleave partial snapshots.
type Guard struct {
	mu    sync.Mutex
	store ports.SnapshotStore
}

func NewGuard(store ports.SnapshotStore) *Guard {
	return &Guard{store: store}
}

// View runs fn against the current snapshot without persisting changes.
func (g *Guard) View(ctx context.Context, fn func(snap *domain.Snapshot) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	snap, err := g.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	return fn(snap)
}

// Update runs fn against the current snapshot and rewrites the whole store if
// fn succeeds.
func (g *Guard) Update(ctx context.Context, fn func(snap *domain.Snapshot) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	snap, err := g.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	if err := fn(snap); err != nil {
		return err
	}

	if err := g.store.Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	return nil
}
