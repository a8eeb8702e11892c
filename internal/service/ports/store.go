package ports

import (
	"context"

	"github.com/mosg85/Angeln-Eventplaner/internal/domain"
)

// SnapshotStore persists the complete dataset. Load must return a usable
// snapshot even when no data exists yet (a seeded default).
type SnapshotStore interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
	Save(ctx context.Context, snap *domain.Snapshot) error
}
