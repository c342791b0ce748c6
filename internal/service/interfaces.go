package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"lead_dashboard/internal/domain"
)

// Source is the Leads Endpoint.
type Source interface {
	FetchLeads(ctx context.Context) ([]domain.Lead, error)
}

// SnapshotObserver is told about every applied refresh. Observe must not block.
type SnapshotObserver interface {
	Observe(snapshot domain.Snapshot)
}

type LeadArchive interface {
	Upsert(ctx context.Context, lead *domain.Lead) error
	GetExisting(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Lead, error)
	Count(ctx context.Context) (int64, error)
}

type ArchiveStateStore interface {
	Get(ctx context.Context, backend string) (*domain.ArchiveState, error)
	Update(ctx context.Context, state *domain.ArchiveState) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, lead *domain.Lead, isNew bool) error
	Close() error
}
