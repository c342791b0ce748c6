package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"lead_dashboard/internal/domain"
)

// ArchiveService copies successful snapshots into the archive and announces
// new and changed leads.
type ArchiveService struct {
	backend   string
	archive   LeadArchive
	state     ArchiveStateStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger

	mu      sync.Mutex
	pending *domain.Snapshot
	lastSeq uint64
	wake    chan struct{}
}

func NewArchiveService(
	backend string,
	archive LeadArchive,
	state ArchiveStateStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *ArchiveService {
	return &ArchiveService{
		backend:   backend,
		archive:   archive,
		state:     state,
		txManager: txManager,
		publisher: publisher,
		logger:    logger.With("component", "archive"),
		wake:      make(chan struct{}, 1),
	}
}

// Observe queues a snapshot for Run. Only the newest successful snapshot is kept.
func (a *ArchiveService) Observe(snap domain.Snapshot) {
	if snap.LastError != nil || snap.Loading {
		return
	}

	a.mu.Lock()
	if snap.Seq <= a.lastSeq {
		a.mu.Unlock()
		return
	}
	a.lastSeq = snap.Seq
	a.pending = &snap
	a.mu.Unlock()

	select {
	case a.wake <- struct{}{}:
	default:
	}
}

// Run archives queued snapshots until ctx is done.
func (a *ArchiveService) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-a.wake:
			a.mu.Lock()
			snap := a.pending
			a.pending = nil
			a.mu.Unlock()

			if snap == nil {
				continue
			}
			if _, err := a.Archive(ctx, *snap); err != nil {
				a.logger.Error("archive failed", "seq", snap.Seq, "error", err)
			}
		}
	}
}

// Archive stores the leads of snap that are new or whose priority, reply or comment changed.
func (a *ArchiveService) Archive(ctx context.Context, snap domain.Snapshot) (*domain.ArchiveStats, error) {
	startTime := time.Now()

	toStore, isNew, err := a.filterForArchive(ctx, snap.Leads)
	if err != nil {
		return nil, fmt.Errorf("filter for archive: %w", err)
	}

	stats := &domain.ArchiveStats{
		Seen:    len(snap.Leads),
		Skipped: len(snap.Leads) - len(toStore),
	}

	for i := range toStore {
		lead := &toStore[i]
		if err := a.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			return a.archive.Upsert(txCtx, lead)
		}); err != nil {
			a.logger.Warn("failed to archive lead", "lead_id", lead.ID(), "error", err)
			stats.Errors++
			continue
		}

		if a.publisher != nil {
			if err := a.publisher.Publish(ctx, lead, isNew[i]); err != nil {
				a.logger.Warn("failed to publish lead", "lead_id", lead.ID(), "error", err)
				stats.Errors++
			} else {
				stats.Published++
			}
		}

		if isNew[i] {
			stats.New++
		} else {
			stats.Updated++
		}
	}

	if err := a.updateState(ctx, snap.Seq, stats); err != nil {
		return stats, fmt.Errorf("update archive state: %w", err)
	}

	stats.Duration = time.Since(startTime)

	a.logger.Info("archive completed",
		"seq", snap.Seq,
		"new", stats.New,
		"updated", stats.Updated,
		"skipped", stats.Skipped,
		"errors", stats.Errors,
		"published", stats.Published,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (a *ArchiveService) filterForArchive(ctx context.Context, leads []domain.Lead) ([]domain.Lead, []bool, error) {
	if len(leads) == 0 {
		return nil, nil, nil
	}

	ids := make([]uuid.UUID, 0, len(leads))
	seen := make(map[uuid.UUID]struct{}, len(leads))
	for _, l := range leads {
		id := l.ID()
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	existing, err := a.archive.GetExisting(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	var toStore []domain.Lead
	var isNew []bool
	queued := make(map[uuid.UUID]struct{}, len(leads))
	for _, lead := range leads {
		id := lead.ID()
		if _, dup := queued[id]; dup {
			continue
		}

		stored, exists := existing[id]
		switch {
		case !exists:
			toStore = append(toStore, lead)
			isNew = append(isNew, true)
		case stored.Priority != lead.Priority ||
			stored.AIResponse != lead.AIResponse ||
			stored.CommentText != lead.CommentText:
			toStore = append(toStore, lead)
			isNew = append(isNew, false)
		default:
			continue
		}
		queued[id] = struct{}{}
	}

	return toStore, isNew, nil
}

func (a *ArchiveService) updateState(ctx context.Context, seq uint64, stats *domain.ArchiveStats) error {
	state, err := a.state.Get(ctx, a.backend)
	if err != nil {
		return err
	}

	// No saved row yet: start the total from what the archive already holds,
	// which includes this pass's inserts.
	if state.ID == 0 {
		n, err := a.archive.Count(ctx)
		if err != nil {
			return fmt.Errorf("count archived leads: %w", err)
		}
		state.TotalArchived = n + int64(stats.Updated)
	} else {
		state.TotalArchived += int64(stats.New + stats.Updated)
	}

	state.Backend = a.backend
	state.LastArchivedAt = time.Now()
	state.LastSeq = int64(seq)

	return a.state.Update(ctx, state)
}
