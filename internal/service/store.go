package service

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"lead_dashboard/internal/domain"
)

// LeadStore holds the last known good lead collection and the outcome of the
// most recent refresh. Apply is the only way its state changes.
type LeadStore struct {
	source    Source
	observers []SnapshotObserver
	logger    *slog.Logger
	now       func() time.Time

	seq atomic.Uint64

	mu    sync.RWMutex
	state domain.Snapshot
}

func NewLeadStore(source Source, logger *slog.Logger, observers ...SnapshotObserver) *LeadStore {
	return &LeadStore{
		source:    source,
		observers: observers,
		logger:    logger,
		now:       time.Now,
		state: domain.Snapshot{
			Leads:   []domain.Lead{},
			Loading: true,
		},
	}
}

// Subscribe adds an observer. It must be called before the first refresh.
func (s *LeadStore) Subscribe(o SnapshotObserver) {
	s.observers = append(s.observers, o)
}

// Fetch performs one request against the source without touching the store.
func (s *LeadStore) Fetch(ctx context.Context) domain.FetchOutcome {
	seq := s.seq.Add(1)
	leads, err := s.source.FetchLeads(ctx)
	if err == nil && leads == nil {
		leads = []domain.Lead{}
	}
	return domain.FetchOutcome{
		Seq:   seq,
		Leads: leads,
		Err:   err,
		At:    s.now(),
	}
}

// Apply commits an outcome. Outcomes older than the last applied one are
// discarded and reported as not applied.
func (s *LeadStore) Apply(o domain.FetchOutcome) (domain.Snapshot, bool) {
	s.mu.Lock()
	if o.Seq < s.state.Seq {
		current := s.copyLocked()
		s.mu.Unlock()
		s.logger.Debug("discarding stale refresh", "seq", o.Seq, "applied_seq", current.Seq)
		return current, false
	}

	s.state.Seq = o.Seq
	s.state.Loading = false
	if o.Succeeded() {
		s.state.Leads = o.Leads
		s.state.Stats = domain.ComputeStats(o.Leads)
		s.state.LastUpdate = s.now()
		s.state.LastError = nil
	} else {
		s.state.LastError = o.Err
	}
	snap := s.copyLocked()
	s.mu.Unlock()

	if o.Succeeded() {
		s.logger.Debug("leads refreshed",
			"seq", o.Seq,
			"total", snap.Stats.TotalLeads,
			"high_priority", snap.Stats.HighPriority,
			"ai_responses", snap.Stats.AIResponses,
		)
	} else {
		s.logger.Warn("refresh failed, keeping previous leads",
			"seq", o.Seq,
			"error", o.Err,
			"retained", snap.Stats.TotalLeads,
		)
	}

	for _, obs := range s.observers {
		obs.Observe(snap)
	}

	return snap, true
}

// Refresh fetches and applies in one step.
func (s *LeadStore) Refresh(ctx context.Context) domain.Snapshot {
	snap, _ := s.Apply(s.Fetch(ctx))
	return snap
}

// Snapshot returns a copy of the current state.
func (s *LeadStore) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyLocked()
}

func (s *LeadStore) copyLocked() domain.Snapshot {
	snap := s.state
	snap.Leads = make([]domain.Lead, len(s.state.Leads))
	copy(snap.Leads, s.state.Leads)
	return snap
}
