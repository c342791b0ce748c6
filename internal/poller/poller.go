package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"lead_dashboard/internal/domain"
)

// DefaultInterval is the refresh cadence of the dashboard.
const DefaultInterval = 5 * time.Second

const refreshTimeout = 30 * time.Second

var ErrAlreadyActive = errors.New("poller already active")

// Refresher fetches and commits lead outcomes. Fetch must not mutate state.
type Refresher interface {
	Fetch(ctx context.Context) domain.FetchOutcome
	Apply(o domain.FetchOutcome) (domain.Snapshot, bool)
}

type State int

const (
	Inactive State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "inactive"
}

// Poller refreshes immediately on Start and then on every tick until Stop.
// Outcomes that complete after Stop are discarded.
type Poller struct {
	refresher Refresher
	interval  time.Duration
	logger    *slog.Logger

	// commits hold the read lock, transitions the write lock
	mu     sync.RWMutex
	state  State
	stop   chan struct{}
	manual chan struct{}

	inflight sync.WaitGroup
}

func New(refresher Refresher, interval time.Duration, logger *slog.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		refresher: refresher,
		interval:  interval,
		logger:    logger,
		manual:    make(chan struct{}, 1),
	}
}

// State reports whether the poller is running.
func (p *Poller) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Start blocks until Stop is called or ctx is done. It returns nil after
// Stop and ctx.Err() after cancellation.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.state == Active {
		p.mu.Unlock()
		return ErrAlreadyActive
	}
	p.state = Active
	stop := make(chan struct{})
	p.stop = stop
	p.mu.Unlock()

	defer p.inflight.Wait()

	p.logger.Info("poller started", "interval", p.interval)

	p.spawnRefresh(ctx, "initial")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.deactivate()
			p.logger.Info("poller stopped", "reason", ctx.Err())
			return ctx.Err()
		case <-stop:
			p.logger.Info("poller stopped")
			return nil
		case <-ticker.C:
			p.spawnRefresh(ctx, "timer")
		case <-p.manual:
			p.spawnRefresh(ctx, "manual")
		}
	}
}

// Stop disarms the timer. A refresh already in flight finishes but is not applied.
func (p *Poller) Stop() {
	p.deactivate()
}

// Trigger asks for an extra refresh alongside the timer. It reports false
// when the poller is inactive.
func (p *Poller) Trigger() bool {
	if p.State() != Active {
		return false
	}
	select {
	case p.manual <- struct{}{}:
	default:
	}
	return true
}

func (p *Poller) deactivate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Inactive {
		return
	}
	p.state = Inactive
	close(p.stop)
}

// spawnRefresh runs one refresh off the loop so a slow backend cannot delay
// the next tick. Overlapping outcomes are ordered by their sequence numbers.
func (p *Poller) spawnRefresh(ctx context.Context, trigger string) {
	p.inflight.Add(1)
	go func() {
		defer p.inflight.Done()
		p.runRefresh(ctx, trigger)
	}()
}

func (p *Poller) runRefresh(ctx context.Context, trigger string) {
	if p.State() != Active {
		return
	}

	refreshCtx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	outcome := p.refresher.Fetch(refreshCtx)

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.state != Active {
		p.logger.Debug("discarding refresh completed after stop", "seq", outcome.Seq, "trigger", trigger)
		return
	}

	if _, applied := p.refresher.Apply(outcome); !applied {
		return
	}
	if outcome.Err != nil {
		p.logger.Warn("refresh failed", "trigger", trigger, "seq", outcome.Seq, "error", outcome.Err)
	}
}
