package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"lead_dashboard/internal/domain"
)

type ArchiveStateStore struct {
	db *sqlx.DB
}

func NewArchiveStateStore(db *sqlx.DB) *ArchiveStateStore {
	return &ArchiveStateStore{db: db}
}

// Get returns the stored state for backend, or a zero state if none was saved yet.
func (s *ArchiveStateStore) Get(ctx context.Context, backend string) (*domain.ArchiveState, error) {
	var state domain.ArchiveState
	query := `
		SELECT id, backend, last_archived_at, last_seq, total_archived
		FROM archive_state
		WHERE backend = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &state, query, backend)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.ArchiveState{Backend: backend}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *ArchiveStateStore) Update(ctx context.Context, state *domain.ArchiveState) error {
	query := `
		INSERT INTO archive_state (backend, last_archived_at, last_seq, total_archived)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (backend) DO UPDATE SET
			last_archived_at = EXCLUDED.last_archived_at,
			last_seq = EXCLUDED.last_seq,
			total_archived = EXCLUDED.total_archived`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		state.Backend,
		state.LastArchivedAt,
		state.LastSeq,
		state.TotalArchived,
	)
	return err
}
