package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"lead_dashboard/internal/domain"
)

type leadRow struct {
	ID          uuid.UUID `db:"id"`
	Timestamp   string    `db:"lead_timestamp"`
	Source      string    `db:"source"`
	UserID      string    `db:"user_id"`
	CommentText string    `db:"comment_text"`
	PostID      string    `db:"post_id"`
	Priority    string    `db:"priority"`
	AIResponse  string    `db:"ai_response"`
}

func (r leadRow) toDomain() domain.Lead {
	return domain.Lead{
		Timestamp:   r.Timestamp,
		Source:      r.Source,
		UserID:      r.UserID,
		CommentText: r.CommentText,
		PostID:      r.PostID,
		Priority:    r.Priority,
		AIResponse:  r.AIResponse,
	}
}

type LeadArchive struct {
	db *sqlx.DB
}

func NewLeadArchive(db *sqlx.DB) *LeadArchive {
	return &LeadArchive{db: db}
}

// Upsert inserts the lead or refreshes the fields the backend may still change.
func (s *LeadArchive) Upsert(ctx context.Context, lead *domain.Lead) error {
	query := `
		INSERT INTO leads (
			id, lead_timestamp, source, user_id, comment_text, post_id, priority, ai_response
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (id) DO UPDATE SET
			comment_text = EXCLUDED.comment_text,
			priority = EXCLUDED.priority,
			ai_response = EXCLUDED.ai_response,
			updated_at = NOW()
		WHERE leads.priority IS DISTINCT FROM EXCLUDED.priority
			OR leads.ai_response IS DISTINCT FROM EXCLUDED.ai_response
			OR leads.comment_text IS DISTINCT FROM EXCLUDED.comment_text`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		lead.ID(),
		lead.Timestamp,
		lead.Source,
		lead.UserID,
		lead.CommentText,
		lead.PostID,
		lead.Priority,
		lead.AIResponse,
	)
	return err
}

func (s *LeadArchive) GetExisting(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Lead, error) {
	if len(ids) == 0 {
		return make(map[uuid.UUID]domain.Lead), nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}

	query := `
		SELECT id, lead_timestamp, source, user_id, comment_text, post_id, priority, ai_response
		FROM leads
		WHERE id = ANY($1::uuid[])`

	var rows []leadRow
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, pq.Array(keys)); err != nil {
		return nil, err
	}

	result := make(map[uuid.UUID]domain.Lead, len(rows))
	for _, r := range rows {
		result[r.ID] = r.toDomain()
	}
	return result, nil
}

// Count returns the number of archived leads.
func (s *LeadArchive) Count(ctx context.Context) (int64, error) {
	var n int64
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &n, "SELECT COUNT(*) FROM leads")
	return n, err
}
