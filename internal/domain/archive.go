package domain

import "time"

// ArchiveStats holds statistics about one archive pass.
type ArchiveStats struct {
	Seen      int
	New       int
	Updated   int
	Skipped   int
	Errors    int
	Published int
	Duration  time.Duration
}

// ArchiveState tracks archive progress per backend.
type ArchiveState struct {
	ID             int64     `db:"id"`
	Backend        string    `db:"backend"`
	LastArchivedAt time.Time `db:"last_archived_at"`
	LastSeq        int64     `db:"last_seq"`
	TotalArchived  int64     `db:"total_archived"`
}
