package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// leadNamespace scopes the name-based lead IDs.
var leadNamespace = uuid.MustParse("4b1f5a62-8f3e-4d7a-9c2e-6a0d3b7e91c4")

// Lead is one captured social-media comment and its processing outcome,
// exactly as the backend reported it.
type Lead struct {
	Timestamp   string
	Source      string // "facebook", "instagram", anything else is generic
	UserID      string
	CommentText string
	PostID      string
	Priority    string // "High", "Medium", "Low" or whatever the backend sent
	AIResponse  string // empty means no reply was generated
}

// ID derives a stable identifier from the fields the backend never rewrites.
func (l Lead) ID() uuid.UUID {
	name := strings.Join([]string{l.Source, l.UserID, l.PostID, l.Timestamp}, "\x00")
	return uuid.NewSHA1(leadNamespace, []byte(name))
}

// HasAIResponse reports whether a non-blank reply was generated.
func (l Lead) HasAIResponse() bool {
	return strings.TrimSpace(l.AIResponse) != ""
}

// Stats is recomputed from scratch on every successful refresh.
type Stats struct {
	TotalLeads   int
	HighPriority int
	AIResponses  int
}

// ComputeStats counts the leads. High priority is a case-sensitive match on "High".
func ComputeStats(leads []Lead) Stats {
	stats := Stats{TotalLeads: len(leads)}
	for _, l := range leads {
		if l.Priority == "High" {
			stats.HighPriority++
		}
		if l.HasAIResponse() {
			stats.AIResponses++
		}
	}
	return stats
}

// FetchOutcome is the result of one refresh attempt. Err == nil means success.
type FetchOutcome struct {
	Seq   uint64
	Leads []Lead
	Err   error
	At    time.Time
}

// Succeeded reports whether the attempt produced a lead collection.
func (o FetchOutcome) Succeeded() bool {
	return o.Err == nil
}

// Snapshot is a consistent read of the lead store.
type Snapshot struct {
	Leads      []Lead
	Stats      Stats
	LastUpdate time.Time // zero until the first successful refresh
	LastError  error     // set by the most recent attempt if it failed
	Loading    bool      // true until the first attempt has been applied
	Seq        uint64    // sequence number of the last applied attempt
}

// Connected reports whether the most recent attempt succeeded.
func (s Snapshot) Connected() bool {
	return s.LastError == nil && !s.Loading
}
