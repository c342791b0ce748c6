package domain

import (
	"strings"
	"time"
)

type SourceKind int

const (
	SourceGeneric SourceKind = iota
	SourceFacebook
	SourceInstagram
)

func (k SourceKind) String() string {
	switch k {
	case SourceFacebook:
		return "facebook"
	case SourceInstagram:
		return "instagram"
	default:
		return "generic"
	}
}

// ClassifySource matches the facebook and instagram literals case-insensitively.
func ClassifySource(source string) SourceKind {
	switch strings.ToLower(source) {
	case "facebook":
		return SourceFacebook
	case "instagram":
		return SourceInstagram
	default:
		return SourceGeneric
	}
}

// PriorityRank orders priorities; higher ranks sort first.
type PriorityRank int

const (
	PriorityUnknown PriorityRank = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

func (r PriorityRank) String() string {
	switch r {
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	default:
		return "unknown"
	}
}

// RankPriority is case-insensitive. Values outside high/medium/low are unknown.
func RankPriority(priority string) PriorityRank {
	switch strings.ToLower(priority) {
	case "high":
		return PriorityHigh
	case "medium":
		return PriorityMedium
	case "low":
		return PriorityLow
	default:
		return PriorityUnknown
	}
}

// ClockPlaceholder is rendered for timestamps that cannot be parsed.
const ClockPlaceholder = "--:--"

const clockLayout = "03:04 PM"

// naiveLayouts cover Python's datetime.isoformat() without an offset.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// ParseTimestamp accepts RFC 3339 and offset-less ISO-8601. Offset-less
// values are read in loc.
func ParseTimestamp(ts string, loc *time.Location) (time.Time, bool) {
	ts = strings.TrimSpace(ts)
	if ts == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t, true
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, ts, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatClockTime renders hour:minute on a 12-hour clock in loc.
func FormatClockTime(ts string, loc *time.Location) string {
	t, ok := ParseTimestamp(ts, loc)
	if !ok {
		return ClockPlaceholder
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(clockLayout)
}
