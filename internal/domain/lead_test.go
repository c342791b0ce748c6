package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name  string
		leads []Lead
		want  Stats
	}{
		{
			name:  "empty collection",
			leads: []Lead{},
			want:  Stats{},
		},
		{
			name:  "nil collection",
			leads: nil,
			want:  Stats{},
		},
		{
			name:  "high priority without reply",
			leads: []Lead{{Priority: "High", AIResponse: ""}},
			want:  Stats{TotalLeads: 1, HighPriority: 1, AIResponses: 0},
		},
		{
			name:  "medium priority with reply",
			leads: []Lead{{Priority: "Medium", AIResponse: "Thanks!"}},
			want:  Stats{TotalLeads: 1, HighPriority: 0, AIResponses: 1},
		},
		{
			name: "high match is case-sensitive",
			leads: []Lead{
				{Priority: "High"},
				{Priority: "high"},
				{Priority: "HIGH"},
				{Priority: " High"},
			},
			want: Stats{TotalLeads: 4, HighPriority: 1},
		},
		{
			name: "whitespace-only replies do not count",
			leads: []Lead{
				{AIResponse: "   "},
				{AIResponse: "\n\t"},
				{AIResponse: " ok "},
			},
			want: Stats{TotalLeads: 3, AIResponses: 1},
		},
		{
			name: "unknown priorities still counted in total",
			leads: []Lead{
				{Priority: "Normal", AIResponse: "Thank you for your comment!"},
				{Priority: "", AIResponse: ""},
				{Priority: "High", AIResponse: "Check your DMs"},
			},
			want: Stats{TotalLeads: 3, HighPriority: 1, AIResponses: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeStats(tt.leads))
		})
	}
}

func TestLead_ID(t *testing.T) {
	a := Lead{Source: "facebook", UserID: "u1", PostID: "p1", Timestamp: "2025-01-02T10:00:00"}
	b := a
	b.Priority = "High"
	b.AIResponse = "changed"

	assert.Equal(t, a.ID(), b.ID(), "priority and reply are not part of identity")

	c := a
	c.UserID = "u2"
	assert.NotEqual(t, a.ID(), c.ID())

	// field boundaries must not collide
	d := Lead{Source: "face", UserID: "bookx"}
	e := Lead{Source: "facebook", UserID: "x"}
	assert.NotEqual(t, d.ID(), e.ID())
}

func TestSnapshot_Connected(t *testing.T) {
	assert.False(t, Snapshot{Loading: true}.Connected())
	assert.True(t, Snapshot{}.Connected())
	assert.False(t, Snapshot{LastError: assert.AnError}.Connected())
}
