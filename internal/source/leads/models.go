package leads

import (
	"bytes"
	"encoding/json"
)

// APIResponse is the body of GET /leads.
type APIResponse struct {
	TotalLeads text              `json:"total_leads"`
	Leads      []json.RawMessage `json:"leads"`
}

// LeadRecord is one element of the leads array.
type LeadRecord struct {
	Timestamp   text `json:"timestamp"`
	Source      text `json:"source"`
	UserID      text `json:"user_id"`
	CommentText text `json:"comment_text"`
	PostID      text `json:"post_id"`
	Priority    text `json:"priority"`
	AIResponse  text `json:"ai_response"`
}

// Health is the body of GET /, the backend's status document.
type Health struct {
	Status                  string `json:"status"`
	Service                 string `json:"service"`
	Version                 string `json:"version"`
	GroqConnected           bool   `json:"groq_connected"`
	FacebookTokenConfigured bool   `json:"facebook_token_configured"`
	APIKeyConfigured        bool   `json:"api_key_configured"`
}

// text decodes any JSON scalar to its textual form. Objects, arrays and
// null decode to "".
type text string

func (t *text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		*t = ""
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = text(s)
	case '{', '[', 'n':
		*t = ""
	default:
		*t = text(b)
	}
	return nil
}
