package leads

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"lead_dashboard/internal/domain"
)

type ClientTestSuite struct {
	suite.Suite
	ctx    context.Context
	logger *slog.Logger
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) newClient(h http.HandlerFunc) *Client {
	srv := httptest.NewServer(h)
	s.T().Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL + "/", APIKey: "secret", Timeout: 2 * time.Second}, s.logger)
}

func (s *ClientTestSuite) TestFetchLeads_SendsKeyAndParses() {
	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodGet, r.Method)
		s.Equal("/leads", r.URL.Path)
		s.Equal("secret", r.Header.Get("X-API-Key"))
		s.Equal("application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"total_leads": 1, "leads": [{
			"timestamp": "2025-03-01T09:30:12.123456",
			"source": "facebook",
			"user_id": "1234",
			"comment_text": "How much is it?",
			"post_id": "p_1",
			"priority": "High",
			"ai_response": "Check your DMs!"
		}]}`)
	})

	leads, err := client.FetchLeads(s.ctx)
	s.Require().NoError(err)
	s.Equal([]domain.Lead{{
		Timestamp:   "2025-03-01T09:30:12.123456",
		Source:      "facebook",
		UserID:      "1234",
		CommentText: "How much is it?",
		PostID:      "p_1",
		Priority:    "High",
		AIResponse:  "Check your DMs!",
	}}, leads)
}

func (s *ClientTestSuite) TestFetchLeads_EmptyAndAbsent() {
	for _, body := range []string{`{"leads": []}`, `{}`, `{"leads": null}`, `{"total_leads": 0}`} {
		client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, body)
		})

		leads, err := client.FetchLeads(s.ctx)
		s.Require().NoError(err, body)
		s.NotNil(leads, body)
		s.Empty(leads, body)
	}
}

func (s *ClientTestSuite) TestFetchLeads_ToleratesMalformedFields() {
	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"leads": [
			{"user_id": 42, "priority": null, "ai_response": {"text": "x"}, "source": true},
			7,
			{"comment_text": "only this"}
		]}`)
	})

	leads, err := client.FetchLeads(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(leads, 3)

	s.Equal("42", leads[0].UserID)
	s.Equal("", leads[0].Priority)
	s.Equal("", leads[0].AIResponse)
	s.Equal("true", leads[0].Source)
	s.Equal(domain.Lead{}, leads[1])
	s.Equal("only this", leads[2].CommentText)
	s.Equal("", leads[2].Timestamp)
}

func (s *ClientTestSuite) TestFetchLeads_Unauthorized() {
	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Invalid API Key"}`, http.StatusUnauthorized)
	})

	leads, err := client.FetchLeads(s.ctx)
	s.Nil(leads)
	s.ErrorIs(err, ErrInvalidAPIKey)
}

func (s *ClientTestSuite) TestFetchLeads_StatusError() {
	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.FetchLeads(s.ctx)
	var httpErr *HTTPError
	s.Require().ErrorAs(err, &httpErr)
	s.Equal(http.StatusInternalServerError, httpErr.StatusCode)
	s.Contains(err.Error(), "500")
	s.False(errors.Is(err, ErrInvalidAPIKey))
}

func (s *ClientTestSuite) TestFetchLeads_MalformedBody() {
	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<html>not json</html>`)
	})

	_, err := client.FetchLeads(s.ctx)
	var tErr *TransportError
	s.Require().ErrorAs(err, &tErr)
	s.Equal("decode response", tErr.Op)
}

func (s *ClientTestSuite) TestFetchLeads_LeadsNotAnArray() {
	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"leads": "nope"}`)
	})

	_, err := client.FetchLeads(s.ctx)
	var tErr *TransportError
	s.ErrorAs(err, &tErr)
}

func (s *ClientTestSuite) TestFetchLeads_Unreachable() {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := New(Config{BaseURL: url, APIKey: "secret", Timeout: time.Second}, s.logger)

	_, err := client.FetchLeads(s.ctx)
	var tErr *TransportError
	s.Require().ErrorAs(err, &tErr)
	s.Equal("execute request", tErr.Op)
}

func (s *ClientTestSuite) TestFetchLeads_ContextCanceled() {
	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"leads": []}`)
	})

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := client.FetchLeads(ctx)
	s.ErrorIs(err, context.Canceled)
}

func (s *ClientTestSuite) TestHealth() {
	client := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/", r.URL.Path)
		s.Empty(r.Header.Get("X-API-Key"))
		_, _ = io.WriteString(w, `{
			"status": "Active",
			"service": "AI Agent Backend",
			"version": "1.0.0",
			"groq_connected": true,
			"facebook_token_configured": false,
			"api_key_configured": true
		}`)
	})

	h, err := client.Health(s.ctx)
	s.Require().NoError(err)
	s.Equal("Active", h.Status)
	s.Equal("1.0.0", h.Version)
	s.True(h.GroqConnected)
	s.False(h.FacebookTokenConfigured)
	s.True(h.APIKeyConfigured)
}

func (s *ClientTestSuite) TestBaseURL_TrimsSlash() {
	client := New(Config{BaseURL: "http://localhost:8000/"}, s.logger)
	s.Equal("http://localhost:8000", client.BaseURL())
}
