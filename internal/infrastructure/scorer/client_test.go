package scorer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campus-start/internal/domain/matchmaking"
)

func TestRank_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/match" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var req rankRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.IdeaText == "" || len(req.Users) != 2 {
			t.Errorf("unexpected payload: ideaText=%q users=%d", req.IdeaText, len(req.Users))
		}

		out := []matchmaking.ScoredResult{
			{UserID: "u1", Score: 0.9},
			{UserID: "u2", Score: 0.7},
		}
		_ = json.NewEncoder(w).Encode(out)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil)
	got, err := c.Rank(context.Background(), "fintech app go postgres", []matchmaking.Candidate{
		{UserID: "u1", Text: "go postgres"},
		{UserID: "u2", Text: ""},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 || got[0].UserID != "u1" || got[1].UserID != "u2" {
		t.Fatalf("unexpected result: %+v", got)
	}
	if got[0].Score != 0.9 {
		t.Fatalf("expected score 0.9, got %v", got[0].Score)
	}
}

func TestRank_Non2xxIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil)
	_, err := c.Rank(context.Background(), "text", []matchmaking.Candidate{{UserID: "u1"}})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestRank_MalformedBodyIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, nil)
	_, err := c.Rank(context.Background(), "text", []matchmaking.Candidate{{UserID: "u1"}})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestRank_TimeoutIsUnavailable(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer func() {
		close(block)
		srv.Close()
	}()

	c := NewClient(srv.URL, 50*time.Millisecond, nil)
	_, err := c.Rank(context.Background(), "text", []matchmaking.Candidate{{UserID: "u1"}})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestRank_ContextCancelPropagates(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer func() {
		close(block)
		srv.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	c := NewClient(srv.URL, 5*time.Second, nil)
	_, err := c.Rank(ctx, "text", []matchmaking.Candidate{{UserID: "u1"}})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestRank_EmptyCandidatesRejected(t *testing.T) {
	c := NewClient("http://localhost:1", time.Second, nil)
	if _, err := c.Rank(context.Background(), "text", nil); err == nil {
		t.Fatalf("expected error for empty candidate set")
	}
}

func TestNewClient_EmptyBaseURL(t *testing.T) {
	if c := NewClient("   ", time.Second, nil); c != nil {
		t.Fatalf("expected nil client for empty base URL")
	}
}
