package scorer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"campus-start/internal/domain/matchmaking"
)

// ErrUnavailable covers every failure of the external scoring service:
// unreachable, timed out, non-2xx, or a body that does not parse. The
// pipeline fails closed on it; scores are never fabricated locally.
var ErrUnavailable = errors.New("scoring service unavailable")

// Client ranks candidates against an idea's text via the external ML
// service. Implementations must not mutate any stored state.
type Client interface {
	Rank(ctx context.Context, ideaText string, candidates []matchmaking.Candidate) ([]matchmaking.ScoredResult, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

type rankRequest struct {
	IdeaText string                  `json:"ideaText"`
	Users    []matchmaking.Candidate `json:"users"`
}

func NewClient(baseURL string, timeout time.Duration, logger *log.Logger) Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *httpClient) Rank(ctx context.Context, ideaText string, candidates []matchmaking.Candidate) ([]matchmaking.ScoredResult, error) {
	if c == nil || c.client == nil {
		return nil, ErrUnavailable
	}
	if len(candidates) == 0 {
		return nil, errors.New("empty candidate set")
	}
	endpoint := c.baseURL + "/match"

	b, err := json.Marshal(rankRequest{IdeaText: ideaText, Users: candidates})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Printf("[Scorer] Rank request failed endpoint=%s err=%v", endpoint, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		if c.logger != nil {
			c.logger.Printf("[Scorer] Rank error endpoint=%s status=%d body=%q", endpoint, resp.StatusCode, bodyStr)
		}
		return nil, fmt.Errorf("%w: status=%d", ErrUnavailable, resp.StatusCode)
	}

	var out []matchmaking.ScoredResult
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&out); err != nil {
		if c.logger != nil {
			c.logger.Printf("[Scorer] Rank malformed response endpoint=%s err=%v", endpoint, err)
		}
		return nil, fmt.Errorf("%w: malformed response: %v", ErrUnavailable, err)
	}
	return out, nil
}

var _ Client = (*httpClient)(nil)
