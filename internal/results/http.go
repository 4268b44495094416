package results

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vovakirdan/match-league/internal/engine"
)

// Response is the JSON reply to a result submission.
type Response struct {
	Success  bool   `json:"success"`
	ResultID int64  `json:"resultId,omitempty"`
	Ranking  int    `json:"ranking,omitempty"`
	Message  string `json:"message,omitempty"`
}

// HTTPSubmitter posts results as form data to a remote endpoint.
type HTTPSubmitter struct {
	endpoint string
	client   *http.Client
}

// NewHTTPSubmitter creates a submitter for endpoint.
func NewHTTPSubmitter(endpoint string, timeout time.Duration) *HTTPSubmitter {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPSubmitter{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Submit implements Submitter.
func (h *HTTPSubmitter) Submit(ctx context.Context, r engine.Result) (Receipt, error) {
	values, err := NewForm(r).Encode()
	if err != nil {
		return Receipt{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return Receipt{}, fmt.Errorf("results: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return Receipt{}, fmt.Errorf("results: post %s: %w", h.endpoint, err)
	}
	defer resp.Body.Close()

	var body Response
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&body); err != nil {
		return Receipt{}, fmt.Errorf("results: post %s: status %s: %w", h.endpoint, resp.Status, err)
	}
	if !body.Success {
		return Receipt{}, fmt.Errorf("%w: %s", ErrRejected, body.Message)
	}
	return Receipt{ResultID: body.ResultID, Ranking: body.Ranking, Message: body.Message}, nil
}
