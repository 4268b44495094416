package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/match-league/internal/engine"
)

func init() {
	factory := func(u *url.URL, opts Options) (Provider, error) {
		return NewHTTP(u.String(), opts.Timeout), nil
	}
	Register("http", factory)
	Register("https", factory)
}

// maxResponseBytes caps catalog response bodies.
const maxResponseBytes = 1 << 20

// HTTP fetches catalogs from a JSON API. The default batch is served at
// {base}/catalog and batch n at {base}/catalog/n.
type HTTP struct {
	base   string
	client *http.Client
}

// NewHTTP creates an HTTP provider rooted at base.
func NewHTTP(base string, timeout time.Duration) *HTTP {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTP{
		base:   strings.TrimRight(base, "/"),
		client: &http.Client{Timeout: timeout},
	}
}

// FetchCatalog implements Provider.
func (h *HTTP) FetchCatalog(ctx context.Context, batchID int64) (engine.Catalog, error) {
	endpoint := h.base + "/catalog"
	if batchID != 0 {
		endpoint += "/" + strconv.FormatInt(batchID, 10)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return engine.Catalog{}, fmt.Errorf("catalog: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return engine.Catalog{}, fmt.Errorf("catalog: fetch %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return engine.Catalog{}, fmt.Errorf("%w: %d", ErrNotFound, batchID)
	}
	if resp.StatusCode != http.StatusOK {
		return engine.Catalog{}, fmt.Errorf("catalog: fetch %s: status %s", endpoint, resp.Status)
	}

	var body Response
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		return engine.Catalog{}, fmt.Errorf("catalog: decode %s: %w", endpoint, err)
	}
	return body.Catalog()
}
