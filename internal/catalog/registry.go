// Package catalog loads the image catalog a session is played with. Sources
// are addressed by URL and resolved through a registry of providers keyed by
// scheme: builtin, file (YAML catalog files) and http/https (JSON endpoints).
package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/vovakirdan/match-league/internal/engine"
)

var (
	// ErrEmptyCatalog is returned when a source yields no images.
	ErrEmptyCatalog = errors.New("catalog: no images")
	// ErrNotFound is returned when a batch does not exist at the source.
	ErrNotFound = errors.New("catalog: batch not found")
	// ErrUnknownScheme is returned for sources no provider is registered for.
	ErrUnknownScheme = errors.New("catalog: unknown source scheme")
)

// Provider fetches image catalogs from one source.
type Provider interface {
	// FetchCatalog returns the images of batchID. Zero requests the source's
	// default batch.
	FetchCatalog(ctx context.Context, batchID int64) (engine.Catalog, error)
}

// Options configures providers created by Open.
type Options struct {
	Timeout time.Duration // Per-request timeout for remote sources
}

// Factory creates a provider for a parsed source URL.
type Factory func(source *url.URL, opts Options) (Provider, error)

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a provider factory for a URL scheme.
// Typically called from an init() function.
// Panics if the scheme is already registered.
func Register(scheme string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[scheme]; exists {
		panic(fmt.Sprintf("catalog: scheme %q already registered", scheme))
	}
	factories[scheme] = f
}

// Schemes returns the registered schemes, sorted.
func Schemes() []string {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]string, 0, len(factories))
	for scheme := range factories {
		result = append(result, scheme)
	}
	sort.Strings(result)
	return result
}

// Open resolves source to a provider. An empty source or "builtin" selects
// the built-in catalog; a bare path is treated as a file source.
func Open(source string, opts Options) (Provider, error) {
	u, err := parseSource(source)
	if err != nil {
		return nil, err
	}

	mu.RLock()
	f, ok := factories[u.Scheme]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, u.Scheme)
	}
	return f(u, opts)
}

func parseSource(source string) (*url.URL, error) {
	source = strings.TrimSpace(source)
	if source == "" || source == "builtin" {
		return &url.URL{Scheme: "builtin"}, nil
	}
	if !strings.Contains(source, "://") {
		return &url.URL{Scheme: "file", Path: source}, nil
	}
	u, err := url.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("catalog: invalid source %q: %w", source, err)
	}
	return u, nil
}
