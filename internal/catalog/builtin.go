package catalog

import (
	"context"
	"fmt"
	"net/url"

	"github.com/vovakirdan/match-league/internal/engine"
)

func init() {
	Register("builtin", func(*url.URL, Options) (Provider, error) {
		return Builtin{}, nil
	})
}

// Builtin serves the eight built-in glyph images as batch 0.
type Builtin struct{}

// FetchCatalog implements Provider.
func (Builtin) FetchCatalog(_ context.Context, batchID int64) (engine.Catalog, error) {
	if batchID != 0 {
		return engine.Catalog{}, fmt.Errorf("%w: builtin has no batch %d", ErrNotFound, batchID)
	}
	return engine.BuiltinCatalog(), nil
}
