package catalog

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/match-league/internal/engine"
)

// Load fetches batchID from source and never fails: any error, or an empty
// batch, is logged and the built-in catalog is returned instead.
func Load(ctx context.Context, source string, batchID int64, opts Options, logger *log.Logger) engine.Catalog {
	if logger == nil {
		logger = log.Default()
	}

	c, err := Fetch(ctx, source, batchID, opts)
	if err != nil {
		logger.Warn("using built-in catalog", "source", source, "batch", batchID, "error", err)
		return engine.BuiltinCatalog()
	}

	logger.Debug("catalog loaded", "source", source, "batch", c.BatchID, "name", c.BatchName, "images", c.Len())
	return c
}

// Fetch opens source and fetches batchID, reporting empty batches as
// ErrEmptyCatalog.
func Fetch(ctx context.Context, source string, batchID int64, opts Options) (engine.Catalog, error) {
	p, err := Open(source, opts)
	if err != nil {
		return engine.Catalog{}, err
	}
	c, err := p.FetchCatalog(ctx, batchID)
	if err != nil {
		return engine.Catalog{}, err
	}
	if c.IsEmpty() {
		return engine.Catalog{}, ErrEmptyCatalog
	}
	return c, nil
}
