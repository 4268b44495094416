package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/match-league/internal/catalog"
	"github.com/vovakirdan/match-league/internal/config"
	"github.com/vovakirdan/match-league/internal/platform/tui"
	"github.com/vovakirdan/match-league/internal/results"
	"github.com/vovakirdan/match-league/internal/storage"
)

// loadConfig loads the game config named by --config or found on the search
// path.
func loadConfig(logger *log.Logger) (config.GameConfig, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", source)
	return cfg, nil
}

// buildSetup converts the config and fetches the catalog. Catalog failures
// fall back to the built-in images.
func buildSetup(ctx context.Context, cfg config.GameConfig, source string, batchID int64, logger *log.Logger) (tui.Setup, error) {
	presets, err := cfg.EnginePresets()
	if err != nil {
		return tui.Setup{}, err
	}
	rules, err := cfg.EngineRules()
	if err != nil {
		return tui.Setup{}, err
	}

	opts := catalog.Options{Timeout: cfg.Catalog.Timeout}
	return tui.Setup{
		Presets: presets,
		Rules:   rules,
		Catalog: catalog.Load(ctx, source, batchID, opts, logger),
	}, nil
}

// buildSubmitter combines the local store and the remote endpoint, whichever
// are available. It returns nil when neither is.
func buildSubmitter(store *storage.Store, cfg config.GameConfig) results.Submitter {
	var multi results.Multi
	if store != nil {
		multi = append(multi, store)
	}
	if cfg.Results.SubmitURL != "" {
		multi = append(multi, results.NewHTTPSubmitter(cfg.Results.SubmitURL, cfg.Results.Timeout))
	}

	switch len(multi) {
	case 0:
		return nil
	case 1:
		return multi[0]
	default:
		return multi
	}
}

// openStore opens the results database. A failure is logged and play
// continues without local results.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// errConfig wraps config errors for the user.
func errConfig(err error) error {
	return fmt.Errorf("cannot load config: %w", err)
}
