package tui

import (
	"context"

	"github.com/vovakirdan/match-league/internal/core"
	"github.com/vovakirdan/match-league/internal/engine"
)

// Setup is the shared game definition every hosted session is built from.
type Setup struct {
	Presets []engine.Preset
	Rules   engine.Rules
	Catalog engine.Catalog
}

// NewEngine creates an engine for one session. onEnded may be nil.
func (s Setup) NewEngine(cfg core.RuntimeConfig, onEnded func(engine.Result)) (*engine.Engine, error) {
	return engine.New(s.Catalog, engine.Config{
		Presets: s.Presets,
		Rules:   s.Rules,
		Seed:    cfg.Seed,
		Player:  cfg.Player,
		OnEnded: onEnded,
	})
}

// HighScorer reports the best completed score. storage.Store implements it.
type HighScorer interface {
	HighScore(ctx context.Context) (int, error)
}
