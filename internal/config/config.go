// Package config provides YAML-based configuration loading for Match League:
// difficulty presets, scoring rules, catalog source, result submission and
// server addresses.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/match-league/internal/engine"
)

// GameConfig is the root of the YAML configuration.
type GameConfig struct {
	Player  string         `yaml:"player"`
	Presets []PresetConfig `yaml:"presets"`
	Scoring ScoringConfig  `yaml:"scoring"`
	Catalog CatalogConfig  `yaml:"catalog"`
	Results ResultsConfig  `yaml:"results"`
	Server  ServerConfig   `yaml:"server"`
}

// PresetConfig defines one difficulty tier.
type PresetConfig struct {
	Tier         string `yaml:"tier"`
	Name         string `yaml:"name"`
	Columns      int    `yaml:"columns"`
	Rows         int    `yaml:"rows"`
	CellSize     int    `yaml:"cell_size"` // Presentation hint, pixels in the web client
	TargetImages int    `yaml:"target_images"`
}

// ScoringConfig defines match points and combo behavior.
type ScoringConfig struct {
	Points        map[int]int   `yaml:"points"`          // Base points by match size
	ExtraPerImage int           `yaml:"extra_per_image"` // Added per image beyond the largest table entry
	ComboWindow   time.Duration `yaml:"combo_window"`
	ComboStep     float64       `yaml:"combo_step"` // Multiplier increase per chained match
	ComboMax      float64       `yaml:"combo_max"`  // Multiplier cap
}

// CatalogConfig selects where image catalogs come from.
type CatalogConfig struct {
	Source  string        `yaml:"source"`   // builtin, file:// path or http(s) endpoint
	BatchID int64         `yaml:"batch_id"` // 0 requests the default batch
	Timeout time.Duration `yaml:"timeout"`
}

// ResultsConfig configures remote result submission.
type ResultsConfig struct {
	SubmitURL string        `yaml:"submit_url"` // Empty disables remote submission
	Timeout   time.Duration `yaml:"timeout"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	SSHAddress  string        `yaml:"ssh_address"`
	HTTPAddress string        `yaml:"http_address"` // Empty disables the HTTP API
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks the parts of the configuration the engine depends on.
func (c GameConfig) Validate() error {
	if _, err := c.EnginePresets(); err != nil {
		return err
	}
	if _, err := c.EngineRules(); err != nil {
		return err
	}
	return nil
}

// EnginePresets converts the preset table for the engine.
func (c GameConfig) EnginePresets() ([]engine.Preset, error) {
	if len(c.Presets) == 0 {
		return nil, fmt.Errorf("%w: no presets", ErrInvalidConfig)
	}
	presets := make([]engine.Preset, len(c.Presets))
	for i, p := range c.Presets {
		presets[i] = engine.Preset{
			Tier:         engine.Tier(p.Tier),
			Name:         p.Name,
			Columns:      p.Columns,
			Rows:         p.Rows,
			CellSize:     p.CellSize,
			TargetImages: p.TargetImages,
		}
	}
	// NewDifficulty runs the per-preset and duplicate checks.
	if _, err := engine.NewDifficulty(presets); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return presets, nil
}

// EngineRules converts the scoring section for the engine.
func (c GameConfig) EngineRules() (engine.Rules, error) {
	s := c.Scoring
	if len(s.Points) == 0 {
		return engine.Rules{}, fmt.Errorf("%w: empty points table", ErrInvalidConfig)
	}
	for size, pts := range s.Points {
		if size < engine.MinMatch || pts < 0 {
			return engine.Rules{}, fmt.Errorf("%w: points entry %d: %d", ErrInvalidConfig, size, pts)
		}
	}
	if s.ComboWindow <= 0 {
		return engine.Rules{}, fmt.Errorf("%w: combo_window must be positive", ErrInvalidConfig)
	}
	if s.ComboStep < 0 || s.ComboMax < 1 {
		return engine.Rules{}, fmt.Errorf("%w: combo_step %.2f, combo_max %.2f", ErrInvalidConfig, s.ComboStep, s.ComboMax)
	}

	points := make(map[int]int, len(s.Points))
	for k, v := range s.Points {
		points[k] = v
	}
	return engine.Rules{
		Points:           points,
		ExtraPerImage:    s.ExtraPerImage,
		ComboWindow:      s.ComboWindow,
		ComboStepPercent: engine.PercentOf(s.ComboStep),
		ComboMaxPercent:  engine.PercentOf(s.ComboMax),
	}, nil
}
