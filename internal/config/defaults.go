package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/match-league/internal/engine"
)

//go:embed defaults/matchleague.yaml
var defaultYAML []byte

// DefaultGameConfig returns the built-in configuration. It matches the
// embedded defaults/matchleague.yaml.
func DefaultGameConfig() GameConfig {
	presets := engine.DefaultPresets()
	pc := make([]PresetConfig, len(presets))
	for i, p := range presets {
		pc[i] = PresetConfig{
			Tier:         string(p.Tier),
			Name:         p.Name,
			Columns:      p.Columns,
			Rows:         p.Rows,
			CellSize:     p.CellSize,
			TargetImages: p.TargetImages,
		}
	}

	return GameConfig{
		Presets: pc,
		Scoring: ScoringConfig{
			Points:        map[int]int{4: 100, 5: 200, 6: 350, 7: 500},
			ExtraPerImage: 200,
			ComboWindow:   5 * time.Second,
			ComboStep:     0.2,
			ComboMax:      3.0,
		},
		Catalog: CatalogConfig{
			Source:  "builtin",
			Timeout: 5 * time.Second,
		},
		Results: ResultsConfig{
			Timeout: 10 * time.Second,
		},
		Server: ServerConfig{
			SSHAddress:  ":23234",
			HTTPAddress: ":8080",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
