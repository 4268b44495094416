// Package engine implements the Match League puzzle engine: board generation,
// cursor movement, selection, match scoring with a combo multiplier, end-of-game
// detection and the session state machine.
//
// The engine is UI-agnostic and deterministic given its random source and time
// source. Hosts drive it with discrete commands and clock ticks and read state
// back through Snapshot.
package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Tier names a difficulty preset.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// MinMatch is the smallest selection that can be committed as a match.
const MinMatch = 4

var (
	// ErrInvalidPreset is returned for presets that cannot host a playable board.
	ErrInvalidPreset = errors.New("engine: invalid preset")
	// ErrUnknownTier is returned when a tier is not in the difficulty table.
	ErrUnknownTier = errors.New("engine: unknown difficulty tier")
)

// Preset is an immutable board configuration chosen before a session starts.
type Preset struct {
	Tier         Tier
	Name         string
	Columns      int
	Rows         int
	CellSize     int // Cell size in pixels for graphical hosts
	TargetImages int // Number of images the generator tries to place
}

// Cells returns the number of cells on the board.
func (p Preset) Cells() int {
	return p.Columns * p.Rows
}

// Label returns a display label such as "EASY (12x6)".
func (p Preset) Label() string {
	name := p.Name
	if name == "" {
		name = string(p.Tier)
	}
	return fmt.Sprintf("%s (%dx%d)", strings.ToUpper(name), p.Columns, p.Rows)
}

// Validate reports whether the preset can hold at least MinMatch copies of one
// image type plus the empty cell reserved for the cursor.
func (p Preset) Validate() error {
	if p.Columns <= 0 || p.Rows <= 0 {
		return fmt.Errorf("%w: %q has non-positive dimensions %dx%d", ErrInvalidPreset, p.Tier, p.Columns, p.Rows)
	}
	if p.Cells()-1 < MinMatch {
		return fmt.Errorf("%w: %q board %dx%d is too small", ErrInvalidPreset, p.Tier, p.Columns, p.Rows)
	}
	if p.TargetImages < MinMatch {
		return fmt.Errorf("%w: %q targets %d images, need at least %d", ErrInvalidPreset, p.Tier, p.TargetImages, MinMatch)
	}
	return nil
}

// DefaultPresets returns the built-in difficulty table.
// Boards are wider than they are tall.
func DefaultPresets() []Preset {
	return []Preset{
		{Tier: TierEasy, Name: "Easy", Columns: 12, Rows: 6, CellSize: 60, TargetImages: 28},
		{Tier: TierMedium, Name: "Medium", Columns: 16, Rows: 8, CellSize: 50, TargetImages: 56},
		{Tier: TierHard, Name: "Hard", Columns: 20, Rows: 10, CellSize: 40, TargetImages: 90},
	}
}

// Difficulty holds the preset table and the currently selected tier.
type Difficulty struct {
	presets  []Preset
	selected int
}

// NewDifficulty validates the presets and selects the first one.
func NewDifficulty(presets []Preset) (*Difficulty, error) {
	if len(presets) == 0 {
		return nil, fmt.Errorf("%w: empty difficulty table", ErrInvalidPreset)
	}
	seen := make(map[Tier]bool, len(presets))
	for _, p := range presets {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if seen[p.Tier] {
			return nil, fmt.Errorf("%w: duplicate tier %q", ErrInvalidPreset, p.Tier)
		}
		seen[p.Tier] = true
	}
	table := make([]Preset, len(presets))
	copy(table, presets)
	return &Difficulty{presets: table}, nil
}

// Presets returns a copy of the preset table.
func (d *Difficulty) Presets() []Preset {
	out := make([]Preset, len(d.presets))
	copy(out, d.presets)
	return out
}

// Selected returns the selected preset.
func (d *Difficulty) Selected() Preset {
	return d.presets[d.selected]
}

// Select switches to the preset with the given tier.
func (d *Difficulty) Select(tier Tier) error {
	for i, p := range d.presets {
		if p.Tier == tier {
			d.selected = i
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownTier, tier)
}

// Cycle moves the selection by delta positions, wrapping around.
func (d *Difficulty) Cycle(delta int) Preset {
	n := len(d.presets)
	d.selected = ((d.selected+delta)%n + n) % n
	return d.presets[d.selected]
}
