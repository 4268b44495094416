package engine

import (
	"math"
	"time"
)

// Rules holds the scoring parameters.
// Multipliers are stored as integer percentages so repeated combo steps stay
// exact (1.0 + 5*0.2 is 2.0, not 1.9999999999999998).
type Rules struct {
	Points           map[int]int   // Base points by match size
	ExtraPerImage    int           // Points per image above the largest table entry
	ComboWindow      time.Duration // Matches closer than this extend the combo
	ComboStepPercent int           // Multiplier increase per combo step
	ComboMaxPercent  int           // Multiplier cap
}

// DefaultRules returns the standard scoring table and combo settings.
func DefaultRules() Rules {
	return Rules{
		Points:           map[int]int{4: 100, 5: 200, 6: 350, 7: 500},
		ExtraPerImage:    200,
		ComboWindow:      5 * time.Second,
		ComboStepPercent: 20,
		ComboMaxPercent:  300,
	}
}

// PercentOf converts a multiplier such as 0.2 or 3.0 to a whole percentage.
func PercentOf(multiplier float64) int {
	return int(math.Round(multiplier * 100))
}

// BasePoints returns the points for a match of count images before the combo
// multiplier is applied. Sizes past the table earn ExtraPerImage each.
func (r Rules) BasePoints(count int) int {
	if count < MinMatch {
		return 0
	}
	if pts, ok := r.Points[count]; ok {
		return pts
	}
	largest := 0
	for size := range r.Points {
		largest = max(largest, size)
	}
	if count < largest {
		// Gap in a custom table: fall back to the smallest entry.
		return r.Points[MinMatch]
	}
	return r.Points[largest] + (count-largest)*r.ExtraPerImage
}

// Combo tracks the time-windowed multiplier.
type Combo struct {
	percent   int
	lastMatch time.Time
	matched   bool
}

// NewCombo returns a combo at multiplier 1.0.
func NewCombo() Combo {
	return Combo{percent: 100}
}

// Register records a match at now and returns the multiplier percentage that
// applies to it. The first match of a session always resets to 1.0.
func (c *Combo) Register(now time.Time, r Rules) int {
	if c.matched && now.Sub(c.lastMatch) < r.ComboWindow {
		c.percent = min(c.percent+r.ComboStepPercent, r.ComboMaxPercent)
	} else {
		c.percent = 100
	}
	c.lastMatch = now
	c.matched = true
	return c.percent
}

// Percent returns the current multiplier as a percentage.
func (c Combo) Percent() int {
	if c.percent == 0 {
		return 100
	}
	return c.percent
}

// Multiplier returns the current multiplier, in [1.0, 3.0] by default.
func (c Combo) Multiplier() float64 {
	return float64(c.Percent()) / 100
}

// LastMatch returns the time of the previous match and whether there was one.
func (c Combo) LastMatch() (time.Time, bool) {
	return c.lastMatch, c.matched
}

// ApplyMultiplier floors base * percent/100.
func ApplyMultiplier(base, percent int) int {
	return base * percent / 100
}
