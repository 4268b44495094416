package engine

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	State          State
	Preset         Preset
	Columns        int
	Rows           int
	Cells          []Cell // Row-major, nil before the session starts
	Cursor         Coord
	Selected       []Coord
	SelectedImage  ImageID
	Score          int
	Moves          int
	ElapsedSeconds int
	TotalPlaced    int
	Remaining      int
	ComboPercent   int
	LastMatch      *Match
	Completed      bool
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	p := e.difficulty.Selected()
	s := Snapshot{
		State:          e.state,
		Preset:         p,
		Columns:        p.Columns,
		Rows:           p.Rows,
		Cursor:         e.cursor,
		Selected:       e.selection.Coords(),
		SelectedImage:  e.selection.Image(),
		Score:          e.score,
		Moves:          e.moves,
		ElapsedSeconds: e.clock.Elapsed(),
		TotalPlaced:    e.placed,
		Remaining:      e.remaining,
		ComboPercent:   e.combo.Percent(),
		Completed:      e.completed,
	}
	if e.grid != nil {
		s.Columns = e.grid.Columns
		s.Rows = e.grid.Rows
		s.Cells = e.grid.Cells()
	}
	if e.lastMatch != nil {
		m := *e.lastMatch
		m.Cleared = append([]Coord(nil), e.lastMatch.Cleared...)
		s.LastMatch = &m
	}
	return s
}

// Started reports whether a board exists.
func (s Snapshot) Started() bool {
	return s.Cells != nil
}

// CellAt returns the cell at c, empty when out of range.
func (s Snapshot) CellAt(c Coord) Cell {
	if c.X < 0 || c.X >= s.Columns || c.Y < 0 || c.Y >= s.Rows || s.Cells == nil {
		return EmptyCell()
	}
	return s.Cells[c.Y*s.Columns+c.X]
}

// IsSelected reports whether c is part of the selection.
func (s Snapshot) IsSelected(c Coord) bool {
	for _, sc := range s.Selected {
		if sc == c {
			return true
		}
	}
	return false
}

// Elapsed returns the elapsed time as mm:ss.
func (s Snapshot) Elapsed() string {
	return FormatElapsed(s.ElapsedSeconds)
}

// Multiplier returns the combo multiplier.
func (s Snapshot) Multiplier() float64 {
	return float64(s.ComboPercent) / 100
}

// CanCommit reports whether the selection is large enough to match.
func (s Snapshot) CanCommit() bool {
	return s.State == StateRunning && len(s.Selected) >= MinMatch
}
