package engine

import (
	"math/rand"
	"time"
)

// State is the session lifecycle state.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StatePaused
	StateEnded
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Direction is a cursor movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the (dx, dy) offset for one step. Up decreases Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Summary is the end-of-game report.
type Summary struct {
	Score           int
	ElapsedSeconds  int
	Moves           int
	ImagesCleared   int
	ImagesRemaining int
	Completed       bool
}

// Result is what the engine hands to the result collaborator when a session
// ends.
type Result struct {
	Summary
	Player     string
	Tier       Tier
	BatchID    int64
	FinishedAt time.Time
}

// Match describes one committed match.
type Match struct {
	Count        int
	BasePoints   int
	ComboPercent int
	Points       int
	Image        ImageID
	Cleared      []Coord
}

// Combo reports whether the match was scored with a multiplier above 1.0.
func (m Match) Combo() bool {
	return m.ComboPercent > 100
}

// Config configures an Engine. Zero fields take defaults.
type Config struct {
	Presets []Preset         // Difficulty table, DefaultPresets when nil
	Rules   Rules            // Scoring rules, DefaultRules when Points is nil
	Seed    int64            // RNG seed, 0 means time-based
	Rand    *rand.Rand       // Overrides Seed when set
	Now     func() time.Time // Time source for combos, time.Now when nil
	Player  string           // Reported with results
	OnEnded func(Result)     // Called once when a session ends
}

// Engine owns one game session. It is not safe for concurrent use; hosts
// deliver commands and ticks one at a time.
type Engine struct {
	difficulty *Difficulty
	catalog    Catalog
	rules      Rules
	rng        *rand.Rand
	now        func() time.Time
	player     string
	onEnded    func(Result)

	state     State
	grid      *Grid
	cursor    Coord
	selection Selection
	combo     Combo
	clock     Clock

	score     int
	moves     int
	placed    int
	remaining int
	completed bool
	lastMatch *Match
}

// New creates an engine in the NotStarted state. An empty catalog is replaced
// by the built-in glyph catalog.
func New(catalog Catalog, cfg Config) (*Engine, error) {
	presets := cfg.Presets
	if presets == nil {
		presets = DefaultPresets()
	}
	difficulty, err := NewDifficulty(presets)
	if err != nil {
		return nil, err
	}

	rules := cfg.Rules
	if rules.Points == nil {
		rules = DefaultRules()
	}

	rng := cfg.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Engine{
		difficulty: difficulty,
		catalog:    orBuiltin(catalog),
		rules:      rules,
		rng:        rng,
		now:        now,
		player:     cfg.Player,
		onEnded:    cfg.OnEnded,
		combo:      NewCombo(),
	}, nil
}

// State returns the session state.
func (e *Engine) State() State {
	return e.state
}

// Preset returns the selected difficulty preset.
func (e *Engine) Preset() Preset {
	return e.difficulty.Selected()
}

// Presets returns the difficulty table.
func (e *Engine) Presets() []Preset {
	return e.difficulty.Presets()
}

// Catalog returns the catalog the session is played with.
func (e *Engine) Catalog() Catalog {
	return e.catalog
}

// SetCatalog replaces the catalog. Only allowed before a session starts.
func (e *Engine) SetCatalog(c Catalog) bool {
	if e.state != StateNotStarted {
		return false
	}
	e.catalog = orBuiltin(c)
	return true
}

// SelectDifficulty switches presets. Ignored once a session has started.
func (e *Engine) SelectDifficulty(tier Tier) bool {
	if e.state != StateNotStarted {
		return false
	}
	return e.difficulty.Select(tier) == nil
}

// CycleDifficulty moves to the next or previous preset before start.
func (e *Engine) CycleDifficulty(delta int) bool {
	if e.state != StateNotStarted {
		return false
	}
	e.difficulty.Cycle(delta)
	return true
}

// Start generates the board and begins the session. Returns false without
// error when the session is not in NotStarted.
func (e *Engine) Start() (bool, error) {
	if e.state != StateNotStarted {
		return false, nil
	}
	board, err := GenerateBoard(e.difficulty.Selected(), e.catalog, e.rng)
	if err != nil {
		return false, err
	}

	e.resetStats()
	e.grid = board.Grid
	e.cursor = board.Cursor
	e.placed = board.Placed
	e.remaining = board.Placed
	e.state = StateRunning
	e.clock.Start()
	return true, nil
}

// TogglePause pauses a running session or resumes a paused one.
func (e *Engine) TogglePause() bool {
	switch e.state {
	case StateRunning:
		return e.Pause()
	case StatePaused:
		return e.Resume()
	}
	return false
}

// Pause stops the clock and rejects input until Resume.
func (e *Engine) Pause() bool {
	if e.state != StateRunning {
		return false
	}
	e.state = StatePaused
	e.clock.Stop()
	return true
}

// Resume continues a paused session.
func (e *Engine) Resume() bool {
	if e.state != StatePaused {
		return false
	}
	e.state = StateRunning
	e.clock.Start()
	return true
}

// Restart discards the session and returns to NotStarted. The selected
// difficulty and catalog are kept.
func (e *Engine) Restart() {
	e.clock.Reset()
	e.resetStats()
	e.grid = nil
	e.cursor = Coord{}
	e.state = StateNotStarted
}

func (e *Engine) resetStats() {
	e.selection.Clear()
	e.combo = NewCombo()
	e.clock.Reset()
	e.score = 0
	e.moves = 0
	e.placed = 0
	e.remaining = 0
	e.completed = false
	e.lastMatch = nil
}

// Move steps the cursor by one cell. Out-of-bounds steps are ignored and not
// counted.
func (e *Engine) Move(dx, dy int) bool {
	if e.state != StateRunning {
		return false
	}
	if abs(dx)+abs(dy) != 1 {
		return false
	}
	next := e.cursor.Add(dx, dy)
	if !e.grid.InBounds(next) {
		return false
	}
	e.cursor = next
	e.moves++
	return true
}

// MoveDir steps the cursor in a direction.
func (e *Engine) MoveDir(d Direction) bool {
	dx, dy := d.Delta()
	return e.Move(dx, dy)
}

// JumpTo moves the cursor straight to (x, y), as a board click does.
func (e *Engine) JumpTo(x, y int) bool {
	if e.state != StateRunning {
		return false
	}
	c := C(x, y)
	if !e.grid.InBounds(c) {
		return false
	}
	e.cursor = c
	e.moves++
	return true
}

// ToggleSelect selects or deselects the cell under the cursor.
func (e *Engine) ToggleSelect() bool {
	if e.state != StateRunning {
		return false
	}
	cell := e.grid.At(e.cursor)
	if !cell.Occupied {
		return false
	}
	e.selection.Toggle(e.cursor, cell.Image)
	return true
}

// CancelSelection clears the selection.
func (e *Engine) CancelSelection() bool {
	if e.state != StateRunning {
		return false
	}
	e.selection.Clear()
	return true
}

// Commit scores the selection as a match, clears its cells and checks whether
// the game is over. Selections smaller than MinMatch are ignored.
func (e *Engine) Commit() (Match, bool) {
	if e.state != StateRunning || e.selection.Len() < MinMatch {
		return Match{}, false
	}

	count := e.selection.Len()
	base := e.rules.BasePoints(count)
	percent := e.combo.Register(e.now(), e.rules)
	points := ApplyMultiplier(base, percent)

	e.score += points
	e.remaining -= count

	cleared := e.selection.Coords()
	for _, c := range cleared {
		e.grid.Clear(c)
	}
	m := Match{
		Count:        count,
		BasePoints:   base,
		ComboPercent: percent,
		Points:       points,
		Image:        e.selection.Image(),
		Cleared:      cleared,
	}
	e.selection.Clear()
	e.lastMatch = &m

	if ended, completed := DetectEnd(e.grid); ended {
		e.end(completed)
	}
	return m, true
}

// end moves the session to Ended and notifies the result collaborator once.
func (e *Engine) end(completed bool) {
	e.state = StateEnded
	e.completed = completed
	e.clock.Stop()

	if e.onEnded != nil {
		e.onEnded(e.result())
	}
}

func (e *Engine) result() Result {
	return Result{
		Summary:    e.summary(),
		Player:     e.player,
		Tier:       e.difficulty.Selected().Tier,
		BatchID:    e.catalog.BatchID,
		FinishedAt: e.now(),
	}
}

func (e *Engine) summary() Summary {
	return Summary{
		Score:           e.score,
		ElapsedSeconds:  e.clock.Elapsed(),
		Moves:           e.moves,
		ImagesCleared:   e.placed - e.remaining,
		ImagesRemaining: e.remaining,
		Completed:       e.completed,
	}
}

// Summary returns the end-of-game report once the session has ended.
func (e *Engine) Summary() (Summary, bool) {
	if e.state != StateEnded {
		return Summary{}, false
	}
	return e.summary(), true
}

// Tick advances the clock by one second if epoch is current.
func (e *Engine) Tick(epoch uint64) bool {
	if e.state != StateRunning {
		return false
	}
	return e.clock.Tick(epoch)
}

// ClockEpoch returns the epoch hosts must attach to scheduled ticks.
func (e *Engine) ClockEpoch() uint64 {
	return e.clock.Epoch()
}

// ClockRunning reports whether ticks are currently accepted.
func (e *Engine) ClockRunning() bool {
	return e.clock.Running()
}

// DetectEnd reports whether no further match is possible on g, and whether
// that is because the board was cleared.
func DetectEnd(g *Grid) (ended, completed bool) {
	counts := g.CountByImage()
	total := 0
	canMatch := false
	for _, n := range counts {
		total += n
		if n >= MinMatch {
			canMatch = true
		}
	}
	if total == 0 {
		return true, true
	}
	return !canMatch, false
}
