package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/match-league/internal/core"
	"github.com/vovakirdan/match-league/internal/engine"
	"github.com/vovakirdan/match-league/internal/results"
)

// Animation lengths.
const (
	flashDuration   = 350 * time.Millisecond
	floaterDuration = 1200 * time.Millisecond
)

// Options configures a Model.
type Options struct {
	Engine   *engine.Engine
	Reporter *results.Reporter // Source of ranking outcomes, may be nil
	Scores   HighScorer        // Best score for the HUD, may be nil
	Config   core.RuntimeConfig
	Logger   *log.Logger
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	engine    *engine.Engine
	reporter  *results.Reporter
	scores    HighScorer
	logger    *log.Logger
	config    core.RuntimeConfig
	screen    *core.Screen
	keyMapper *KeyMapper
	keys      GameKeyMap
	help      help.Model
	now       func() time.Time

	best      int
	flash     map[engine.Coord]engine.ImageID
	flashEnds time.Time
	floater   string
	floatEnds time.Time
	animating bool

	awaiting bool // Session ended, ranking not received yet
	outcome  *results.Outcome
	status   string // One-line notice such as a saved screenshot
	quitting bool
}

// NewModel creates a new Bubble Tea model around an engine.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	cfg := opts.Config
	if cfg.ScreenW == 0 || cfg.ScreenH == 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	if cfg.FPS <= 0 {
		cfg.FPS = core.DefaultConfig().FPS
	}

	m := Model{
		engine:    opts.Engine,
		reporter:  opts.Reporter,
		scores:    opts.Scores,
		logger:    logger,
		config:    cfg,
		screen:    core.NewScreen(0, 0, emptyGlyph),
		keyMapper: NewKeyMapper(),
		keys:      DefaultGameKeyMap(),
		help:      help.New(),
		now:       time.Now,
	}
	m.help.Width = cfg.ScreenW
	m.refreshBest()
	return m
}

// Init starts listening for submission outcomes.
func (m Model) Init() tea.Cmd {
	if m.reporter == nil {
		return nil
	}
	return waitOutcome(m.reporter.Outcomes())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.apply(m.keyMapper.MapKey(msg))

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ClockMsg:
		if m.engine.Tick(msg.Epoch) {
			return m, clockCmd(msg.Epoch)
		}
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))

	case OutcomeMsg:
		if m.awaiting {
			out := results.Outcome(msg)
			m.outcome = &out
			m.awaiting = false
			m.refreshBest()
		}
		if m.reporter == nil {
			return m, nil
		}
		return m, waitOutcome(m.reporter.Outcomes())
	}

	return m, nil
}

// apply runs one action against the engine.
func (m Model) apply(action core.Action) (tea.Model, tea.Cmd) {
	e := m.engine

	if dx, dy, ok := action.Movement(); ok {
		e.Move(dx, dy)
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionScreenshot:
		m.saveScreenshot()

	case core.ActionEasy:
		e.SelectDifficulty(engine.TierEasy)
	case core.ActionMedium:
		e.SelectDifficulty(engine.TierMedium)
	case core.ActionHard:
		e.SelectDifficulty(engine.TierHard)
	case core.ActionNextDifficulty:
		e.CycleDifficulty(1)
	case core.ActionPrevDifficulty:
		e.CycleDifficulty(-1)

	case core.ActionConfirm:
		if e.State() == engine.StateNotStarted {
			return m.start()
		}
		return m.commit()

	case core.ActionSelect:
		e.ToggleSelect()
	case core.ActionCancel:
		e.CancelSelection()

	case core.ActionPause:
		if e.TogglePause() && e.ClockRunning() {
			return m, clockCmd(e.ClockEpoch())
		}

	case core.ActionRestart:
		e.Restart()
		m.clearAnimations()
		m.awaiting = false
		m.outcome = nil
		m.status = ""
	}

	return m, nil
}

// start generates a board and schedules the first clock tick.
func (m Model) start() (tea.Model, tea.Cmd) {
	ok, err := m.engine.Start()
	if err != nil {
		m.logger.Error("cannot start session", "error", err)
		m.status = fmt.Sprintf("cannot start: %v", err)
		return m, nil
	}
	if !ok {
		return m, nil
	}
	m.status = ""
	return m, clockCmd(m.engine.ClockEpoch())
}

// commit scores the selection and starts the clear animation.
func (m Model) commit() (tea.Model, tea.Cmd) {
	match, ok := m.engine.Commit()
	if !ok {
		return m, nil
	}

	now := m.now()
	m.flash = make(map[engine.Coord]engine.ImageID, len(match.Cleared))
	for _, c := range match.Cleared {
		m.flash[c] = match.Image
	}
	m.flashEnds = now.Add(flashDuration)

	m.floater = fmt.Sprintf("+%d", match.Points)
	if match.Combo() {
		m.floater += " COMBO!"
	}
	m.floatEnds = now.Add(floaterDuration)

	if m.engine.State() == engine.StateEnded {
		m.awaiting = m.reporter != nil
	}

	if m.animating {
		return m, nil
	}
	m.animating = true
	return m, frameCmd(m.config.FPS)
}

// handleFrame expires finished animations and keeps the frame loop alive
// while any remain.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if !now.Before(m.flashEnds) {
		m.flash = nil
	}
	if !now.Before(m.floatEnds) {
		m.floater = ""
	}
	if m.flash == nil && m.floater == "" {
		m.animating = false
		return m, nil
	}
	return m, frameCmd(m.config.FPS)
}

func (m *Model) clearAnimations() {
	m.flash = nil
	m.floater = ""
}

// handleMouse moves the cursor to a clicked cell.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	snap := m.engine.Snapshot()
	if !snap.Started() {
		return m, nil
	}
	col, row, ok := m.boardRect(snap).Grid(msg.X, msg.Y, tileWidth, 1)
	if !ok {
		return m, nil
	}
	m.engine.JumpTo(col, row)
	return m, nil
}

func (m *Model) refreshBest() {
	if m.scores == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	best, err := m.scores.HighScore(ctx)
	if err != nil {
		m.logger.Debug("cannot read high score", "error", err)
		return
	}
	m.best = best
}

// saveScreenshot writes the board as plain text under the XDG data directory.
func (m *Model) saveScreenshot() {
	snap := m.engine.Snapshot()
	if !snap.Started() {
		return
	}
	DrawBoard(m.screen, snap, m.engine.Catalog(), nil)

	name := fmt.Sprintf("matchleague/screenshots/%s_%s.txt", snap.Preset.Tier, m.now().Format("20060102_150405"))
	path, err := xdg.DataFile(name)
	if err != nil {
		m.status = fmt.Sprintf("screenshot failed: %v", err)
		return
	}

	content := hudLine(snap, m.best) + "\n" + m.screen.String() + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		m.status = fmt.Sprintf("screenshot failed: %v", err)
		return
	}
	m.status = "screenshot saved to " + path
}

// Run starts the Bubble Tea program with the given options.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
