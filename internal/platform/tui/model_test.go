package tui

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/match-league/internal/core"
	"github.com/vovakirdan/match-league/internal/engine"
	"github.com/vovakirdan/match-league/internal/results"
)

// tinySetup yields a 3x2 board holding four copies of a single image, so one
// match clears it.
func tinySetup() Setup {
	return Setup{
		Presets: []engine.Preset{
			{Tier: engine.TierEasy, Name: "Tiny", Columns: 3, Rows: 2, TargetImages: 4},
			{Tier: engine.TierHard, Name: "Big", Columns: 6, Rows: 4, TargetImages: 12},
		},
		Catalog: engine.Catalog{
			Descriptors: []engine.Descriptor{{ID: 1, Glyph: "X", Name: "x"}},
			BatchID:     3,
		},
	}
}

type fixedScores int

func (f fixedScores) HighScore(context.Context) (int, error) {
	return int(f), nil
}

func newTestModel(t *testing.T, rep *results.Reporter) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, FPS: 30, Seed: 7, Player: "ana"}

	var onEnded func(engine.Result)
	if rep != nil {
		onEnded = rep.Report
	}
	e, err := tinySetup().NewEngine(cfg, onEnded)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	m := NewModel(Options{
		Engine:   e,
		Reporter: rep,
		Scores:   fixedScores(250),
		Config:   cfg,
		Logger:   log.New(io.Discard),
	})
	m.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	m, _ = update(t, m, msg)
	return m
}

func click(t *testing.T, m Model, col, row int) Model {
	t.Helper()
	rect := m.boardRect(m.engine.Snapshot())
	m, _ = update(t, m, tea.MouseMsg{
		X:      rect.X + col*tileWidth + 1,
		Y:      rect.Y + row,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	return m
}

func startGame(t *testing.T, m Model) Model {
	t.Helper()
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.engine.State() != engine.StateRunning {
		t.Fatalf("state = %v after enter, expected running", m.engine.State())
	}
	if cmd == nil {
		t.Fatal("starting should schedule a clock tick")
	}
	return m
}

// selectAll selects every occupied cell by clicking it and pressing space.
func selectAll(t *testing.T, m Model) Model {
	t.Helper()
	snap := m.engine.Snapshot()
	for y := 0; y < snap.Rows; y++ {
		for x := 0; x < snap.Columns; x++ {
			if !snap.CellAt(engine.C(x, y)).Occupied {
				continue
			}
			m = click(t, m, x, y)
			if got := m.engine.Snapshot().Cursor; got != engine.C(x, y) {
				t.Fatalf("click (%d,%d) moved cursor to %v", x, y, got)
			}
			m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
		}
	}
	return m
}

func TestPickerDifficultyKeys(t *testing.T) {
	m := newTestModel(t, nil)

	m = press(t, m, runeKey('3'))
	if m.engine.Preset().Tier != engine.TierHard {
		t.Errorf("tier = %v after 3, expected hard", m.engine.Preset().Tier)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.engine.Preset().Tier != engine.TierEasy {
		t.Errorf("tab should wrap to easy, got %v", m.engine.Preset().Tier)
	}
	m = press(t, m, runeKey('2'))
	if m.engine.Preset().Tier != engine.TierEasy {
		t.Error("selecting a missing tier should keep the current one")
	}

	view := m.View()
	if !strings.Contains(view, "MATCH LEAGUE") || !strings.Contains(view, "TINY (3x2)") {
		t.Errorf("picker view missing title or preset:\n%s", view)
	}
	if !strings.Contains(view, "Best score: 250") {
		t.Error("picker should show the best score")
	}
}

func TestClockTicks(t *testing.T) {
	m := startGame(t, newTestModel(t, nil))
	epoch := m.engine.ClockEpoch()

	m, cmd := update(t, m, ClockMsg{Epoch: epoch})
	if cmd == nil {
		t.Error("an accepted tick should schedule the next one")
	}
	if got := m.engine.Snapshot().ElapsedSeconds; got != 1 {
		t.Errorf("elapsed = %d, expected 1", got)
	}

	m, cmd = update(t, m, ClockMsg{Epoch: epoch - 1})
	if cmd != nil {
		t.Error("a stale tick should end its chain")
	}
	if got := m.engine.Snapshot().ElapsedSeconds; got != 1 {
		t.Errorf("stale tick changed elapsed to %d", got)
	}
}

func TestPauseResume(t *testing.T) {
	m := startGame(t, newTestModel(t, nil))
	old := m.engine.ClockEpoch()

	m, cmd := update(t, m, runeKey('p'))
	if m.engine.State() != engine.StatePaused || cmd != nil {
		t.Fatalf("state = %v, cmd = %v after pause", m.engine.State(), cmd != nil)
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should say so")
	}

	m, _ = update(t, m, ClockMsg{Epoch: old})
	if m.engine.Snapshot().ElapsedSeconds != 0 {
		t.Error("ticks must not count while paused")
	}

	m, cmd = update(t, m, runeKey('h'))
	if m.engine.State() != engine.StateRunning {
		t.Fatalf("state = %v after resume", m.engine.State())
	}
	if cmd == nil {
		t.Error("resuming should schedule a clock tick")
	}
}

func TestMouseClickOutsideBoard(t *testing.T) {
	m := startGame(t, newTestModel(t, nil))
	before := m.engine.Snapshot().Cursor

	m, _ = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.engine.Snapshot().Cursor != before {
		t.Error("a click outside the board should not move the cursor")
	}
}

func TestBoardRectCentered(t *testing.T) {
	m := startGame(t, newTestModel(t, nil))
	snap := m.engine.Snapshot()

	// 3 tiles of width 3 plus the border is 11 columns on an 80 column screen.
	rect := m.boardRect(snap)
	if rect.X != 35 || rect.Y != hudHeight+1 || rect.W != 9 || rect.H != 2 {
		t.Errorf("boardRect = %+v, expected {35 %d 9 2}", rect, hudHeight+1)
	}

	m.config.ScreenW = 6
	if rect := m.boardRect(snap); rect.X != 1 {
		t.Errorf("boardRect on a narrow screen starts at %d, expected 1", rect.X)
	}
}

func TestCommitEndsGameWithRanking(t *testing.T) {
	rep := results.NewReporter(results.SubmitterFunc(func(ctx context.Context, r engine.Result) (results.Receipt, error) {
		return results.Receipt{ResultID: 1, Ranking: 3}, nil
	}), log.New(io.Discard), time.Second)
	defer rep.Close()

	m := startGame(t, newTestModel(t, rep))
	m = selectAll(t, m)

	if !strings.Contains(m.View(), "SELECTED 4 - enter to match") {
		t.Error("info line should offer the match")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("a match should start the frame loop")
	}
	if m.engine.State() != engine.StateEnded {
		t.Fatalf("state = %v, expected ended", m.engine.State())
	}
	if len(m.flash) != 4 || m.floater != "+100" {
		t.Errorf("flash = %d cells, floater = %q", len(m.flash), m.floater)
	}
	if !m.awaiting || !strings.Contains(m.View(), "Saving result") {
		t.Error("summary should wait for the ranking")
	}

	select {
	case out := <-rep.Outcomes():
		if out.Result.Player != "ana" || out.Result.BatchID != 3 || !out.Result.Completed {
			t.Errorf("reported result = %+v", out.Result)
		}
		m, _ = update(t, m, OutcomeMsg(out))
	case <-time.After(2 * time.Second):
		t.Fatal("no outcome delivered")
	}

	view := m.View()
	if !strings.Contains(view, "BOARD CLEARED!") || !strings.Contains(view, "Ranking position #3") {
		t.Errorf("summary view:\n%s", view)
	}
}

func TestFrameExpiresAnimations(t *testing.T) {
	m := startGame(t, newTestModel(t, nil))
	m = selectAll(t, m)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	base := m.now()
	m, cmd := update(t, m, FrameMsg(base.Add(100*time.Millisecond)))
	if cmd == nil || m.flash == nil {
		t.Error("animations should still be running")
	}

	m, cmd = update(t, m, FrameMsg(base.Add(500*time.Millisecond)))
	if m.flash != nil || m.floater == "" || cmd == nil {
		t.Error("flash should end before the floating text")
	}

	m, cmd = update(t, m, FrameMsg(base.Add(2*time.Second)))
	if m.floater != "" || cmd != nil || m.animating {
		t.Error("frame loop should stop once every animation expired")
	}
}

func TestRestartReturnsToPicker(t *testing.T) {
	m := startGame(t, newTestModel(t, nil))
	m = selectAll(t, m)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m = press(t, m, runeKey('r'))
	if m.engine.State() != engine.StateNotStarted {
		t.Fatalf("state = %v after restart", m.engine.State())
	}
	if m.flash != nil || m.outcome != nil || m.awaiting {
		t.Error("restart should clear animations and the previous outcome")
	}
	startGame(t, m)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, nil)
	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil || !m.quitting || m.View() != "" {
		t.Error("q should quit with an empty view")
	}
}

func TestDrawBoardMarks(t *testing.T) {
	m := startGame(t, newTestModel(t, nil))
	m = click(t, m, 0, 0)
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})

	snap := m.engine.Snapshot()
	screen := core.NewScreen(0, 0, emptyGlyph)
	DrawBoard(screen, snap, m.engine.Catalog(), nil)

	if screen.Width() != 3 || screen.Height() != 2 {
		t.Fatalf("screen %dx%d, expected 3x2", screen.Width(), screen.Height())
	}
	cursor := screen.Get(snap.Cursor.X, snap.Cursor.Y)
	if !cursor.Has(core.MarkCursor) {
		t.Error("cursor cell should carry the cursor mark")
	}
	if snap.CellAt(engine.C(0, 0)).Occupied && !screen.Get(0, 0).Has(core.MarkSelected) {
		t.Error("selected cell should carry the selected mark")
	}

	occupied := 0
	for y := 0; y < 2; y++ {
		for _, tile := range screen.Row(y) {
			if tile.Glyph == "X" {
				occupied++
			}
		}
	}
	if occupied != 4 {
		t.Errorf("drew %d images, expected 4", occupied)
	}
}

func TestGlyphFallback(t *testing.T) {
	c := engine.Catalog{Descriptors: []engine.Descriptor{
		{ID: 10, URL: "https://example.test/a.png"},
		{ID: 20, URL: "https://example.test/b.png"},
	}}
	if got := glyphFor(c, 20); got != fallbackGlyphs[1] {
		t.Errorf("glyphFor(20) = %q, expected %q", got, fallbackGlyphs[1])
	}
	if got := glyphFor(c, 99); got != "?" {
		t.Errorf("unknown image glyph = %q", got)
	}
}
