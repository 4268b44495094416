package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/match-league/internal/core"
	"github.com/vovakirdan/match-league/internal/engine"
)

// hudHeight is the number of lines above the board border.
const hudHeight = 2

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	floaterStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("11"))
	pausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208"))
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("57")).
			Padding(1, 3)
	activeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	inactiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, 1)
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.engine.Snapshot()
	switch snap.State {
	case engine.StateNotStarted:
		return m.viewPicker()
	case engine.StateEnded:
		return m.viewSummary(snap)
	default:
		return m.viewBoard(snap)
	}
}

// hudLine is the score bar shown above the board.
func hudLine(snap engine.Snapshot, best int) string {
	return fmt.Sprintf("%s   SCORE %04d   TIME %s   LEFT %03d   BEST %d",
		snap.Preset.Label(), snap.Score, snap.Elapsed(), snap.Remaining, best)
}

// infoLine shows the selection, combo and transient feedback.
func (m Model) infoLine(snap engine.Snapshot) string {
	if snap.State == engine.StatePaused {
		return pausedStyle.Render("PAUSED - press p to resume")
	}

	parts := []string{fmt.Sprintf("SELECTED %d/%d", len(snap.Selected), engine.MinMatch)}
	if snap.CanCommit() {
		parts[0] = fmt.Sprintf("SELECTED %d - enter to match", len(snap.Selected))
	}
	parts = append(parts, fmt.Sprintf("COMBO x%.1f", snap.Multiplier()))
	line := infoStyle.Render(strings.Join(parts, "   "))

	if m.floater != "" {
		line += "   " + floaterStyle.Render(m.floater)
	}
	if m.status != "" {
		line += "   " + infoStyle.Render(m.status)
	}
	return line
}

// boardRect is where the board cells are drawn on the terminal, inside the
// border.
func (m Model) boardRect(snap engine.Snapshot) core.Rect {
	w := snap.Columns * tileWidth
	screen := core.NewRect(0, 0, m.config.ScreenW, m.config.ScreenH)
	frame := screen.Centered(w+2, snap.Rows+2)
	return core.NewRect(frame.X+1, hudHeight+1, w, snap.Rows)
}

func (m Model) viewBoard(snap engine.Snapshot) string {
	var flash map[engine.Coord]engine.ImageID
	if snap.State == engine.StateRunning {
		flash = m.flash
	}
	DrawBoard(m.screen, snap, m.engine.Catalog(), flash)

	rect := m.boardRect(snap)
	board := boardStyle.MarginLeft(rect.X - 1).Render(RenderScreen(m.screen))

	var b strings.Builder
	b.WriteString(hudStyle.Render(hudLine(snap, m.best)))
	b.WriteString("\n")
	b.WriteString(m.infoLine(snap))
	b.WriteString("\n")
	b.WriteString(board)
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) viewPicker() string {
	current := m.engine.Preset()

	var b strings.Builder
	b.WriteString(titleStyle.Render("MATCH LEAGUE"))
	b.WriteString("\n\n")
	b.WriteString("Select four or more matching tiles and press enter to clear them.\n")
	b.WriteString("Quick matches build a combo up to x3.0.\n\n")

	tabs := make([]string, 0, len(m.engine.Presets()))
	for _, p := range m.engine.Presets() {
		if p.Tier == current.Tier {
			tabs = append(tabs, activeStyle.Render(p.Label()))
		} else {
			tabs = append(tabs, inactiveStyle.Render(p.Label()))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render(fmt.Sprintf("%d images on a %dx%d board",
		current.TargetImages, current.Columns, current.Rows)))
	b.WriteString("\n")
	if m.best > 0 {
		b.WriteString(infoStyle.Render(fmt.Sprintf("Best score: %d", m.best)))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(pausedStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(pickerKeys(m.keys)))

	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, b.String())
}

func (m Model) viewSummary(snap engine.Snapshot) string {
	sum, _ := m.engine.Summary()

	title := "NO MORE MATCHES"
	if sum.Completed {
		title = "BOARD CLEARED!"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Difficulty  %s\n", snap.Preset.Label())
	fmt.Fprintf(&b, "Score       %d\n", sum.Score)
	fmt.Fprintf(&b, "Time        %s\n", engine.FormatElapsed(sum.ElapsedSeconds))
	fmt.Fprintf(&b, "Moves       %d\n", sum.Moves)
	fmt.Fprintf(&b, "Cleared     %d\n", sum.ImagesCleared)
	fmt.Fprintf(&b, "Remaining   %d\n", sum.ImagesRemaining)
	b.WriteString("\n")
	b.WriteString(m.rankingLine())
	b.WriteString("\n\n")
	b.WriteString(infoStyle.Render("r new game  q quit"))

	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center,
		panelStyle.Render(b.String()))
}

func (m Model) rankingLine() string {
	switch {
	case m.awaiting:
		return infoStyle.Render("Saving result...")
	case m.outcome == nil:
		return infoStyle.Render("Result not submitted")
	case m.outcome.Ranked():
		return floaterStyle.Render(fmt.Sprintf("Ranking position #%d", m.outcome.Receipt.Ranking))
	case m.outcome.Err != nil:
		return pausedStyle.Render("Result could not be saved")
	default:
		return infoStyle.Render("Result saved")
	}
}
