// Package tui hosts the match engine in a Bubble Tea program. It owns the
// repeating clock timer, translates keys and mouse clicks into engine
// commands, and draws snapshots with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/match-league/internal/engine"
	"github.com/vovakirdan/match-league/internal/results"
)

// ClockMsg is one engine clock tick. Epoch is the clock epoch the tick was
// scheduled under; the engine drops ticks from older epochs.
type ClockMsg struct {
	Epoch uint64
}

// FrameMsg advances animations such as the clear flash and floating score.
type FrameMsg time.Time

// OutcomeMsg carries a submission outcome from the reporter.
type OutcomeMsg results.Outcome

// clockCmd schedules the next clock tick for epoch.
func clockCmd(epoch uint64) tea.Cmd {
	return tea.Tick(engine.TickInterval, func(time.Time) tea.Msg {
		return ClockMsg{Epoch: epoch}
	})
}

// frameCmd returns a Bubble Tea command that sends frame messages at the specified rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 30
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// waitOutcome blocks until the reporter delivers an outcome.
func waitOutcome(ch <-chan results.Outcome) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		out, ok := <-ch
		if !ok {
			return nil
		}
		return OutcomeMsg(out)
	}
}
