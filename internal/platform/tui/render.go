package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/match-league/internal/core"
	"github.com/vovakirdan/match-league/internal/engine"
)

// tileWidth is the number of terminal columns one board cell occupies.
// Emoji glyphs are two columns wide.
const tileWidth = 3

// emptyGlyph is drawn for cells without an image.
const emptyGlyph = "·"

// fallbackGlyphs stand in for images that only have a URL.
var fallbackGlyphs = []string{"◆", "●", "▲", "■", "★", "♥", "♣", "♠", "✚", "✦", "⬟", "⬢"}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Mark backgrounds, applied on top of the tile color.
var (
	selectedBg = lipgloss.Color("57")
	cursorBg   = lipgloss.Color("238")
	bothBg     = lipgloss.Color("99")
	flashBg    = lipgloss.Color("229")
)

// tileStyle returns the style for a tile including its marks.
func tileStyle(t core.Tile) lipgloss.Style {
	style, ok := colorStyles[t.Color]
	if !ok {
		style = colorStyles[core.ColorDefault]
	}
	style = style.Width(tileWidth).Align(lipgloss.Center)

	switch {
	case t.Has(core.MarkFlash):
		style = style.Background(flashBg).Foreground(lipgloss.Color("0"))
	case t.Has(core.MarkCursor | core.MarkSelected):
		style = style.Background(bothBg).Bold(true)
	case t.Has(core.MarkSelected):
		style = style.Background(selectedBg)
	case t.Has(core.MarkCursor):
		style = style.Background(cursorBg).Bold(true)
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Every tile is padded to tileWidth columns so the board stays aligned.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*tileWidth*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, t := range s.Row(y) {
			sb.WriteString(tileStyle(t).Render(t.Glyph))
		}
	}
	return sb.String()
}

// glyphFor returns the text drawn for an image.
func glyphFor(c engine.Catalog, id engine.ImageID) string {
	d, ok := c.Lookup(id)
	if ok && d.Glyph != "" {
		return d.Glyph
	}
	i := c.Index(id)
	if i < 0 {
		return "?"
	}
	return fallbackGlyphs[i%len(fallbackGlyphs)]
}

// DrawBoard draws a snapshot into s, resizing it to the board. Cells in flash
// are drawn as flashing even though they are already empty.
func DrawBoard(s *core.Screen, snap engine.Snapshot, c engine.Catalog, flash map[engine.Coord]engine.ImageID) {
	s.Resize(snap.Columns, snap.Rows)
	s.Clear()

	for y := 0; y < snap.Rows; y++ {
		for x := 0; x < snap.Columns; x++ {
			pos := engine.C(x, y)
			cell := snap.CellAt(pos)

			tile := core.Tile{Glyph: emptyGlyph, Color: core.ColorGray}
			if cell.Occupied {
				tile = core.Tile{
					Glyph: glyphFor(c, cell.Image),
					Color: core.ImageColor(c.Index(cell.Image)),
				}
			} else if id, ok := flash[pos]; ok {
				tile = core.Tile{
					Glyph: glyphFor(c, id),
					Color: core.ImageColor(c.Index(id)),
					Marks: core.MarkFlash,
				}
			}
			s.Set(x, y, tile)

			if snap.IsSelected(pos) {
				s.Mark(x, y, core.MarkSelected)
			}
		}
	}

	if snap.State == engine.StateRunning || snap.State == engine.StatePaused {
		s.Mark(snap.Cursor.X, snap.Cursor.Y, core.MarkCursor)
	}
}
