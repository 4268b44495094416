package core

import (
	"strings"
)

// Mark flags a tile for highlighted rendering. Marks combine.
type Mark uint8

const (
	MarkCursor Mark = 1 << iota
	MarkSelected
	MarkFlash
)

// Tile is one board position as drawn on the terminal.
type Tile struct {
	Glyph string // Visible text, may be a multi-rune emoji
	Color Color
	Marks Mark
}

// Has reports whether every mark in m is set.
func (t Tile) Has(m Mark) bool {
	return t.Marks&m == m
}

// Screen is a 2D tile buffer the board is drawn into before styling. It
// decouples board layout from terminal output, so the renderer only deals with
// a fixed grid of tiles.
type Screen struct {
	width  int
	height int
	tiles  [][]Tile
	blank  string
}

// NewScreen creates a width×height tile buffer. Empty tiles show blank.
func NewScreen(width, height int, blank string) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		blank:  blank,
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.tiles = make([][]Tile, s.height)
	for y := range s.tiles {
		s.tiles[y] = make([]Tile, s.width)
	}
}

// Width returns the buffer width in tiles.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the buffer height in tiles.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the buffer dimensions. Content is discarded.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear resets every tile to blank.
func (s *Screen) Clear() {
	for y := range s.tiles {
		for x := range s.tiles[y] {
			s.tiles[y][x] = Tile{Glyph: s.blank}
		}
	}
}

// Set places a tile at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, t Tile) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.tiles[y][x] = t
}

// Get returns the tile at the given position, a blank tile when out of bounds.
func (s *Screen) Get(x, y int) Tile {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Tile{Glyph: s.blank}
	}
	return s.tiles[y][x]
}

// Mark adds marks to the tile at (x, y).
func (s *Screen) Mark(x, y int, m Mark) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.tiles[y][x].Marks |= m
}

// Row returns a copy of row y.
func (s *Screen) Row(y int) []Tile {
	if y < 0 || y >= s.height {
		return nil
	}
	row := make([]Tile, s.width)
	copy(row, s.tiles[y])
	return row
}

// String renders the glyphs as plain text, tiles separated by a space and
// rows by newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			if x > 0 {
				sb.WriteRune(' ')
			}
			sb.WriteString(s.tiles[y][x].Glyph)
		}
	}
	return sb.String()
}
