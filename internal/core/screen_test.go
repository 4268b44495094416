package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(12, 6, "·")

	if s.Width() != 12 {
		t.Errorf("Width() = %d, expected 12", s.Width())
	}
	if s.Height() != 6 {
		t.Errorf("Height() = %d, expected 6", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if got := s.Get(x, y); got.Glyph != "·" || got.Marks != 0 {
				t.Errorf("new screen tile at (%d, %d) = %+v, expected blank", x, y, got)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(4, 4, ".")

	s.Set(2, 1, Tile{Glyph: "🎮", Color: ColorRed})
	if got := s.Get(2, 1); got.Glyph != "🎮" || got.Color != ColorRed {
		t.Errorf("Get(2, 1) = %+v", got)
	}

	s.Set(-1, 0, Tile{Glyph: "x"})
	s.Set(0, 100, Tile{Glyph: "x"})

	if s.Get(-1, 0).Glyph != "." {
		t.Error("out of bounds Get should return a blank tile")
	}
}

func TestScreenMarks(t *testing.T) {
	s := NewScreen(3, 3, ".")
	s.Mark(1, 1, MarkCursor)
	s.Mark(1, 1, MarkSelected)

	tile := s.Get(1, 1)
	if !tile.Has(MarkCursor) || !tile.Has(MarkSelected) {
		t.Errorf("tile marks = %b, expected cursor and selected", tile.Marks)
	}
	if tile.Has(MarkFlash) {
		t.Error("flash should not be set")
	}
	if !tile.Has(MarkCursor | MarkSelected) {
		t.Error("Has should accept combined marks")
	}

	s.Mark(9, 9, MarkFlash) // out of bounds, no panic
}

func TestScreenClearAndResize(t *testing.T) {
	s := NewScreen(3, 2, ".")
	s.Set(0, 0, Tile{Glyph: "A", Marks: MarkFlash})
	s.Clear()
	if got := s.Get(0, 0); got.Glyph != "." || got.Marks != 0 {
		t.Errorf("after Clear got %+v", got)
	}

	s.Resize(5, 4)
	if s.Width() != 5 || s.Height() != 4 {
		t.Errorf("Resize: %dx%d, expected 5x4", s.Width(), s.Height())
	}
	if s.Get(4, 3).Glyph != "." {
		t.Error("resized tiles should be blank")
	}
}

func TestScreenRowIsCopy(t *testing.T) {
	s := NewScreen(2, 2, ".")
	row := s.Row(0)
	row[0].Glyph = "Z"
	if s.Get(0, 0).Glyph != "." {
		t.Error("Row should return a copy")
	}
	if s.Row(5) != nil {
		t.Error("out of range Row should be nil")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2, ".")
	s.Set(1, 0, Tile{Glyph: "A"})
	s.Set(2, 1, Tile{Glyph: "B"})

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != ". A ." {
		t.Errorf("line 0 = %q, expected %q", lines[0], ". A .")
	}
	if lines[1] != ". . B" {
		t.Errorf("line 1 = %q, expected %q", lines[1], ". . B")
	}
}

func TestImageColorCycles(t *testing.T) {
	if ImageColor(0) == ImageColor(1) {
		t.Error("neighbouring images should get different colors")
	}
	if ImageColor(0) != ImageColor(len(imagePalette)) {
		t.Error("palette should cycle")
	}
	if ImageColor(-1) != ColorDefault {
		t.Error("negative index should map to the default color")
	}
}
