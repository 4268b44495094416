package engine

// Selection is the ordered set of chosen cells. All members share one image.
type Selection struct {
	coords []Coord
	image  ImageID
}

// Len returns the number of selected cells.
func (s *Selection) Len() int {
	return len(s.coords)
}

// Image returns the image shared by the selection. Meaningless when empty.
func (s *Selection) Image() ImageID {
	return s.image
}

// Contains reports whether c is selected.
func (s *Selection) Contains(c Coord) bool {
	return s.indexOf(c) >= 0
}

// Coords returns a copy of the selected coordinates in selection order.
func (s *Selection) Coords() []Coord {
	out := make([]Coord, len(s.coords))
	copy(out, s.coords)
	return out
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.coords = s.coords[:0]
	s.image = 0
}

// Toggle deselects c if it is selected, otherwise selects it. Selecting a
// cell with a different image than the current selection starts over.
// Returns true if c is selected afterwards.
func (s *Selection) Toggle(c Coord, id ImageID) bool {
	if i := s.indexOf(c); i >= 0 {
		s.coords = append(s.coords[:i], s.coords[i+1:]...)
		return false
	}
	if len(s.coords) > 0 && s.image != id {
		s.Clear()
	}
	s.coords = append(s.coords, c)
	s.image = id
	return true
}

func (s *Selection) indexOf(c Coord) int {
	for i, sc := range s.coords {
		if sc == c {
			return i
		}
	}
	return -1
}
