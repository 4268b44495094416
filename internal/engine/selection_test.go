package engine

import "testing"

func TestSelectionToggleRoundTrip(t *testing.T) {
	var s Selection
	s.Toggle(C(0, 0), 1)
	s.Toggle(C(1, 0), 1)
	before := s.Coords()

	if !s.Toggle(C(2, 0), 1) {
		t.Fatal("Toggle should select a new cell")
	}
	if s.Toggle(C(2, 0), 1) {
		t.Fatal("second Toggle should deselect the cell")
	}

	after := s.Coords()
	if len(after) != len(before) {
		t.Fatalf("len = %d, want %d", len(after), len(before))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("coord %d = %v, want %v", i, after[i], before[i])
		}
	}
}

func TestSelectionDifferentImageStartsOver(t *testing.T) {
	var s Selection
	s.Toggle(C(0, 0), 1)
	s.Toggle(C(1, 0), 1)
	s.Toggle(C(2, 0), 1)

	s.Toggle(C(3, 0), 2)

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if !s.Contains(C(3, 0)) {
		t.Error("new cell should be selected")
	}
	if s.Image() != 2 {
		t.Errorf("Image() = %d, want 2", s.Image())
	}
}

func TestSelectionKeepsOrder(t *testing.T) {
	var s Selection
	order := []Coord{C(4, 1), C(0, 0), C(2, 3)}
	for _, c := range order {
		s.Toggle(c, 5)
	}
	got := s.Coords()
	for i, c := range order {
		if got[i] != c {
			t.Errorf("coord %d = %v, want %v", i, got[i], c)
		}
	}
}

func TestSelectionClear(t *testing.T) {
	var s Selection
	s.Toggle(C(0, 0), 1)
	s.Clear()
	if s.Len() != 0 || s.Contains(C(0, 0)) {
		t.Error("Clear should empty the selection")
	}
}
