package engine

import "fmt"

// Coord is a grid position. X grows to the right, Y grows downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the coordinate offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Cell is either Empty or Occupied by an image.
// The zero value is an empty cell.
type Cell struct {
	Occupied bool
	Image    ImageID // Valid only when Occupied is true
}

// EmptyCell returns an empty cell.
func EmptyCell() Cell {
	return Cell{}
}

// OccupiedCell returns a cell holding the given image.
func OccupiedCell(id ImageID) Cell {
	return Cell{Occupied: true, Image: id}
}

// Grid is the board. Cells are stored in row-major order: index = y*Columns + x.
type Grid struct {
	Columns int
	Rows    int
	cells   []Cell
}

// NewGrid creates a grid with every cell empty.
func NewGrid(columns, rows int) *Grid {
	return &Grid{
		Columns: columns,
		Rows:    rows,
		cells:   make([]Cell, columns*rows),
	}
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.Columns + c.X
}

// coordAt converts a flat index back to a coordinate.
func (g *Grid) coordAt(i int) Coord {
	return Coord{X: i % g.Columns, Y: i / g.Columns}
}

// InBounds returns true if the coordinate is on the board.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Columns && c.Y >= 0 && c.Y < g.Rows
}

// At returns the cell at c. Out-of-bounds coordinates read as empty.
func (g *Grid) At(c Coord) Cell {
	if !g.InBounds(c) {
		return EmptyCell()
	}
	return g.cells[g.index(c)]
}

// Place puts an image on the cell at c.
func (g *Grid) Place(c Coord, id ImageID) {
	if g.InBounds(c) {
		g.cells[g.index(c)] = OccupiedCell(id)
	}
}

// Clear empties the cell at c and reports whether it was occupied.
func (g *Grid) Clear(c Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	i := g.index(c)
	was := g.cells[i].Occupied
	g.cells[i] = EmptyCell()
	return was
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// OccupiedCount returns the number of occupied cells.
func (g *Grid) OccupiedCount() int {
	n := 0
	for _, cell := range g.cells {
		if cell.Occupied {
			n++
		}
	}
	return n
}

// CountByImage groups occupied cells by image.
func (g *Grid) CountByImage() map[ImageID]int {
	counts := make(map[ImageID]int)
	for _, cell := range g.cells {
		if cell.Occupied {
			counts[cell.Image]++
		}
	}
	return counts
}

// Coords returns every coordinate in row-major order.
func (g *Grid) Coords() []Coord {
	coords := make([]Coord, 0, len(g.cells))
	for i := range g.cells {
		coords = append(coords, g.coordAt(i))
	}
	return coords
}

// Cells returns a copy of the cell arena in row-major order.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}
