package engine

import (
	"fmt"
	"math/rand"
)

// Board is the output of the generator: a populated grid plus the cursor.
type Board struct {
	Grid   *Grid
	Cursor Coord
	Placed int // Number of images placed on the grid
}

// AppearancesPerType returns how many copies of each image type go into the
// pool. Every type gets at least MinMatch copies so it can be matched.
func AppearancesPerType(targetImages, catalogSize int) int {
	if catalogSize <= 0 {
		return 0
	}
	per := (targetImages + catalogSize - 1) / catalogSize
	if per < MinMatch {
		per = MinMatch
	}
	return per
}

// PoolSize returns how many images end up on a board for the preset.
// One cell is always left free for the cursor.
func PoolSize(p Preset, catalogSize int) int {
	full := AppearancesPerType(p.TargetImages, catalogSize) * catalogSize
	return min(full, p.TargetImages, p.Cells()-1)
}

// GenerateBoard builds a shuffled board for the preset.
// An empty catalog is replaced by the built-in one.
func GenerateBoard(p Preset, catalog Catalog, rng *rand.Rand) (*Board, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("engine: generate board: nil random source")
	}
	catalog = orBuiltin(catalog)

	pool := buildPool(p, catalog, rng)

	grid := NewGrid(p.Columns, p.Rows)
	positions := grid.Coords()
	shuffle(rng, positions)
	for i, id := range pool {
		grid.Place(positions[i], id)
	}

	board := &Board{Grid: grid, Placed: len(pool)}
	cursor, evicted := placeCursor(grid)
	if evicted {
		board.Placed--
	}
	board.Cursor = cursor
	return board, nil
}

// buildPool concatenates the per-type copies, shuffles them and truncates the
// result to the preset's capacity.
func buildPool(p Preset, catalog Catalog, rng *rand.Rand) []ImageID {
	per := AppearancesPerType(p.TargetImages, catalog.Len())
	pool := make([]ImageID, 0, per*catalog.Len())
	for _, d := range catalog.Descriptors {
		for range per {
			pool = append(pool, d.ID)
		}
	}
	shuffle(rng, pool)
	return pool[:min(len(pool), p.TargetImages, p.Cells()-1)]
}

// shuffle is an in-place Fisher-Yates shuffle.
func shuffle[T any](rng *rand.Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// placeCursor finds the empty cell closest to the board center, searching
// rings of increasing Chebyshev radius. If the board is full it clears (0,0)
// and reports that an image was evicted.
func placeCursor(g *Grid) (Coord, bool) {
	center := C(g.Columns/2, g.Rows/2)
	maxRadius := max(g.Columns, g.Rows)

	for radius := 0; radius < maxRadius; radius++ {
		for dx := -radius; dx <= radius; dx++ {
			for dy := -radius; dy <= radius; dy++ {
				if max(abs(dx), abs(dy)) != radius {
					continue // Inner rings were already searched
				}
				c := center.Add(dx, dy)
				if g.InBounds(c) && !g.At(c).Occupied {
					return c, false
				}
			}
		}
	}

	origin := C(0, 0)
	evicted := g.Clear(origin)
	return origin, evicted
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
