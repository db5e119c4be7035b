package grid

import (
	"strings"
)

// Grid is a dense picture addressed [y][x].
type Grid struct {
	cells [][]Glyph
	width int
}

// Build sizes a grid to the bounding box of triples, measured from the
// origin, and plots every triple on it. A later triple at the same
// coordinates overwrites an earlier one. Triples outside
// [0, MaxCoordinate] are skipped. Build returns nil when no triple is left.
func Build(triples []Triple) *Grid {
	kept := make([]Triple, 0, len(triples))
	for _, t := range triples {
		if inRange(t.X) && inRange(t.Y) {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		return nil
	}

	maxX, maxY := 0, 0
	for _, t := range kept {
		if t.X > maxX {
			maxX = t.X
		}
		if t.Y > maxY {
			maxY = t.Y
		}
	}

	g := New(maxX+1, maxY+1)
	for _, t := range kept {
		g.cells[t.Y][t.X] = t.Symbol
	}
	return g
}

// New allocates a blank grid. Non-positive dimensions give an empty grid.
func New(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		return &Grid{}
	}
	cells := make([][]Glyph, height)
	for y := range cells {
		row := make([]Glyph, width)
		for x := range row {
			row[x] = Blank
		}
		cells[y] = row
	}
	return &Grid{cells: cells, width: width}
}

// Size returns the width and height of the grid.
func (g *Grid) Size() (width, height int) {
	return g.width, len(g.cells)
}

// At returns the glyph at (x, y), or Blank outside the grid.
func (g *Grid) At(x, y int) Glyph {
	if y < 0 || y >= len(g.cells) || x < 0 || x >= g.width {
		return Blank
	}
	return g.cells[y][x]
}

// Rows returns each row as a line of text. Unrecognized glyphs are blank.
func (g *Grid) Rows() []string {
	lines := make([]string, len(g.cells))
	var sb strings.Builder
	for y, row := range g.cells {
		sb.Reset()
		sb.Grow(len(row) * 3)
		for _, cell := range row {
			if cell.IsRecognized() {
				sb.WriteRune(rune(cell))
			} else {
				sb.WriteRune(rune(Blank))
			}
		}
		lines[y] = sb.String()
	}
	return lines
}

// String returns the rows joined by newlines.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}
