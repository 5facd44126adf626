package game

import (
	"fmt"
	"strings"
)

// Layout describes the geometry of a board: its dimensions, the winning lines
// and how many marks make it full.
//
// Lines hold indices into the row-major flattened grid, so the same eight
// triples can be laid over boards of different widths.
type Layout struct {
	Name     string
	Rows     int
	Cols     int
	Lines    [][3]int
	Capacity int
}

var canonicalLines = [][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

var (
	// Standard is the classic 3x3 game.
	Standard = mustLayout("standard", 3, 3, canonicalLines, 9)

	// Extended is the 5x5 variant. Only the eight canonical triples of the
	// flattened grid win, and the board is full after nine marks.
	Extended = mustLayout("extended", 5, 5, canonicalLines, 9)
)

// NewLayout validates and builds a layout.
func NewLayout(name string, rows, cols int, lines [][3]int, capacity int) (Layout, error) {
	if rows <= 0 || cols <= 0 {
		return Layout{}, fmt.Errorf("layout %q: invalid dimensions %dx%d", name, rows, cols)
	}
	size := rows * cols
	if capacity <= 0 || capacity > size {
		return Layout{}, fmt.Errorf("layout %q: capacity %d out of range 1..%d", name, capacity, size)
	}
	if len(lines) == 0 {
		return Layout{}, fmt.Errorf("layout %q: no winning lines", name)
	}
	copied := make([][3]int, len(lines))
	for i, line := range lines {
		for _, idx := range line {
			if idx < 0 || idx >= size {
				return Layout{}, fmt.Errorf("layout %q: line %d index %d out of range", name, i, idx)
			}
		}
		copied[i] = line
	}
	return Layout{Name: name, Rows: rows, Cols: cols, Lines: copied, Capacity: capacity}, nil
}

func mustLayout(name string, rows, cols int, lines [][3]int, capacity int) Layout {
	l, err := NewLayout(name, rows, cols, lines, capacity)
	if err != nil {
		panic(err)
	}
	return l
}

// LayoutByName resolves one of the predefined layouts.
func LayoutByName(name string) (Layout, error) {
	switch strings.ToLower(name) {
	case "", Standard.Name:
		return Standard, nil
	case Extended.Name:
		return Extended, nil
	}
	return Layout{}, fmt.Errorf("unknown board layout %q", name)
}

// Size is the number of cells on the board.
func (l Layout) Size() int {
	return l.Rows * l.Cols
}

// Center is the cell used by the positional heuristic.
func (l Layout) Center() Cell {
	return Cell{Row: l.Rows / 2, Col: l.Cols / 2}
}

// Corners lists the four corner cells in row-major order.
func (l Layout) Corners() []Cell {
	return []Cell{{0, 0}, {0, l.Cols - 1}, {l.Rows - 1, 0}, {l.Rows - 1, l.Cols - 1}}
}

// Distance is the Manhattan distance from c to the center cell.
func (l Layout) Distance(c Cell) int {
	center := l.Center()
	return abs(c.Row-center.Row) + abs(c.Col-center.Col)
}

func (l Layout) contains(row, col int) bool {
	return row >= 0 && row < l.Rows && col >= 0 && col < l.Cols
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
