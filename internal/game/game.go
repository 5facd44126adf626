package game

import (
	"fmt"
	"strings"
)

// Board holds cell occupancy for one game. It is mutated only through Mark;
// Unmark exists for search working copies and must never touch a live board.
type Board struct {
	layout Layout
	cells  []PlayerMark
	marked int
}

// NewBoard returns an empty board for the given layout.
func NewBoard(layout Layout) *Board {
	return &Board{
		layout: layout,
		cells:  make([]PlayerMark, layout.Size()),
	}
}

// FromRows builds a board from a snapshot, as sent by a client or written in a test.
func FromRows(layout Layout, rows [][]PlayerMark) (*Board, error) {
	if len(rows) != layout.Rows {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidMove, layout.Rows, len(rows))
	}
	b := NewBoard(layout)
	for r, row := range rows {
		if len(row) != layout.Cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidMove, r, len(row), layout.Cols)
		}
		for c, mark := range row {
			if mark == None {
				continue
			}
			if err := b.Mark(r, c, mark); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// Mark places a player's mark on an empty cell.
func (b *Board) Mark(row, col int, mark PlayerMark) error {
	if !b.layout.contains(row, col) {
		return fmt.Errorf("%w: cell (%d,%d) is off the board", ErrInvalidMove, row, col)
	}
	if !mark.Valid() {
		return fmt.Errorf("%w: unknown mark %q", ErrInvalidMove, mark)
	}
	i := b.index(row, col)
	if b.cells[i] != None {
		return fmt.Errorf("%w: cell (%d,%d) already occupied", ErrInvalidMove, row, col)
	}
	b.cells[i] = mark
	b.marked++
	return nil
}

// Unmark clears a cell previously set by Mark. Search code uses it to undo
// trial moves on its private copy.
func (b *Board) Unmark(row, col int) {
	i := b.index(row, col)
	if b.cells[i] != None {
		b.cells[i] = None
		b.marked--
	}
}

// At returns the mark in a cell.
func (b *Board) At(row, col int) PlayerMark {
	return b.cells[b.index(row, col)]
}

// IsOpen reports whether a cell exists and is empty.
func (b *Board) IsOpen(row, col int) bool {
	return b.layout.contains(row, col) && b.cells[b.index(row, col)] == None
}

// OpenCells enumerates empty cells in row-major order. Search tie-breaks
// depend on this order.
func (b *Board) OpenCells() []Cell {
	open := make([]Cell, 0, len(b.cells)-b.marked)
	for i, mark := range b.cells {
		if mark == None {
			open = append(open, Cell{Row: i / b.layout.Cols, Col: i % b.layout.Cols})
		}
	}
	return open
}

// IsFull reports whether the layout's capacity has been reached.
func (b *Board) IsFull() bool {
	return b.marked >= b.layout.Capacity
}

// IsEmpty reports whether no cell is marked.
func (b *Board) IsEmpty() bool {
	return b.marked == 0
}

// MarkedCount is the number of non-empty cells.
func (b *Board) MarkedCount() int {
	return b.marked
}

// Winner scans the winning lines in order and returns the mark of the first
// completed one, or None.
func (b *Board) Winner() PlayerMark {
	for _, line := range b.layout.Lines {
		first := b.cells[line[0]]
		if first != None && first == b.cells[line[1]] && first == b.cells[line[2]] {
			return first
		}
	}
	return None
}

// State reports whether the game is won, drawn or still running.
func (b *Board) State() GameResult {
	if winner := b.Winner(); winner != None {
		return ResultFor(winner)
	}
	if b.IsFull() {
		return Draw
	}
	return InProgress
}

// IsTerminal reports whether no further move can be played.
func (b *Board) IsTerminal() bool {
	return b.State() != InProgress
}

// NextTurn infers the side to move from the mark counts. X moves first.
func (b *Board) NextTurn() PlayerMark {
	var x, o int
	for _, mark := range b.cells {
		switch mark {
		case PlayerX:
			x++
		case PlayerO:
			o++
		}
	}
	if x > o {
		return PlayerO
	}
	return PlayerX
}

// Layout returns the board geometry.
func (b *Board) Layout() Layout {
	return b.layout
}

// Center returns the center cell of the board.
func (b *Board) Center() Cell {
	return b.layout.Center()
}

// Distance is the Manhattan distance from c to the center.
func (b *Board) Distance(c Cell) int {
	return b.layout.Distance(c)
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]PlayerMark, len(b.cells))
	copy(cells, b.cells)
	return &Board{layout: b.layout, cells: cells, marked: b.marked}
}

// Equal reports whether two boards have the same geometry and occupancy.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.layout.Name != other.layout.Name || b.marked != other.marked || len(b.cells) != len(other.cells) {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Rows converts the board to a slice of rows.
func (b *Board) Rows() [][]PlayerMark {
	rows := make([][]PlayerMark, b.layout.Rows)
	for r := range b.layout.Rows {
		rows[r] = make([]PlayerMark, b.layout.Cols)
		copy(rows[r], b.cells[r*b.layout.Cols:(r+1)*b.layout.Cols])
	}
	return rows
}

// String renders the board as text, one row per line, "." for empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	for r := range b.layout.Rows {
		for c := range b.layout.Cols {
			if c > 0 {
				sb.WriteString(" | ")
			}
			mark := b.cells[b.index(r, c)]
			if mark == None {
				sb.WriteString(".")
			} else {
				sb.WriteString(string(mark))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (b *Board) index(row, col int) int {
	return row*b.layout.Cols + col
}
