package player

import (
	"bufio"
	"context"
	"ctchen222/tictactoe-ai/internal/game"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errBadInput = errors.New("enter a row and a column, e.g. \"1 2\"")

// ConsoleMover reads moves typed by a human as "row col" lines.
// Malformed input and occupied cells are reported and the prompt repeats.
type ConsoleMover struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewConsoleMover(in io.Reader, out io.Writer) *ConsoleMover {
	return &ConsoleMover{in: bufio.NewScanner(in), out: out}
}

func (c *ConsoleMover) NextMove(ctx context.Context, board *game.Board, mark game.PlayerMark) (game.Cell, error) {
	for {
		if err := ctx.Err(); err != nil {
			return game.Cell{}, err
		}
		fmt.Fprintf(c.out, "%s to move (row col): ", mark)
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return game.Cell{}, fmt.Errorf("failed to read move: %w", err)
			}
			return game.Cell{}, io.EOF
		}

		cell, err := ParseCell(c.in.Text())
		if err != nil {
			fmt.Fprintln(c.out, err)
			continue
		}
		if !board.IsOpen(cell.Row, cell.Col) {
			fmt.Fprintf(c.out, "%s is not an open cell\n", cell)
			continue
		}
		return cell, nil
	}
}

// ParseCell parses "row col" or "row,col".
func ParseCell(s string) (game.Cell, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 2 {
		return game.Cell{}, errBadInput
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return game.Cell{}, errBadInput
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return game.Cell{}, errBadInput
	}
	return game.Cell{Row: row, Col: col}, nil
}
