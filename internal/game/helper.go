package game

import (
	"errors"
	"fmt"
)

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

// GameResult is the terminal status of a board.
type GameResult string

const (
	// Player marks. X always moves first.
	None    PlayerMark = ""
	PlayerX PlayerMark = "X"
	PlayerO PlayerMark = "O"

	// Game results
	InProgress GameResult = ""
	XWins      GameResult = "X"
	OWins      GameResult = "O"
	Draw       GameResult = "Draw"
)

// ErrInvalidMove is returned when a mark targets an occupied or non-existent cell.
var ErrInvalidMove = errors.New("invalid move")

// Cell addresses a square on the board.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Valid reports whether the mark belongs to a player.
func (m PlayerMark) Valid() bool {
	return m == PlayerX || m == PlayerO
}

// Opponent returns the other player's mark. None has no opponent.
func (m PlayerMark) Opponent() PlayerMark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	}
	return None
}

// ResultFor converts a winning mark to the matching game result.
func ResultFor(winner PlayerMark) GameResult {
	switch winner {
	case PlayerX:
		return XWins
	case PlayerO:
		return OWins
	}
	return InProgress
}
