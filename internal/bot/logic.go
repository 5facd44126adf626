package bot

import (
	"ctchen222/tictactoe-ai/internal/game"
)

// Random makes a completely random move.
type Random struct {
	rng Source
}

// NewRandom returns a random mover. A nil source uses the global generator.
func NewRandom(rng Source) *Random {
	return &Random{rng: rng}
}

func (r *Random) ChooseMove(board *game.Board, side game.PlayerMark) (Result, error) {
	if _, err := prepare(board, side); err != nil {
		return Result{}, err
	}
	open := board.OpenCells()
	return Result{Move: open[pick(r.rng, len(open))], Policy: PolicyRandom}, nil
}

// Rules follows a fixed priority list: win, block, center, a random corner,
// a random edge midpoint, then the first open cell.
type Rules struct {
	rng Source
}

// NewRules returns a rule-based mover. A nil source uses the global generator.
func NewRules(rng Source) *Rules {
	return &Rules{rng: rng}
}

func (r *Rules) ChooseMove(board *game.Board, side game.PlayerMark) (Result, error) {
	work, err := prepare(board, side)
	if err != nil {
		return Result{}, err
	}
	s := &searcher{board: work}
	result := func(c game.Cell) (Result, error) {
		return Result{Move: c, NodesExpanded: s.nodes, Policy: PolicyRules}, nil
	}

	// 1. Win: check if the side to move can win in the next move
	if c, ok := s.findWinningMove(side); ok {
		return result(c)
	}

	// 2. Block: check if the opponent is about to win and block them
	if c, ok := s.findWinningMove(side.Opponent()); ok {
		return result(c)
	}

	layout := work.Layout()

	// 3. Center: take the center if it's available
	if center := layout.Center(); work.IsOpen(center.Row, center.Col) {
		return result(center)
	}

	// 4. Corners: take an available corner randomly
	if c, ok := r.randomOpen(work, layout.Corners()); ok {
		return result(c)
	}

	// 5. Sides: take any available edge midpoint randomly
	sides := []game.Cell{
		{Row: 0, Col: layout.Cols / 2},
		{Row: layout.Rows / 2, Col: 0},
		{Row: layout.Rows / 2, Col: layout.Cols - 1},
		{Row: layout.Rows - 1, Col: layout.Cols / 2},
	}
	if c, ok := r.randomOpen(work, sides); ok {
		return result(c)
	}

	// Only reachable on boards wider than three cells.
	return result(work.OpenCells()[0])
}

func (r *Rules) randomOpen(board *game.Board, candidates []game.Cell) (game.Cell, bool) {
	available := make([]game.Cell, 0, len(candidates))
	for _, c := range candidates {
		if board.IsOpen(c.Row, c.Col) {
			available = append(available, c)
		}
	}
	if len(available) == 0 {
		return game.Cell{}, false
	}
	return available[pick(r.rng, len(available))], true
}

// findWinningMove returns the first open cell that completes a line for mark.
func (s *searcher) findWinningMove(mark game.PlayerMark) (game.Cell, bool) {
	for _, c := range s.board.OpenCells() {
		s.try(c, mark)
		won := s.board.Winner() == mark
		s.undo(c)
		if won {
			return c, true
		}
	}
	return game.Cell{}, false
}
