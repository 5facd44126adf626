package bot

import (
	"ctchen222/tictactoe-ai/internal/game"
	"math"
)

const (
	scoreXWins = 1
	scoreOWins = -1
	scoreDraw  = 0
)

// searcher owns the working board and node counter of one ChooseMove call.
type searcher struct {
	board *game.Board
	nodes int
}

// try places a trial mark. Cells always come from OpenCells, so Mark cannot fail.
func (s *searcher) try(c game.Cell, mark game.PlayerMark) {
	_ = s.board.Mark(c.Row, c.Col, mark)
	s.nodes++
}

func (s *searcher) undo(c game.Cell) {
	s.board.Unmark(c.Row, c.Col)
}

func terminalScore(b *game.Board) (int, bool) {
	switch b.State() {
	case game.XWins:
		return scoreXWins, true
	case game.OWins:
		return scoreOWins, true
	case game.Draw:
		return scoreDraw, true
	}
	return 0, false
}

// markFor returns the mark of the side at a node. X maximizes.
func markFor(maximizing bool) game.PlayerMark {
	if maximizing {
		return game.PlayerX
	}
	return game.PlayerO
}

func initialBest(maximizing bool) int {
	if maximizing {
		return math.MinInt
	}
	return math.MaxInt
}

func better(maximizing bool, score, best int) bool {
	if maximizing {
		return score > best
	}
	return score < best
}

// Minimax searches every branch to a terminal leaf.
type Minimax struct{}

func NewMinimax() *Minimax {
	return &Minimax{}
}

func (m *Minimax) ChooseMove(board *game.Board, side game.PlayerMark) (Result, error) {
	work, err := prepare(board, side)
	if err != nil {
		return Result{}, err
	}
	s := &searcher{board: work}
	score, move := s.minimax(side == game.PlayerX)
	return Result{Move: move, Score: score, Evaluated: true, NodesExpanded: s.nodes, Policy: PolicyMinimax}, nil
}

func (s *searcher) minimax(maximizing bool) (int, game.Cell) {
	if score, done := terminalScore(s.board); done {
		return score, game.Cell{}
	}

	best := initialBest(maximizing)
	var bestMove game.Cell
	mark := markFor(maximizing)
	for _, c := range s.board.OpenCells() {
		s.try(c, mark)
		score, _ := s.minimax(!maximizing)
		s.undo(c)
		if better(maximizing, score, best) {
			best, bestMove = score, c
		}
	}
	return best, bestMove
}

// AlphaBeta is minimax with alpha-beta pruning. It picks the same move with
// the same score as Minimax while expanding no more nodes.
type AlphaBeta struct{}

func NewAlphaBeta() *AlphaBeta {
	return &AlphaBeta{}
}

func (a *AlphaBeta) ChooseMove(board *game.Board, side game.PlayerMark) (Result, error) {
	work, err := prepare(board, side)
	if err != nil {
		return Result{}, err
	}
	s := &searcher{board: work}
	score, move := s.alphaBeta(side == game.PlayerX, math.MinInt, math.MaxInt)
	return Result{Move: move, Score: score, Evaluated: true, NodesExpanded: s.nodes, Policy: PolicyAlphaBeta}, nil
}

func (s *searcher) alphaBeta(maximizing bool, alpha, beta int) (int, game.Cell) {
	if score, done := terminalScore(s.board); done {
		return score, game.Cell{}
	}

	best := initialBest(maximizing)
	var bestMove game.Cell
	mark := markFor(maximizing)
	for _, c := range s.board.OpenCells() {
		s.try(c, mark)
		score, _ := s.alphaBeta(!maximizing, alpha, beta)
		s.undo(c)
		if better(maximizing, score, best) {
			best, bestMove = score, c
		}
		if maximizing {
			alpha = max(alpha, score)
		} else {
			beta = min(beta, score)
		}
		if beta <= alpha {
			break
		}
	}
	return best, bestMove
}
