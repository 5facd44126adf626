package bot

import (
	"ctchen222/tictactoe-ai/internal/game"
	"math"
)

// depthScale bounds the depth-scaled terminal values of the positional search.
const depthScale = 10

// DefaultTacticalDepth is the number of plies, candidate move included, the
// tactical policy looks ahead: its own move and the opponent's reply.
const DefaultTacticalDepth = 2

// Positional is alpha-beta with a Manhattan distance-from-center bonus.
//
// After a child is evaluated the distance of the candidate cell is added when
// maximizing and subtracted when minimizing. The biased value is compared,
// used for pruning and returned, so Score ranks moves but is not a game value.
type Positional struct{}

func NewPositional() *Positional {
	return &Positional{}
}

func (p *Positional) ChooseMove(board *game.Board, side game.PlayerMark) (Result, error) {
	work, err := prepare(board, side)
	if err != nil {
		return Result{}, err
	}
	s := &searcher{board: work}
	score, move := s.positional(side == game.PlayerX, 0, math.MinInt, math.MaxInt)
	return Result{Move: move, Score: score, Evaluated: true, NodesExpanded: s.nodes, Policy: PolicyPositional}, nil
}

func (s *searcher) positional(maximizing bool, depth, alpha, beta int) (int, game.Cell) {
	switch s.board.State() {
	case game.XWins:
		return depthScale - depth, game.Cell{}
	case game.OWins:
		return depth - depthScale, game.Cell{}
	case game.Draw:
		return scoreDraw, game.Cell{}
	}

	best := initialBest(maximizing)
	var bestMove game.Cell
	mark := markFor(maximizing)
	for _, c := range s.board.OpenCells() {
		s.try(c, mark)
		score, _ := s.positional(!maximizing, depth+1, alpha, beta)
		s.undo(c)
		if maximizing {
			score += s.board.Distance(c)
			if score > best {
				best, bestMove = score, c
			}
			alpha = max(alpha, score)
		} else {
			score -= s.board.Distance(c)
			if score < best {
				best, bestMove = score, c
			}
			beta = min(beta, score)
		}
		if beta <= alpha {
			break
		}
	}
	return best, bestMove
}

// Tactical is a shallow alpha-beta search scored from the perspective of the
// side to move: +1 when it wins, -1 when the opponent wins, 0 for a draw or
// an undecided position at the horizon. With the default depth it finds
// immediate wins and blocks immediate losses.
type Tactical struct {
	depth int
}

// NewTactical returns a tactical searcher. A depth below one uses DefaultTacticalDepth.
func NewTactical(depth int) *Tactical {
	if depth < 1 {
		depth = DefaultTacticalDepth
	}
	return &Tactical{depth: depth}
}

func (t *Tactical) ChooseMove(board *game.Board, side game.PlayerMark) (Result, error) {
	work, err := prepare(board, side)
	if err != nil {
		return Result{}, err
	}
	ts := &tacticalSearch{searcher: searcher{board: work}, self: side}

	best := math.MinInt
	var bestMove game.Cell
	alpha, beta := math.MinInt, math.MaxInt
	for _, c := range work.OpenCells() {
		ts.try(c, side)
		score := ts.search(false, t.depth-1, alpha, beta)
		ts.undo(c)
		if score > best {
			best, bestMove = score, c
		}
		alpha = max(alpha, score)
	}
	return Result{Move: bestMove, Score: best, Evaluated: true, NodesExpanded: ts.nodes, Policy: PolicyTactical}, nil
}

type tacticalSearch struct {
	searcher
	self game.PlayerMark
}

// search maximizes for self and minimizes for the opponent; depth counts the
// plies still allowed below this node.
func (t *tacticalSearch) search(maximizing bool, depth, alpha, beta int) int {
	switch t.board.Winner() {
	case t.self:
		return 1
	case t.self.Opponent():
		return -1
	}
	if t.board.IsFull() || depth <= 0 {
		return 0
	}

	best := initialBest(maximizing)
	mark := t.self
	if !maximizing {
		mark = t.self.Opponent()
	}
	for _, c := range t.board.OpenCells() {
		t.try(c, mark)
		score := t.search(!maximizing, depth-1, alpha, beta)
		t.undo(c)
		if maximizing {
			best = max(best, score)
			alpha = max(alpha, score)
		} else {
			best = min(best, score)
			beta = min(beta, score)
		}
		if beta <= alpha {
			break
		}
	}
	return best
}
