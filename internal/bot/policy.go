package bot

import (
	"ctchen222/tictactoe-ai/internal/game"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
)

// Policy names a move selection strategy.
type Policy string

const (
	PolicyRandom     Policy = "random"
	PolicyMinimax    Policy = "minimax"
	PolicyAlphaBeta  Policy = "alphabeta"
	PolicyPositional Policy = "positional"
	PolicyTactical   Policy = "tactical"
	PolicyRules      Policy = "rules"
)

// Policies lists every supported policy.
var Policies = []Policy{PolicyRandom, PolicyMinimax, PolicyAlphaBeta, PolicyPositional, PolicyTactical, PolicyRules}

var (
	// ErrInvalidState is returned when a search is requested on a finished board.
	ErrInvalidState = errors.New("invalid board state for search")
	// ErrInvalidConfig is returned for an unknown policy, side or depth.
	ErrInvalidConfig = errors.New("invalid bot config")
)

// Result is the outcome of a single ChooseMove call.
//
// The meaning of Score depends on the policy:
//   - minimax, alphabeta: +1 X wins, -1 O wins, 0 draw (X's perspective).
//   - positional: depth-scaled 10-depth / depth-10 plus the distance bonus,
//     only meaningful for ranking moves.
//   - tactical: +1 / -1 / 0 from the perspective of the side to move.
//   - random, rules: not evaluated.
type Result struct {
	Move          game.Cell `json:"move"`
	Score         int       `json:"score"`
	Evaluated     bool      `json:"evaluated"`
	NodesExpanded int       `json:"nodes_expanded"`
	Policy        Policy    `json:"policy"`
}

// Strategy picks a move for side on board. Implementations never mutate board.
type Strategy interface {
	ChooseMove(board *game.Board, side game.PlayerMark) (Result, error)
}

// PolicyForLevel maps the classic AI levels (0 random, 1 minimax, 2 alpha-beta).
func PolicyForLevel(level int) (Policy, error) {
	switch level {
	case 0:
		return PolicyRandom, nil
	case 1:
		return PolicyMinimax, nil
	case 2:
		return PolicyAlphaBeta, nil
	}
	return "", fmt.Errorf("%w: unknown level %d", ErrInvalidConfig, level)
}

// PolicyForDifficulty maps a difficulty name to a policy. Unknown names play hard.
func PolicyForDifficulty(difficulty string) Policy {
	switch strings.ToLower(difficulty) {
	case "easy":
		return PolicyRandom
	case "medium":
		return PolicyTactical
	default:
		return PolicyAlphaBeta
	}
}

func newStrategy(cfg Config, rng Source) (Strategy, error) {
	switch cfg.Policy {
	case PolicyRandom:
		return NewRandom(rng), nil
	case PolicyMinimax:
		return NewMinimax(), nil
	case PolicyAlphaBeta:
		return NewAlphaBeta(), nil
	case PolicyPositional:
		return NewPositional(), nil
	case PolicyTactical:
		return NewTactical(cfg.DepthLimit), nil
	case PolicyRules:
		return NewRules(rng), nil
	}
	return nil, fmt.Errorf("%w: unknown policy %q", ErrInvalidConfig, cfg.Policy)
}

// prepare checks the search preconditions and returns a private working copy.
func prepare(board *game.Board, side game.PlayerMark) (*game.Board, error) {
	if board == nil {
		return nil, fmt.Errorf("%w: nil board", ErrInvalidState)
	}
	if !side.Valid() {
		return nil, fmt.Errorf("%w: side %q cannot move", ErrInvalidState, side)
	}
	if state := board.State(); state != game.InProgress {
		return nil, fmt.Errorf("%w: game already over (%s)", ErrInvalidState, state)
	}
	return board.Clone(), nil
}

// Source supplies random numbers to the random and rule-based policies.
// *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

func pick(rng Source, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}

// lockedRand lets a single seeded source be shared by concurrent searches.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}
