package player

import (
	"context"
	"ctchen222/tictactoe-ai/internal/game"

	"github.com/google/uuid"
)

//go:generate mockgen -source=player.go -destination=mocks/mock_player.go -package=mocks

// Mover decides the next move for one side of a game.
type Mover interface {
	NextMove(ctx context.Context, board *game.Board, mark game.PlayerMark) (game.Cell, error)
}

// NodeReporter is implemented by movers that search, so a runner can collect
// the nodes expanded for the move they just returned.
type NodeReporter interface {
	LastNodesExpanded() int
}

// Player represents one side of a game.
type Player struct {
	ID    string
	Name  string
	Mark  game.PlayerMark
	Mover Mover
}

func NewPlayer(name string, mark game.PlayerMark, mover Mover) *Player {
	return &Player{
		ID:    uuid.NewString(),
		Name:  name,
		Mark:  mark,
		Mover: mover,
	}
}

// NodesExpanded returns the node count of the player's last move, or zero
// for movers that do not search.
func (p *Player) NodesExpanded() int {
	if r, ok := p.Mover.(NodeReporter); ok {
		return r.LastNodesExpanded()
	}
	return 0
}
