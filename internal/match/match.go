package match

import (
	"context"
	"ctchen222/tictactoe-ai/internal/game"
	"ctchen222/tictactoe-ai/internal/player"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

//go:generate mockgen -source=match.go -destination=mocks/mock_match.go -package=mocks

var tracer = otel.Tracer("match")

var (
	// ErrIllegalMove is returned when a mover picks an occupied or off-board cell.
	ErrIllegalMove = errors.New("illegal move")
	// ErrInvalidPlayers is returned when the runner's players do not hold X and O.
	ErrInvalidPlayers = errors.New("invalid players")
)

// MoveApplier is told about every move the runner accepts, typically to
// redraw the board. It never changes the game.
type MoveApplier interface {
	ApplyMove(ctx context.Context, board *game.Board, mark game.PlayerMark, move game.Cell) error
	GameOver(ctx context.Context, board *game.Board, result game.GameResult) error
}

// NopApplier ignores every call.
type NopApplier struct{}

func (NopApplier) ApplyMove(context.Context, *game.Board, game.PlayerMark, game.Cell) error {
	return nil
}

func (NopApplier) GameOver(context.Context, *game.Board, game.GameResult) error {
	return nil
}

// Move is one accepted move.
type Move struct {
	Mark game.PlayerMark `json:"mark"`
	Cell game.Cell       `json:"cell"`
}

// Summary describes a finished game.
type Summary struct {
	ID            uuid.UUID               `json:"id"`
	Result        game.GameResult         `json:"result"`
	Moves         []Move                  `json:"moves"`
	NodesExpanded map[game.PlayerMark]int `json:"nodes_expanded"`
}

// Runner holds the authoritative board of one game and asks each player for
// a move in turn. X always moves first.
type Runner struct {
	Layout  game.Layout
	X       *player.Player
	O       *player.Player
	Applier MoveApplier
}

func (r *Runner) playerFor(mark game.PlayerMark) *player.Player {
	if mark == game.PlayerX {
		return r.X
	}
	return r.O
}

// Play runs the game to a terminal state. Players receive a copy of the board,
// so a misbehaving mover cannot change the game behind the runner's back.
func (r *Runner) Play(ctx context.Context) (Summary, error) {
	if r.X == nil || r.O == nil || r.X.Mark != game.PlayerX || r.O.Mark != game.PlayerO {
		return Summary{}, fmt.Errorf("%w: need one X and one O player", ErrInvalidPlayers)
	}
	applier := r.Applier
	if applier == nil {
		applier = NopApplier{}
	}
	layout := r.Layout
	if layout.Size() == 0 {
		layout = game.Standard
	}

	summary := Summary{
		ID:            uuid.New(),
		NodesExpanded: map[game.PlayerMark]int{game.PlayerX: 0, game.PlayerO: 0},
	}
	ctx, span := tracer.Start(ctx, "match.Play", trace.WithAttributes(
		attribute.String("match.id", summary.ID.String()),
		attribute.String("match.layout", layout.Name),
	))
	defer span.End()

	slog.InfoContext(ctx, "Match started", "match_id", summary.ID, "x", r.X.Name, "o", r.O.Name, "layout", layout.Name)

	board := game.NewBoard(layout)
	for !board.IsTerminal() {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		mark := board.NextTurn()
		p := r.playerFor(mark)

		move, err := p.Mover.NextMove(ctx, board.Clone(), mark)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Player failed to move")
			return summary, fmt.Errorf("player %s failed to move: %w", p.Name, err)
		}
		if err := board.Mark(move.Row, move.Col, mark); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Illegal move")
			return summary, fmt.Errorf("%w by %s: %w", ErrIllegalMove, p.Name, err)
		}

		summary.Moves = append(summary.Moves, Move{Mark: mark, Cell: move})
		summary.NodesExpanded[mark] += p.NodesExpanded()
		slog.DebugContext(ctx, "Move applied", "match_id", summary.ID, "player", p.Name, "mark", mark, "move", move.String())

		if err := applier.ApplyMove(ctx, board.Clone(), mark, move); err != nil {
			return summary, fmt.Errorf("failed to apply move: %w", err)
		}
	}

	summary.Result = board.State()
	span.SetAttributes(attribute.String("match.result", string(summary.Result)))
	slog.InfoContext(ctx, "Match finished", "match_id", summary.ID, "result", summary.Result, "moves", len(summary.Moves))

	if err := applier.GameOver(ctx, board.Clone(), summary.Result); err != nil {
		return summary, fmt.Errorf("failed to report game over: %w", err)
	}
	return summary, nil
}
