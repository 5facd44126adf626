package proto

import (
	"ctchen222/tictactoe-ai/internal/bot"
	"ctchen222/tictactoe-ai/internal/game"
	"ctchen222/tictactoe-ai/internal/validator"
	"fmt"
)

// MoveRequest asks for the computer's move on a board snapshot.
type MoveRequest struct {
	Board      [][]game.PlayerMark `json:"board" validate:"required,min=1,dive,required,dive,playermark"`
	Layout     string              `json:"layout,omitempty" validate:"omitempty,oneof=standard extended"`
	Side       game.PlayerMark     `json:"side,omitempty" validate:"omitempty,oneof=X O"`
	Policy     bot.Policy          `json:"policy,omitempty" validate:"omitempty,oneof=random minimax alphabeta positional tactical rules"`
	DepthLimit int                 `json:"depthLimit,omitempty" validate:"gte=0,lte=25"`
}

// MoveResponse carries the chosen move and the search statistics.
type MoveResponse struct {
	Row           int             `json:"row"`
	Col           int             `json:"col"`
	Side          game.PlayerMark `json:"side"`
	Policy        bot.Policy      `json:"policy"`
	Score         *int            `json:"score,omitempty"`
	NodesExpanded int             `json:"nodesExpanded"`
	State         game.GameResult `json:"state"`
}

// ErrorResponse is written instead of a MoveResponse when a request fails.
type ErrorResponse struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

// Validate checks the request with the shared validator.
func (r *MoveRequest) Validate() error {
	return validator.GetValidator().Struct(r)
}

// Decode builds the board and the bot config described by the request. An
// empty side defaults to whoever moves next; an empty policy to alpha-beta.
func (r *MoveRequest) Decode() (*game.Board, bot.Config, error) {
	if err := r.Validate(); err != nil {
		return nil, bot.Config{}, fmt.Errorf("invalid move request: %w", err)
	}
	layout, err := game.LayoutByName(r.Layout)
	if err != nil {
		return nil, bot.Config{}, err
	}
	board, err := game.FromRows(layout, r.Board)
	if err != nil {
		return nil, bot.Config{}, err
	}

	cfg := bot.DefaultConfig()
	if r.Policy != "" {
		cfg.Policy = r.Policy
	}
	if r.DepthLimit > 0 {
		cfg.DepthLimit = r.DepthLimit
	}
	cfg.ComputerSide = r.Side
	if cfg.ComputerSide == game.None {
		cfg.ComputerSide = board.NextTurn()
	}
	return board, cfg, nil
}

// NewMoveResponse reports res for side; after is the board with the move applied.
func NewMoveResponse(res bot.Result, side game.PlayerMark, after *game.Board) MoveResponse {
	resp := MoveResponse{
		Row:           res.Move.Row,
		Col:           res.Move.Col,
		Side:          side,
		Policy:        res.Policy,
		NodesExpanded: res.NodesExpanded,
		State:         after.State(),
	}
	if res.Evaluated {
		score := res.Score
		resp.Score = &score
	}
	return resp
}
