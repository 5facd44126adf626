package main

import (
	"context"
	"ctchen222/tictactoe-ai/internal/bot"
	"ctchen222/tictactoe-ai/internal/config"
	"ctchen222/tictactoe-ai/internal/game"
	"ctchen222/tictactoe-ai/internal/match"
	"ctchen222/tictactoe-ai/internal/player"
	"ctchen222/tictactoe-ai/pkg/proto"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// textApplier redraws the board on a terminal after every move.
type textApplier struct {
	out io.Writer
}

func (a *textApplier) ApplyMove(_ context.Context, board *game.Board, mark game.PlayerMark, move game.Cell) error {
	_, err := fmt.Fprintf(a.out, "\n%s plays %s\n%s", mark, move, board)
	return err
}

func (a *textApplier) GameOver(_ context.Context, _ *game.Board, result game.GameResult) error {
	msg := "Draw!"
	if result != game.Draw {
		msg = fmt.Sprintf("%s wins!", result)
	}
	_, err := fmt.Fprintln(a.out, msg)
	return err
}

func seat(x, o *player.Player) (*player.Player, *player.Player) {
	if x.Mark == game.PlayerX {
		return x, o
	}
	return o, x
}

func play(ctx context.Context, cfg *config.Config, _ *pflag.FlagSet, in io.Reader, out io.Writer) error {
	layout, err := cfg.Layout()
	if err != nil {
		return err
	}
	b, err := bot.New(cfg.Bot)
	if err != nil {
		return err
	}

	computer := player.NewPlayer("computer", cfg.Bot.ComputerSide, b)
	human := player.NewPlayer("human", cfg.HumanMark(), player.NewConsoleMover(in, out))
	x, o := seat(computer, human)

	fmt.Fprintf(out, "You play %s, the computer plays %s with %s.\n%s", human.Mark, computer.Mark, cfg.Bot.Policy, game.NewBoard(layout))
	r := &match.Runner{Layout: layout, X: x, O: o, Applier: &textApplier{out: out}}
	_, err = r.Play(ctx)
	return err
}

func bench(ctx context.Context, cfg *config.Config, fs *pflag.FlagSet, _ io.Reader, out io.Writer) error {
	layout, err := cfg.Layout()
	if err != nil {
		return err
	}
	opponentName, err := fs.GetString("opponent")
	if err != nil {
		return err
	}
	opponentCfg := cfg.Bot
	opponentCfg.Policy = bot.Policy(opponentName)
	opponentCfg.ComputerSide = cfg.Bot.ComputerSide.Opponent()
	if err := opponentCfg.Validate(); err != nil {
		return err
	}

	t := match.Tournament{
		Rounds:  cfg.Rounds,
		Workers: cfg.Workers,
		NewRunner: func(int) (*match.Runner, error) {
			computer, err := bot.New(cfg.Bot)
			if err != nil {
				return nil, err
			}
			opponent, err := bot.New(opponentCfg)
			if err != nil {
				return nil, err
			}
			x, o := seat(
				player.NewPlayer(string(cfg.Bot.Policy), cfg.Bot.ComputerSide, computer),
				player.NewPlayer(string(opponentCfg.Policy), opponentCfg.ComputerSide, opponent),
			)
			return &match.Runner{Layout: layout, X: x, O: o}, nil
		},
	}
	report, err := t.Run(ctx)
	if err != nil {
		return err
	}

	policies := map[game.PlayerMark]bot.Policy{
		cfg.Bot.ComputerSide:     cfg.Bot.Policy,
		opponentCfg.ComputerSide: opponentCfg.Policy,
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "side\tpolicy\twins\tavg nodes\n")
	fmt.Fprintf(tw, "X\t%s\t%d\t%.1f\n", policies[game.PlayerX], report.XWins, report.AverageNodes(game.PlayerX))
	fmt.Fprintf(tw, "O\t%s\t%d\t%.1f\n", policies[game.PlayerO], report.OWins, report.AverageNodes(game.PlayerO))
	fmt.Fprintf(tw, "draws\t\t%d\t\n", report.Draws)
	return tw.Flush()
}

func suggest(ctx context.Context, _ *config.Config, _ *pflag.FlagSet, in io.Reader, out io.Writer) error {
	enc := json.NewEncoder(out)
	fail := func(err error) error {
		_ = enc.Encode(proto.ErrorResponse{Type: "error", Reason: err.Error()})
		return err
	}

	var req proto.MoveRequest
	if err := json.NewDecoder(in).Decode(&req); err != nil {
		return fail(fmt.Errorf("failed to decode move request: %w", err))
	}
	board, botCfg, err := req.Decode()
	if err != nil {
		return fail(err)
	}
	b, err := bot.New(botCfg)
	if err != nil {
		return fail(err)
	}
	res, err := b.ChooseMove(ctx, board, botCfg.ComputerSide)
	if err != nil {
		return fail(err)
	}

	after := board.Clone()
	if err := after.Mark(res.Move.Row, res.Move.Col, botCfg.ComputerSide); err != nil {
		return fail(err)
	}
	return enc.Encode(proto.NewMoveResponse(res, botCfg.ComputerSide, after))
}
