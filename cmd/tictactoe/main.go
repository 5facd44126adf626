package main

import (
	"context"
	"ctchen222/tictactoe-ai/internal/config"
	"ctchen222/tictactoe-ai/internal/logger"
	"ctchen222/tictactoe-ai/internal/telemetry"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
)

const usage = `usage: tictactoe <command> [flags]

commands:
  play     play against the computer on the terminal
  bench    let two computer policies play each other and report node counts
  suggest  read a JSON move request on stdin and write the computer's move
`

var errUsage = errors.New("unknown command")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, pflag.ErrHelp) {
			slog.Error("tictactoe failed", "error", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(errOut, usage)
		return errUsage
	}
	cmd, args := args[0], args[1:]

	var command func(context.Context, *config.Config, *pflag.FlagSet, io.Reader, io.Writer) error
	fs := pflag.NewFlagSet(cmd, pflag.ContinueOnError)
	fs.SetOutput(errOut)
	config.RegisterFlags(fs)
	switch cmd {
	case "play":
		command = play
	case "bench":
		fs.String("opponent", "random", "policy of the side the computer does not play")
		command = bench
	case "suggest":
		command = suggest
	default:
		fmt.Fprint(errOut, usage)
		return fmt.Errorf("%w: %s", errUsage, cmd)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger.Init(logger.Options{
		Level:  level,
		Writer: errOut,
		Otel:   cfg.Telemetry.OTLPEndpoint != "",
	})

	cfg.Telemetry.TraceWriter = errOut
	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Error("Error shutting down telemetry", "error", err)
		}
	}()

	return command(ctx, cfg, fs, in, out)
}
