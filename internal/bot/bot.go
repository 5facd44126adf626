package bot

import (
	"context"
	"ctchen222/tictactoe-ai/internal/game"
	"ctchen222/tictactoe-ai/internal/validator"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("bot")
	meter  = otel.Meter("bot")
)

// Config selects how the bot plays.
type Config struct {
	Policy       Policy          `mapstructure:"policy" json:"policy" validate:"required,oneof=random minimax alphabeta positional tactical rules"`
	ComputerSide game.PlayerMark `mapstructure:"computer_side" json:"computer_side" validate:"required,oneof=X O"`
	// DepthLimit only applies to the tactical policy; zero means DefaultTacticalDepth.
	DepthLimit int `mapstructure:"depth_limit" json:"depth_limit" validate:"gte=0,lte=25"`
}

// DefaultConfig plays O with alpha-beta.
func DefaultConfig() Config {
	return Config{
		Policy:       PolicyAlphaBeta,
		ComputerSide: game.PlayerO,
		DepthLimit:   DefaultTacticalDepth,
	}
}

// Validate checks the config with the shared validator.
func (c Config) Validate() error {
	if err := validator.GetValidator().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Option customizes a Bot.
type Option func(*Bot)

// WithRand makes the random and rule-based policies deterministic.
func WithRand(r *rand.Rand) Option {
	return func(b *Bot) {
		b.rng = &lockedRand{r: r}
	}
}

// Bot is the move selection facade. Its config may be changed between moves;
// a search already running keeps the config it started with.
type Bot struct {
	mu        sync.Mutex
	cfg       Config
	lastNodes int

	rng          Source
	nodesCounter metric.Int64Counter
	searchTime   metric.Float64Histogram
}

// New creates a bot with a validated config.
func New(cfg Config, opts ...Option) (*Bot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	nodesCounter, err := meter.Int64Counter("bot.nodes_expanded",
		metric.WithDescription("Trial marks performed by move searches"),
		metric.WithUnit("{node}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create nodes counter: %w", err)
	}
	searchTime, err := meter.Float64Histogram("bot.search.duration",
		metric.WithDescription("Wall time of a single move search"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create search duration histogram: %w", err)
	}

	b := &Bot{cfg: cfg, nodesCounter: nodesCounter, searchTime: searchTime}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Config returns a copy of the current config.
func (b *Bot) Config() Config {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cfg
}

// SetPolicy switches the policy used by subsequent searches.
func (b *Bot) SetPolicy(p Policy) error {
	return b.update(func(c *Config) { c.Policy = p })
}

// SetComputerSide changes the side the bot plays.
func (b *Bot) SetComputerSide(side game.PlayerMark) error {
	return b.update(func(c *Config) { c.ComputerSide = side })
}

// SetDepthLimit changes the tactical look-ahead.
func (b *Bot) SetDepthLimit(depth int) error {
	return b.update(func(c *Config) { c.DepthLimit = depth })
}

func (b *Bot) update(fn func(*Config)) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	next := b.cfg
	fn(&next)
	if err := next.Validate(); err != nil {
		return err
	}
	b.cfg = next
	return nil
}

// LastNodesExpanded reports the node count of the most recent successful search.
func (b *Bot) LastNodesExpanded() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastNodes
}

// ChooseMove runs the configured policy for side on a snapshot of board.
func (b *Bot) ChooseMove(ctx context.Context, board *game.Board, side game.PlayerMark) (Result, error) {
	cfg := b.Config()
	ctx, span := tracer.Start(ctx, "bot.ChooseMove", trace.WithAttributes(
		attribute.String("bot.policy", string(cfg.Policy)),
		attribute.String("bot.side", string(side)),
	))
	defer span.End()

	strategy, err := newStrategy(cfg, b.rng)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Unknown policy")
		return Result{}, err
	}

	start := time.Now()
	res, err := strategy.ChooseMove(board, side)
	if err != nil {
		slog.WarnContext(ctx, "bot could not choose a move", "policy", cfg.Policy, "side", side, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Could not choose a move")
		return Result{}, err
	}
	elapsed := time.Since(start)

	policyAttr := metric.WithAttributes(attribute.String("bot.policy", string(cfg.Policy)))
	b.nodesCounter.Add(ctx, int64(res.NodesExpanded), policyAttr)
	b.searchTime.Record(ctx, float64(elapsed.Microseconds())/1000, policyAttr)
	span.SetAttributes(
		attribute.Int("move.row", res.Move.Row),
		attribute.Int("move.col", res.Move.Col),
		attribute.Int("bot.nodes_expanded", res.NodesExpanded),
	)

	b.mu.Lock()
	b.lastNodes = res.NodesExpanded
	b.mu.Unlock()

	if res.Evaluated {
		slog.DebugContext(ctx, "AI has chosen a square", "policy", res.Policy, "move", res.Move.String(), "score", res.Score, "nodes", res.NodesExpanded, "elapsed", elapsed)
	} else {
		slog.DebugContext(ctx, "AI has chosen a square", "policy", res.Policy, "move", res.Move.String(), "nodes", res.NodesExpanded, "elapsed", elapsed)
	}
	return res, nil
}

// NextMove lets the bot act as a player.Mover.
func (b *Bot) NextMove(ctx context.Context, board *game.Board, mark game.PlayerMark) (game.Cell, error) {
	res, err := b.ChooseMove(ctx, board, mark)
	if err != nil {
		return game.Cell{}, err
	}
	return res.Move, nil
}

// ChooseMove is the stateless form of the facade: it validates cfg and runs
// the selected policy once.
func ChooseMove(board *game.Board, side game.PlayerMark, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	strategy, err := newStrategy(cfg, nil)
	if err != nil {
		return Result{}, err
	}
	return strategy.ChooseMove(board, side)
}
