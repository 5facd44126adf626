package config

import (
	"ctchen222/tictactoe-ai/internal/bot"
	"ctchen222/tictactoe-ai/internal/game"
	"ctchen222/tictactoe-ai/internal/telemetry"
	"ctchen222/tictactoe-ai/internal/validator"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "TICTACTOE"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Board     string           `mapstructure:"board" validate:"oneof=standard extended"`
	Bot       bot.Config       `mapstructure:"bot"`
	Human     game.PlayerMark  `mapstructure:"human" validate:"omitempty,oneof=X O"`
	Rounds    int              `mapstructure:"rounds" validate:"gte=1"`
	Workers   int              `mapstructure:"workers" validate:"gte=1"`
	LogLevel  string           `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	Telemetry telemetry.Config `mapstructure:"telemetry"`
}

// HumanMark is the side the human plays: Human if set, otherwise the side
// the computer does not play.
func (c *Config) HumanMark() game.PlayerMark {
	if c.Human != game.None {
		return c.Human
	}
	return c.Bot.ComputerSide.Opponent()
}

// Layout resolves the configured board name.
func (c *Config) Layout() (game.Layout, error) {
	return game.LayoutByName(c.Board)
}

func (c *Config) Validate() error {
	if err := validator.GetValidator().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Human != game.None && c.Human == c.Bot.ComputerSide {
		return fmt.Errorf("%w: human and computer both play %s", ErrInvalidConfig, c.Human)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	def := bot.DefaultConfig()
	v.SetDefault("board", game.Standard.Name)
	v.SetDefault("bot.policy", string(def.Policy))
	v.SetDefault("bot.computer_side", string(def.ComputerSide))
	v.SetDefault("bot.depth_limit", def.DepthLimit)
	v.SetDefault("human", "")
	v.SetDefault("rounds", 10)
	v.SetDefault("workers", 4)
	v.SetDefault("log_level", "info")
	v.SetDefault("telemetry.service_name", "tictactoe-ai")
	v.SetDefault("telemetry.service_version", "v0.1.0")
	v.SetDefault("telemetry.otlp_endpoint", "")
	v.SetDefault("telemetry.stdout_traces", false)
}

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"board":         "board",
	"policy":        "bot.policy",
	"side":          "bot.computer_side",
	"depth":         "bot.depth_limit",
	"human":         "human",
	"rounds":        "rounds",
	"workers":       "workers",
	"log-level":     "log_level",
	"otlp-endpoint": "telemetry.otlp_endpoint",
	"stdout-traces": "telemetry.stdout_traces",
}

// RegisterFlags adds the config flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a config file (yaml, json or toml)")
	fs.String("board", game.Standard.Name, "board layout: standard or extended")
	fs.String("policy", string(bot.PolicyAlphaBeta), "computer policy: random, minimax, alphabeta, positional, tactical or rules")
	fs.String("side", string(game.PlayerO), "side the computer plays: X or O")
	fs.Int("depth", bot.DefaultTacticalDepth, "look-ahead of the tactical policy in plies")
	fs.String("human", "", "side the human plays (defaults to the other side)")
	fs.Int("rounds", 10, "games per benchmark")
	fs.Int("workers", 4, "games played concurrently by the benchmark")
	fs.String("log-level", "info", "debug, info, warn or error")
	fs.String("otlp-endpoint", "", "OTLP gRPC collector address, e.g. otel-collector:4317")
	fs.Bool("stdout-traces", false, "print trace spans to stderr")
}

// Load reads defaults, the optional config file, TICTACTOE_* environment
// variables and the flags in fs, in increasing order of precedence. fs must
// already be parsed.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
		v.SetConfigFile(f.Value.String())
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Board = strings.ToLower(cfg.Board)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.Bot.Policy = bot.Policy(strings.ToLower(string(cfg.Bot.Policy)))
	cfg.Bot.ComputerSide = game.PlayerMark(strings.ToUpper(string(cfg.Bot.ComputerSide)))
	cfg.Human = game.PlayerMark(strings.ToUpper(string(cfg.Human)))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
