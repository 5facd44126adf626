package config

import (
	"ctchen222/tictactoe-ai/internal/bot"
	"ctchen222/tictactoe-ai/internal/game"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(parse(t))
	require.NoError(t, err)

	assert.Equal(t, "standard", cfg.Board)
	assert.Equal(t, bot.DefaultConfig(), cfg.Bot)
	assert.Equal(t, game.PlayerX, cfg.HumanMark())
	assert.Equal(t, 10, cfg.Rounds)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Telemetry.Enabled())

	layout, err := cfg.Layout()
	require.NoError(t, err)
	assert.Equal(t, game.Standard.Name, layout.Name)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tictactoe.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
board: extended
rounds: 3
bot:
  policy: positional
  computer_side: x
telemetry:
  otlp_endpoint: otel-collector:4317
`), 0o600))

	t.Setenv("TICTACTOE_ROUNDS", "7")
	t.Setenv("TICTACTOE_BOT_POLICY", "tactical")

	cfg, err := Load(parse(t, "--config", path, "--policy", "Minimax", "--workers", "2"))
	require.NoError(t, err)

	assert.Equal(t, "extended", cfg.Board)
	assert.Equal(t, 7, cfg.Rounds, "env beats file")
	assert.Equal(t, bot.PolicyMinimax, cfg.Bot.Policy, "flag beats env")
	assert.Equal(t, game.PlayerX, cfg.Bot.ComputerSide)
	assert.Equal(t, game.PlayerO, cfg.HumanMark())
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "otel-collector:4317", cfg.Telemetry.OTLPEndpoint)
	assert.True(t, cfg.Telemetry.Enabled())
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown board", []string{"--board", "hex"}},
		{"unknown policy", []string{"--policy", "greedy"}},
		{"bad side", []string{"--side", "Z"}},
		{"negative depth", []string{"--depth", "-1"}},
		{"zero rounds", []string{"--rounds", "0"}},
		{"same sides", []string{"--side", "X", "--human", "x"}},
		{"bad level", []string{"--log-level", "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(parse(t, tt.args...))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(parse(t, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)
}
