package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingHandler struct {
	slog.Handler
}

func (failingHandler) Handle(context.Context, slog.Record) error {
	return errors.New("sink down")
}

func TestMultiHandlerRespectsEachLevel(t *testing.T) {
	var debug, warn bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)
	log := slog.New(h).With("policy", "alphabeta")

	log.Debug("AI has chosen a square")
	log.Warn("bot could not choose a move")

	assert.Contains(t, debug.String(), "AI has chosen a square")
	assert.Contains(t, debug.String(), "bot could not choose a move")
	assert.NotContains(t, warn.String(), "AI has chosen a square")
	assert.Contains(t, warn.String(), "policy=alphabeta")
	assert.True(t, h.Enabled(context.Background(), slog.LevelDebug))
}

func TestMultiHandlerKeepsGoingAfterFailure(t *testing.T) {
	var buf bytes.Buffer
	good := slog.NewTextHandler(&buf, nil)
	h := NewMultiHandler(failingHandler{good}, good)

	err := h.Handle(context.Background(), slog.NewRecord(time.Time{}, slog.LevelInfo, "Match started", 0))
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "Match started")
}

func TestNewWithoutOtel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: slog.LevelInfo, Writer: &buf})
	log.Debug("hidden")
	log.Info("shown", "nodes", 42)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "nodes=42")
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = ParseLevel(" warn ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
