package player

import (
	"bytes"
	"context"
	"ctchen222/tictactoe-ai/internal/game"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedMover struct {
	cell  game.Cell
	nodes int
}

func (f *fixedMover) NextMove(context.Context, *game.Board, game.PlayerMark) (game.Cell, error) {
	return f.cell, nil
}

func (f *fixedMover) LastNodesExpanded() int { return f.nodes }

func TestNewPlayer(t *testing.T) {
	p := NewPlayer("bot", game.PlayerO, &fixedMover{nodes: 42})
	_, err := uuid.Parse(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "bot", p.Name)
	assert.Equal(t, game.PlayerO, p.Mark)
	assert.Equal(t, 42, p.NodesExpanded())

	other := NewPlayer("bot", game.PlayerO, nil)
	assert.NotEqual(t, p.ID, other.ID)
	assert.Zero(t, other.NodesExpanded())
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		in      string
		want    game.Cell
		wantErr bool
	}{
		{in: "1 2", want: game.Cell{Row: 1, Col: 2}},
		{in: "0,0", want: game.Cell{Row: 0, Col: 0}},
		{in: "  2 ,  1 ", want: game.Cell{Row: 2, Col: 1}},
		{in: "", wantErr: true},
		{in: "1", wantErr: true},
		{in: "a b", wantErr: true},
		{in: "1 2 3", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseCell(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestConsoleMoverRepromptsUntilValid(t *testing.T) {
	board := game.NewBoard(game.Standard)
	require.NoError(t, board.Mark(1, 1, game.PlayerX))

	var out bytes.Buffer
	in := strings.NewReader("nonsense\n1 1\n5 5\n0 2\n")
	m := NewConsoleMover(in, &out)

	cell, err := m.NextMove(context.Background(), board, game.PlayerO)
	require.NoError(t, err)
	assert.Equal(t, game.Cell{Row: 0, Col: 2}, cell)
	assert.Equal(t, 4, strings.Count(out.String(), "O to move"))
	assert.Contains(t, out.String(), "(1,1) is not an open cell")
	assert.Contains(t, out.String(), "(5,5) is not an open cell")
}

func TestConsoleMoverEOF(t *testing.T) {
	m := NewConsoleMover(strings.NewReader(""), io.Discard)
	_, err := m.NextMove(context.Background(), game.NewBoard(game.Standard), game.PlayerX)
	assert.ErrorIs(t, err, io.EOF)
}

func TestConsoleMoverCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := NewConsoleMover(strings.NewReader("0 0\n"), io.Discard)
	_, err := m.NextMove(ctx, game.NewBoard(game.Standard), game.PlayerX)
	assert.ErrorIs(t, err, context.Canceled)
}
