package bot

import (
	"ctchen222/tictactoe-ai/internal/game"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestFindWinningMove(t *testing.T) {
	tests := []struct {
		name      string
		board     [][]game.PlayerMark
		mark      game.PlayerMark
		want      game.Cell
		wantFound bool
	}{
		{
			name:  "No winning move - empty board",
			board: [][]game.PlayerMark{{"", "", ""}, {"", "", ""}, {"", "", ""}},
			mark:  X,
		},
		{
			name: "X can win - first row",
			board: [][]game.PlayerMark{
				{X, X, ""},
				{O, O, ""},
				{"", "", ""},
			},
			mark: X,
			want: game.Cell{Row: 0, Col: 2}, wantFound: true,
		},
		{
			name: "O can win - second column",
			board: [][]game.PlayerMark{
				{X, O, ""},
				{X, O, ""},
				{"", "", ""},
			},
			mark: O,
			want: game.Cell{Row: 2, Col: 1}, wantFound: true,
		},
		{
			name: "X can win - main diagonal",
			board: [][]game.PlayerMark{
				{X, "", ""},
				{"", X, ""},
				{"", "", ""},
			},
			mark: X,
			want: game.Cell{Row: 2, Col: 2}, wantFound: true,
		},
		{
			name: "O can win - anti-diagonal",
			board: [][]game.PlayerMark{
				{"", "", O},
				{"", O, ""},
				{"", "", ""},
			},
			mark: O,
			want: game.Cell{Row: 2, Col: 0}, wantFound: true,
		},
		{
			name: "X can win - last cell",
			board: [][]game.PlayerMark{
				{X, O, X},
				{O, X, O},
				{O, X, ""},
			},
			mark: X,
			want: game.Cell{Row: 2, Col: 2}, wantFound: true,
		},
		{
			name: "Full board, no win possible",
			board: [][]game.PlayerMark{
				{X, O, X},
				{O, X, O},
				{O, X, O},
			},
			mark: X,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := game.FromRows(game.Standard, tt.board)
			if err != nil {
				t.Fatalf("FromRows() error = %v", err)
			}
			before := b.Clone()
			s := &searcher{board: b}

			got, found := s.findWinningMove(tt.mark)
			if found != tt.wantFound || (found && got != tt.want) {
				t.Errorf("findWinningMove() for %s got (%v, %v), want (%v, %v)", tt.name, got, found, tt.want, tt.wantFound)
			}
			if !b.Equal(before) {
				t.Errorf("findWinningMove() left trial marks on the board:\n%s", b)
			}
		})
	}
}

func TestRandomMove(t *testing.T) {
	t.Run("Only one spot left", func(t *testing.T) {
		b := mustBoard(t, game.Standard, [][]game.PlayerMark{
			{X, O, X},
			{X, O, O},
			{O, "", X},
		})
		res, err := NewRandom(nil).ChooseMove(b, X)
		if err != nil {
			t.Fatalf("ChooseMove() error = %v", err)
		}
		if res.Move != (game.Cell{Row: 2, Col: 1}) {
			t.Errorf("random should pick the only available spot (2,1), but got %v", res.Move)
		}
		if res.Evaluated || res.NodesExpanded != 0 {
			t.Errorf("random should not evaluate, got evaluated=%v nodes=%d", res.Evaluated, res.NodesExpanded)
		}
	})

	t.Run("Multiple spots left - every move is open", func(t *testing.T) {
		b := game.NewBoard(game.Standard)
		open := b.OpenCells()
		seen := make(map[game.Cell]bool)
		r := NewRandom(rand.New(rand.NewPCG(1, 2)))
		for range 200 {
			res, err := r.ChooseMove(b, X)
			if err != nil {
				t.Fatalf("ChooseMove() error = %v", err)
			}
			if !slices.Contains(open, res.Move) {
				t.Errorf("random returned an invalid move %v", res.Move)
			}
			seen[res.Move] = true
		}
		if len(seen) < 2 {
			t.Errorf("random always returned the same move: %v", seen)
		}
	})

	t.Run("Seeded sources repeat", func(t *testing.T) {
		b := game.NewBoard(game.Standard)
		a := NewRandom(rand.New(rand.NewPCG(7, 7)))
		c := NewRandom(rand.New(rand.NewPCG(7, 7)))
		for range 20 {
			ra, _ := a.ChooseMove(b, O)
			rc, _ := c.ChooseMove(b, O)
			if ra.Move != rc.Move {
				t.Fatalf("same seed gave %v and %v", ra.Move, rc.Move)
			}
		}
	})
}

func TestRulesMove(t *testing.T) {
	corners := game.Standard.Corners()
	tests := []struct {
		name   string
		layout game.Layout
		board  [][]game.PlayerMark
		side   game.PlayerMark
		want   game.Cell
		oneOf  []game.Cell
	}{
		{
			name:   "Bot can win",
			layout: game.Standard,
			board: [][]game.PlayerMark{
				{X, X, ""},
				{O, O, ""},
				{"", "", ""},
			},
			side: X,
			want: game.Cell{Row: 0, Col: 2},
		},
		{
			name:   "Bot must block opponent",
			layout: game.Standard,
			board: [][]game.PlayerMark{
				{O, O, ""},
				{X, "", ""},
				{"", "", ""},
			},
			side: X,
			want: game.Cell{Row: 0, Col: 2},
		},
		{
			name:   "Take center",
			layout: game.Standard,
			board: [][]game.PlayerMark{
				{O, "", ""},
				{"", "", ""},
				{"", "", ""},
			},
			side: X,
			want: game.Cell{Row: 1, Col: 1},
		},
		{
			name:   "Take corner (random)",
			layout: game.Standard,
			board: [][]game.PlayerMark{
				{"", "", ""},
				{"", O, ""},
				{"", "", ""},
			},
			side:  X,
			oneOf: corners,
		},
		{
			name:   "Take side (random)",
			layout: game.Extended,
			board: [][]game.PlayerMark{
				{O, "", "", "", X},
				{"", "", "", "", ""},
				{"", "", X, "", ""},
				{"", "", "", "", ""},
				{O, "", "", "", O},
			},
			side:  X,
			oneOf: []game.Cell{{Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 4}, {Row: 4, Col: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := game.FromRows(tt.layout, tt.board)
			if err != nil {
				t.Fatalf("FromRows() error = %v", err)
			}
			res, err := NewRules(rand.New(rand.NewPCG(3, 4))).ChooseMove(b, tt.side)
			if err != nil {
				t.Fatalf("ChooseMove() error = %v", err)
			}
			if tt.oneOf != nil {
				if !slices.Contains(tt.oneOf, res.Move) {
					t.Errorf("rules for %s got %v, want one of %v", tt.name, res.Move, tt.oneOf)
				}
			} else if res.Move != tt.want {
				t.Errorf("rules for %s got %v, want %v", tt.name, res.Move, tt.want)
			}
			if res.Policy != PolicyRules || res.Evaluated {
				t.Errorf("rules result = %+v", res)
			}
		})
	}
}
