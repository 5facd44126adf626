package match

import (
	"context"
	"ctchen222/tictactoe-ai/internal/game"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

var ErrInvalidTournament = errors.New("invalid tournament")

// Tournament plays Rounds independent games, at most Workers at a time.
// NewRunner must build fresh players for every round: a bot reports the
// nodes of its own last search, so sharing one across rounds mixes counts.
type Tournament struct {
	Rounds    int
	Workers   int
	NewRunner func(round int) (*Runner, error)
}

// Report aggregates the summaries of a tournament.
type Report struct {
	Rounds     int                     `json:"rounds"`
	XWins      int                     `json:"x_wins"`
	OWins      int                     `json:"o_wins"`
	Draws      int                     `json:"draws"`
	TotalNodes map[game.PlayerMark]int `json:"total_nodes"`
	Summaries  []Summary               `json:"-"`
}

// AverageNodes is the mean number of nodes mark expanded per game.
func (r Report) AverageNodes(mark game.PlayerMark) float64 {
	if r.Rounds == 0 {
		return 0
	}
	return float64(r.TotalNodes[mark]) / float64(r.Rounds)
}

func (t Tournament) Run(ctx context.Context) (Report, error) {
	if t.Rounds < 1 || t.NewRunner == nil {
		return Report{}, fmt.Errorf("%w: need at least one round and a runner factory", ErrInvalidTournament)
	}
	workers := t.Workers
	if workers < 1 {
		workers = 1
	}

	summaries := make([]Summary, t.Rounds)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range t.Rounds {
		g.Go(func() error {
			runner, err := t.NewRunner(i)
			if err != nil {
				return fmt.Errorf("round %d: %w", i, err)
			}
			s, err := runner.Play(ctx)
			if err != nil {
				return fmt.Errorf("round %d: %w", i, err)
			}
			summaries[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	report := Report{
		Rounds:     t.Rounds,
		TotalNodes: map[game.PlayerMark]int{game.PlayerX: 0, game.PlayerO: 0},
		Summaries:  summaries,
	}
	for _, s := range summaries {
		switch s.Result {
		case game.XWins:
			report.XWins++
		case game.OWins:
			report.OWins++
		case game.Draw:
			report.Draws++
		}
		for mark, n := range s.NodesExpanded {
			report.TotalNodes[mark] += n
		}
	}
	slog.InfoContext(ctx, "Tournament finished", "rounds", report.Rounds, "x_wins", report.XWins, "o_wins", report.OWins, "draws", report.Draws)
	return report, nil
}
