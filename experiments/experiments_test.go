package experiments

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"

	"github.com/stretchr/testify/require"
)

func smallArena() Arena {
	return Arena{
		Width:       5,
		Height:      4,
		Mode:        engine.Random,
		Games:       3,
		Parallelism: 4,
		Seed:        17,
		Weights:     game.DefaultWeights(),
	}
}

func TestArenaRun(t *testing.T) {
	t.Run("records every game and move", func(t *testing.T) {
		configs := []metrics.AgentConfig{
			{ID: 1, Depth: 2, Pruning: true},
			{ID: 2, Depth: 2},
		}

		collector, err := smallArena().Run(context.Background(), configs)
		require.NoError(t, err)

		games := collector.Games()
		require.Len(t, games, 6)
		for i, g := range games {
			require.Equal(t, i+1, g.ID)
			require.NotEmpty(t, g.Session)
			require.Equal(t, "random", g.Mode)
		}
		require.Equal(t, 1, games[0].Agent)
		require.Equal(t, 2, games[5].Agent)

		total := 0
		for _, g := range games {
			total += g.TotalMoves
		}
		require.Len(t, collector.Moves(), total)
	})

	t.Run("pruning replays the plain games move for move", func(t *testing.T) {
		configs := []metrics.AgentConfig{
			{ID: 1, Depth: 3, Pruning: true},
			{ID: 2, Depth: 3},
		}

		collector, err := smallArena().Run(context.Background(), configs)
		require.NoError(t, err)

		columns := map[int][]int{}
		for _, m := range collector.Moves() {
			columns[m.Game] = append(columns[m.Game], m.Column)
		}
		for i := 1; i <= 3; i++ {
			require.Equal(t, columns[i], columns[i+3], "Game %d and %d share a seed", i, i+3)
		}
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := smallArena().Run(ctx, []metrics.AgentConfig{{ID: 1, Depth: 1, Pruning: true}})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestRunExperiment(t *testing.T) {
	t.Run("writes csv records", func(t *testing.T) {
		a := smallArena()
		a.Games = 1
		root := t.TempDir()

		dir, err := RunExperiment(context.Background(), a, "pruning", root)
		require.NoError(t, err)

		rel, err := filepath.Rel(root, dir)
		require.NoError(t, err)
		require.Equal(t, "pruning", filepath.Dir(rel))

		for name, rows := range map[string]int{
			"agent_configs.csv": len(PruningConfigs()) + 1,
			"game_records.csv":  len(PruningConfigs()) + 1,
		} {
			f, err := os.Open(filepath.Join(dir, name))
			require.NoError(t, err)
			records, err := csv.NewReader(f).ReadAll()
			f.Close()
			require.NoError(t, err)
			require.Len(t, records, rows, name)
		}

		_, err = os.Stat(filepath.Join(dir, "move_records.csv"))
		require.NoError(t, err)
	})

	t.Run("rejects unknown experiments", func(t *testing.T) {
		_, err := RunExperiment(context.Background(), smallArena(), "cutoff", t.TempDir())
		require.Error(t, err)
	})
}
