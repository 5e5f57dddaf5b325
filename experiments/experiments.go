package experiments

import (
	"context"
	"fmt"
	"time"

	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Arena plays AI-only games: every seat is a search agent built from the
// same AgentConfig. Game i of every config uses the same seed, so configs
// are compared on identical turn sequences.
type Arena struct {
	Width       int
	Height      int
	Mode        engine.Mode
	Games       int // per agent config
	Parallelism int
	Seed        uint64
	Weights     game.Weights
}

// PruningConfigs pairs pruned and plain searches at the same depths.
func PruningConfigs() []metrics.AgentConfig {
	return []metrics.AgentConfig{
		{ID: 1, Depth: 3, Pruning: true},
		{ID: 2, Depth: 3},
		{ID: 3, Depth: 4, Pruning: true},
		{ID: 4, Depth: 4},
	}
}

// BudgetConfigs compares the dynamic schedule with node and time budgets.
func BudgetConfigs() []metrics.AgentConfig {
	return []metrics.AgentConfig{
		{ID: 1, Pruning: true}, // dynamic schedule, unbounded
		{ID: 2, Pruning: true, NodeBudget: 2_000},
		{ID: 3, Pruning: true, NodeBudget: 20_000},
		{ID: 4, Pruning: true, Duration: 10 * time.Millisecond},
		{ID: 5, Pruning: true, Duration: 50 * time.Millisecond},
	}
}

// Experiments lists the named experiments accepted by RunExperiment.
var Experiments = map[string]func() []metrics.AgentConfig{
	"pruning": PruningConfigs,
	"budget":  BudgetConfigs,
}

// RunExperiment plays the named experiment and writes its records under
// root. It returns the directory holding the CSV files.
func RunExperiment(ctx context.Context, a Arena, name, root string) (string, error) {
	configs, ok := Experiments[name]
	if !ok {
		return "", fmt.Errorf("unknown experiment %q", name)
	}

	log.Info().Msgf("starting %s experiment...", name)
	collector, err := a.Run(ctx, configs())
	if err != nil {
		return "", err
	}
	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs()); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(collector.Games()); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(collector.Moves()); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())
	return writer.Dir(), nil
}

// Run plays a.Games games for each config, at most a.Parallelism at a time.
// Games share nothing but the collector.
func (a Arena) Run(ctx context.Context, configs []metrics.AgentConfig) (*metrics.Collector, error) {
	collector := metrics.NewCollector()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(a.Parallelism, 1))

	for ci, config := range configs {
		for i := 0; i < a.Games; i++ {
			id := ci*a.Games + i + 1
			seed := a.Seed + uint64(i)
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				log.Info().Msgf("starting game %d (agent %d, seed %d)...", id, config.ID, seed)

				gm, moves, err := a.runGame(config, seed)
				if err != nil {
					return fmt.Errorf("game %d: %w", id, err)
				}
				collector.AddGame(metrics.GameRecord{ID: id, Agent: config.ID, GameMetric: gm}, moves)

				log.Info().Msgf("completed game %d with winner: %q after %d moves", id, gm.Winner, gm.TotalMoves)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return collector, nil
}

func (a Arena) runGame(config metrics.AgentConfig, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := map[game.Cell]engine.Agent{}
	for _, p := range game.Players {
		agents[p] = engine.NewSearchAgent(a.createMinimax(config), a.Weights)
	}

	s, err := engine.NewSession(game.NewBoard(a.Width, a.Height), engine.NewTurnOrder(a.Mode, seed), agents)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	outcome, err := s.Run(engine.NopView())
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	if winner := game.Winner(s.Board); winner != outcome.Winner {
		return metrics.GameMetric{}, nil, fmt.Errorf("session reported winner %v but the board shows %v", outcome.Winner, winner)
	}

	gm, moves := s.Metrics()
	return gm, moves, nil
}

func (a Arena) createMinimax(config metrics.AgentConfig) *searcher.Minimax {
	options := []searcher.Option{searcher.WithWeights(a.Weights)}

	if config.Depth > 0 {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.NodeBudget > 0 {
		options = append(options, searcher.WithNodeBudget(config.NodeBudget))
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if !config.Pruning {
		options = append(options, searcher.WithoutPruning())
	}
	return searcher.NewMinimax(options...)
}
