package searcher

import (
	"fmt"
	"time"

	"connect4/experiments/metrics"
	"connect4/game"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax searches with alpha-beta pruning. Every search works on a private
// copy of the board, so a Minimax holds no per-search state.
type Minimax struct {
	depth      int // fixed depth, 0 uses the schedule
	schedule   Schedule
	weights    game.Weights
	pruning    bool
	nodeBudget int
	duration   time.Duration
}

// Result is the outcome of a search.
type Result struct {
	Column int
	Score  int
	metrics.SearchMetric
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithSchedule(schedule Schedule) Option {
	return func(m *Minimax) {
		if len(schedule) > 0 {
			m.schedule = schedule
		}
	}
}

func WithWeights(weights game.Weights) Option {
	return func(m *Minimax) {
		m.weights = weights
	}
}

// WithoutPruning runs plain minimax. Results match the pruned search; only
// the number of visited nodes grows.
func WithoutPruning() Option {
	return func(m *Minimax) {
		m.pruning = false
	}
}

// WithNodeBudget bounds the number of positions visited per search.
func WithNodeBudget(nodes int) Option {
	return func(m *Minimax) {
		if nodes > 0 {
			m.nodeBudget = nodes
		}
	}
}

// WithDuration bounds the wall-clock time of a search.
func WithDuration(duration time.Duration) Option {
	return func(m *Minimax) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		schedule: DefaultSchedule(),
		weights:  game.DefaultWeights(),
		pruning:  true,
	}
	for _, option := range options {
		option(m)
	}
	if err := m.schedule.Validate(); err != nil {
		panic(fmt.Sprintf("invalid depth schedule: %v", err))
	}
	if err := m.weights.Validate(); err != nil {
		panic(fmt.Sprintf("invalid heuristic weights: %v", err))
	}
	return m
}

// Depth returns the number of plies searched on b.
func (m *Minimax) Depth(b *game.Board) int {
	if m.depth > 0 {
		return m.depth
	}
	return m.schedule.Depth(b.EmptyCells(), b.Width()*b.Height())
}

func (m *Minimax) limited() bool {
	return m.nodeBudget > 0 || m.duration > 0
}

func (m *Minimax) BestMove(b *game.Board, player, opponent game.Cell) (int, error) {
	result, err := m.Search(b, player, opponent)
	return result.Column, err
}

// Search returns the best column for player, assuming opponent answers every
// move. Among equally scored columns the one closest to the center wins.
//
// With a node or time budget the search deepens one ply at a time and keeps
// the result of the deepest finished pass, so running out of budget still
// yields a legal move.
func (m *Minimax) Search(b *game.Board, player, opponent game.Cell) (Result, error) {
	if !player.IsPlayer() || !opponent.IsPlayer() || player == opponent {
		return Result{Column: -1}, fmt.Errorf("search needs two distinct players, got %v and %v", player, opponent)
	}

	order := CenterOrder(b.Width())
	legal := make([]int, 0, len(order))
	for _, col := range order {
		if b.IsValidColumn(col) {
			legal = append(legal, col)
		}
	}
	if len(legal) == 0 {
		return Result{Column: -1}, game.ErrNoLegalMove
	}

	s := &search{
		board:    b.Clone(),
		order:    order,
		player:   player,
		opponent: opponent,
		weights:  m.weights,
		pruning:  m.pruning,
		budget:   m.nodeBudget,
	}
	start := time.Now()
	if m.duration > 0 {
		s.deadline = start.Add(m.duration)
	}

	target := m.Depth(b)
	result := Result{Column: legal[0]}
	if !m.limited() {
		result.Column, result.Score, _ = s.root(legal, target)
		result.Depth = target
	} else {
		for depth := 1; depth <= target; depth++ {
			column, score, evaluated := s.root(legal, depth)
			if s.aborted {
				if result.Depth == 0 && evaluated {
					result.Column, result.Score = column, score
				}
				log.Warn().Msgf("search budget exhausted at depth %d of %d after %d nodes", depth, target, s.nodes)
				break
			}
			result.Column, result.Score, result.Depth = column, score, depth
		}
	}

	result.Nodes = s.nodes
	result.Cutoffs = s.cutoffs
	result.Duration = time.Since(start)
	result.Complete = !s.aborted

	log.Debug().
		Str("player", player.String()).
		Str("opponent", opponent.String()).
		Int("column", result.Column).
		Int("score", result.Score).
		Int("depth", result.Depth).
		Int("nodes", result.Nodes).
		Int("cutoffs", result.Cutoffs).
		Dur("duration", result.Duration).
		Msg("search finished")
	return result, nil
}
