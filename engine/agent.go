package engine

import (
	"errors"
	"fmt"
	"math"

	"connect4/game"
	"connect4/searcher"
)

// ColumnReader supplies human moves, typically from the console.
type ColumnReader interface {
	// ReadColumn returns a 0-based column for player.
	ReadColumn(b *game.Board, player game.Cell) (int, error)
}

type HumanAgent struct {
	Input ColumnReader
}

func (a HumanAgent) Decide(b *game.Board, player game.Cell) (Decision, error) {
	col, err := a.Input.ReadColumn(b, player)
	if err != nil {
		return Decision{}, err
	}
	if !b.IsValidColumn(col) {
		return Decision{}, fmt.Errorf("%w: column %d is not playable", game.ErrInvalidMove, col+1)
	}
	return Decision{Column: col}, nil
}

// Searcher is the part of searcher.Minimax used by SearchAgent.
type Searcher interface {
	Search(b *game.Board, player, opponent game.Cell) (searcher.Result, error)
}

// SearchAgent plays against whichever other seat currently threatens most.
type SearchAgent struct {
	Searcher Searcher
	Weights  game.Weights
}

func NewSearchAgent(s Searcher, weights game.Weights) SearchAgent {
	return SearchAgent{Searcher: s, Weights: weights}
}

func (a SearchAgent) Decide(b *game.Board, player game.Cell) (Decision, error) {
	opponent := ThreatOpponent(b, player, a.Weights)
	result, err := a.Searcher.Search(b, player, opponent)
	if errors.Is(err, game.ErrNoLegalMove) {
		// Callers check for a full board before asking for a move.
		panic(fmt.Sprintf("no legal moves at all for %v", player))
	}
	if err != nil {
		return Decision{}, err
	}
	return Decision{
		Column: result.Column,
		Score:  result.Score,
		Search: result.SearchMetric,
	}, nil
}

// ThreatOpponent returns the other seat with the highest heuristic score on b,
// the earliest seat in turn order on ties.
func ThreatOpponent(b *game.Board, player game.Cell, weights game.Weights) game.Cell {
	opponent, best := game.Empty, math.MinInt
	for _, p := range game.Players {
		if p == player {
			continue
		}
		if score := weights.Score(b, p); score > best {
			opponent, best = p, score
		}
	}
	return opponent
}
