package searcher

import (
	"fmt"
	"time"

	"connect4/game"
)

// search holds the state of one Search call. Moves are applied to board and
// undone before play returns, so sibling branches always see the same board.
type search struct {
	board    *game.Board
	order    []int // all columns, center first
	player   game.Cell
	opponent game.Cell
	weights  game.Weights
	pruning  bool

	budget   int
	deadline time.Time
	aborted  bool

	nodes   int
	cutoffs int
}

// root scores every legal column at the given depth. evaluated is false
// when the search was aborted before any column finished.
func (s *search) root(legal []int, depth int) (column, score int, evaluated bool) {
	alpha, beta := -infinity, infinity
	column, score = legal[0], -infinity
	for _, col := range legal {
		value := s.play(col, s.player, depth-1, alpha, beta)
		if s.aborted {
			break
		}
		evaluated = true
		// Strictly greater keeps the earlier, more central column on ties.
		if value > score {
			score = value
			column = col
		}
		if s.pruning && score > alpha {
			alpha = score
		}
	}
	return column, score, evaluated
}

// play drops a piece for mover in col and returns the value of the
// resulting position with depth plies left to search.
func (s *search) play(col int, mover game.Cell, depth, alpha, beta int) int {
	if s.exhausted() {
		s.aborted = true
		return 0
	}

	row, err := s.board.Drop(col, mover)
	if err != nil {
		panic(fmt.Sprintf("search played an illegal column: %v", err))
	}
	defer s.undo(col)
	s.nodes++

	if game.CheckWin(s.board, row, col) == mover {
		// Remaining depth ranks nearer wins (and farther losses) first.
		if mover == s.player {
			return WinScore + depth
		}
		return -(WinScore + depth)
	}
	if s.board.IsFull() {
		return 0
	}
	if depth == 0 {
		return s.weights.Score(s.board, s.player)
	}
	return s.minimax(depth, alpha, beta, mover != s.player)
}

func (s *search) minimax(depth, alpha, beta int, maximizing bool) int {
	if maximizing {
		value := -infinity
		for _, col := range s.order {
			if !s.board.IsValidColumn(col) {
				continue
			}
			value = max(value, s.play(col, s.player, depth-1, alpha, beta))
			if s.aborted {
				return value
			}
			if s.pruning {
				alpha = max(alpha, value)
				if alpha >= beta {
					s.cutoffs++
					break
				}
			}
		}
		return value
	}

	value := infinity
	for _, col := range s.order {
		if !s.board.IsValidColumn(col) {
			continue
		}
		value = min(value, s.play(col, s.opponent, depth-1, alpha, beta))
		if s.aborted {
			return value
		}
		if s.pruning {
			beta = min(beta, value)
			if alpha >= beta {
				s.cutoffs++
				break
			}
		}
	}
	return value
}

func (s *search) undo(col int) {
	if err := s.board.Undo(col); err != nil {
		panic(fmt.Sprintf("search failed to undo column %d: %v", col, err))
	}
}

// exhausted reports whether the node or time budget has run out. The clock
// is only read every 256 nodes.
func (s *search) exhausted() bool {
	if s.aborted {
		return true
	}
	if s.budget > 0 && s.nodes >= s.budget {
		return true
	}
	return !s.deadline.IsZero() && s.nodes%256 == 0 && time.Now().After(s.deadline)
}
