package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
)

// ErrGameOver is returned for a turn requested after the game ended.
const ErrGameOver = game.Error("game is over")

// Decision is an agent's chosen column. Search is zero for human moves.
type Decision struct {
	Column int // 0-based
	Score  int
	Search metrics.SearchMetric
}

// Agent chooses moves for one seat.
type Agent interface {
	Decide(b *game.Board, player game.Cell) (Decision, error)
}

// View receives the game as it unfolds.
type View interface {
	ShowBoard(b *game.Board)
	ShowTurn(player game.Cell)
	ShowMove(m Move)
	ShowError(err error)
	ShowOutcome(o Outcome)
}

type Status int

const (
	StatusActive Status = iota
	StatusWon
	StatusTie
)

func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusTie:
		return "tie"
	default:
		return "active"
	}
}

type Outcome struct {
	Status Status
	Winner game.Cell // Empty unless Status is StatusWon
}

type nopView struct{}

// NopView discards every update.
func NopView() View {
	return nopView{}
}

func (nopView) ShowBoard(*game.Board) {}
func (nopView) ShowTurn(game.Cell)    {}
func (nopView) ShowMove(Move)         {}
func (nopView) ShowError(error)       {}
func (nopView) ShowOutcome(Outcome)   {}
