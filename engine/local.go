package engine

import (
	"errors"
	"fmt"
	"time"

	"connect4/experiments/metrics"
	"connect4/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Move is one placement made during a session.
type Move struct {
	Step   int
	Player game.Cell
	Row    int
	Decision
}

// Description reports the move with the 1-based column shown on the console.
func (m Move) Description() string {
	if m.Player == game.AI {
		return fmt.Sprintf("AI chose column %d", m.Column+1)
	}
	return fmt.Sprintf("%v dropped a piece in column %d", m.Player, m.Column+1)
}

// Session owns the state of one game: the board, the turn order and the
// moves played so far.
type Session struct {
	ID      uuid.UUID
	Board   *game.Board
	turns   *TurnOrder
	agents  map[game.Cell]Agent
	moves   []Move
	outcome Outcome
	started time.Time
}

func NewSession(b *game.Board, turns *TurnOrder, agents map[game.Cell]Agent) (*Session, error) {
	for _, p := range game.Players {
		if agents[p] == nil {
			return nil, fmt.Errorf("no agent for %v", p)
		}
	}
	if w := game.Winner(b); w != game.Empty {
		return nil, fmt.Errorf("board already won by %v", w)
	}

	s := &Session{
		ID:      uuid.New(),
		Board:   b,
		turns:   turns,
		agents:  agents,
		started: time.Now(),
	}
	if b.IsFull() {
		s.outcome = Outcome{Status: StatusTie}
	}
	return s, nil
}

func (s *Session) Mode() Mode {
	return s.turns.Mode()
}

func (s *Session) Outcome() Outcome {
	return s.outcome
}

func (s *Session) Moves() []Move {
	return s.moves
}

// NextPlayer advances the turn order.
func (s *Session) NextPlayer() game.Cell {
	return s.turns.Next()
}

// ApplyTurn asks player's agent for a column, places the piece and updates
// the outcome. The board is left unchanged when an error is returned.
func (s *Session) ApplyTurn(player game.Cell) (Move, error) {
	if s.outcome.Status != StatusActive {
		return Move{}, ErrGameOver
	}
	agent, ok := s.agents[player]
	if !ok {
		return Move{}, fmt.Errorf("no agent for %v", player)
	}

	decision, err := agent.Decide(s.Board, player)
	if err != nil {
		return Move{}, fmt.Errorf("%v failed to choose a column: %w", player, err)
	}
	row, err := s.Board.Drop(decision.Column, player)
	if err != nil {
		return Move{}, err
	}

	move := Move{
		Step:     len(s.moves) + 1,
		Player:   player,
		Row:      row,
		Decision: decision,
	}
	s.moves = append(s.moves, move)

	if winner := game.CheckWin(s.Board, row, decision.Column); winner != game.Empty {
		s.outcome = Outcome{Status: StatusWon, Winner: winner}
	} else if s.Board.IsFull() {
		s.outcome = Outcome{Status: StatusTie}
	}

	log.Info().
		Str("session", s.ID.String()).
		Int("step", move.Step).
		Str("player", player.String()).
		Int("column", decision.Column+1).
		Int("row", row).
		Msg(move.Description())
	return move, nil
}

// Run plays turns until the game is won or tied. A human move rejected
// with game.ErrInvalidMove is asked for again instead of ending the game.
func (s *Session) Run(view View) (Outcome, error) {
	log.Info().Msgf("session %s started in %v mode on a %dx%d board", s.ID, s.Mode(), s.Board.Width(), s.Board.Height())

	for s.outcome.Status == StatusActive {
		view.ShowBoard(s.Board)
		player := s.NextPlayer()
		view.ShowTurn(player)

		move, err := s.ApplyTurn(player)
		for err != nil && player.IsHuman() && errors.Is(err, game.ErrInvalidMove) {
			view.ShowError(err)
			move, err = s.ApplyTurn(player)
		}
		if err != nil {
			return s.outcome, err
		}
		view.ShowMove(move)
	}

	view.ShowBoard(s.Board)
	view.ShowOutcome(s.outcome)
	log.Info().Msgf("session %s finished after %d moves: %v %v", s.ID, len(s.moves), s.outcome.Status, s.outcome.Winner)
	return s.outcome, nil
}

// Metrics summarizes the session for experiment records.
func (s *Session) Metrics() (metrics.GameMetric, []metrics.MoveMetric) {
	end := time.Now()
	gm := metrics.GameMetric{
		Session:    s.ID.String(),
		Mode:       s.Mode().String(),
		StartTime:  s.started,
		EndTime:    end,
		Duration:   end.Sub(s.started),
		TotalMoves: len(s.moves),
	}
	if len(s.moves) > 0 {
		gm.StartingPlayer = s.moves[0].Player.String()
	}
	if s.outcome.Status == StatusWon {
		gm.Winner = s.outcome.Winner.String()
	}

	moves := make([]metrics.MoveMetric, 0, len(s.moves))
	for _, m := range s.moves {
		moves = append(moves, metrics.MoveMetric{
			Step:         m.Step,
			Player:       m.Player.String(),
			Column:       m.Column,
			Score:        m.Score,
			SearchMetric: m.Search,
		})
	}
	return gm, moves
}
