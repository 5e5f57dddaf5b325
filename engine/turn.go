package engine

import (
	"fmt"
	"strings"

	"connect4/game"

	"golang.org/x/exp/rand"
)

// Mode decides who moves next. It is fixed for the lifetime of a game.
type Mode int

const (
	Random Mode = iota + 1
	Fixed
)

func (m Mode) String() string {
	switch m {
	case Random:
		return "random"
	case Fixed:
		return "fixed"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts the menu numbers ("1", "2") as well as the mode names.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "random":
		return Random, nil
	case "2", "fixed", "normal":
		return Fixed, nil
	default:
		return 0, fmt.Errorf("unknown turn order mode %q", s)
	}
}

// NextPlayer picks the seat to move after previous, the most recent
// mover last.
//
// Fixed cycles Player1, Player2, AI. Random draws any seat uniformly, except
// that a seat which took the last two turns cannot take a third.
func NextPlayer(mode Mode, previous []game.Cell, rng *rand.Rand) game.Cell {
	switch mode {
	case Fixed:
		if len(previous) == 0 {
			return game.Players[0]
		}
		last := previous[len(previous)-1]
		for i, p := range game.Players {
			if p == last {
				return game.Players[(i+1)%len(game.Players)]
			}
		}
		return game.Players[0]
	case Random:
		candidates := game.Players[:]
		if n := len(previous); n >= 2 && previous[n-1] == previous[n-2] {
			candidates = make([]game.Cell, 0, len(game.Players)-1)
			for _, p := range game.Players {
				if p != previous[n-1] {
					candidates = append(candidates, p)
				}
			}
		}
		return candidates[rng.Intn(len(candidates))]
	default:
		panic(fmt.Sprintf("unknown turn order mode %v", mode))
	}
}

// TurnOrder tracks the last two movers for NextPlayer.
type TurnOrder struct {
	mode     Mode
	rng      *rand.Rand
	previous []game.Cell
}

func NewTurnOrder(mode Mode, seed uint64) *TurnOrder {
	if mode != Random && mode != Fixed {
		panic(fmt.Sprintf("unknown turn order mode %v", mode))
	}
	return &TurnOrder{
		mode:     mode,
		rng:      rand.New(rand.NewSource(seed)),
		previous: make([]game.Cell, 0, 2),
	}
}

func (t *TurnOrder) Mode() Mode {
	return t.mode
}

func (t *TurnOrder) Next() game.Cell {
	player := NextPlayer(t.mode, t.previous, t.rng)
	if len(t.previous) == 2 {
		t.previous[0] = t.previous[1]
		t.previous = t.previous[:1]
	}
	t.previous = append(t.previous, player)
	return player
}
