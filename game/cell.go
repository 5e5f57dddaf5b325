package game

import "fmt"

// Cell is the content of one board square. Every non-empty value is a player.
type Cell int8

const (
	Empty Cell = iota
	Player1
	Player2
	AI
)

// Players lists the seats in fixed turn order.
var Players = [...]Cell{Player1, Player2, AI}

func (c Cell) IsPlayer() bool {
	return c >= Player1 && c <= AI
}

func (c Cell) IsHuman() bool {
	return c == Player1 || c == Player2
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	case AI:
		return "AI"
	default:
		return fmt.Sprintf("Cell(%d)", int8(c))
	}
}

func (c Cell) symbol() byte {
	switch c {
	case Player1:
		return '1'
	case Player2:
		return '2'
	case AI:
		return 'A'
	default:
		return '.'
	}
}

func cellFromSymbol(s byte) (Cell, bool) {
	switch s {
	case '.':
		return Empty, true
	case '1':
		return Player1, true
	case '2':
		return Player2, true
	case 'A', 'a':
		return AI, true
	default:
		return Empty, false
	}
}
