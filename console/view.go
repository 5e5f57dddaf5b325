package console

import (
	"fmt"
	"io"
	"strings"

	"connect4/engine"
	"connect4/game"
)

func glyph(c game.Cell) string {
	switch c {
	case game.Player1:
		return "🔴"
	case game.Player2:
		return "🔵"
	case game.AI:
		return "🤖"
	default:
		return "⬜"
	}
}

// Render writes the board top row first, followed by the 1-based column labels.
func Render(w io.Writer, b *game.Board) {
	var sb strings.Builder
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			sb.WriteString(glyph(b.At(row, col)))
		}
		sb.WriteByte('\n')
	}
	for col := 1; col <= b.Width(); col++ {
		// Glyphs are two terminal cells wide.
		fmt.Fprintf(&sb, "%-2d", col%100)
	}
	sb.WriteByte('\n')
	fmt.Fprint(w, sb.String())
}

// View prints the game to a terminal.
type View struct {
	w io.Writer
}

func NewView(w io.Writer) *View {
	return &View{w: w}
}

func (v *View) ShowBoard(b *game.Board) {
	fmt.Fprintln(v.w)
	Render(v.w, b)
}

func (v *View) ShowTurn(player game.Cell) {
	if player == game.AI {
		fmt.Fprintf(v.w, "AI %s is thinking...\n", glyph(player))
		return
	}
	fmt.Fprintf(v.w, "%v's turn.\n", player)
}

func (v *View) ShowMove(m engine.Move) {
	if m.Player == game.AI {
		fmt.Fprintln(v.w, m.Description())
	}
}

func (v *View) ShowError(err error) {
	fmt.Fprintf(v.w, "Invalid move: %v\n", err)
}

func (v *View) ShowOutcome(o engine.Outcome) {
	switch o.Status {
	case engine.StatusWon:
		fmt.Fprintf(v.w, "%v %s wins!\n", o.Winner, glyph(o.Winner))
	case engine.StatusTie:
		fmt.Fprintln(v.w, "The board is full. It's a tie!")
	}
}
