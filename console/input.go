package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"connect4/engine"
	"connect4/game"
)

// Input reads answers one line at a time and re-prompts on bad input.
type Input struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewInput(r io.Reader, w io.Writer) *Input {
	return &Input{scanner: bufio.NewScanner(r), out: w}
}

// readLine prints prompt and returns the next trimmed line, or io.EOF once
// the input is exhausted.
func (in *Input) readLine(prompt string) (string, error) {
	fmt.Fprint(in.out, prompt)
	if !in.scanner.Scan() {
		if err := in.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(in.scanner.Text()), nil
}

// PromptMode asks for the turn order until a menu entry is chosen.
func PromptMode(in *Input) (engine.Mode, error) {
	fmt.Fprintln(in.out, "Choose the turn order:")
	fmt.Fprintln(in.out, "  1) Random")
	fmt.Fprintln(in.out, "  2) Fixed (Player1 -> Player2 -> AI)")
	for {
		line, err := in.readLine("> ")
		if err != nil {
			return 0, err
		}
		if line == "1" || line == "2" {
			return engine.ParseMode(line)
		}
		fmt.Fprintln(in.out, "Please enter 1 or 2.")
	}
}

// ReadColumn asks player for a column between 1 and the board width and
// returns it 0-based. Non-numeric, out of range and full columns are asked
// for again.
func (in *Input) ReadColumn(b *game.Board, player game.Cell) (int, error) {
	prompt := fmt.Sprintf("%v %s, choose a column (1-%d): ", player, glyph(player), b.Width())
	for {
		line, err := in.readLine(prompt)
		if err != nil {
			return -1, err
		}

		n, err := strconv.Atoi(line)
		switch {
		case err != nil:
			fmt.Fprintf(in.out, "%q is not a number.\n", line)
		case n < 1 || n > b.Width():
			fmt.Fprintf(in.out, "Column must be between 1 and %d.\n", b.Width())
		case !b.IsValidColumn(n - 1):
			fmt.Fprintf(in.out, "Column %d is full.\n", n)
		default:
			return n - 1, nil
		}
	}
}
