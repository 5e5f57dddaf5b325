package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"connect4/engine"
	"connect4/game"

	"github.com/stretchr/testify/require"
)

func TestPromptMode(t *testing.T) {
	t.Run("accepts the menu numbers", func(t *testing.T) {
		for input, want := range map[string]engine.Mode{"1\n": engine.Random, "2\n": engine.Fixed} {
			var out bytes.Buffer
			mode, err := PromptMode(NewInput(strings.NewReader(input), &out))

			require.NoError(t, err)
			require.Equal(t, want, mode)
			require.Contains(t, out.String(), "1) Random")
		}
	})

	t.Run("re-prompts until a valid choice", func(t *testing.T) {
		var out bytes.Buffer
		mode, err := PromptMode(NewInput(strings.NewReader("3\nfixed\n\n 2 \n"), &out))

		require.NoError(t, err)
		require.Equal(t, engine.Fixed, mode)
		require.Equal(t, 3, strings.Count(out.String(), "Please enter 1 or 2."))
	})

	t.Run("returns EOF when input ends", func(t *testing.T) {
		_, err := PromptMode(NewInput(strings.NewReader("9\n"), io.Discard))
		require.ErrorIs(t, err, io.EOF)
	})
}

func TestReadColumn(t *testing.T) {
	b, err := game.ParseBoard(
		"..1.",
		"..2.",
		"..A.",
		"..1.",
	)
	require.NoError(t, err)

	t.Run("maps 1-based input to 0-based columns", func(t *testing.T) {
		col, err := NewInput(strings.NewReader("4\n"), io.Discard).ReadColumn(b, game.Player1)

		require.NoError(t, err)
		require.Equal(t, 3, col)
	})

	t.Run("rejects bad input with a re-prompt", func(t *testing.T) {
		var out bytes.Buffer
		in := NewInput(strings.NewReader("abc\n0\n5\n3\n1\n"), &out)

		col, err := in.ReadColumn(b, game.Player2)

		require.NoError(t, err)
		require.Equal(t, 0, col)
		require.Contains(t, out.String(), `"abc" is not a number.`)
		require.Equal(t, 2, strings.Count(out.String(), "Column must be between 1 and 4."))
		require.Contains(t, out.String(), "Column 3 is full.")
		require.Equal(t, 5, strings.Count(out.String(), "Player2"), "One prompt per attempt")
	})

	t.Run("returns EOF when input ends", func(t *testing.T) {
		_, err := NewInput(strings.NewReader("x"), io.Discard).ReadColumn(b, game.Player1)
		require.ErrorIs(t, err, io.EOF)
	})
}

func TestRender(t *testing.T) {
	b, err := game.ParseBoard(
		"....",
		"....",
		"A...",
		"12..",
	)
	require.NoError(t, err)

	var out bytes.Buffer
	Render(&out, b)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Equal(t, []string{
		"⬜⬜⬜⬜",
		"⬜⬜⬜⬜",
		"🤖⬜⬜⬜",
		"🔴🔵⬜⬜",
		"1 2 3 4 ",
	}, lines)
}

func TestView(t *testing.T) {
	var out bytes.Buffer
	v := NewView(&out)

	v.ShowTurn(game.Player1)
	v.ShowTurn(game.AI)
	v.ShowMove(engine.Move{Player: game.AI, Decision: engine.Decision{Column: 4}})
	v.ShowMove(engine.Move{Player: game.Player2, Decision: engine.Decision{Column: 1}})
	v.ShowError(errors.New("column 9 is full"))
	v.ShowOutcome(engine.Outcome{Status: engine.StatusWon, Winner: game.Player2})
	v.ShowOutcome(engine.Outcome{Status: engine.StatusTie})

	require.Equal(t, strings.Join([]string{
		"Player1's turn.",
		"AI 🤖 is thinking...",
		"AI chose column 5",
		"Invalid move: column 9 is full",
		"Player2 🔵 wins!",
		"The board is full. It's a tie!",
		"",
	}, "\n"), out.String())
}

func TestConsoleGame(t *testing.T) {
	input := NewInput(strings.NewReader("4\n1\n4\n2\n4\n1\n4\n"), io.Discard)
	var out bytes.Buffer

	s, err := engine.NewSession(game.NewBoard(7, 6), engine.NewTurnOrder(engine.Fixed, 0), map[game.Cell]engine.Agent{
		game.Player1: engine.HumanAgent{Input: input},
		game.Player2: engine.HumanAgent{Input: input},
		game.AI:      engine.HumanAgent{Input: NewInput(strings.NewReader("7\n7\n6\n"), io.Discard)},
	})
	require.NoError(t, err)

	outcome, err := s.Run(NewView(&out))

	require.NoError(t, err)
	require.Equal(t, engine.Outcome{Status: engine.StatusWon, Winner: game.Player1}, outcome)
	require.True(t, strings.HasSuffix(out.String(), "Player1 🔴 wins!\n"))
}
