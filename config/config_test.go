package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"connect4/engine"
	"connect4/game"
	"connect4/searcher"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestDefault(t *testing.T) {
	c := Default()

	require.NoError(t, c.Validate())
	require.Equal(t, 10, c.Board.Width)
	require.Equal(t, 10, c.Board.Height)
	require.Equal(t, searcher.DefaultSchedule(), c.Search.Schedule)
	require.Equal(t, game.DefaultWeights(), c.Weights)

	_, ok := c.TurnMode()
	require.False(t, ok, "An empty mode is asked for at startup")
}

func TestLoad(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		c, err := Load("", noEnvFile(t))

		require.NoError(t, err)
		require.Equal(t, Default(), c)
	})

	t.Run("yaml overrides only the keys it sets", func(t *testing.T) {
		path := writeFile(t, "connect4.yaml", `
board:
  width: 7
  height: 6
mode: fixed
seed: 99
search:
  depth: 4
  timeout: 1500ms
  schedule:
    - {above: 0.5, depth: 2}
    - {above: 0, depth: 6}
weights:
  center: 3
log:
  level: debug
`)

		c, err := Load(path, noEnvFile(t))

		require.NoError(t, err)
		require.Equal(t, Board{Width: 7, Height: 6}, c.Board)
		require.Equal(t, uint64(99), c.RNGSeed())
		require.Equal(t, 4, c.Search.Depth)
		require.Equal(t, 1500*time.Millisecond, c.Search.Timeout)
		require.Equal(t, searcher.Schedule{{Above: 0.5, Depth: 2}, {Above: 0, Depth: 6}}, c.Search.Schedule)
		require.Equal(t, 3, c.Weights.Center)
		require.Equal(t, game.DefaultWeights().Four, c.Weights.Four)
		require.Equal(t, zerolog.DebugLevel, c.LogLevel())
		require.Equal(t, 20, c.Arena.Games)

		mode, ok := c.TurnMode()
		require.True(t, ok)
		require.Equal(t, engine.Fixed, mode)
	})

	t.Run("environment wins over the file", func(t *testing.T) {
		path := writeFile(t, "connect4.yaml", "board:\n  width: 7\n")
		t.Setenv("CONNECT4_WIDTH", "12")
		t.Setenv("CONNECT4_MODE", "random")
		t.Setenv("CONNECT4_TIMEOUT", "2s")
		t.Setenv("CONNECT4_ARENA_OUTPUT", "/tmp/out")

		c, err := Load(path, noEnvFile(t))

		require.NoError(t, err)
		require.Equal(t, 12, c.Board.Width)
		require.Equal(t, "random", c.Mode)
		require.Equal(t, 2*time.Second, c.Search.Timeout)
		require.Equal(t, "/tmp/out", c.Arena.Output)
	})

	t.Run("dotenv fills unset variables", func(t *testing.T) {
		env := writeFile(t, "test.env", "CONNECT4_HEIGHT=8\nCONNECT4_SEED=5\n")
		t.Setenv("CONNECT4_SEED", "6")
		t.Cleanup(func() { os.Unsetenv("CONNECT4_HEIGHT") })

		c, err := Load("", env)

		require.NoError(t, err)
		require.Equal(t, 8, c.Board.Height)
		require.Equal(t, uint64(6), c.Seed, "Process environment takes precedence")
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		path := writeFile(t, "connect4.yaml", "board:\n  depth: 7\n")

		_, err := Load(path, noEnvFile(t))
		require.Error(t, err)
	})

	t.Run("rejects malformed variables", func(t *testing.T) {
		t.Setenv("CONNECT4_DEPTH", "deep")

		_, err := Load("", noEnvFile(t))
		require.ErrorContains(t, err, "CONNECT4_DEPTH")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), noEnvFile(t))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(c *Config){
		"board too narrow":      func(c *Config) { c.Board.Width = 3 },
		"board too tall":        func(c *Config) { c.Board.Height = 21 },
		"negative depth":        func(c *Config) { c.Search.Depth = -1 },
		"negative node budget":  func(c *Config) { c.Search.NodeBudget = -5 },
		"negative timeout":      func(c *Config) { c.Search.Timeout = -time.Second },
		"unknown mode":          func(c *Config) { c.Mode = "chaos" },
		"unknown log level":     func(c *Config) { c.Log.Level = "loud" },
		"no arena games":        func(c *Config) { c.Arena.Games = 0 },
		"no arena output":       func(c *Config) { c.Arena.Output = "" },
		"shrinking schedule":    func(c *Config) { c.Search.Schedule = searcher.Schedule{{Above: 0.5, Depth: 5}, {Above: 0, Depth: 3}} },
		"three worth over four": func(c *Config) { c.Weights.Three = 200 },
	} {
		t.Run(name, func(t *testing.T) {
			c := Default()
			mutate(&c)
			require.Error(t, c.Validate())
		})
	}
}

func TestSearchOptions(t *testing.T) {
	c := Default()
	c.Search.Depth = 2

	m := searcher.NewMinimax(c.SearchOptions()...)

	require.Equal(t, 2, m.Depth(c.NewBoard()))
}
