package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"connect4/engine"
	"connect4/game"
	"connect4/searcher"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// EnvPrefix starts the name of every environment variable read by Load.
const EnvPrefix = "CONNECT4_"

type Config struct {
	Board   Board        `yaml:"board"`
	Mode    string       `yaml:"mode"` // empty asks at startup
	Seed    uint64       `yaml:"seed"` // 0 seeds from the clock
	Search  Search       `yaml:"search"`
	Weights game.Weights `yaml:"weights"`
	Log     Log          `yaml:"log"`
	Arena   Arena        `yaml:"arena"`
}

type Board struct {
	Width  int `yaml:"width" validate:"min=4,max=20"`
	Height int `yaml:"height" validate:"min=4,max=20"`
}

type Search struct {
	Depth      int               `yaml:"depth" validate:"min=0,max=12"` // 0 uses the schedule
	Schedule   searcher.Schedule `yaml:"schedule"`
	NodeBudget int               `yaml:"node_budget" validate:"min=0"`
	Timeout    time.Duration     `yaml:"timeout" validate:"gte=0"`
}

type Log struct {
	Level string `yaml:"level" validate:"oneof=trace debug info warn error disabled"`
}

type Arena struct {
	Games       int    `yaml:"games" validate:"min=1"`
	Parallelism int    `yaml:"parallelism" validate:"min=1,max=64"`
	Output      string `yaml:"output" validate:"required"`
}

func Default() Config {
	return Config{
		Board: Board{
			Width:  game.DefaultWidth,
			Height: game.DefaultHeight,
		},
		Search: Search{
			Schedule: searcher.DefaultSchedule(),
		},
		Weights: game.DefaultWeights(),
		Log: Log{
			Level: "info",
		},
		Arena: Arena{
			Games:       20,
			Parallelism: 4,
			Output:      "results",
		},
	}
}

// Load layers, in order: defaults, the YAML file at path (skipped when path
// is empty), the first existing dotenv file (".env" when none is given) and
// CONNECT4_* environment variables. Variables already set in the process win
// over dotenv entries.
func Load(path string, envFiles ...string) (Config, error) {
	c := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("reading config: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return c, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		err := godotenv.Load(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return c, fmt.Errorf("loading %s: %w", f, err)
		}
		break
	}

	if err := c.applyEnv(); err != nil {
		return c, err
	}
	return c, c.Validate()
}

func (c *Config) applyEnv() error {
	ints := map[string]*int{
		"WIDTH":             &c.Board.Width,
		"HEIGHT":            &c.Board.Height,
		"DEPTH":             &c.Search.Depth,
		"NODE_BUDGET":       &c.Search.NodeBudget,
		"ARENA_GAMES":       &c.Arena.Games,
		"ARENA_PARALLELISM": &c.Arena.Parallelism,
	}
	for key, dst := range ints {
		v, ok := os.LookupEnv(EnvPrefix + key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = n
	}

	strs := map[string]*string{
		"MODE":         &c.Mode,
		"LOG_LEVEL":    &c.Log.Level,
		"ARENA_OUTPUT": &c.Arena.Output,
	}
	for key, dst := range strs {
		if v := os.Getenv(EnvPrefix + key); v != "" {
			*dst = v
		}
	}

	if v := os.Getenv(EnvPrefix + "SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvPrefix + "TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sTIMEOUT: %w", EnvPrefix, err)
		}
		c.Search.Timeout = d
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Mode != "" {
		if _, err := engine.ParseMode(c.Mode); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}
	if err := c.Search.Schedule.Validate(); err != nil {
		return fmt.Errorf("invalid config: search schedule: %w", err)
	}
	if err := c.Weights.Validate(); err != nil {
		return fmt.Errorf("invalid config: weights: %w", err)
	}
	return nil
}

// TurnMode returns the configured mode, or false when the player should be asked.
func (c Config) TurnMode() (engine.Mode, bool) {
	mode, err := engine.ParseMode(c.Mode)
	return mode, err == nil
}

func (c Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// RNGSeed returns the configured seed, or one derived from the clock when unset.
func (c Config) RNGSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}

func (c Config) SearchOptions() []searcher.Option {
	return []searcher.Option{
		searcher.WithDepth(c.Search.Depth),
		searcher.WithSchedule(c.Search.Schedule),
		searcher.WithWeights(c.Weights),
		searcher.WithNodeBudget(c.Search.NodeBudget),
		searcher.WithDuration(c.Search.Timeout),
	}
}

func (c Config) NewBoard() *game.Board {
	return game.NewBoard(c.Board.Width, c.Board.Height)
}
