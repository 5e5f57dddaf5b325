package metrics

import (
	"sort"
	"sync"
	"time"
)

type SearchMetric struct {
	Depth    int
	Nodes    int
	Cutoffs  int
	Duration time.Duration
	Complete bool // false when a node or time budget stopped the search early
}

type MoveMetric struct {
	Step   int
	Player string
	Column int // 0-based
	Score  int
	SearchMetric
}

type GameMetric struct {
	Session        string
	Mode           string
	StartingPlayer string
	Winner         string // empty on a tie
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// AgentConfig describes the search settings shared by every seat of an arena game.
type AgentConfig struct {
	ID         int
	Depth      int // 0 uses the dynamic schedule
	NodeBudget int
	Duration   time.Duration
	Pruning    bool
}

type GameRecord struct {
	ID    int
	Agent int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Collector gathers records from games running on separate goroutines.
type Collector struct {
	mu    sync.Mutex
	games []GameRecord
	moves []MoveRecord
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) AddGame(game GameRecord, moves []MoveMetric) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.games = append(c.games, game)
	for _, mm := range moves {
		c.moves = append(c.moves, MoveRecord{Game: game.ID, MoveMetric: mm})
	}
}

// Games returns the collected game records ordered by ID.
func (c *Collector) Games() []GameRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	games := make([]GameRecord, len(c.games))
	copy(games, c.games)
	sort.Slice(games, func(i, j int) bool { return games[i].ID < games[j].ID })
	return games
}

// Moves returns the collected move records ordered by game then step.
func (c *Collector) Moves() []MoveRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	moves := make([]MoveRecord, len(c.moves))
	copy(moves, c.moves)
	sort.Slice(moves, func(i, j int) bool {
		if moves[i].Game != moves[j].Game {
			return moves[i].Game < moves[j].Game
		}
		return moves[i].Step < moves[j].Step
	})
	return moves
}
