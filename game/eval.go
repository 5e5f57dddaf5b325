package game

import "fmt"

// Weights tunes the window heuristic. Validate enforces
// Four > Three > Two > 0, OpponentThree >= Three and Center > 0.
type Weights struct {
	Four          int `yaml:"four"`
	Three         int `yaml:"three"`
	Two           int `yaml:"two"`
	OpponentThree int `yaml:"opponent_three"`
	Center        int `yaml:"center"`
}

func DefaultWeights() Weights {
	return Weights{
		Four:          100,
		Three:         10,
		Two:           5,
		OpponentThree: 12,
		Center:        6,
	}
}

func (w Weights) Validate() error {
	if !(w.Four > w.Three && w.Three > w.Two && w.Two > 0) {
		return fmt.Errorf("weights must satisfy four > three > two > 0, got %d, %d, %d", w.Four, w.Three, w.Two)
	}
	if w.OpponentThree < w.Three {
		return fmt.Errorf("opponent three penalty %d is smaller than own three bonus %d", w.OpponentThree, w.Three)
	}
	if w.Center <= 0 {
		return fmt.Errorf("center bonus must be positive, got %d", w.Center)
	}
	return nil
}

// Score evaluates b for player with the default weights.
func Score(b *Board, player Cell) int {
	return DefaultWeights().Score(b, player)
}

// Score slides a window of ConnectLength cells along every row, column and
// diagonal, summing the window values, and adds a bonus for each of
// player's pieces in the center column(s).
func (w Weights) Score(b *Board, player Cell) int {
	score := 0
	for _, col := range centerColumns(b.width) {
		for row := 0; row < b.height; row++ {
			if b.At(row, col) == player {
				score += w.Center
			}
		}
	}

	var window [ConnectLength]Cell
	for _, d := range directions {
		for row := 0; row < b.height; row++ {
			for col := 0; col < b.width; col++ {
				endRow := row + d[0]*(ConnectLength-1)
				endCol := col + d[1]*(ConnectLength-1)
				if !b.inBounds(endRow, endCol) {
					continue
				}
				for i := range window {
					window[i] = b.At(row+d[0]*i, col+d[1]*i)
				}
				score += w.window(window, player)
			}
		}
	}
	return score
}

func (w Weights) window(cells [ConnectLength]Cell, player Cell) int {
	var counts [AI + 1]int
	for _, c := range cells {
		counts[c]++
	}
	own, empty := counts[player], counts[Empty]

	score := 0
	switch {
	case own == 4:
		score += w.Four
	case own == 3 && empty == 1:
		score += w.Three
	case own == 2 && empty == 2:
		score += w.Two
	}

	for _, other := range Players {
		if other != player && counts[other] == 3 && empty == 1 {
			score -= w.OpponentThree
		}
	}
	return score
}

// centerColumns returns the middle column, or the two middle columns of an
// even-width board.
func centerColumns(width int) []int {
	if width%2 == 1 {
		return []int{width / 2}
	}
	return []int{width/2 - 1, width / 2}
}
