package searcher

import "fmt"

// Hyperparameters for the dynamic depth schedule

// DepthStep searches Depth plies while the share of empty cells is above Above.
type DepthStep struct {
	Above float64 `yaml:"above"`
	Depth int     `yaml:"depth"`
}

// Schedule is ordered from the opening (most empty cells) to the endgame.
type Schedule []DepthStep

func DefaultSchedule() Schedule {
	return Schedule{
		{Above: 0.6, Depth: 3},
		{Above: 0.3, Depth: 4},
		{Above: 0, Depth: 5},
	}
}

// Depth returns the search depth for a board with empty of total cells free.
// The last step also covers everything below its threshold.
func (s Schedule) Depth(empty, total int) int {
	share := 0.0
	if total > 0 {
		share = float64(empty) / float64(total)
	}
	for _, step := range s {
		if share > step.Above {
			return step.Depth
		}
	}
	return s[len(s)-1].Depth
}

// Validate checks that depth never decreases as the board fills up.
func (s Schedule) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("depth schedule is empty")
	}
	for i, step := range s {
		if step.Depth <= 0 {
			return fmt.Errorf("depth step %d: depth must be positive, got %d", i, step.Depth)
		}
		if step.Above < 0 || step.Above >= 1 {
			return fmt.Errorf("depth step %d: threshold %v outside [0, 1)", i, step.Above)
		}
		if i == 0 {
			continue
		}
		prev := s[i-1]
		if step.Above >= prev.Above {
			return fmt.Errorf("depth step %d: threshold %v must be below %v", i, step.Above, prev.Above)
		}
		if step.Depth < prev.Depth {
			return fmt.Errorf("depth step %d: depth %d is shallower than %d", i, step.Depth, prev.Depth)
		}
	}
	return nil
}
