package searcher

import (
	"math"
	"sort"
)

// WinScore outweighs any heuristic total so forced wins and losses dominate.
const WinScore = 1_000_000

const infinity = math.MaxInt32

// CenterOrder lists the columns of a board of the given width from the
// center outwards. Equidistant columns keep ascending order.
func CenterOrder(width int) []int {
	order := make([]int, width)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return centerDistance(order[i], width) < centerDistance(order[j], width)
	})
	return order
}

// centerDistance is twice the distance from col to the board's center line.
func centerDistance(col, width int) int {
	d := 2*col - (width - 1)
	if d < 0 {
		return -d
	}
	return d
}
