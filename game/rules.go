package game

// Line directions as (deltaRow, deltaCol): horizontal, vertical, and both diagonals.
var directions = [...][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{-1, 1},
}

// CheckWin looks only at the lines through (row, col), which is enough to
// detect a win created by the piece just placed there. It returns the
// winning player or Empty.
func CheckWin(b *Board, row, col int) Cell {
	player := b.At(row, col)
	if player == Empty {
		return Empty
	}

	for _, d := range directions {
		count := 1 +
			countDirection(b, row, col, d[0], d[1], player) +
			countDirection(b, row, col, -d[0], -d[1], player)
		if count >= ConnectLength {
			return player
		}
	}
	return Empty
}

// countDirection counts consecutive pieces of player starting next to
// (row, col) and walking by (deltaRow, deltaCol).
func countDirection(b *Board, row, col, deltaRow, deltaCol int, player Cell) int {
	count := 0
	r, c := row+deltaRow, col+deltaCol
	for b.inBounds(r, c) && b.At(r, c) == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}

// Winner scans the whole board and returns the first player found with a
// winning line, or Empty.
func Winner(b *Board) Cell {
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			if w := CheckWin(b, row, col); w != Empty {
				return w
			}
		}
	}
	return Empty
}

func IsTie(b *Board) bool {
	return b.IsFull() && Winner(b) == Empty
}
