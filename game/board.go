package game

import (
	"fmt"
	"strings"
)

// Board is a fixed-size grid filled by dropping pieces into columns.
// Row 0 is the top row; pieces settle on the highest row index that is free.
type Board struct {
	width   int
	height  int
	cells   []Cell // row-major
	heights []int  // pieces stacked in each column
}

func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid board size %dx%d", width, height))
	}
	return &Board{
		width:   width,
		height:  height,
		cells:   make([]Cell, width*height),
		heights: make([]int, width),
	}
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

// At returns the cell at (row, col), or Empty when the position is off the board.
func (b *Board) At(row, col int) Cell {
	if !b.inBounds(row, col) {
		return Empty
	}
	return b.cells[row*b.width+col]
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

func (b *Board) set(row, col int, c Cell) {
	b.cells[row*b.width+col] = c
}

// IsValidColumn reports whether a piece can still be dropped into col.
func (b *Board) IsValidColumn(col int) bool {
	return col >= 0 && col < b.width && b.heights[col] < b.height
}

// LegalColumns returns the columns that are not full, in ascending order.
func (b *Board) LegalColumns() []int {
	columns := make([]int, 0, b.width)
	for col := 0; col < b.width; col++ {
		if b.heights[col] < b.height {
			columns = append(columns, col)
		}
	}
	return columns
}

// Drop places a piece for player in col and returns the row it lands on.
func (b *Board) Drop(col int, player Cell) (int, error) {
	if !player.IsPlayer() {
		return -1, fmt.Errorf("%w: %v cannot be placed", ErrInvalidMove, player)
	}
	if col < 0 || col >= b.width {
		return -1, fmt.Errorf("%w: column %d out of range [0, %d)", ErrInvalidMove, col, b.width)
	}
	if b.heights[col] == b.height {
		return -1, fmt.Errorf("%w: column %d is full", ErrInvalidMove, col)
	}

	row := b.height - 1 - b.heights[col]
	b.set(row, col, player)
	b.heights[col]++
	return row, nil
}

// Play drops a piece on a copy of the board, leaving b untouched.
func (b *Board) Play(col int, player Cell) (*Board, int, error) {
	next := b.Clone()
	row, err := next.Drop(col, player)
	if err != nil {
		return nil, -1, err
	}
	return next, row, nil
}

// Undo removes the topmost piece of col.
func (b *Board) Undo(col int) error {
	if col < 0 || col >= b.width {
		return fmt.Errorf("%w: column %d out of range [0, %d)", ErrInvalidMove, col, b.width)
	}
	if b.heights[col] == 0 {
		return fmt.Errorf("%w: column %d is empty", ErrInvalidMove, col)
	}

	row := b.height - b.heights[col]
	b.set(row, col, Empty)
	b.heights[col]--
	return nil
}

func (b *Board) IsFull() bool {
	for _, h := range b.heights {
		if h < b.height {
			return false
		}
	}
	return true
}

func (b *Board) EmptyCells() int {
	empty := 0
	for _, h := range b.heights {
		empty += b.height - h
	}
	return empty
}

func (b *Board) Clone() *Board {
	next := &Board{
		width:   b.width,
		height:  b.height,
		cells:   make([]Cell, len(b.cells)),
		heights: make([]int, len(b.heights)),
	}
	copy(next.cells, b.cells)
	copy(next.heights, b.heights)
	return next
}

// String renders the board top row first, one line per row, using
// '.' for empty cells and '1', '2', 'A' for the players.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			sb.WriteByte(b.At(row, col).symbol())
		}
		if row < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ParseBoard builds a board from rows written top row first in the format
// produced by String. Every row must have the same width and every piece
// must rest on another piece or on the bottom row.
func ParseBoard(rows ...string) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("empty board")
	}

	b := NewBoard(len(rows[0]), len(rows))
	for row, line := range rows {
		if len(line) != b.width {
			return nil, fmt.Errorf("row %d has width %d, want %d", row, len(line), b.width)
		}
		for col := 0; col < b.width; col++ {
			cell, ok := cellFromSymbol(line[col])
			if !ok {
				return nil, fmt.Errorf("row %d column %d: unknown symbol %q", row, col, line[col])
			}
			b.set(row, col, cell)
		}
	}

	for col := 0; col < b.width; col++ {
		for row := b.height - 1; row >= 0; row-- {
			if b.At(row, col) == Empty {
				break
			}
			b.heights[col]++
		}
		for row := b.height - 1 - b.heights[col]; row >= 0; row-- {
			if b.At(row, col) != Empty {
				return nil, fmt.Errorf("%w: row %d column %d", ErrFloatingPiece, row, col)
			}
		}
	}
	return b, nil
}
