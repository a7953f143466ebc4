package chess

import (
	"fmt"

	"github.com/dwheaton/fencode/internal/errors"
)

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
)

// Board is a fixed 64-cell position in row-major order starting at the
// top rank: index 0 is a8, index 7 is h8, index 63 is h1. The zero value
// is an entirely empty board. Boards are values; conversions never
// mutate an existing board.
type Board [NumSquares]Cell

// BoardFromCells builds a board from a slice of exactly 64 cells.
func BoardFromCells(cells []Cell) (Board, error) {
	var b Board
	if len(cells) != NumSquares {
		return b, fmt.Errorf("%d cells: %w", len(cells), errors.ErrInvalidBoardLength)
	}
	copy(b[:], cells)
	return b, nil
}

// At returns the cell at the given board index.
func (b Board) At(i int) Cell {
	return b[i]
}

// Cells returns the board contents as a fresh 64-cell slice.
func (b Board) Cells() []Cell {
	cells := make([]Cell, NumSquares)
	copy(cells, b[:])
	return cells
}

// SquareIndex converts an algebraic square name like "e3" to a board
// index. It returns false for anything outside a1..h8.
func SquareIndex(name string) (int, bool) {
	if len(name) != 2 {
		return 0, false
	}
	file := int(name[0] - 'a')
	rank := int(name[1] - '1')
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return 0, false
	}
	return (BoardSize-1-rank)*BoardSize + file, true
}

// SquareName converts a board index to its algebraic square name.
func SquareName(i int) string {
	file := i % BoardSize
	rank := BoardSize - 1 - i/BoardSize
	return string([]byte{byte('a' + file), byte('1' + rank)})
}
