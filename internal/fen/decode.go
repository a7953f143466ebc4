// Package fen converts between FEN text and the in-memory board
// representation. Decode and Encode handle the piece placement field and
// are exact inverses of each other; ParseRecord and Record.String handle
// the full six-field record.
package fen

import (
	"fmt"

	"github.com/dwheaton/fencode/internal/chess"
	"github.com/dwheaton/fencode/internal/errors"
)

// StartingPlacement is the piece placement field of the standard
// starting position.
const StartingPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// Decode converts a piece placement field into a board. The input is
// scanned once left to right: '/' separates ranks and is not itself a
// square, a digit 1-8 stands for that many consecutive empty squares,
// and any other byte must be one of the twelve piece letters.
//
// Decode fails with errors.ErrInvalidCharacter for an unrecognized byte
// (including the digits 0 and 9, which no legal 8-wide rank can produce)
// and with errors.ErrInvalidBoardLength when the input does not describe
// exactly 64 squares. No partial board is returned on failure.
func Decode(placement string) (chess.Board, error) {
	var board chess.Board
	squares := 0

	for i := 0; i < len(placement); i++ {
		ch := placement[i]
		switch {
		case ch == '/':
			// Rank separator, consumes no squares.
		case ch >= '1' && ch <= '8':
			// An empty run, expanded with an explicit counter.
			// The zero Cell is already empty, so only the count advances.
			for n := int(ch - '0'); n > 0; n-- {
				if squares >= chess.NumSquares {
					return chess.Board{}, overflowError(placement, i, ch)
				}
				squares++
			}
		default:
			cell, ok := chess.PieceOf(ch)
			if !ok {
				return chess.Board{}, &errors.ParseError{
					Err:    errors.ErrInvalidCharacter,
					Input:  placement,
					Offset: i,
					Got:    string(ch),
				}
			}
			if squares >= chess.NumSquares {
				return chess.Board{}, overflowError(placement, i, ch)
			}
			board[squares] = cell
			squares++
		}
	}

	if squares != chess.NumSquares {
		return chess.Board{}, &errors.ParseError{
			Err:    errors.ErrInvalidBoardLength,
			Input:  placement,
			Offset: -1,
			Got:    fmt.Sprintf("%d squares", squares),
		}
	}
	return board, nil
}

// overflowError reports a placement that would describe more than 64
// squares. The scan stops at the first byte that overflows.
func overflowError(placement string, offset int, got byte) error {
	return &errors.ParseError{
		Err:    errors.ErrInvalidBoardLength,
		Input:  placement,
		Offset: offset,
		Got:    string(got),
	}
}
