package fen

import (
	"strings"

	"github.com/dwheaton/fencode/internal/chess"
)

// Encode converts a board into a piece placement field. It is the exact
// inverse of Decode for any board Decode produces.
//
// The scan keeps one pending token: the letter of the last occupied
// square, or the digit counting an open run of empty squares. The token
// is flushed when the run is broken by an occupied square, at every rank
// boundary before the '/' separator, and once more at the end of the
// board.
func Encode(board chess.Board) string {
	var sb strings.Builder
	var prev byte // pending token; 0 means none

	for i := 0; i < chess.NumSquares; i++ {
		if i > 0 && i%chess.BoardSize == 0 {
			if prev != 0 {
				sb.WriteByte(prev)
				prev = 0
			}
			sb.WriteByte('/')
		}

		next := nextToken(board[i], prev)
		if prev != 0 && !(isRunDigit(prev) && isRunDigit(next)) {
			sb.WriteByte(prev)
		}
		// When both tokens are run digits, next already counts prev's
		// squares and supersedes it unemitted.
		prev = next
	}

	if prev != 0 {
		sb.WriteByte(prev)
	}
	return sb.String()
}

// nextToken computes the token for one square: the piece letter for an
// occupied square, or the pending empty-run digit advanced by one.
func nextToken(c chess.Cell, prev byte) byte {
	if c.IsEmpty() {
		if isRunDigit(prev) {
			return prev + 1
		}
		return '1'
	}
	letter, _ := chess.CharOf(c)
	return letter
}

// isRunDigit reports whether b is an open empty-run count. Counts are
// single digits 1-8 since a rank is 8 squares wide and runs never cross
// the '/' separator.
func isRunDigit(b byte) bool {
	return b >= '1' && b <= '8'
}
