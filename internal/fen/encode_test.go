package fen

import (
	"strings"
	"testing"

	"github.com/dwheaton/fencode/internal/chess"
	"github.com/dwheaton/fencode/internal/testutil"
)

func TestEncode_RoundTrip(t *testing.T) {
	// encode(decode(s)) == s for every valid placement.
	tests := []string{
		StartingPlacement,
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR",
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R",
		"8/8/8/8/8/8/8/8",
		"8/8/8/8/8/8/8/4K3",
		"4k3/8/8/8/8/8/8/4K3",
		"7k/8/8/8/8/8/8/K7",
		"r1b1k1n1/1p1p1p1p/8/8/8/8/P1P1P1P1/1N1Q1B1R",
	}

	for _, placement := range tests {
		t.Run(placement, func(t *testing.T) {
			board, err := Decode(placement)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got := Encode(board); got != placement {
				t.Errorf("Encode() = %q; want %q", got, placement)
			}
		})
	}
}

func TestDecode_InverseOfEncode(t *testing.T) {
	// decode(encode(b)) == b for well-formed boards.
	boards := []chess.Board{
		{},
		mustDecode(t, StartingPlacement),
		mustDecode(t, "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R"),
	}

	var custom chess.Board
	custom[0] = chess.B(chess.King)
	custom[63] = chess.W(chess.King)
	custom[27] = chess.W(chess.Queen)
	boards = append(boards, custom)

	for _, board := range boards {
		got, err := Decode(Encode(board))
		testutil.AssertNoError(t, err, "round trip of %q", Encode(board))
		testutil.AssertEqual(t, got, board)
	}
}

func TestEncode_EmptyRank(t *testing.T) {
	// A fully empty rank is the single token "8".
	var board chess.Board
	board[0] = chess.B(chess.King)
	board[63] = chess.W(chess.King)

	got := Encode(board)
	testutil.AssertEqual(t, got, "k7/8/8/8/8/8/8/7K")
	testutil.AssertEqual(t, strings.Count(got, "8"), 6)
}

func TestEncode_FullRankHasNoDigits(t *testing.T) {
	got := Encode(mustDecode(t, StartingPlacement))
	for _, rank := range []string{"rnbqkbnr", "pppppppp", "PPPPPPPP", "RNBQKBNR"} {
		testutil.AssertContains(t, got, rank)
	}
	if strings.ContainsAny(strings.ReplaceAll(got, "8", ""), "1234567") {
		t.Errorf("Encode() = %q; occupied ranks must not contain digits", got)
	}
}

func TestEncode_LoneEmptySquare(t *testing.T) {
	// A single empty square between two pieces encodes as "1" and never
	// merges with a run across an occupied square.
	var board chess.Board
	sq := func(name string) int {
		i, ok := chess.SquareIndex(name)
		if !ok {
			t.Fatalf("bad square %q", name)
		}
		return i
	}
	board[sq("a8")] = chess.B(chess.Rook)
	board[sq("c8")] = chess.B(chess.Rook)
	board[sq("e1")] = chess.W(chess.King)
	board[sq("g1")] = chess.W(chess.King)

	got := Encode(board)
	testutil.AssertEqual(t, got, "r1r5/8/8/8/8/8/8/4K1K1")
}

func TestEncode_RunNeverCrossesRankBoundary(t *testing.T) {
	// Seven empty squares ending a rank and seven starting the next stay
	// two separate runs.
	var board chess.Board
	board[0] = chess.B(chess.Queen) // a8
	board[15] = chess.B(chess.Rook) // h7
	board[60] = chess.W(chess.King) // e1

	got := Encode(board)
	testutil.AssertEqual(t, got, "q7/7r/8/8/8/8/8/4K3")
}

func mustDecode(t *testing.T, placement string) chess.Board {
	t.Helper()
	board, err := Decode(placement)
	if err != nil {
		t.Fatalf("Decode(%q) error = %v", placement, err)
	}
	return board
}
