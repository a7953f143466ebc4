package chess

import (
	"testing"
)

func TestSymbolTable(t *testing.T) {
	tests := []struct {
		letter byte
		cell   Cell
	}{
		{'P', W(Pawn)},
		{'N', W(Knight)},
		{'B', W(Bishop)},
		{'R', W(Rook)},
		{'Q', W(Queen)},
		{'K', W(King)},
		{'p', B(Pawn)},
		{'n', B(Knight)},
		{'b', B(Bishop)},
		{'r', B(Rook)},
		{'q', B(Queen)},
		{'k', B(King)},
	}

	for _, tt := range tests {
		t.Run(string(tt.letter), func(t *testing.T) {
			cell, ok := PieceOf(tt.letter)
			if !ok {
				t.Fatalf("PieceOf(%c) not found", tt.letter)
			}
			if cell != tt.cell {
				t.Errorf("PieceOf(%c) = %v; want %v", tt.letter, cell, tt.cell)
			}

			letter, ok := CharOf(tt.cell)
			if !ok {
				t.Fatalf("CharOf(%v) not found", tt.cell)
			}
			if letter != tt.letter {
				t.Errorf("CharOf(%v) = %c; want %c", tt.cell, letter, tt.letter)
			}
		})
	}
}

func TestPieceOf_Rejects(t *testing.T) {
	for _, ch := range []byte{'x', 'X', '0', '9', '/', ' ', '-', 'a', 'h'} {
		if _, ok := PieceOf(ch); ok {
			t.Errorf("PieceOf(%c) = ok; want rejection", ch)
		}
	}
}

func TestCharOf_EmptyCell(t *testing.T) {
	if _, ok := CharOf(Cell{}); ok {
		t.Error("CharOf(empty cell) = ok; want rejection")
	}
}

func TestCellZeroValue(t *testing.T) {
	var c Cell
	if !c.IsEmpty() {
		t.Error("zero Cell is not empty")
	}
	if c.Colour != NoColour {
		t.Errorf("zero Cell colour = %v; want NoColour", c.Colour)
	}
}

func TestColourOpposite(t *testing.T) {
	if White.Opposite() != Black {
		t.Error("White.Opposite() != Black")
	}
	if Black.Opposite() != White {
		t.Error("Black.Opposite() != White")
	}
	if NoColour.Opposite() != NoColour {
		t.Error("NoColour.Opposite() != NoColour")
	}
}
