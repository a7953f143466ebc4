// Package chess provides the board representation used by the FEN codec.
package chess

import "unicode"

// Colour represents the colour of a piece.
type Colour int

const (
	NoColour Colour = iota // only pairs with Empty
	White
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "None"
}

// Opposite returns the opposite colour. NoColour is its own opposite.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColour
}

// Piece represents a piece kind without colour.
type Piece int

const (
	Empty Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece kind.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Cell is one board square: a piece kind and its colour.
// The zero value is an empty square, which is the only cell with NoColour.
type Cell struct {
	Piece  Piece
	Colour Colour
}

// IsEmpty reports whether the cell holds no piece.
func (c Cell) IsEmpty() bool {
	return c.Piece == Empty
}

// W creates a white cell of the given piece kind.
func W(piece Piece) Cell {
	return Cell{Piece: piece, Colour: White}
}

// B creates a black cell of the given piece kind.
func B(piece Piece) Cell {
	return Cell{Piece: piece, Colour: Black}
}

// fenLetters maps each piece kind to its white (uppercase) FEN letter.
var fenLetters = [NumPieceValues]byte{
	Pawn:   'P',
	Knight: 'N',
	Bishop: 'B',
	Rook:   'R',
	Queen:  'Q',
	King:   'K',
}

// CharOf returns the FEN letter for an occupied cell, uppercase for
// white and lowercase for black. It returns false for an empty cell.
func CharOf(c Cell) (byte, bool) {
	if c.IsEmpty() || int(c.Piece) >= len(fenLetters) {
		return 0, false
	}
	letter := fenLetters[c.Piece]
	if c.Colour == Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter, true
}

// PieceOf returns the cell denoted by a FEN letter.
// It returns false for any byte outside the twelve piece letters.
func PieceOf(ch byte) (Cell, bool) {
	colour := White
	if unicode.IsLower(rune(ch)) {
		colour = Black
		ch = byte(unicode.ToUpper(rune(ch)))
	}

	var piece Piece
	switch ch {
	case 'P':
		piece = Pawn
	case 'N':
		piece = Knight
	case 'B':
		piece = Bishop
	case 'R':
		piece = Rook
	case 'Q':
		piece = Queen
	case 'K':
		piece = King
	default:
		return Cell{}, false
	}
	return Cell{Piece: piece, Colour: colour}, true
}
