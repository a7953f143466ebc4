package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dwheaton/fencode/internal/chess"
	"github.com/dwheaton/fencode/internal/errors"
)

// StartingFEN is the complete FEN record for the standard starting position.
const StartingFEN = StartingPlacement + " w KQkq - 0 1"

// Castling holds the four standard castling rights.
type Castling struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// None reports whether no side may castle.
func (c Castling) None() bool {
	return !c.WhiteKingside && !c.WhiteQueenside && !c.BlackKingside && !c.BlackQueenside
}

// String returns the FEN castling field, "-" when no rights remain.
func (c Castling) String() string {
	if c.None() {
		return "-"
	}
	var sb strings.Builder
	if c.WhiteKingside {
		sb.WriteByte('K')
	}
	if c.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if c.BlackKingside {
		sb.WriteByte('k')
	}
	if c.BlackQueenside {
		sb.WriteByte('q')
	}
	return sb.String()
}

// Record holds a complete six-field FEN position. The piece placement
// field is decoded into Board; the remaining fields carry the position
// metadata that surrounds the board.
type Record struct {
	Board      chess.Board
	SideToMove chess.Colour
	Castling   Castling

	// EnPassant is the capture target square index, or -1 when no
	// en passant capture is available.
	EnPassant int

	HalfmoveClock  int
	FullmoveNumber int
}

// StartingRecord returns the standard starting position.
func StartingRecord() Record {
	rec, _ := ParseRecord(StartingFEN)
	return rec
}

// ParseRecord parses a FEN record. Only the piece placement field is
// required; missing trailing fields default to white to move, no castling
// rights, no en passant square, and clocks 0 and 1.
func ParseRecord(s string) (Record, error) {
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return Record{}, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	rec := Record{
		SideToMove:     chess.White,
		EnPassant:      -1,
		FullmoveNumber: 1,
	}

	board, err := Decode(parts[0])
	if err != nil {
		return Record{}, err
	}
	rec.Board = board

	if err := parseSideToMove(&rec, parts); err != nil {
		return Record{}, err
	}
	if err := parseCastling(&rec, parts); err != nil {
		return Record{}, err
	}
	if err := parseEnPassant(&rec, parts); err != nil {
		return Record{}, err
	}
	parseClocks(&rec, parts)

	return rec, nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(rec *Record, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		rec.SideToMove = chess.White
	case "b":
		rec.SideToMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastling parses the castling availability field.
func parseCastling(rec *Record, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}
	for _, c := range parts[2] {
		switch c {
		case 'K':
			rec.Castling.WhiteKingside = true
		case 'Q':
			rec.Castling.WhiteQueenside = true
		case 'k':
			rec.Castling.BlackKingside = true
		case 'q':
			rec.Castling.BlackQueenside = true
		default:
			return fmt.Errorf("invalid castling rights: %s: %w", parts[2], errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(rec *Record, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, ok := chess.SquareIndex(parts[3])
	if !ok {
		return fmt.Errorf("invalid en passant square: %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	rec.EnPassant = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
// Unparseable clock values keep their defaults.
func parseClocks(rec *Record, parts []string) {
	if len(parts) >= 5 {
		if n, err := strconv.Atoi(parts[4]); err == nil && n >= 0 {
			rec.HalfmoveClock = n
		}
	}
	if len(parts) >= 6 {
		if n, err := strconv.Atoi(parts[5]); err == nil && n >= 1 {
			rec.FullmoveNumber = n
		}
	}
}

// String returns the canonical six-field FEN record.
func (r Record) String() string {
	var sb strings.Builder

	sb.WriteString(Encode(r.Board))
	sb.WriteByte(' ')
	if r.SideToMove == chess.Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	sb.WriteByte(' ')
	sb.WriteString(r.Castling.String())
	sb.WriteByte(' ')
	if r.EnPassant >= 0 {
		sb.WriteString(chess.SquareName(r.EnPassant))
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " %d %d", r.HalfmoveClock, r.FullmoveNumber)

	return sb.String()
}
