package output

import (
	"encoding/json"
	"io"

	"github.com/dwheaton/fencode/internal/chess"
	"github.com/dwheaton/fencode/internal/fen"
)

// JSONPosition represents a position in JSON format.
type JSONPosition struct {
	FEN            string `json:"fen"`
	Placement      string `json:"placement"`
	SideToMove     string `json:"sideToMove"`
	Castling       string `json:"castling"`
	EnPassant      string `json:"enPassant,omitempty"`
	HalfmoveClock  int    `json:"halfmoveClock"`
	FullmoveNumber int    `json:"fullmoveNumber"`
}

// JSONOutput holds multiple positions for array output.
type JSONOutput struct {
	Positions []*JSONPosition `json:"positions"`
}

// PositionToJSON converts a record to its JSON representation.
func PositionToJSON(rec fen.Record) *JSONPosition {
	pos := &JSONPosition{
		FEN:            rec.String(),
		Placement:      fen.Encode(rec.Board),
		SideToMove:     "white",
		Castling:       rec.Castling.String(),
		HalfmoveClock:  rec.HalfmoveClock,
		FullmoveNumber: rec.FullmoveNumber,
	}
	if rec.SideToMove == chess.Black {
		pos.SideToMove = "black"
	}
	if rec.EnPassant >= 0 {
		pos.EnPassant = chess.SquareName(rec.EnPassant)
	}
	return pos
}

// JSONWriter writes positions in JSON format.
// It buffers positions and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w         io.Writer
	positions []*JSONPosition
	single    bool // If true, write each position immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches positions and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:         w,
		positions: make([]*JSONPosition, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each position
// immediately as its own document.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WritePosition buffers a position for JSON output (or writes immediately
// in single mode).
func (jw *JSONWriter) WritePosition(rec fen.Record) error {
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(PositionToJSON(rec))
	}

	jw.positions = append(jw.positions, PositionToJSON(rec))
	return nil
}

// Flush writes all buffered positions as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.positions) == 0 {
		return nil
	}

	output := &JSONOutput{Positions: jw.positions}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(output)

	jw.positions = jw.positions[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
