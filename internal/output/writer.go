// Package output renders positions in text and JSON formats.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dwheaton/fencode/internal/chess"
	"github.com/dwheaton/fencode/internal/fen"
)

// PositionWriter is the interface for writing positions to output.
// Different implementations handle different output formats.
type PositionWriter interface {
	// WritePosition writes a single position to the output.
	WritePosition(rec fen.Record) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. For batch writers (like JSON), this also
	// writes any pending output.
	Close() error
}

// TextWriter renders positions as ASCII board diagrams.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WritePosition renders a position as an 8x8 diagram, top rank first,
// with '.' for empty squares, followed by the canonical FEN record.
func (tw *TextWriter) WritePosition(rec fen.Record) error {
	var sb strings.Builder

	for rank := 0; rank < chess.BoardSize; rank++ {
		fmt.Fprintf(&sb, "%d ", chess.BoardSize-rank)
		for file := 0; file < chess.BoardSize; file++ {
			square := byte('.')
			if letter, ok := chess.CharOf(rec.Board[rank*chess.BoardSize+file]); ok {
				square = letter
			}
			sb.WriteByte(' ')
			sb.WriteByte(square)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	sb.WriteString(rec.String())
	sb.WriteByte('\n')

	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}
