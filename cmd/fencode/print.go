package main

import (
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/dwheaton/fencode/internal/fen"
	"github.com/dwheaton/fencode/internal/output"
)

func printCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "print <fen>",
		Short: "Render a FEN position as a board diagram",
		Long: heredoc.Doc(`
			Print parses a FEN record, or a bare piece placement field, and
			renders it as an ASCII board diagram with the canonical record
			below. With --json the position is written as a JSON document
			instead.
		`),
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := fen.ParseRecord(args[0])
			if err != nil {
				return err
			}

			var w output.PositionWriter
			if asJSON {
				w = output.NewJSONWriterSingle(os.Stdout)
			} else {
				w = output.NewTextWriter(os.Stdout)
			}

			if err := w.WritePosition(rec); err != nil {
				return err
			}
			return w.Close()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "write the position as JSON")
	return cmd
}
