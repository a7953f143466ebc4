package main

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/dwheaton/fencode/internal/fen"
)

func fmtCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <fen>",
		Short: "Canonicalize a FEN string",
		Long: heredoc.Doc(`
			Fmt decodes a FEN string and prints its canonical re-encoding.
			A bare piece placement field prints a placement; a full record
			prints all six fields.
		`),
		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.TrimSpace(args[0])

			if len(strings.Fields(input)) == 1 {
				board, err := fen.Decode(input)
				if err != nil {
					return err
				}
				fmt.Println(fen.Encode(board))
				return nil
			}

			rec, err := fen.ParseRecord(input)
			if err != nil {
				return err
			}
			fmt.Println(rec.String())
			return nil
		},
	}
}
