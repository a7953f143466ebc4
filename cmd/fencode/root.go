package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const programVersion = "0.1.0"

func rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "fencode",
		Short: "Convert chess positions between FEN text and board diagrams",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.Flag("debug").Changed {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "show help information")
	root.PersistentFlags().BoolP("debug", "d", false, "show debug information")

	root.Version = programVersion

	// Register the various commands.
	root.AddCommand(printCommand())
	root.AddCommand(fmtCommand())
	root.AddCommand(validateCommand())

	return root
}
