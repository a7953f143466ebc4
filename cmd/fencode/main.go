// fencode converts chess positions between FEN text and board diagrams.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := fencode(); err != nil {
		logrus.Fatal(err)
	}
}

func fencode() error {
	root := rootCommand()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
