package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/gambit/internal/gambit/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := gambit(); err != nil {
		logrus.Fatal(err)
	}
}

func gambit() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
