package main

import (
	"os"

	"github.com/mattsolo1/imitation-bench/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
