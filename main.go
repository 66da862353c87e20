package main

import (
	"os"

	"github.com/neolab/neodiag/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
