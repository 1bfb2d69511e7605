package main

import (
	"os"

	"github.com/eriklarko/formula-parser/src/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
