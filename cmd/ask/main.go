package main

import (
	"os"

	"github.com/simonhull/firebird-suite/ask/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
