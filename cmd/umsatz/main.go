package main

import (
	"os"

	"github.com/umsatz-dev/umsatz/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
