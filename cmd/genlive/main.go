package main

import (
	"os"

	"github.com/veldtlabs/genlive/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
