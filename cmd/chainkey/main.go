package main

import (
	"os"

	"github.com/stalker-loki/chainkey/cmd/chainkey/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
