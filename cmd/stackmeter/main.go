package main

import (
	"os"

	"stackmeter/cmd/stackmeter/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
