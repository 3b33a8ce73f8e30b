// Package main is the entry point for the mplint CLI.
package main

import (
	"os"

	"github.com/thoreinstein/mplint/cmd/mplint/commands"
)

func main() {
	os.Exit(commands.Execute())
}
