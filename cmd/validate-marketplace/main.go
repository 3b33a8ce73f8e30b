// Command validate-marketplace validates the marketplace manifest of the
// repository in the current directory. It is equivalent to
// "mplint marketplace".
package main

import (
	"os"

	"github.com/thoreinstein/mplint/cmd/mplint/commands"
)

func main() {
	os.Exit(commands.ExecuteSubcommand("marketplace"))
}
