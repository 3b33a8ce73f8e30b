// Command lint-plugins lints every plugin manifest under ./plugins. It is
// equivalent to "mplint plugins".
package main

import (
	"os"

	"github.com/thoreinstein/mplint/cmd/mplint/commands"
)

func main() {
	os.Exit(commands.ExecuteSubcommand("plugins"))
}
