// Command cellsim runs diffusion and chemotaxis scenarios on cell graphs.
package main

import (
	"os"

	"github.com/katalvlaran/cellgraph/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
