// Command worlded edits WorldEd map files from the command line.
package main

import (
	"errors"
	"os"

	"github.com/katalvlaran/worlded/internal/ui"
)

func main() {
	if err := Execute(); err != nil {
		if !errors.Is(err, errReported) {
			ui.Bad.Fprintf(os.Stderr, "worlded: %v\n", err)
		}
		os.Exit(1)
	}
}
