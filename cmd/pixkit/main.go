// Command pixkit renders and exercises pixkit scene files.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/pixkit/cmd/pixkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
