// Command lvtree assembles flat parent-linked records into trees.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvtree/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
