// huepoint - pick a colour by pointing at it
//
// huepoint blends four corner colours under the pointer, and names the
// colour you freeze.
package main

import (
	"os"

	"github.com/jmylchreest/huepoint/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
