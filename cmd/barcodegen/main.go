// Command barcodegen reports the geometry of barcode symbols.
package main

import (
	"os"

	"github.com/ericlevine/barcodegen/cmd/barcodegen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
