// Command hide embeds and recovers files inside raster images using LSB
// steganography. See internal/stego for the container format.
package main

import (
	"fmt"
	"os"

	"github.com/nullsector/hide/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
