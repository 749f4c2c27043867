package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nullsector/hide/internal/raster"
	"github.com/nullsector/hide/internal/stego"
)

func newInfoCmd() *cobra.Command {
	var inPath string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Report image dimensions and embedding capacity at each level",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(inPath)
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "image path")
	cmd.MarkFlagRequired("in")

	return cmd
}

// runInfo reports read-only capacity figures; it never touches the
// encrypted region, so it works without a password.
func runInfo(inPath string) error {
	img, err := raster.Load(inPath)
	if err != nil {
		logger.Error().Err(err).Str("path", inPath).Msg("cannot load image")
		return &stego.Error{Kind: stego.InputUnreadable, Msg: inPath, Err: err}
	}

	total := img.W() * img.H() * 4
	fmt.Fprintf(os.Stdout, "%s: %dx%d pixels (%d channel bytes)\n", inPath, img.W(), img.H(), total)
	for _, level := range []stego.EncodingLevel{stego.Low, stego.Medium, stego.High} {
		maxSize := stego.MaxPayloadSize(total, level)
		fmt.Fprintf(os.Stdout, "  %-6s max padded payload: %d bytes\n", level.String(), maxSize)
	}
	return nil
}
