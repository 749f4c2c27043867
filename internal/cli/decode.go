package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nullsector/hide/internal/raster"
	"github.com/nullsector/hide/internal/stego"
)

func newDecodeCmd() *cobra.Command {
	var inPath, outPath string

	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Recover a payload file embedded in a stego image",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(inPath, outPath)
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "stego image path")
	cmd.Flags().StringVar(&outPath, "out", "", "output path; defaults to the recovered filename")
	cmd.MarkFlagRequired("in")

	return cmd
}

func runDecode(inPath, outPath string) error {
	img, err := raster.Load(inPath)
	if err != nil {
		logger.Error().Err(err).Str("path", inPath).Msg("cannot load stego image")
		return &stego.Error{Kind: stego.InputUnreadable, Msg: inPath, Err: err}
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}
	passwordHash := stego.HashPassword(password)
	for i := range password {
		password[i] = 0
	}

	logger.Info().Str("in", inPath).Msg("decoding")

	result, err := stego.Decode(img, passwordHash)
	if err != nil {
		logger.Error().Err(err).Msg("decode failed")
		return err
	}

	dest := outPath
	if dest == "" {
		dest = result.Filename
	}
	if err := os.WriteFile(dest, result.Payload, 0o644); err != nil {
		logger.Error().Err(err).Str("path", dest).Msg("cannot write recovered payload")
		return &stego.Error{Kind: stego.OutputUnwritable, Msg: dest, Err: err}
	}

	logger.Info().Str("out", dest).Int("size", len(result.Payload)).Msg("decoded successfully")
	fmt.Fprintln(os.Stdout, dest)
	return nil
}
