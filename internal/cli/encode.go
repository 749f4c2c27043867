package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nullsector/hide/internal/raster"
	"github.com/nullsector/hide/internal/stego"
)

func newEncodeCmd() *cobra.Command {
	var inPath, payloadPath, outPath string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Embed a payload file into a cover image",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(inPath, payloadPath, outPath)
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "cover image path (PNG or BMP)")
	cmd.Flags().StringVar(&payloadPath, "payload", "", "payload file to embed")
	cmd.Flags().StringVar(&outPath, "out", "", "output PNG path")
	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("payload")
	cmd.MarkFlagRequired("out")

	return cmd
}

// runEncode resolves the encoding level from the persistent --level flag,
// which config.Load layers over HIDE_LEVEL and the YAML config file — no
// flag specific to this subcommand shadows that resolution.
func runEncode(inPath, payloadPath, outPath string) error {
	level, err := stego.ParseLevel(cfg.DefaultLevel)
	if err != nil {
		logger.Error().Err(err).Msg("invalid encoding level")
		return err
	}

	img, err := raster.Load(inPath)
	if err != nil {
		logger.Error().Err(err).Str("path", inPath).Msg("cannot load cover image")
		return &stego.Error{Kind: stego.InputUnreadable, Msg: inPath, Err: err}
	}

	payload, err := os.ReadFile(payloadPath)
	if err != nil {
		logger.Error().Err(err).Str("path", payloadPath).Msg("cannot read payload")
		return &stego.Error{Kind: stego.InputUnreadable, Msg: payloadPath, Err: err}
	}

	password, err := readPassword("Password: ")
	if err != nil {
		return err
	}
	passwordHash := stego.HashPassword(password)
	for i := range password {
		password[i] = 0
	}

	req := stego.EncodeRequest{
		Payload:      payload,
		Filename:     filepath.Base(payloadPath),
		PasswordHash: passwordHash,
		Level:        level,
	}

	logger.Info().
		Str("cover", inPath).
		Str("payload", payloadPath).
		Str("level", level.String()).
		Msg("encoding")

	if err := stego.Encode(img, req); err != nil {
		if e, ok := err.(*stego.Error); ok && e.Kind == stego.PayloadTooLarge {
			logger.Error().Int("max_size", e.MaxSize).Msg("payload too large for this image and level")
		} else {
			logger.Error().Err(err).Msg("encode failed")
		}
		return err
	}

	if err := img.Save(outPath); err != nil {
		logger.Error().Err(err).Str("path", outPath).Msg("cannot save output image")
		return &stego.Error{Kind: stego.OutputUnwritable, Msg: outPath, Err: err}
	}

	logger.Info().Str("out", outPath).Msg("encoded successfully")
	fmt.Fprintln(os.Stdout, outPath)
	return nil
}
