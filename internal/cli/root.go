// Package cli implements the thin command surface over internal/stego:
// encode, decode, and info subcommands. No wire-format semantics live
// here, only argument parsing, file I/O, and logging.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nullsector/hide/internal/config"
	"github.com/nullsector/hide/internal/obslog"
)

var logger zerolog.Logger
var cfg config.Config

// NewRoot builds the root "hide" command with its encode/decode/info
// children and the shared persistent flags bound to viper.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "hide",
		Short:         "Embed and recover files in images using LSB steganography",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = config.Load()
			logger = obslog.New(cfg.LogFormat, cfg.Verbose)
			return nil
		},
	}

	if err := config.Bind(root); err != nil {
		// Flag binding only fails on programmer error (duplicate flags);
		// fail fast rather than run with a half-bound config.
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	root.AddCommand(newEncodeCmd(), newDecodeCmd(), newInfoCmd())
	return root
}

// Execute runs the CLI, returning the error cobra produced. Subcommands
// log load, encode/decode and write failures before returning them;
// password-read and flag-parsing errors are returned without logging.
func Execute() error {
	return NewRoot().Execute()
}
