// Package config resolves layered configuration — CLI flags, HIDE_* env
// vars, and an optional YAML config file, in that priority order — into
// the values internal/cli hands to the unchanged stego encoder/decoder
// orchestrators. None of this touches wire-format semantics; it only
// resolves inputs.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the CLI-layer defaults resolved from flags, environment,
// and config file.
type Config struct {
	DefaultLevel string
	LogFormat    string
	Verbose      bool
}

// Bind registers the shared persistent flags on root and binds them into
// viper, so every subcommand sees the same layered resolution.
func Bind(root *cobra.Command) error {
	root.PersistentFlags().String("level", "low", "default encoding level (low|medium|high)")
	root.PersistentFlags().String("log-format", "console", "log output format (console|json)")
	root.PersistentFlags().Bool("verbose", false, "enable debug logging")

	if err := viper.BindPFlags(root.PersistentFlags()); err != nil {
		return err
	}

	viper.SetEnvPrefix("HIDE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if cfgDir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(cfgDir, "hide"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		// A missing config file is not an error — flags and env still work.
		_ = viper.ReadInConfig()
	}

	return nil
}

// Load reads the bound viper values into a Config.
func Load() Config {
	return Config{
		DefaultLevel: viper.GetString("level"),
		LogFormat:    viper.GetString("log-format"),
		Verbose:      viper.GetBool("verbose"),
	}
}
