package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags.
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "logpack",
	Short: "Structural compression codec for binary log entries",
	Long: `logpack packs typed, variable-arity log records into a dense byte
stream by delta-encoding timestamps and width-packing numeric arguments,
with no general-purpose compression pass.

Examples:
  # Compare the codec against generic compressors over synthetic workloads
  logpack bench --buffer-size 1048576 --trials 5

  # Run the built-in encode/compress/decompress self test
  logpack selftest`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// newLogger builds the CLI logger; verbose enables debug-level progress
// output on stderr.
func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
