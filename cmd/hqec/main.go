// Command hqec reproduces logical success-rate threshold curves for the
// HaPPY holographic code family by Monte-Carlo sampling: erasure noise
// with an exact recoverability check, and depolarizing noise through the
// coset-likelihood decoder, optionally compared against externally
// generated reference data.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags.
	verbose    bool
	configPath string

	// Logger, built in PersistentPreRunE.
	logger *zap.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "hqec",
	Short: "Monte-Carlo threshold sweeps for the HaPPY holographic code",
	Long: `hqec estimates the logical error-correction success rate of the
HaPPY holographic code family as a function of physical noise strength
and code radius.

Two noise/decoder models are available:
  erasure       exact stabilizer recoverability under the erasure channel
  depolarizing  coset-likelihood decoding of sampled Pauli errors

The figures command runs both models over a radii list and assembles
comparison plots, overlaying reference decoder data when present.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config = zap.NewDevelopmentConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML sweep configuration file")

	rootCmd.AddCommand(erasureCmd)
	rootCmd.AddCommand(depolarizingCmd)
	rootCmd.AddCommand(figuresCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
