// SPDX-License-Identifier: MIT

// Package commands implements the cellsim command line.
package commands

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logLevel  string
	logFormat string
	output    string

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "cellsim",
	Short: "Diffusion and chemotaxis on cell graphs",
	Long: `cellsim runs density simulations on graphs of cells.

A scenario file lists cells, a connectivity rule and run parameters.
Results are written as JSON.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(logLevel, logFormat)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "Log format: console, json")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}

	return nil
}

// writeJSON encodes v as indented JSON to --output or the command's stdout.
func writeJSON(cmd *cobra.Command, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	data = append(data, '\n')

	return writeOutput(cmd, data)
}

func writeOutput(cmd *cobra.Command, data []byte) error {
	if output != "" {
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		logger.Info("output written", zap.String("path", output), zap.Int("bytes", len(data)))
		return nil
	}
	_, err := cmd.OutOrStdout().Write(data)

	return err
}
