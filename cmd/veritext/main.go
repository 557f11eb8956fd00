// Package main is the entry point for the veritext CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/veritext/veritext/internal/config"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "veritext",
		Short: "Veritext text checking and correction engine",
		Long:  `Veritext checks texts and bilingual corpora against pattern rules, applies suggested corrections and profiles rule performance.`,
	}

	cmd.AddCommand(checkCmd())
	cmd.AddCommand(correctCmd())
	cmd.AddCommand(bitextCmd())
	cmd.AddCommand(profileCmd())
	cmd.AddCommand(rulesCmd())
	cmd.AddCommand(tagCmd())
	cmd.AddCommand(historyCmd())
	cmd.AddCommand(serveCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from .env file and environment variables.
func loadConfig(envFile string) (config.AppConfig, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// readInput reads the whole input text: a file path, or stdin when path is
// "-" or empty.
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
