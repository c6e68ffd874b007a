// Package main provides the ontolex binary entry point.
// Ontolex loads taxonomy and lexicon declarations, answers queries
// over the finalized stores, and exports the knowledge base as RDF.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/ontolex/config"
	"github.com/c360studio/ontolex/loader"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "ontolex"
)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "ontolex",
		Short: "Taxonomy and lexicon store",
		Long: `Ontolex loads class taxonomies and LEMON lexicon declarations
from YAML sources, finalizes them into an immutable snapshot, and
answers subclass, classification, and frame-resolution queries.

Snapshots can be exported as Turtle, N-Triples, or JSON-LD, or
served over HTTP with optional hot reload on source changes.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		checkCmd(&configPath, &logLevel),
		queryCmd(&configPath, &logLevel),
		exportCmd(&configPath, &logLevel),
		serveCmd(&configPath, &logLevel),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Printf("%s version %s (build: %s)\n", appName, Version, BuildTime)
			},
		},
	)

	return cmd
}

// setupLogging configures the default slog logger and returns it.
func setupLogging(logLevel string) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// loadConfig resolves configuration: an explicit --config path wins,
// otherwise the layered project/user lookup applies.
func loadConfig(configPath string, logger *slog.Logger) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		return cfg, nil
	}
	return config.NewLoader(logger).Load()
}

// buildSnapshot loads every configured source glob and finalizes the
// stores into a queryable snapshot.
func buildSnapshot(cfg *config.Config, logger *slog.Logger) (*loader.Snapshot, error) {
	l := loader.New(logger)
	for _, pattern := range cfg.Ontology.Sources {
		if err := l.LoadGlob(pattern); err != nil {
			return nil, err
		}
	}
	return l.Finalize()
}
