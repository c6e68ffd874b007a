package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// queryCmd groups the one-shot query subcommands. Each builds a fresh
// snapshot from the configured sources and answers a single question.
func queryCmd(configPath, logLevel *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Query the finalized taxonomy and lexicon",
	}
	cmd.AddCommand(
		subclassCmd(configPath, logLevel),
		classesCmd(configPath, logLevel),
		resolveCmd(configPath, logLevel),
	)
	return cmd
}

func subclassCmd(configPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "subclass <class> <ancestor>",
		Short: "Check whether a class is a subclass of another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogging(*logLevel)
			cfg, err := loadConfig(*configPath, logger)
			if err != nil {
				return err
			}
			snap, err := buildSnapshot(cfg, logger)
			if err != nil {
				return err
			}
			ok, err := snap.Taxonomy.IsSubclassOf(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Println(ok)
			return nil
		},
	}
}

func classesCmd(configPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "classes <individual>",
		Short: "List an individual's classes, most specific first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogging(*logLevel)
			cfg, err := loadConfig(*configPath, logger)
			if err != nil {
				return err
			}
			snap, err := buildSnapshot(cfg, logger)
			if err != nil {
				return err
			}
			chain, err := snap.Taxonomy.ClassesOf(args[0])
			if err != nil {
				return err
			}
			for _, class := range chain {
				fmt.Println(class)
			}
			return nil
		},
	}
}

func resolveCmd(configPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <entry> [placeholder=value ...]",
		Short: "Resolve an entry's phrase frame with argument substitutions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogging(*logLevel)
			cfg, err := loadConfig(*configPath, logger)
			if err != nil {
				return err
			}
			snap, err := buildSnapshot(cfg, logger)
			if err != nil {
				return err
			}

			subs := make(map[string]string, len(args)-1)
			for _, pair := range args[1:] {
				key, value, found := strings.Cut(pair, "=")
				if !found || key == "" {
					return fmt.Errorf("substitution %q must be placeholder=value", pair)
				}
				subs[key] = value
			}

			resolved, err := snap.Lexicon.ResolveFrame(args[0], subs)
			if err != nil {
				return err
			}
			fmt.Println(resolved.String())
			return nil
		},
	}
}
