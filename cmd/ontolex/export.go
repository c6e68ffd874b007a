package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/c360studio/ontolex/export"
)

// exportCmd serializes the finalized snapshot as RDF.
func exportCmd(configPath, logLevel *string) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the knowledge base as RDF",
		Long: `Export loads the configured sources, finalizes the snapshot, and
serializes it as RDF triples: OWL class and individual axioms plus
LEMON lexical entries, forms, and phrase frames.

Formats: turtle (default), ntriples, jsonld.`,
		Args: cobra.NoArgs,
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

			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			doc, err := export.NewExporter(snap).Export(f)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				fmt.Print(doc)
				return nil
			}
			if err := os.WriteFile(output, []byte(doc), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "turtle", "Output format (turtle, ntriples, jsonld)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}
