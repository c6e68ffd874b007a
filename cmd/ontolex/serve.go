package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/c360studio/ontolex/config"
	"github.com/c360studio/ontolex/loader"
	"github.com/c360studio/ontolex/server"
)

const shutdownTimeout = 5 * time.Second

// serveCmd runs the HTTP query server over a finalized snapshot.
func serveCmd(configPath, logLevel *string) *cobra.Command {
	var (
		listen string
		watch  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve taxonomy and lexicon queries over HTTP",
		Long: `Serve loads the configured sources, finalizes a snapshot, and
answers queries over HTTP. With --watch (or ontology.watch in the
config) the server rebuilds the snapshot when declaration files
change; a failed rebuild keeps the previous snapshot serving.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogging(*logLevel)
			cfg, err := loadConfig(*configPath, logger)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Server.Listen = listen
			}
			if watch {
				cfg.Ontology.Watch = true
			}
			return runServer(cfg, logger)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (overrides config)")
	cmd.Flags().BoolVar(&watch, "watch", false, "Rebuild the snapshot when sources change")
	return cmd
}

func runServer(cfg *config.Config, logger *slog.Logger) error {
	snap, err := buildSnapshot(cfg, logger)
	if err != nil {
		return err
	}

	srv := server.New(snap, cfg.Server.CORSOrigins, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Ontology.Watch {
		watcher, err := server.NewWatcher(srv, cfg.Ontology.Sources, func() (*loader.Snapshot, error) {
			return buildSnapshot(cfg, logger)
		}, logger)
		if err != nil {
			return fmt.Errorf("start watcher: %w", err)
		}
		go watcher.Start(ctx)
	}

	httpServer := &http.Server{
		Addr:              cfg.Server.Listen,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening",
			slog.String("addr", cfg.Server.Listen),
			slog.String("snapshot_id", snap.ID),
			slog.Bool("watch", cfg.Ontology.Watch))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
