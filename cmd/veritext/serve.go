package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/veritext/veritext"
	"github.com/veritext/veritext/infrastructure/api"
	v1 "github.com/veritext/veritext/infrastructure/api/v1"
	"github.com/veritext/veritext/internal/config"
	"github.com/veritext/veritext/internal/log"
)

func serveCmd() *cobra.Command {
	var (
		flags clientFlags
		host  string
		port  int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API server.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables (prefix VERITEXT_):
  HOST          Server host to bind to (default: 0.0.0.0)
  PORT          Server port to listen on (default: 8080)
  DATA_DIR      Data directory (default: ~/.veritext)
  DB_PATH       History database path (default: {data_dir}/veritext.db)
  RULE_FILE     Pattern rule file (YAML)
  SOURCE_LANG   Bitext source language code (default: en)
  TARGET_LANG   Bitext target language code (default: de)
  LOG_LEVEL     Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT    Log format: pretty, json (default: pretty)
  CONTEXT_SIZE  Context window for match display (default: 45)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(&flags, host, port)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&host, "host", "", "Server host to bind to (default: 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "Server port to listen on (default: 8080)")

	return cmd
}

func runServe(flags *clientFlags, host string, port int) error {
	cfg, err := flags.loadClientConfig()
	if err != nil {
		return err
	}
	cfg = applyServeOverrides(cfg, host, port)

	if err := cfg.EnsureDataDir(); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	logger := log.Configure(cfg)
	slogger := logger.Slog()

	attrs := append([]slog.Attr{slog.String("version", version)}, cfg.LogAttrs()...)
	slogger.LogAttrs(context.Background(), slog.LevelInfo, "starting veritext", attrs...)

	client, err := flags.buildClient(cfg, veritext.WithHistory(cfg.DBPath()))
	if err != nil {
		return fmt.Errorf("create veritext client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slogger.Error("failed to close veritext client", slog.Any("error", err))
		}
	}()

	server := api.NewServer(cfg.Addr(), slogger)
	router := v1.NewCheckRouter(client.Checks, client.Corrections, client.History)
	server.Router().Mount("/api/v1", router.Routes())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Start()
	})
	g.Go(func() error {
		<-ctx.Done()
		return server.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// applyServeOverrides applies command line flag overrides to the config.
func applyServeOverrides(cfg config.AppConfig, host string, port int) config.AppConfig {
	var opts []config.AppConfigOption

	if host != "" {
		opts = append(opts, config.WithHost(host))
	}
	if port != 0 {
		opts = append(opts, config.WithPort(port))
	}

	return cfg.Apply(opts...)
}
