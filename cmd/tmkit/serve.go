package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tmkit/tmkit/infrastructure/api"
	"github.com/tmkit/tmkit/internal/log"
)

func serveCmd() *cobra.Command {
	var (
		envFile string
		host    string
		port    int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP TM server",
		Long: `Start the HTTP TM server.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  TMKIT_HOST             Server host to bind to (default: 0.0.0.0)
  TMKIT_PORT             Server port to listen on (default: 8080)
  TMKIT_DATA_DIR         Data directory (default: ~/.tmkit)
  TMKIT_DB_URL           Database URL (default: sqlite:///{data_dir}/tm.db)
  TMKIT_LOG_LEVEL        Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  TMKIT_LOG_FORMAT       Log format: pretty, json (default: pretty)
  TMKIT_MAX_CANDIDATES   Suggestion list cap (default: 3)
  TMKIT_MIN_SIMILARITY   Match quality threshold 1-100 (default: 75)
  TMKIT_MAX_LENGTH       String length cap for scoring (default: 1000)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(envFile, host, port)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&host, "host", "", "Server host to bind to (default: 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "Server port to listen on (default: 8080)")

	return cmd
}

func runServe(envFile, host string, port int) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	if host != "" {
		cfg = cfg.WithHost(host)
	}
	if port != 0 {
		cfg = cfg.WithPort(port)
	}

	if err := cfg.EnsureDataDir(); err != nil {
		return err
	}

	logger := log.New(cfg)

	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	server := api.NewServer(cfg.Addr(), client, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(server.Start)
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
