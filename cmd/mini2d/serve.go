package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/mini2d/internal/metrics"
	"github.com/vovakirdan/mini2d/internal/platform/tui"
	"github.com/vovakirdan/mini2d/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMetricsAddr string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the mini2d SSH server",
	Long: `Start an SSH server that allows users to connect and run demos.

Each SSH connection gets its own session with a demo picker menu.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.mini2d/host_key

Metrics:
  - With --metrics, Prometheus metrics are served at /metrics

Examples:
  mini2d serve                           # Listen on :23234 with auto-generated key
  mini2d serve --ssh :2222               # Listen on port 2222
  mini2d serve --host-key ./my_host_key  # Use specific host key
  mini2d serve --metrics :9090           # Expose Prometheus metrics

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", "", "Prometheus metrics address (host:port), empty to disable")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom demo config YAML")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("mini2d", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	deps := tui.Deps{Store: store, Logger: logger}
	if flagMetricsAddr != "" {
		deps.Metrics = metrics.New()
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Options = registry.Options{ConfigPath: flagConfig}

	server, err := tui.NewSSHServer(cfg, deps)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting mini2d SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Serve(ctx)
	})
	if deps.Metrics != nil {
		g.Go(func() error {
			return serveMetrics(ctx, logger, flagMetricsAddr, deps.Metrics)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// serveMetrics exposes the registry on addr until ctx is canceled.
func serveMetrics(ctx context.Context, logger *log.Logger, addr string, m *metrics.Metrics) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		//nolint:errcheck // Best-effort shutdown
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("serving metrics", "address", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
